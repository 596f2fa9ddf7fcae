package mathx

import "golang.org/x/exp/constraints"

// MapRange maps x from [inLo,inHi] onto [outLo,outHi] and clamps the result
// to the output range. Either range may be reversed (inLo > inHi), which is
// how mirrored touch axes are expressed. A zero-width input range yields outLo.
func MapRange[T constraints.Signed](x, inLo, inHi, outLo, outHi T) T {
	if inHi == inLo {
		return outLo
	}
	// 64-bit intermediates: raw ADC spans times screen spans overflow int16/int32.
	v := int64(outLo) + (int64(x)-int64(inLo))*(int64(outHi)-int64(outLo))/(int64(inHi)-int64(inLo))
	return T(Clamp(v, int64(outLo), int64(outHi)))
}
