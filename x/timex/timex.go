package timex

import (
	"strconv"
	"time"
)

// PeriodFromHz returns the period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) time.Duration {
	if freqHz == 0 {
		freqHz = 1
	}
	return time.Duration(uint64(time.Second) / uint64(freqHz))
}

// FormatMillis renders d as milliseconds with microsecond precision,
// e.g. "12.034ms". Negative durations keep their sign.
func FormatMillis(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	us := d.Microseconds()
	frac := strconv.FormatInt(us%1000, 10)
	for len(frac) < 3 {
		frac = "0" + frac
	}
	s := strconv.FormatInt(us/1000, 10) + "." + frac + "ms"
	if neg {
		return "-" + s
	}
	return s
}
