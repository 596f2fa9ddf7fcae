package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to OK")
	}
	if Of(OutOfBounds) != OutOfBounds {
		t.Fatal("bare code should map to itself")
	}
	if Of(Wrap(ShortColorStream, "fill", nil)) != ShortColorStream {
		t.Fatal("wrapped code not extracted")
	}
	if Of(errors.New("other")) != Error {
		t.Fatal("foreign error should map to Error")
	}
}

func TestWrapUnwrapAndIs(t *testing.T) {
	cause := errors.New("spi transfer failed")
	err := Wrap(Timeout, "panel.flush", cause)

	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if !errors.Is(err, Timeout) {
		t.Fatal("errors.Is should match the carried code")
	}
	if errors.Is(err, OutOfBounds) {
		t.Fatal("errors.Is matched the wrong code")
	}
	if got, want := err.Error(), "panel.flush: timeout: spi transfer failed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
