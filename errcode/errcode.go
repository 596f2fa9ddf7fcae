package errcode

// Code is a stable, short error identifier shared by surfaces and services.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK               Code = "ok"
	Unsupported      Code = "unsupported"
	InvalidParams    Code = "invalid_params"
	InvalidPayload   Code = "invalid_payload"
	OutOfBounds      Code = "out_of_bounds"
	ShortColorStream Code = "short_color_stream"
	UnknownBoard     Code = "unknown_board"
	NotConnected     Code = "not_connected"
	Timeout          Code = "timeout"

	Error Code = "error" // generic fallback
)

// E keeps an operation name, a message and a cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.X) match an *E carrying X.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap builds an *E; a nil cause is allowed.
func Wrap(c Code, op string, err error) *E {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &E{C: c, Op: op, Msg: msg, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
