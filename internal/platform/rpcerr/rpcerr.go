package rpcerr

// Code is the status taxonomy of the store/aggregator RPC surface.
type Code string

const (
	// InvalidArgument marks a caller mistake: empty or oversized text,
	// an unrecognized mood. The message is safe to show to the caller.
	InvalidArgument Code = "invalid_argument"

	// Internal marks a backend failure. The wrapped cause is logged
	// server-side; callers only ever see the generic Message.
	Internal Code = "internal"
)

// Error is the tagged result variant returned by services in place of the
// gateway-era error-first callbacks.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid builds an InvalidArgument error with a caller-facing message.
func Invalid(message string) *Error {
	return &Error{Code: InvalidArgument, Message: message}
}

// Wrap builds an Internal error. message is what the caller sees; err is
// the underlying cause, kept only for logs and Unwrap.
func Wrap(message string, err error) *Error {
	return &Error{Code: Internal, Message: message, Err: err}
}
