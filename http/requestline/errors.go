package requestline

import "errors"

var (
	ErrNoMethod  = errors.New("no method")
	ErrNoPath    = errors.New("no path")
	ErrNoVersion = errors.New("no version")
)

// Field tells which part of the request line failed
type Field uint8

const (
	Method Field = iota + 1
	Path
	Version
)

func (f Field) String() string {
	switch f {
	case Method:
		return "method"
	case Path:
		return "path"
	case Version:
		return "version"
	default:
		return "unknown"
	}
}

// Error is returned for every request line failure. Err is either one of the
// ErrNo* values, when the line was truncated, or the error of the field parser
type Error struct {
	Field Field
	Err   error
}

func (e *Error) Error() string {
	return "error parsing http request " + e.Field.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
