package headers

import (
	"errors"
	"strconv"
)

var ErrNoColon = errors.New("empty header")

// Error points at the line of the headers block which failed to parse. Line
// numbering starts at 1
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return "error parsing http header at line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
