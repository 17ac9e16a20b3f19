package query

import (
	"errors"
	"strconv"
)

var ErrNoEquals = errors.New("error parsing http query: missing '='")

// ListError points at the fragment of a query string which failed to parse.
// Index is zero-based
type ListError struct {
	Index int
	Err   error
}

func (l *ListError) Error() string {
	return "error parsing http query list at #" + strconv.Itoa(l.Index) + ": " + l.Err.Error()
}

func (l *ListError) Unwrap() error {
	return l.Err
}
