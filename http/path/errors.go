package path

import "errors"

var ErrNoLeadingSlash = errors.New("error parsing http path, no leading slash")

// QueryError wraps the failure of the query string following the path
type QueryError struct {
	Err error
}

func (q *QueryError) Error() string {
	return "error parsing http path query: " + q.Err.Error()
}

func (q *QueryError) Unwrap() error {
	return q.Err
}
