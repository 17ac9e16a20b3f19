package query

import (
	"strings"

	"github.com/indigo-web/reqparse/internal/split"
)

// Query is a single name=value pair. Both parts are kept raw, no percent-decoding
// is ever done
type Query struct {
	Name, Value string
}

// List is an ordered list of queries, as they appeared in the query string
type List []Query

// ParseQuery splits the fragment on the first '=', so "a=b=c" results in name "a"
// and value "b=c"
func ParseQuery(fragment string) (Query, error) {
	name, value, found := strings.Cut(fragment, "=")
	if !found {
		return Query{}, ErrNoEquals
	}

	return Query{
		Name:  strings.Clone(name),
		Value: strings.Clone(value),
	}, nil
}

// Parse parses the query string, e.g. everything after '?' in the request target.
// An empty query string is not an empty list, but a single malformed fragment.
// The first malformed fragment aborts parsing, nothing parsed so far is returned
func Parse(raw string) (List, error) {
	var (
		list  List
		index int
	)

	fragments := split.Pieces(raw, '&')

	for {
		fragment, err := fragments()
		if err != nil {
			return list, nil
		}

		q, err := ParseQuery(fragment)
		if err != nil {
			return nil, &ListError{Index: index, Err: err}
		}

		list = append(list, q)
		index++
	}
}

// Get returns the value of the first query with exactly matching name
func (l List) Get(name string) (value string, found bool) {
	for _, q := range l {
		if q.Name == name {
			return q.Value, true
		}
	}

	return "", false
}

// String renders the list back into a query string
func (l List) String() string {
	var sb strings.Builder

	for i, q := range l {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(q.Name)
		sb.WriteByte('=')
		sb.WriteString(q.Value)
	}

	return sb.String()
}
