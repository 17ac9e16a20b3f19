package path

import (
	"strings"

	"github.com/indigo-web/reqparse/http/query"
)

// Path is a request target split into the path itself and its query. The path is
// stored verbatim: neither normalized nor decoded
type Path struct {
	Path  string
	Query query.List
}

// Parse requires the target to start with a slash. Everything after the first '?'
// is parsed as a query string. Presence of '?' means the query string must be
// valid, even when it's empty
func Parse(target string) (Path, error) {
	if len(target) == 0 || target[0] != '/' {
		return Path{}, ErrNoLeadingSlash
	}

	reqPath, rawQuery, found := strings.Cut(target, "?")
	if !found {
		return Path{Path: strings.Clone(target)}, nil
	}

	list, err := query.Parse(rawQuery)
	if err != nil {
		return Path{}, &QueryError{Err: err}
	}

	return Path{
		Path:  strings.Clone(reqPath),
		Query: list,
	}, nil
}

// String renders the request target back
func (p Path) String() string {
	if len(p.Query) == 0 {
		return p.Path
	}

	return p.Path + "?" + p.Query.String()
}
