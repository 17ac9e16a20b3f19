package report

import (
	"errors"
	"strconv"

	"github.com/indigo-web/reqparse/http"
	"github.com/indigo-web/reqparse/http/headers"
	"github.com/indigo-web/reqparse/http/path"
	"github.com/indigo-web/reqparse/http/proto"
	"github.com/indigo-web/reqparse/http/query"
	"github.com/indigo-web/reqparse/http/requestline"
)

// Result is what the driver does something with after every parse: either a decoded
// request or the error, never both
type Result struct {
	Remote  string
	Request http.Request
	Err     error
}

type Reporter interface {
	Report(Result) error
}

// Chain walks the error tree from the outermost layer down to the cause and names
// every step, e.g. [request line, path, query, query list #1, missing '=']. The last
// element is the message of the innermost error
func Chain(err error) (steps []string) {
	for err != nil {
		switch e := err.(type) {
		case *http.RequestError:
			steps = append(steps, e.Phase.String())
		case *requestline.Error:
			steps = append(steps, e.Field.String())
		case *path.QueryError:
			steps = append(steps, "query")
		case *query.ListError:
			steps = append(steps, "query list #"+strconv.Itoa(e.Index))
		case *headers.Error:
			steps = append(steps, "line "+strconv.Itoa(e.Line))
		case *proto.DigitsError:
			steps = append(steps, e.Part.String()+" digits")
		}

		next := errors.Unwrap(err)
		if next == nil {
			steps = append(steps, leafMessage(err))
		}

		err = next
	}

	return steps
}

func leafMessage(err error) string {
	switch {
	case errors.Is(err, query.ErrNoEquals):
		return "missing '='"
	case errors.Is(err, headers.ErrNoColon):
		return "missing ':'"
	case errors.Is(err, proto.ErrMalformed):
		return "malformed version"
	case errors.Is(err, path.ErrNoLeadingSlash):
		return "no leading slash"
	}

	return err.Error()
}
