package requestline

import (
	"github.com/indigo-web/reqparse/http/method"
	"github.com/indigo-web/reqparse/http/path"
	"github.com/indigo-web/reqparse/http/proto"
	"github.com/indigo-web/reqparse/internal/split"
)

type RequestLine struct {
	Method  method.Method
	Path    path.Path
	Version proto.Version
}

// Parse splits the line on whitespace and consumes method, request target and
// protocol version, strictly in this order: the target is parsed before the version
// token is even looked for, so "GET x" fails on the path. Tokens after the version
// are ignored
func Parse(line string) (RequestLine, error) {
	tokens := split.Fields(line)

	methodToken, err := tokens()
	if err != nil {
		return RequestLine{}, &Error{Field: Method, Err: ErrNoMethod}
	}

	target, err := tokens()
	if err != nil {
		return RequestLine{}, &Error{Field: Path, Err: ErrNoPath}
	}

	reqPath, err := path.Parse(target)
	if err != nil {
		return RequestLine{}, &Error{Field: Path, Err: err}
	}

	versionToken, err := tokens()
	if err != nil {
		return RequestLine{}, &Error{Field: Version, Err: ErrNoVersion}
	}

	version, err := proto.Parse(versionToken)
	if err != nil {
		return RequestLine{}, &Error{Field: Version, Err: err}
	}

	return RequestLine{
		Method:  method.Parse(methodToken),
		Path:    reqPath,
		Version: version,
	}, nil
}

// String renders the request line back, without a line terminator
func (r RequestLine) String() string {
	return r.Method.String() + " " + r.Path.String() + " " + r.Version.String()
}
