package http

import (
	"strings"

	"github.com/indigo-web/reqparse/http/headers"
	"github.com/indigo-web/reqparse/http/requestline"
	"github.com/indigo-web/reqparse/internal/split"
)

// Request is a fully decoded request. It doesn't reference the text it was parsed
// from, so the input buffer may be reused right after Parse returns
type Request struct {
	Line    requestline.RequestLine
	Headers headers.Headers
	// Body is everything after the first blank line, lines joined with LF. It is
	// neither validated nor framed by Content-Length
	Body string
}

// Parse decodes a complete request text. The first line is the request line,
// following lines up to the first blank one (or the end of the text) form the
// headers block, and the rest is the body. Empty text is a request with an empty
// request line, so it fails on the missing method
func Parse(text string) (Request, error) {
	lines := split.Lines(text)

	// io.EOF leaves the line empty, which is reported by the request line parser
	first, _ := lines()

	line, err := requestline.Parse(first)
	if err != nil {
		return Request{}, &RequestError{Phase: PhaseRequestLine, Err: err}
	}

	var block []string

	for {
		headerLine, err := lines()
		if err != nil || len(headerLine) == 0 {
			break
		}

		block = append(block, headerLine)
	}

	hdrs, err := headers.Parse(strings.Join(block, "\n"))
	if err != nil {
		return Request{}, &RequestError{Phase: PhaseHeaders, Err: err}
	}

	return Request{
		Line:    line,
		Headers: hdrs,
		Body:    split.Rest(lines, "\n"),
	}, nil
}
