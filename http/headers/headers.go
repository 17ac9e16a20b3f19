package headers

import (
	"strings"
	"unicode"

	"github.com/indigo-web/reqparse/internal/split"
)

// Header is a single header field. Name is kept exactly as it was before the colon,
// including any whitespace, while Value has only its leading whitespace trimmed
type Header struct {
	Name, Value string
}

// Headers is an ordered list of headers, as they appeared in the request
type Headers []Header

// ParseHeader splits the line on the first colon
func ParseHeader(line string) (Header, error) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return Header{}, ErrNoColon
	}

	return Header{
		Name:  strings.Clone(name),
		Value: strings.Clone(strings.TrimLeftFunc(value, unicode.IsSpace)),
	}, nil
}

// Parse parses every line of the headers block. The first malformed line fails
// the whole block
func Parse(block string) (Headers, error) {
	var hdrs Headers

	lines := split.Lines(block)

	for lineno := 1; ; lineno++ {
		line, err := lines()
		if err != nil {
			return hdrs, nil
		}

		header, err := ParseHeader(line)
		if err != nil {
			return nil, &Error{Line: lineno, Err: err}
		}

		hdrs = append(hdrs, header)
	}
}

// Get returns the value of the first header with exactly the same name
func (h Headers) Get(name string) (value string, found bool) {
	for _, header := range h {
		if header.Name == name {
			return header.Value, true
		}
	}

	return "", false
}

// Values returns values of all the headers with exactly the same name, in order.
// Returns nil if there are none
func (h Headers) Values(name string) (values []string) {
	for _, header := range h {
		if header.Name == name {
			values = append(values, header.Value)
		}
	}

	return values
}

// Names returns header names in order, repetitions included
func (h Headers) Names() []string {
	names := make([]string, len(h))
	for i, header := range h {
		names[i] = header.Name
	}

	return names
}
