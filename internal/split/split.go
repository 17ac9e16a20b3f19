package split

import (
	"io"
	"strings"
	"unicode"
)

// Iterator returns new string (or error) on every next call
type Iterator func() (string, error)

// Pieces returns Iterator that walks by pieces of a string, separated by sep. Unlike
// strings.Split, it doesn't allocate. Empty string still results in a single empty
// piece, as well as a separator at the very end results in a trailing empty piece
func Pieces(str string, sep byte) Iterator {
	var done bool

	return func() (string, error) {
		if done {
			return "", io.EOF
		}

		i := strings.IndexByte(str, sep)
		if i == -1 {
			done = true
			return str, nil
		}

		piece := str[:i]
		str = str[i+1:]

		return piece, nil
	}
}

// Lines returns Iterator that walks by lines of a text. Lines are separated by LF,
// a single CR right before the LF is dropped. Trailing line terminator does not
// produce an empty line at the end
func Lines(text string) Iterator {
	return func() (string, error) {
		if len(text) == 0 {
			return "", io.EOF
		}

		var line string
		lf := strings.IndexByte(text, '\n')
		if lf == -1 {
			line, text = text, ""
		} else {
			line, text = text[:lf], text[lf+1:]
		}

		return strings.TrimSuffix(line, "\r"), nil
	}
}

// Fields returns Iterator that walks by whitespace-separated tokens. Runs of
// whitespace are collapsed, so no empty tokens are ever returned
func Fields(str string) Iterator {
	return func() (string, error) {
		str = strings.TrimLeftFunc(str, unicode.IsSpace)
		if len(str) == 0 {
			return "", io.EOF
		}

		end := strings.IndexFunc(str, unicode.IsSpace)
		if end == -1 {
			end = len(str)
		}

		field := str[:end]
		str = str[end:]

		return field, nil
	}
}

// Rest collects everything the iterator has left, joining pieces with sep
func Rest(iter Iterator, sep string) string {
	var sb strings.Builder

	for first := true; ; first = false {
		piece, err := iter()
		if err != nil {
			return sb.String()
		}

		if !first {
			sb.WriteString(sep)
		}

		sb.WriteString(piece)
	}
}
