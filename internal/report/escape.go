package report

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Escape makes request text safe to be written into a terminal. Printable runes,
// non-ASCII letters included, are kept as is. Control characters are replaced by
// their Go escape sequences (\n, \x1b, \u0085) and bytes which aren't valid UTF-8
// by \xNN
func Escape(text string) string {
	if strings.IndexFunc(text, needsEscape) == -1 && utf8.ValidString(text) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/2)

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteString(`\x`)
			sb.WriteString(hexByte(text[i]))
		case needsEscape(r):
			quoted := strconv.QuoteRune(r)
			sb.WriteString(quoted[1 : len(quoted)-1])
		default:
			sb.WriteString(text[i : i+size])
		}

		i += size
	}

	return sb.String()
}

func needsEscape(r rune) bool {
	return !unicode.IsPrint(r)
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"

	return string([]byte{digits[b>>4], digits[b&0xf]})
}
