package proto

import (
	"strconv"
	"strings"
)

const (
	httpScheme = "HTTP/"
	versionSep = "."
)

// Version is a protocol version as in HTTP/<major>.<minor>
type Version struct {
	Major, Minor uint8
}

var (
	HTTP10 = Version{Major: 1, Minor: 0}
	HTTP11 = Version{Major: 1, Minor: 1}
)

// Parse matches the whole token against HTTP/<digits>.<digits>. Anything around
// the pattern, lowercase scheme or non-digits results in ErrMalformed. Digit groups
// that don't fit into uint8 result in *DigitsError
func Parse(token string) (Version, error) {
	if !strings.HasPrefix(token, httpScheme) {
		return Version{}, ErrMalformed
	}

	major, minor, found := strings.Cut(token[len(httpScheme):], versionSep)
	if !found || !isDigits(major) || !isDigits(minor) {
		return Version{}, ErrMalformed
	}

	majorValue, err := strconv.ParseUint(major, 10, 8)
	if err != nil {
		return Version{}, &DigitsError{Part: Major, Err: err}
	}

	minorValue, err := strconv.ParseUint(minor, 10, 8)
	if err != nil {
		return Version{}, &DigitsError{Part: Minor, Err: err}
	}

	return Version{Major: uint8(majorValue), Minor: uint8(minorValue)}, nil
}

// String renders the version back into the HTTP/x.y form
func (v Version) String() string {
	return httpScheme + strconv.Itoa(int(v.Major)) + versionSep + strconv.Itoa(int(v.Minor))
}

func isDigits(str string) bool {
	if len(str) == 0 {
		return false
	}

	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}

	return true
}
