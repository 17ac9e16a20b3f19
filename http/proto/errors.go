package proto

import "errors"

var ErrMalformed = errors.New("error parsing http version")

type Part uint8

const (
	Major Part = iota + 1
	Minor
)

func (p Part) String() string {
	switch p {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "unknown"
	}
}

// DigitsError is returned when the token matches the version pattern, but one of
// the digit groups cannot be represented. Err is the *strconv.NumError behind it
type DigitsError struct {
	Part Part
	Err  error
}

func (d *DigitsError) Error() string {
	return "error parsing " + d.Part.String() + " http version: " + d.Err.Error()
}

func (d *DigitsError) Unwrap() error {
	return d.Err
}
