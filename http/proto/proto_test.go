package proto

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("well-known versions", func(t *testing.T) {
		for _, v := range []Version{HTTP10, HTTP11} {
			parsed, err := Parse(v.String())
			require.NoError(t, err)
			require.Equal(t, v, parsed)
		}
	})

	t.Run("multi-digit groups", func(t *testing.T) {
		parsed, err := Parse("HTTP/12.255")
		require.NoError(t, err)
		require.Equal(t, Version{Major: 12, Minor: 255}, parsed)
	})

	t.Run("leading zeroes", func(t *testing.T) {
		parsed, err := Parse("HTTP/01.001")
		require.NoError(t, err)
		require.Equal(t, HTTP11, parsed)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, token := range []string{
			"", "HTTP/1.x", "http/1.1", "HTTP/1", "HTTP/.1", "HTTP/1.", "HTTP/1.1 ",
			" HTTP/1.1", "HTTP/1.1.1", "HTTP/1x1", "HTTPS/1.1", "HTTP/+1.1", "HTTP/1.-1",
		} {
			_, err := Parse(token)
			require.ErrorIs(t, err, ErrMalformed, token)
		}
	})

	t.Run("major overflow", func(t *testing.T) {
		_, err := Parse("HTTP/256.1")
		var digitsErr *DigitsError
		require.True(t, errors.As(err, &digitsErr))
		require.Equal(t, Major, digitsErr.Part)
		require.ErrorIs(t, err, strconv.ErrRange)
		require.NotErrorIs(t, err, ErrMalformed)
	})

	t.Run("minor overflow", func(t *testing.T) {
		_, err := Parse("HTTP/1.99999999999999999999")
		var digitsErr *DigitsError
		require.True(t, errors.As(err, &digitsErr))
		require.Equal(t, Minor, digitsErr.Part)
		require.ErrorIs(t, err, strconv.ErrRange)
		require.Contains(t, err.Error(), "minor")
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Equal(t, "HTTP/2.0", Version{Major: 2}.String())
}
