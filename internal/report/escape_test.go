package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func allocs(str string) int {
	return int(testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = Escape(str)
		}
	}).AllocsPerOp())
}

func TestEscape(t *testing.T) {
	t.Run("printable text is untouched", func(t *testing.T) {
		for _, text := range []string{"", "/", "Host: example.com", "X-Name: Jürgen /café", "日本語 テキスト"} {
			require.Equal(t, text, Escape(text))
		}
		require.Zero(t, allocs("X-Name: Jürgen /café"))
	})

	t.Run("control characters", func(t *testing.T) {
		require.Equal(t, `/\x00\n\x7f`, Escape("/\x00\n\x7f"))
		require.Equal(t, `a\x1b[31mb`, Escape("a\x1b[31mb"))
		require.Equal(t, `tab\there`, Escape("tab\there"))
		require.Equal(t, `ü\u0085`, Escape("ü\u0085"))
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		require.Equal(t, `ok\xffü\xc3`, Escape("ok\xffü\xc3"))
	})
}

func TestText_NonASCII(t *testing.T) {
	var out bytes.Buffer
	result := parse(t, "GET /café?name=Jürgen HTTP/1.1\r\nX-Name: Jürgen\r\n\r\nпривет\r\n")
	require.NoError(t, result.Err)
	require.NoError(t, NewText(&out, false).Report(result))
	require.Contains(t, out.String(), "GET /café HTTP/1.1\n")
	require.Contains(t, out.String(), "  ?name = Jürgen\n")
	require.Contains(t, out.String(), "  X-Name: Jürgen\n")
	require.Contains(t, out.String(), "  привет\n")
}
