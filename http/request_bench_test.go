package http

import (
	"strings"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	simpleGET := "GET /hello?name=world HTTP/1.1\r\nHost: localhost\r\n\r\n"
	manyHeaders := "POST / HTTP/1.1\r\n" +
		strings.Repeat("Header: some value\r\n", 20) +
		"\r\n" + strings.Repeat("a", 512)

	for name, raw := range map[string]string{
		"simple GET":   simpleGET,
		"many headers": manyHeaders,
	} {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(raw)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Parse(raw)
			}
		})
	}
}
