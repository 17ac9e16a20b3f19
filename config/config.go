package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type (
	NET struct {
		// Addrs are the addresses to listen on. Every address gets its own listener, all
		// of them share the same settings below.
		Addrs []string
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. As every read is considered to be a complete request, it also limits
		// the maximal request size.
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// Reply enables minimal status-line-only responses: 200 OK for requests decoded
		// successfully and 400 Bad Request otherwise.
		Reply bool `test:"nullable"`
	}

	Output struct {
		// Format is either FormatText or FormatJSON.
		Format string
		// Color enables colored text output. Has no effect on json.
		Color bool
	}

	Inspect struct {
		// Addr of the HTTP inspection endpoint. Empty string disables it.
		Addr string `test:"nullable"`
		// MaxBodySize limits the raw request which can be posted for inspection.
		MaxBodySize int64
	}

	Log struct {
		// Level is one of zerolog level names: trace, debug, info, warn, error.
		Level string
		// Console enables human-friendly log lines instead of json ones.
		Console bool `test:"nullable"`
	}
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrBadConfig = errors.New("bad config")

// Config holds settings of the driver around the parser: where to listen, how to read
// and how to report results.
type Config struct {
	NET     NET
	Output  Output
	Inspect Inspect
	Log     Log
}

// Default returns default config. The parser itself isn't configurable.
func Default() *Config {
	return &Config{
		NET: NET{
			Addrs: []string{"0.0.0.0:8000"},
			// each read is a single request, 4kb is enough for most of them
			ReadBufferSize:            4096,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Output: Output{
			Format: FormatText,
			Color:  true,
		},
		Inspect: Inspect{
			MaxBodySize: 64 * 1024,
		},
		Log: Log{
			Level: zerolog.LevelInfoValue,
		},
	}
}

// Validate reports the first setting which can't be used.
func (c *Config) Validate() error {
	switch {
	case len(c.NET.Addrs) == 0:
		return fmt.Errorf("%w: no addresses to listen on", ErrBadConfig)
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("%w: read buffer size must be positive, got %d", ErrBadConfig, c.NET.ReadBufferSize)
	case c.NET.ReadTimeout <= 0:
		return fmt.Errorf("%w: read timeout must be positive, got %s", ErrBadConfig, c.NET.ReadTimeout)
	case c.NET.AcceptLoopInterruptPeriod <= 0:
		return fmt.Errorf("%w: accept loop interrupt period must be positive", ErrBadConfig)
	case c.Output.Format != FormatText && c.Output.Format != FormatJSON:
		return fmt.Errorf("%w: unknown output format %q", ErrBadConfig, c.Output.Format)
	case c.Inspect.MaxBodySize <= 0:
		return fmt.Errorf("%w: inspect body limit must be positive", ErrBadConfig)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	return nil
}
