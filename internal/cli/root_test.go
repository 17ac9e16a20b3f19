package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/internal/report"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.NET.Addrs = []string{"127.0.0.1:0"}
	cfg.NET.AcceptLoopInterruptPeriod = 10 * time.Millisecond

	return cfg
}

func TestRun(t *testing.T) {
	t.Run("stops when context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		errch := make(chan error, 1)
		go func() {
			errch <- run(ctx, testConfig(), report.NewJSON(new(bytes.Buffer)), zerolog.Nop())
		}()

		select {
		case err := <-errch:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			require.Fail(t, "did not stop on time")
		}
	})

	t.Run("bad address", func(t *testing.T) {
		cfg := testConfig()
		cfg.NET.Addrs = []string{"127.0.0.1:-1"}
		err := run(context.Background(), cfg, report.NewJSON(new(bytes.Buffer)), zerolog.Nop())
		require.ErrorContains(t, err, "bind 127.0.0.1:-1")
	})
}

func TestNewReporter(t *testing.T) {
	out := config.Default().Output
	require.IsType(t, new(report.Text), newReporter(out, new(bytes.Buffer)))

	out.Format = config.FormatJSON
	require.IsType(t, new(report.JSON), newReporter(out, new(bytes.Buffer)))
}

func TestNewLogger(t *testing.T) {
	var buff bytes.Buffer
	logger, err := newLogger(config.Log{Level: "warn"}, &buff)
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	require.NotContains(t, buff.String(), "hidden")
	require.Contains(t, buff.String(), "shown")

	_, err = newLogger(config.Log{Level: "loud"}, &buff)
	require.Error(t, err)
}
