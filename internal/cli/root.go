package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/indigo-web/reqparse/config"
	"github.com/indigo-web/reqparse/internal/inspect"
	"github.com/indigo-web/reqparse/internal/report"
	"github.com/indigo-web/reqparse/internal/server"
	"github.com/indigo-web/reqparse/transport"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var (
	cfg     = config.Default()
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:          "reqparse",
	Short:        "Decodes raw HTTP/1.x requests received over TCP and prints them",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Output.Color = !noColor
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return run(ctx, cfg, newReporter(cfg.Output, cmd.OutOrStdout()), logger)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringSliceVarP(&cfg.NET.Addrs, "addr", "a", cfg.NET.Addrs, "Addresses to listen on")
	flags.IntVarP(&cfg.NET.ReadBufferSize, "buffer", "b", cfg.NET.ReadBufferSize, "Read buffer size, limits the request size")
	flags.DurationVar(&cfg.NET.ReadTimeout, "timeout", cfg.NET.ReadTimeout, "Idle connection timeout")
	flags.BoolVar(&cfg.NET.Reply, "reply", cfg.NET.Reply, "Reply with 200 OK or 400 Bad Request")
	flags.StringVarP(&cfg.Output.Format, "format", "f", cfg.Output.Format, "Output format: text or json")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&cfg.Inspect.Addr, "inspect", cfg.Inspect.Addr, "Address of the HTTP inspection endpoint")
	flags.Int64Var(&cfg.Inspect.MaxBodySize, "inspect-limit", cfg.Inspect.MaxBodySize, "Maximal request size accepted by the inspection endpoint")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	flags.BoolVar(&cfg.Log.Console, "log-console", cfg.Log.Console, "Human-friendly log lines")

	flags.MarkHidden("inspect-limit")
}

func newLogger(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func newReporter(cfg config.Output, w io.Writer) report.Reporter {
	if cfg.Format == config.FormatJSON {
		return report.NewJSON(w)
	}

	return report.NewText(w, cfg.Color)
}

// run serves until ctx is done or any of the listeners dies
func run(ctx context.Context, cfg *config.Config, reporter report.Reporter, logger zerolog.Logger) error {
	srv := server.New(cfg.NET, reporter, logger)
	sup := transport.NewSupervisor()

	for _, addr := range cfg.NET.Addrs {
		if err := sup.Add(addr, transport.NewTCP(), srv.OnConn); err != nil {
			return fmt.Errorf("bind %s: %w", addr, err)
		}
	}

	for _, addr := range sup.Addrs() {
		logger.Info().Stringer("addr", addr).Msg("listening")
	}

	var inspectSrv *stdhttp.Server
	if len(cfg.Inspect.Addr) > 0 {
		inspectSrv = &stdhttp.Server{
			Addr:              cfg.Inspect.Addr,
			Handler:           inspect.New(cfg.Inspect, logger),
			ReadHeaderTimeout: cfg.NET.ReadTimeout,
		}

		go func() {
			logger.Info().Str("addr", cfg.Inspect.Addr).Msg("inspection endpoint is up")
			if err := inspectSrv.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
				logger.Error().Err(err).Msg("inspection endpoint died")
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			sup.Stop()
		case <-done:
		}
	}()

	err := sup.Run(cfg.NET)
	close(done)

	if inspectSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if serr := inspectSrv.Shutdown(shutdownCtx); serr != nil {
			logger.Error().Err(serr).Msg("inspection endpoint shutdown")
		}
	}

	return err
}
