package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel selects what is stored in Sentry: slog.LevelWarn keeps warnings and errors,
	// slog.LevelError keeps errors only. Errors always create issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally (see New options) and to Sentry.
// With an empty DSN, or when the SDK fails to initialize, only the local handler is used.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	c := newConfig(opts...)
	local := c.handler()

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, c.extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, c.extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(fanout{local, remote}, c.extractors...))
}
