// Package logger builds log/slog loggers with context extraction and optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//	)
//
// New writes JSON to stdout at info level unless configured otherwise.
// NewNope returns a logger that discards everything; library types use it
// as their default so logging stays opt-in.
//
// # Context Extractors
//
// A ContextExtractor pulls a request-scoped value out of the context on every
// log call:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(logger.WithExtractors(requestID))
//	log.InfoContext(ctx, "template rendered")
//
// LogHandlerDecorator applies extractors to any slog.Handler.
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// Errors become Sentry issues, warnings are stored as logs. Without a DSN the
// logger only writes locally, so the same code path works in development.
package logger
