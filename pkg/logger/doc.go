// Package logger builds log/slog loggers with context extraction and
// optional Sentry reporting.
//
// Extractors copy request-scoped values from the context into each record:
//
//	log := logger.New(os.Stderr, slog.LevelInfo, logger.LocaleExtractor(), logger.TemplateExtractor())
//
//	ctx := logger.WithLocale(ctx, language.German)
//	ctx = logger.WithTemplate(ctx, "checkout.total")
//	log.ErrorContext(ctx, "render failed", slog.Any("error", err))
//	// {"level":"ERROR","msg":"render failed","error":"...","locale":"de","template":"checkout.total"}
//
// # Sentry
//
// NewWithSentry writes locally and to Sentry. Errors become issues, warnings
// are kept as logs. Without a DSN the Sentry side is skipped:
//
//	log, flush := logger.NewWithSentry(logger.SentryConfigFromEnv(), os.Stderr)
//	defer flush(2 * time.Second)
//
// Libraries in this module default to NewNope and accept a logger through a
// WithLogger option.
package logger
