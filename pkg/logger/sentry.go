package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures error reporting to Sentry.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// Level is the local output threshold.
	Level slog.Level
	// MinLevel is the lowest level stored in Sentry as a log. Errors always
	// create issues.
	MinLevel slog.Level
}

// SentryConfigFromEnv reads SENTRY_DSN and SENTRY_ENVIRONMENT.
func SentryConfigFromEnv() SentryConfig {
	cfg := SentryConfig{
		DSN:         os.Getenv("SENTRY_DSN"),
		Environment: os.Getenv("SENTRY_ENVIRONMENT"),
		Level:       slog.LevelInfo,
		MinLevel:    slog.LevelWarn,
	}
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}
	return cfg
}

// NewWithSentry creates a JSON logger on w that also reports to Sentry. The
// returned flush waits for buffered Sentry events and should run before the
// process exits. Without a DSN, or when Sentry fails to start, only w is
// written and flush is a no-op.
func NewWithSentry(cfg SentryConfig, w io.Writer, extractors ...ContextExtractor) (*slog.Logger, func(time.Duration)) {
	if w == nil {
		w = os.Stderr
	}
	local := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})
	noFlush := func(time.Duration) {}

	if cfg.DSN == "" {
		return slog.New(Wrap(local, extractors...)), noFlush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("sentry disabled", slog.String("error", err.Error()))
		return slog.New(Wrap(local, extractors...)), noFlush
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}
	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	flush := func(timeout time.Duration) { sentry.Flush(timeout) }
	return slog.New(Wrap(fanout{local, remote}, extractors...)), flush
}
