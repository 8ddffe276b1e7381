package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/logger"
	"github.com/guynir/jack/pkg/message"
)

const (
	envLocale = "JACK_LOCALE"
	envZone   = "JACK_ZONE"
	envRedis  = "REDIS_URL"
)

// app carries what every command shares.
type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
	flush  func(time.Duration)

	locale  string
	zone    string
	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: logger.NewNope(), flush: func(time.Duration) {}}

	root := &cobra.Command{
		Use:           "jack",
		Short:         "Locale-aware message templates",
		Long:          "jack compiles ${variable;formatter;key=value} templates and renders them for a locale and time zone.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := logger.SentryConfigFromEnv()
			cfg.Level = slog.LevelWarn
			if a.verbose {
				cfg.Level = slog.LevelDebug
			}
			a.log, a.flush = logger.NewWithSentry(cfg, a.stderr, logger.LocaleExtractor(), logger.TemplateExtractor())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.flush(2 * time.Second)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.locale, "locale", envOr(envLocale, "en"), "BCP 47 locale to render with ($"+envLocale+")")
	root.PersistentFlags().StringVar(&a.zone, "zone", envOr(envZone, "UTC"), "IANA time zone to render with ($"+envZone+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newRenderCmd(a),
		newCheckCmd(a),
		newCatalogCmd(a),
		newSymbolsCmd(a),
	)
	return root
}

// renderContext resolves the --locale and --zone flags.
func (a *app) renderContext() (*message.RenderContext, error) {
	tag, err := language.Parse(a.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", a.locale, err)
	}
	zone, err := time.LoadLocation(a.zone)
	if err != nil {
		return nil, fmt.Errorf("invalid zone %q: %w", a.zone, err)
	}
	return message.NewRenderContext(tag, zone)
}

// localeTag is the --locale flag for log context, undetermined when invalid.
func (a *app) localeTag() language.Tag {
	tag, _ := language.Parse(a.locale)
	return tag
}

func (a *app) factory() (*message.Factory, error) {
	ctx, err := a.renderContext()
	if err != nil {
		return nil, err
	}
	return message.NewDefaultFactory(message.WithRenderContext(ctx), message.WithLogger(a.log))
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
