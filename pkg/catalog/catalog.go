package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
	"github.com/guynir/jack/pkg/logger"
	"github.com/guynir/jack/pkg/message"
)

// DefaultLanguage is used when no default language is configured.
var DefaultLanguage = language.English

// Catalog holds compiled messages addressed by language, namespace and key.
// It is immutable after creation and safe for concurrent use.
type Catalog struct {
	// Compiled messages keyed "lang:namespace:key".
	messages map[string]*message.Message

	// Called when a key is missing in every fallback language.
	missingKeyHandler func(lang language.Tag, namespace, key string)

	factory     *message.Factory
	logger      *slog.Logger
	defaultLang language.Tag
	languages   []language.Tag

	// Construction state, dropped once New returns.
	templates map[string]string
	sources   []pendingSource
}

type pendingSource struct {
	ctx    context.Context
	source Source
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a catalog and compiles every template it was given. A single
// template that fails to compile fails the whole catalog.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:    make(map[string]*message.Message),
		templates:   make(map[string]string),
		logger:      logger.NewNope(),
		defaultLang: DefaultLanguage,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.factory == nil {
		f, err := message.NewDefaultFactory(message.WithLogger(c.logger))
		if err != nil {
			return nil, err
		}
		c.factory = f
	}

	if err := c.loadSources(); err != nil {
		return nil, err
	}
	if err := c.compile(); err != nil {
		return nil, err
	}

	c.languages = c.buildLanguages()
	c.templates = nil
	c.sources = nil

	c.logger.Info("catalog loaded",
		slog.Int("messages", len(c.messages)),
		slog.Int("languages", len(c.languages)),
		slog.String("default_language", c.defaultLang.String()),
	)

	return c, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(c *Catalog) error {
		if tag == language.Und {
			return ErrEmptyLanguage
		}
		c.defaultLang = tag
		return nil
	}
}

// WithFactory compiles templates with f instead of a default factory.
func WithFactory(f *message.Factory) Option {
	return func(c *Catalog) error {
		if f == nil {
			return ErrNilFactory
		}
		c.factory = f
		return nil
	}
}

// WithLogger sets the logger for load and lookup diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithMissingKeyHandler sets a function called when a key is not found in
// any language, including the default fallback.
func WithMissingKeyHandler(handler func(lang language.Tag, namespace, key string)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = handler
		return nil
	}
}

// WithTemplates adds templates for a language and namespace. Nested maps are
// flattened with dots: {"user": {"greeting": "..."}} becomes "user.greeting".
func WithTemplates(lang language.Tag, namespace string, templates map[string]any) Option {
	return func(c *Catalog) error {
		return c.add(lang, namespace, templates)
	}
}

// WithSource loads templates from src when the catalog is built. Sources load
// concurrently and override templates given by other options.
func WithSource(ctx context.Context, src Source) Option {
	return func(c *Catalog) error {
		if src == nil {
			return ErrNilSource
		}
		if ctx == nil {
			ctx = context.Background()
		}
		c.sources = append(c.sources, pendingSource{ctx: ctx, source: src})
		return nil
	}
}

func (c *Catalog) add(lang language.Tag, namespace string, templates map[string]any) error {
	if lang == language.Und {
		return ErrEmptyLanguage
	}
	if namespace == "" {
		return ErrEmptyNamespace
	}
	for key, value := range flatten(templates, "") {
		c.templates[buildKey(lang, namespace, key)] = value
	}
	return nil
}

func (c *Catalog) loadSources() error {
	if len(c.sources) == 0 {
		return nil
	}

	loaded := make([][]Entry, len(c.sources))
	var g errgroup.Group
	for i, ps := range c.sources {
		g.Go(func() error {
			entries, err := ps.source.Load(ps.ctx)
			if err != nil {
				return fmt.Errorf("loading source %d: %w", i, err)
			}
			loaded[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, entries := range loaded {
		for _, e := range entries {
			if err := e.validate(); err != nil {
				return err
			}
			c.templates[buildKey(e.Language, e.Namespace, e.Key)] = e.Template
		}
	}
	return nil
}

func (c *Catalog) compile() error {
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(c.templates)) {
		msg, err := c.factory.Compile(c.templates[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		c.messages[key] = msg
	}
	return errors.Join(errs...)
}

// buildLanguages lists the languages with messages, default language first
// and the rest sorted.
func (c *Catalog) buildLanguages() []language.Tag {
	seen := map[string]language.Tag{c.defaultLang.String(): c.defaultLang}
	for key := range c.messages {
		lang, _, _ := strings.Cut(key, ":")
		if _, ok := seen[lang]; !ok {
			seen[lang] = language.Make(lang)
		}
	}
	delete(seen, c.defaultLang.String())

	out := make([]language.Tag, 0, len(seen)+1)
	out = append(out, c.defaultLang)
	for _, name := range slices.Sorted(maps.Keys(seen)) {
		out = append(out, seen[name])
	}
	return out
}

// Lookup finds the message for key. It tries the exact language, then its
// base language, then the default language.
func (c *Catalog) Lookup(lang language.Tag, namespace, key string) (*message.Message, bool) {
	for _, candidate := range c.fallbacks(lang) {
		if msg, ok := c.messages[buildKey(candidate, namespace, key)]; ok {
			return msg, true
		}
	}
	return nil, false
}

func (c *Catalog) fallbacks(lang language.Tag) []language.Tag {
	if lang == language.Und {
		return []language.Tag{c.defaultLang}
	}
	out := []language.Tag{lang}
	if base := baseLanguage(lang); base != lang {
		out = append(out, base)
	}
	if lang != c.defaultLang && baseLanguage(lang) != c.defaultLang {
		out = append(out, c.defaultLang)
	}
	return out
}

// Render renders the message for key with lang as its locale. Options
// override the locale and zone like they do for message.Message.Render.
func (c *Catalog) Render(lang language.Tag, namespace, key string, values message.M, opts ...message.RenderOption) (string, error) {
	if namespace == "" {
		return "", ErrEmptyNamespace
	}
	if key == "" {
		return "", ErrEmptyKey
	}

	msg, ok := c.Lookup(lang, namespace, key)
	if !ok {
		c.missing(lang, namespace, key)
		return "", fmt.Errorf("%w: %s", ErrNotFound, buildKey(lang, namespace, key))
	}

	if lang == language.Und {
		lang = c.defaultLang
	}
	if values == nil {
		values = message.M{}
	}
	return msg.Render(values, append([]message.RenderOption{message.WithLocale(lang)}, opts...)...)
}

func (c *Catalog) missing(lang language.Tag, namespace, key string) {
	c.logger.Warn("catalog key not found",
		slog.String("language", lang.String()),
		slog.String("namespace", namespace),
		slog.String("key", key),
	)
	if c.missingKeyHandler != nil {
		c.missingKeyHandler(lang, namespace, key)
	}
}

// Languages returns the languages with messages, default language first.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.languages)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() language.Tag {
	return c.defaultLang
}

// Match picks the catalog language best matching an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	return locale.ParseAcceptLanguage(acceptLanguage, c.languages)
}

// Keys lists the namespace keys known for lang, without fallbacks, sorted.
func (c *Catalog) Keys(lang language.Tag, namespace string) []string {
	prefix := buildKey(lang, namespace, "")
	var keys []string
	for k := range c.messages {
		if rest, ok := strings.CutPrefix(k, prefix); ok {
			keys = append(keys, rest)
		}
	}
	slices.Sort(keys)
	return keys
}

func buildKey(lang language.Tag, namespace, key string) string {
	return lang.String() + ":" + namespace + ":" + key
}

// baseLanguage strips script and region: en-US becomes en.
func baseLanguage(lang language.Tag) language.Tag {
	base, conf := lang.Base()
	if conf == language.No {
		return lang
	}
	return language.Make(base.String())
}

func flatten(data map[string]any, prefix string) map[string]string {
	out := make(map[string]string)
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			maps.Copy(out, flatten(v, full))
		case map[string]string:
			for sub, s := range v {
				out[full+"."+sub] = s
			}
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return out
}
