package message

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/formatter"
	"github.com/guynir/jack/pkg/fragment"
	"github.com/guynir/jack/pkg/locale"
	"github.com/guynir/jack/pkg/logger"
	"github.com/guynir/jack/pkg/scan"
)

// Factory compiles templates into messages. It holds two registries: named
// formatter factories used by tokens that name a formatter, and formatters
// bound to runtime types used by tokens that do not.
//
// Registration and compilation may run concurrently. Each compiled message
// keeps its own copy of the type bindings, so later registrations do not
// change messages compiled before them.
type Factory struct {
	named      map[string]formatter.Factory
	defaults   map[reflect.Type]formatter.Formatter
	parser     *fragment.Parser
	ctx        *RenderContext
	logger     *slog.Logger
	locales    *locale.Provider
	prefix     string
	suffix     string
	locale     language.Tag
	zone       *time.Location
	parserOpts []fragment.Option
	mu         sync.RWMutex
	escape     rune
}

// Option configures a Factory.
type Option func(*Factory) error

// WithRenderContext shares ctx with every message the factory compiles.
func WithRenderContext(ctx *RenderContext) Option {
	return func(f *Factory) error {
		if ctx == nil {
			return ErrNilRenderContext
		}
		f.ctx = ctx
		return nil
	}
}

// WithDefaultLocale sets the locale of the factory's own render context.
func WithDefaultLocale(tag language.Tag) Option {
	return func(f *Factory) error {
		if tag == language.Und {
			return ErrNoLocale
		}
		f.locale = tag
		return nil
	}
}

// WithDefaultZone sets the time zone of the factory's own render context.
func WithDefaultZone(zone *time.Location) Option {
	return func(f *Factory) error {
		if zone == nil {
			return ErrNilZone
		}
		f.zone = zone
		return nil
	}
}

// WithDelimiters sets the token prefix and suffix.
func WithDelimiters(prefix, suffix string) Option {
	return func(f *Factory) error {
		f.prefix, f.suffix = prefix, suffix
		f.parserOpts = append(f.parserOpts, fragment.WithDelimiters(prefix, suffix))
		return nil
	}
}

// WithEscape sets the escape character of templates and token bodies.
func WithEscape(r rune) Option {
	return func(f *Factory) error {
		f.escape = r
		f.parserOpts = append(f.parserOpts, fragment.WithEscape(r))
		return nil
	}
}

// WithLocales sets the locale provider handed to the standard formatters.
func WithLocales(p *locale.Provider) Option {
	return func(f *Factory) error {
		f.locales = p
		return nil
	}
}

// WithLogger sets the logger for compile diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) error {
		if l != nil {
			f.logger = l
		}
		return nil
	}
}

// NewFactory creates a factory with empty registries.
func NewFactory(opts ...Option) (*Factory, error) {
	f := &Factory{
		named:    make(map[string]formatter.Factory),
		defaults: make(map[reflect.Type]formatter.Formatter),
		logger:   logger.NewNope(),
		prefix:   fragment.DefaultPrefix,
		suffix:   fragment.DefaultSuffix,
		escape:   scan.DefaultEscape,
		locale:   DefaultLocale,
		zone:     DefaultZone,
	}

	var errs []error
	for _, opt := range opts {
		if err := opt(f); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	parser, err := fragment.NewParser(f.parserOpts...)
	if err != nil {
		return nil, err
	}
	f.parser = parser

	if f.ctx == nil {
		ctx, err := NewRenderContext(f.locale, f.zone)
		if err != nil {
			return nil, err
		}
		f.ctx = ctx
	}

	return f, nil
}

// NewDefaultFactory creates a factory with the standard formatters registered:
// string, integer, decimal, percentage, currency, date, time, datetime, html
// and markdown by name, and the integer, decimal, date and string formatters
// bound to the Go types they handle.
func NewDefaultFactory(opts ...Option) (*Factory, error) {
	f, err := NewFactory(opts...)
	if err != nil {
		return nil, err
	}

	var fopts []formatter.Option
	if f.locales != nil {
		fopts = append(fopts, formatter.WithLocales(f.locales))
	}

	for name, factory := range formatter.Factories(fopts...) {
		if err := f.RegisterNamedFormatter(name, factory); err != nil {
			return nil, err
		}
	}
	for t, fm := range formatter.Defaults(fopts...) {
		if err := f.RegisterDefaultFormatter(t, fm); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// RegisterNamedFormatter makes factory available to tokens naming it.
// A later registration under the same name replaces the earlier one.
func (f *Factory) RegisterNamedFormatter(name string, factory formatter.Factory) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if factory == nil {
		return ErrNilFactory
	}

	f.mu.Lock()
	f.named[name] = factory
	f.mu.Unlock()
	return nil
}

// RegisterDefaultFormatter binds fm to values of exactly type t.
func (f *Factory) RegisterDefaultFormatter(t reflect.Type, fm formatter.Formatter) error {
	if t == nil {
		return ErrNilType
	}
	if fm == nil {
		return ErrNilFormatter
	}

	f.mu.Lock()
	f.defaults[t] = fm
	f.mu.Unlock()
	return nil
}

// RegisterDefault binds fm to values of type T.
func RegisterDefault[T any](f *Factory, fm formatter.Formatter) error {
	return f.RegisterDefaultFormatter(reflect.TypeFor[T](), fm)
}

// NamedFormatters returns the registered formatter names in sorted order.
func (f *Factory) NamedFormatters() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.named))
}

// DefaultFormatter returns the formatter bound to t.
func (f *Factory) DefaultFormatter(t reflect.Type) (formatter.Formatter, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fm, ok := f.defaults[t]
	return fm, ok
}

// RenderContext returns the context bound to newly compiled messages.
func (f *Factory) RenderContext() *RenderContext {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ctx
}

// SetRenderContext replaces the context bound to messages compiled from now on.
func (f *Factory) SetRenderContext(ctx *RenderContext) error {
	if ctx == nil {
		return ErrNilRenderContext
	}
	f.mu.Lock()
	f.ctx = ctx
	f.mu.Unlock()
	return nil
}

// Compile turns template into a Message. Nothing is returned unless every
// fragment compiles.
func (f *Factory) Compile(template string) (*Message, error) {
	frags, err := f.parser.Parse(template)
	if err != nil {
		var syntaxErr *fragment.SyntaxError
		offset := 0
		if errors.As(err, &syntaxErr) {
			offset = syntaxErr.Offset
		}
		return nil, &CompileError{Err: err, Template: template, Offset: offset}
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var snapshot map[reflect.Type]formatter.Formatter
	constructs := make([]Construct, 0, frags.Len())
	for _, frag := range frags.All() {
		if frag.Kind == fragment.Literal {
			constructs = append(constructs, Construct{
				kind:   LiteralConstruct,
				text:   scan.Unescape(frag.Text, f.escape, f.prefix, f.suffix),
				offset: frag.Start,
			})
			continue
		}

		def, err := parseToken(scan.Unescape(frag.Text, f.escape, f.suffix), f.escape)
		if err != nil {
			return nil, &CompileError{Err: err, Template: template, Offset: frag.Start}
		}

		if !def.Explicit() {
			if snapshot == nil {
				snapshot = maps.Clone(f.defaults)
			}
			constructs = append(constructs, Construct{
				kind:       DynamicConstruct,
				variable:   def.Variable,
				formatters: snapshot,
				offset:     frag.Start,
			})
			continue
		}

		factory, ok := f.named[def.Formatter]
		if !ok {
			return nil, &CompileError{
				Err:      fmt.Errorf("%w: %q", ErrUnknownFormatter, def.Formatter),
				Template: template,
				Offset:   frag.Start,
			}
		}
		fm, err := factory.New(def.Properties)
		if err != nil {
			return nil, &CompileError{Err: err, Template: template, Offset: frag.Start}
		}
		constructs = append(constructs, Construct{
			kind:      StaticConstruct,
			variable:  def.Variable,
			formatter: fm,
			offset:    frag.Start,
		})
	}

	f.logger.Debug("message compiled",
		slog.String("template", template),
		slog.Int("constructs", len(constructs)),
	)

	return &Message{ctx: f.ctx, template: template, constructs: constructs}, nil
}

// MustCompile is like Compile but panics on error.
func (f *Factory) MustCompile(template string) *Message {
	m, err := f.Compile(template)
	if err != nil {
		panic(err)
	}
	return m
}
