package formatter

import (
	"reflect"
	"time"

	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

// Formatter converts a value of one of its supported types into text for a
// locale and time zone. Implementations are immutable and safe for concurrent
// use.
type Formatter interface {
	// Name identifies the formatter in errors.
	Name() string
	// Types returns the runtime types Format accepts.
	Types() TypeSet
	// Format renders value. A value whose type is not in Types fails with a
	// *TypeError.
	Format(tag language.Tag, zone *time.Location, value any) (string, error)
}

// NilFormatter is implemented by formatters that can render nil values.
type NilFormatter interface {
	AcceptsNil() bool
}

// AcceptsNil reports whether f renders nil values instead of failing with
// ErrNilValue.
func AcceptsNil(f Formatter) bool {
	n, ok := f.(NilFormatter)
	return ok && n.AcceptsNil()
}

// IsNil reports an untyped nil or a nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Factory builds a Formatter from a property bag.
type Factory interface {
	New(props Properties) (Formatter, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(props Properties) (Formatter, error)

func (f FactoryFunc) New(props Properties) (Formatter, error) {
	return f(props)
}

// Formatter names registered by Factories.
const (
	NameString     = "string"
	NameInteger    = "integer"
	NameDecimal    = "decimal"
	NamePercentage = "percentage"
	NameCurrency   = "currency"
	NameDate       = "date"
	NameTime       = "time"
	NameDateTime   = "datetime"
	NameHTML       = "html"
	NameMarkdown   = "markdown"
)

type config struct {
	locales *locale.Provider
	nilText *string
}

// Option configures formatters built by this package.
type Option func(*config)

// WithLocales sets the provider of locale symbols.
func WithLocales(p *locale.Provider) Option {
	return func(c *config) {
		if p != nil {
			c.locales = p
		}
	}
}

// WithNilText makes nil values render as text instead of failing.
func WithNilText(text string) Option {
	return func(c *config) {
		c.nilText = &text
	}
}

func newConfig(opts []Option) config {
	c := config{locales: locale.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// base holds what every formatter shares: identity, accepted types and the
// argument checks done before any conversion.
type base struct {
	cfg   config
	name  string
	types TypeSet
}

func newBase(name string, cfg config, types ...reflect.Type) base {
	return base{name: name, cfg: cfg, types: NewTypeSet(types...)}
}

func (b *base) Name() string   { return b.name }
func (b *base) Types() TypeSet { return b.types }

// AcceptsNil reports whether the formatter was built WithNilText.
func (b *base) AcceptsNil() bool { return b.cfg.nilText != nil }

// format validates the arguments and hands the value to fn together with the
// symbols of the locale.
func (b *base) format(tag language.Tag, zone *time.Location, value any, fn func(*locale.Symbols, any) (string, error)) (string, error) {
	if tag == language.Und {
		return "", ErrNoLocale
	}
	if zone == nil {
		return "", ErrNilZone
	}
	if IsNil(value) {
		if b.cfg.nilText != nil {
			return *b.cfg.nilText, nil
		}
		return "", ErrNilValue
	}
	if !b.types.Supports(value) {
		return "", b.typeError(value)
	}
	return fn(b.cfg.locales.Symbols(tag), value)
}

func (b *base) typeError(value any) error {
	return &TypeError{Formatter: b.name, Type: reflect.TypeOf(value), Supported: b.types}
}


// noProperties builds a factory for a formatter that takes no properties.
func noProperties(build func() Formatter) Factory {
	return FactoryFunc(func(props Properties) (Formatter, error) {
		if err := props.Restrict(); err != nil {
			return nil, err
		}
		return build(), nil
	})
}

// Factories returns the named factories of every formatter in this package.
func Factories(opts ...Option) map[string]Factory {
	return map[string]Factory{
		NameString:   noProperties(func() Formatter { return NewString(opts...) }),
		NameInteger:  noProperties(func() Formatter { return NewInteger(opts...) }),
		NameDate:     noProperties(func() Formatter { return NewDate(opts...) }),
		NameTime:     noProperties(func() Formatter { return NewTime(opts...) }),
		NameDateTime: noProperties(func() Formatter { return NewDateTime(opts...) }),
		NameMarkdown: noProperties(func() Formatter { return NewMarkdown(opts...) }),
		NameDecimal: FactoryFunc(func(props Properties) (Formatter, error) {
			return NewDecimal(props, opts...)
		}),
		NamePercentage: FactoryFunc(func(props Properties) (Formatter, error) {
			return NewPercentage(props, opts...)
		}),
		NameCurrency: FactoryFunc(func(props Properties) (Formatter, error) {
			return NewCurrency(props, opts...)
		}),
		NameHTML: FactoryFunc(func(props Properties) (Formatter, error) {
			return NewHTML(props, opts...)
		}),
	}
}

// Defaults returns the formatters bound to value types when a token names no
// formatter: integers to integer, floats and decimals to decimal, instants and
// dates to date, text to string.
func Defaults(opts ...Option) map[reflect.Type]Formatter {
	integer := NewInteger(opts...)
	str := NewString(opts...)
	date := NewDate(opts...)
	dec := buildDecimal(NameDecimal, stylePlain, DefaultDecimalPlaces, DefaultDecimalPadding, false, opts)

	out := make(map[reflect.Type]Formatter)
	for _, f := range []Formatter{integer, dec, str} {
		for _, t := range f.Types().Types() {
			out[t] = f
		}
	}
	out[TypeOf[time.Time]()] = date
	out[civilDateType] = date
	return out
}
