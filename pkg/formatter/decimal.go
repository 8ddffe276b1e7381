package formatter

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

// Decimal family property keys.
const (
	PropDecimalPlaces  = "decimalPlaces"
	PropDecimalPadding = "decimalPadding"
	PropRounding       = "rounding"
)

// Decimal family defaults.
const (
	DefaultDecimalPlaces  = 2
	DefaultDecimalPadding = 0

	// MaxDecimalPlaces bounds decimalPlaces. Padding is clamped to places.
	MaxDecimalPlaces = 64
)

type style uint8

const (
	stylePlain style = iota
	stylePercent
	styleCurrency
)

type decimalFormatter struct {
	base
	places  int32
	padding int32
	round   bool
	style   style
}

// NewDecimal returns a formatter for fractional numbers. Recognised properties:
//
//   - decimalPlaces: maximum fraction digits, default 2
//   - decimalPadding: minimum fraction digits, default 0, capped at decimalPlaces
//   - rounding: true rounds half away from zero, false (default) truncates
func NewDecimal(props Properties, opts ...Option) (Formatter, error) {
	f, err := newDecimalFormatter(NameDecimal, stylePlain, props, opts)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewPercentage is NewDecimal scaled by 100 and wrapped in the locale's
// percent sign.
func NewPercentage(props Properties, opts ...Option) (Formatter, error) {
	f, err := newDecimalFormatter(NamePercentage, stylePercent, props, opts)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewCurrency is NewDecimal with the locale's currency symbol.
func NewCurrency(props Properties, opts ...Option) (Formatter, error) {
	f, err := newDecimalFormatter(NameCurrency, styleCurrency, props, opts)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func newDecimalFormatter(name string, st style, props Properties, opts []Option) (*decimalFormatter, error) {
	if err := props.Restrict(PropDecimalPlaces, PropDecimalPadding, PropRounding); err != nil {
		return nil, err
	}
	places, err := props.NonNegativeInt(PropDecimalPlaces, DefaultDecimalPlaces)
	if err != nil {
		return nil, err
	}
	padding, err := props.NonNegativeInt(PropDecimalPadding, DefaultDecimalPadding)
	if err != nil {
		return nil, err
	}
	round, err := props.Bool(PropRounding, false)
	if err != nil {
		return nil, err
	}
	if places > MaxDecimalPlaces {
		return nil, &PropertyError{Err: ErrPropertyConstraint, Property: PropDecimalPlaces, Value: strconv.Itoa(places)}
	}

	return buildDecimal(name, st, places, padding, round, opts), nil
}

// buildDecimal assembles a decimal formatter from validated settings. Padding
// is clamped to places.
func buildDecimal(name string, st style, places, padding int, round bool, opts []Option) *decimalFormatter {
	return &decimalFormatter{
		base: newBase(name, newConfig(opts),
			TypeOf[float32](),
			TypeOf[float64](),
			TypeOf[decimal.Decimal](),
			TypeOf[*big.Float](),
		),
		places:  int32(places),
		padding: int32(min(padding, places)),
		round:   round,
		style:   st,
	}
}

func (f *decimalFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(sym *locale.Symbols, v any) (string, error) {
		d, special, err := toDecimal(v)
		if err != nil {
			return "", err
		}
		if special != "" {
			return f.layoutSpecial(sym, special), nil
		}

		if f.style == stylePercent {
			d = d.Shift(2)
		}
		if f.round {
			d = d.Round(f.places)
		} else {
			d = d.Truncate(f.places)
		}

		integer, fraction, _ := strings.Cut(d.Abs().StringFixed(f.places), ".")
		fraction = trimFraction(fraction, int(f.padding))
		return f.layout(sym, d.Sign() < 0, integer, fraction), nil
	})
}

func (f *decimalFormatter) layout(sym *locale.Symbols, negative bool, integer, fraction string) string {
	switch f.style {
	case stylePercent:
		return sym.Percent(negative, integer, fraction)
	case styleCurrency:
		return sym.Currency(negative, integer, fraction)
	default:
		return sym.Number(negative, integer, fraction)
	}
}

// layoutSpecial writes NaN and the infinities, which have no digits.
func (f *decimalFormatter) layoutSpecial(sym *locale.Symbols, special string) string {
	if special == nan {
		return nan
	}
	text := infinity
	if special == negInfinity {
		text = sym.MinusSign() + infinity
	}
	if f.style == stylePercent {
		prefix, suffix := sym.PercentAffixes()
		return prefix + text + suffix
	}
	return text
}

const (
	nan         = "NaN"
	infinity    = "∞"
	negInfinity = "-∞"
)

// toDecimal converts a supported value to an exact decimal. Values without a
// decimal form come back as special instead.
func toDecimal(v any) (d decimal.Decimal, special string, err error) {
	switch n := v.(type) {
	case float32:
		if s := floatSpecial(float64(n)); s != "" {
			return d, s, nil
		}
		return decimal.NewFromFloat32(n), "", nil
	case float64:
		if s := floatSpecial(n); s != "" {
			return d, s, nil
		}
		return decimal.NewFromFloat(n), "", nil
	case decimal.Decimal:
		return n, "", nil
	case *big.Float:
		if n.IsInf() {
			if n.Sign() < 0 {
				return d, negInfinity, nil
			}
			return d, infinity, nil
		}
		d, err = decimal.NewFromString(n.Text('f', -1))
		return d, "", err
	default:
		return d, "", ErrUnsupportedType
	}
}

func floatSpecial(f float64) string {
	switch {
	case math.IsNaN(f):
		return nan
	case math.IsInf(f, 1):
		return infinity
	case math.IsInf(f, -1):
		return negInfinity
	default:
		return ""
	}
}

// trimFraction drops trailing zeros but keeps at least padding digits.
func trimFraction(fraction string, padding int) string {
	end := len(fraction)
	for end > padding && fraction[end-1] == '0' {
		end--
	}
	return fraction[:end]
}
