package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Position places a currency symbol relative to the amount.
type Position uint8

const (
	Before Position = iota
	After
)

func (p Position) String() string {
	if p == After {
		return "after"
	}
	return "before"
}

// Symbols contains the formatting conventions of one locale.
// It is immutable after creation and safe for concurrent use.
type Symbols struct {
	tag              language.Tag
	decimalSeparator string
	groupSeparator   string
	minusSign        string
	percentPrefix    string
	percentSuffix    string
	currencySymbol   string
	dateLayout       string
	timeLayout       string
	dateTimeLayout   string
	zero             rune
	currencyPosition Position
}

// SymbolsOption configures Symbols during construction.
type SymbolsOption func(*Symbols)

// NewSymbols creates Symbols with the given options.
// If no options are provided, it defaults to US English conventions.
func NewSymbols(opts ...SymbolsOption) *Symbols {
	s := &Symbols{
		tag:              language.AmericanEnglish,
		decimalSeparator: ".",
		groupSeparator:   ",",
		minusSign:        "-",
		percentSuffix:    "%",
		currencySymbol:   "$",
		currencyPosition: Before,
		zero:             '0',
		dateLayout:       "01/02/2006",
		timeLayout:       "3:04 PM",
		dateTimeLayout:   "01/02/2006 3:04 PM",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithTag records the language the symbols belong to.
func WithTag(tag language.Tag) SymbolsOption {
	return func(s *Symbols) {
		s.tag = tag
	}
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) SymbolsOption {
	return func(s *Symbols) {
		s.decimalSeparator = sep
	}
}

// WithGroupSeparator sets the digit grouping separator. An empty separator
// disables grouping.
func WithGroupSeparator(sep string) SymbolsOption {
	return func(s *Symbols) {
		s.groupSeparator = sep
	}
}

// WithZeroDigit sets the zero of the locale's digit system. Digits one to nine
// must follow it contiguously, as they do in every Unicode decimal system.
func WithZeroDigit(zero rune) SymbolsOption {
	return func(s *Symbols) {
		if zero != 0 {
			s.zero = zero
		}
	}
}

// WithMinusSign sets the sign written before negative numbers.
func WithMinusSign(sign string) SymbolsOption {
	return func(s *Symbols) {
		if sign != "" {
			s.minusSign = sign
		}
	}
}

// WithPercentAffixes sets the text written around a percentage.
func WithPercentAffixes(prefix, suffix string) SymbolsOption {
	return func(s *Symbols) {
		s.percentPrefix = prefix
		s.percentSuffix = suffix
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) SymbolsOption {
	return func(s *Symbols) {
		s.currencySymbol = symbol
	}
}

// WithCurrencyPosition sets where the currency symbol goes.
func WithCurrencyPosition(pos Position) SymbolsOption {
	return func(s *Symbols) {
		if pos == Before || pos == After {
			s.currencyPosition = pos
		}
	}
}

// WithDateLayout sets the date layout (Go time layout).
func WithDateLayout(layout string) SymbolsOption {
	return func(s *Symbols) {
		s.dateLayout = layout
	}
}

// WithTimeLayout sets the time layout (Go time layout).
func WithTimeLayout(layout string) SymbolsOption {
	return func(s *Symbols) {
		s.timeLayout = layout
	}
}

// WithDateTimeLayout sets the date-time layout (Go time layout).
func WithDateTimeLayout(layout string) SymbolsOption {
	return func(s *Symbols) {
		s.dateTimeLayout = layout
	}
}

func (s *Symbols) Tag() language.Tag                { return s.tag }
func (s *Symbols) DecimalSeparator() string         { return s.decimalSeparator }
func (s *Symbols) GroupSeparator() string           { return s.groupSeparator }
func (s *Symbols) MinusSign() string                { return s.minusSign }
func (s *Symbols) ZeroDigit() rune                  { return s.zero }
func (s *Symbols) PercentAffixes() (string, string) { return s.percentPrefix, s.percentSuffix }
func (s *Symbols) CurrencySymbol() string           { return s.currencySymbol }
func (s *Symbols) CurrencyPosition() Position       { return s.currencyPosition }
func (s *Symbols) DateLayout() string               { return s.dateLayout }
func (s *Symbols) TimeLayout() string               { return s.timeLayout }
func (s *Symbols) DateTimeLayout() string           { return s.dateTimeLayout }

// Number lays out a number from its ASCII integer and fraction digits.
// Integer digits are grouped by three and the fraction is omitted when empty.
func (s *Symbols) Number(negative bool, integer, fraction string) string {
	var b strings.Builder
	b.Grow(len(integer) + len(fraction) + 8)
	if negative {
		b.WriteString(s.minusSign)
	}
	s.writeNumber(&b, integer, fraction)
	return b.String()
}

// Percent lays out a percentage whose digits are already scaled by 100.
func (s *Symbols) Percent(negative bool, integer, fraction string) string {
	var b strings.Builder
	if negative {
		b.WriteString(s.minusSign)
	}
	b.WriteString(s.percentPrefix)
	s.writeNumber(&b, integer, fraction)
	b.WriteString(s.percentSuffix)
	return b.String()
}

// Currency lays out an amount with the currency symbol on the locale's side.
func (s *Symbols) Currency(negative bool, integer, fraction string) string {
	var b strings.Builder
	if negative {
		b.WriteString(s.minusSign)
	}

	if s.currencyPosition == Before {
		b.WriteString(s.currencySymbol)
		if s.spaceAfterSymbol() {
			b.WriteByte(' ')
		}
		s.writeNumber(&b, integer, fraction)
		return b.String()
	}

	s.writeNumber(&b, integer, fraction)
	if s.currencySymbol != "" {
		b.WriteByte(' ')
		b.WriteString(s.currencySymbol)
	}
	return b.String()
}

// Date formats t with the date layout.
func (s *Symbols) Date(t time.Time) string {
	return t.Format(s.dateLayout)
}

// Time formats t with the time layout.
func (s *Symbols) Time(t time.Time) string {
	return t.Format(s.timeLayout)
}

// DateTime formats t with the date-time layout.
func (s *Symbols) DateTime(t time.Time) string {
	return t.Format(s.dateTimeLayout)
}

// spaceAfterSymbol reports whether a leading symbol is separated from the
// amount. Dollar, yen, pound and won signs are written tight.
func (s *Symbols) spaceAfterSymbol() bool {
	switch sym := s.currencySymbol; {
	case sym == "":
		return false
	case strings.HasSuffix(sym, "$"), sym == "¥", sym == "￥", sym == "£", sym == "₩":
		return false
	default:
		return true
	}
}

func (s *Symbols) writeNumber(b *strings.Builder, integer, fraction string) {
	if integer == "" {
		integer = "0"
	}

	for i := 0; i < len(integer); i++ {
		if i > 0 && s.groupSeparator != "" && (len(integer)-i)%3 == 0 {
			b.WriteString(s.groupSeparator)
		}
		b.WriteRune(s.digit(integer[i]))
	}

	if fraction == "" {
		return
	}
	b.WriteString(s.decimalSeparator)
	for i := 0; i < len(fraction); i++ {
		b.WriteRune(s.digit(fraction[i]))
	}
}

func (s *Symbols) digit(c byte) rune {
	if c >= '0' && c <= '9' {
		return s.zero + rune(c-'0')
	}
	return rune(c)
}
