package formatter_test

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/formatter"
	"github.com/guynir/jack/pkg/locale"
)

var (
	us     = language.AmericanEnglish
	uk     = language.BritishEnglish
	german = language.MustParse("de-DE")
	french = language.MustParse("fr-FR")
)

func mustDecimal(t *testing.T, build func(formatter.Properties, ...formatter.Option) (formatter.Formatter, error), props formatter.Properties) formatter.Formatter {
	t.Helper()
	f, err := build(props)
	require.NoError(t, err)
	return f
}

func TestDecimal_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		props formatter.Properties
		value any
		want  string
	}{
		{name: "truncates to two places", value: 1234.456, want: "1,234.45"},
		{name: "three places", props: formatter.Properties{"decimalPlaces": "3"}, value: 1234.456, want: "1,234.456"},
		{name: "padding", props: formatter.Properties{"decimalPlaces": "3", "decimalPadding": "3"}, value: 1.44, want: "1.440"},
		{name: "padding clamped to places", props: formatter.Properties{"decimalPlaces": "2", "decimalPadding": "5"}, value: 1.4, want: "1.40"},
		{name: "trailing zeros dropped", value: 2.5, want: "2.5"},
		{name: "whole number", value: 1500.0, want: "1,500"},
		{name: "rounding up", props: formatter.Properties{"rounding": "true"}, value: 1234.556, want: "1,234.56"},
		{name: "rounding down", props: formatter.Properties{"rounding": "true"}, value: 1234.444, want: "1,234.44"},
		{name: "rounding half away from zero", props: formatter.Properties{"rounding": "true", "decimalPlaces": "1"}, value: -2.25, want: "-2.3"},
		{name: "rounding to integer", props: formatter.Properties{"rounding": "true", "decimalPlaces": "0"}, value: 1234.556, want: "1,235"},
		{name: "truncation keeps sign", value: -1234.456, want: "-1,234.45"},
		{name: "truncation toward zero", value: -0.001, want: "0"},
		{name: "large value", value: 1500000000.12, want: "1,500,000,000.12"},
		{name: "float32", value: float32(1.5), want: "1.5"},
		{name: "decimal", value: decimal.RequireFromString("98765.4321"), want: "98,765.43"},
		{name: "big float", value: big.NewFloat(2.5), want: "2.5"},
		{name: "not a number", value: math.NaN(), want: "NaN"},
		{name: "infinity", value: math.Inf(1), want: "∞"},
		{name: "negative infinity", value: math.Inf(-1), want: "-∞"},
		{name: "case insensitive keys", props: formatter.Properties{" DECIMALPLACES ": "1"}, value: 3.14159, want: "3.1"},
		{name: "maximum places", props: formatter.Properties{"decimalPlaces": "64", "decimalPadding": "1"}, value: 0.5, want: "0.5"},
		{name: "large padding clamped", props: formatter.Properties{"decimalPlaces": "1", "decimalPadding": "4294967297"}, value: 1.23456, want: "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := mustDecimal(t, formatter.NewDecimal, tt.props)

			got, err := f.Format(us, time.UTC, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecimal_Locales(t *testing.T) {
	t.Parallel()

	f := mustDecimal(t, formatter.NewDecimal, nil)

	t.Run("German", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(german, time.UTC, 1500000000.12)
		require.NoError(t, err)
		require.Equal(t, "1.500.000.000,12", got)
	})

	t.Run("French differs only in symbols", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(french, time.UTC, 1500000000.12)
		require.NoError(t, err)

		sym := locale.Default().Symbols(french)
		require.Equal(t, ",", sym.DecimalSeparator())
		require.Equal(t, "1500000000.12", strings.NewReplacer(sym.GroupSeparator(), "", ",", ".").Replace(got))
		require.NotEqual(t, "1,500,000,000.12", got)
	})
}

func TestPercentage_Format(t *testing.T) {
	t.Parallel()

	f := mustDecimal(t, formatter.NewPercentage, nil)

	tests := []struct {
		value any
		want  string
	}{
		{value: 1234.4, want: "123,440%"},
		{value: 0.125, want: "12.5%"},
		{value: 0.5, want: "50%"},
		{value: -0.25, want: "-25%"},
		{value: 0.123456, want: "12.34%"},
		{value: math.Inf(1), want: "∞%"},
	}

	for _, tt := range tests {
		got, err := f.Format(us, time.UTC, tt.value)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestCurrency_Format(t *testing.T) {
	t.Parallel()

	f := mustDecimal(t, formatter.NewCurrency, nil)

	got, err := f.Format(us, time.UTC, 1234.456)
	require.NoError(t, err)
	require.Equal(t, "$1,234.45", got)

	got, err = f.Format(us, time.UTC, -5.0)
	require.NoError(t, err)
	require.Equal(t, "-$5", got)

	padded := mustDecimal(t, formatter.NewCurrency, formatter.Properties{"decimalPadding": "2"})
	got, err = padded.Format(german, time.UTC, 1234.5)
	require.NoError(t, err)
	require.Equal(t, "1.234,50 €", got)

	got, err = padded.Format(uk, time.UTC, 10.0)
	require.NoError(t, err)
	require.Equal(t, "£10.00", got)
}

func TestDecimal_InvalidProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		props   formatter.Properties
		wantErr error
	}{
		{name: "unknown key", props: formatter.Properties{"precision": "2"}, wantErr: formatter.ErrUnknownProperty},
		{name: "negative places", props: formatter.Properties{"decimalPlaces": "-1"}, wantErr: formatter.ErrPropertyConstraint},
		{name: "negative padding", props: formatter.Properties{"decimalPadding": "-2"}, wantErr: formatter.ErrPropertyConstraint},
		{name: "non integer places", props: formatter.Properties{"decimalPlaces": "two"}, wantErr: formatter.ErrInvalidProperty},
		{name: "non boolean rounding", props: formatter.Properties{"rounding": "maybe"}, wantErr: formatter.ErrInvalidProperty},
		{name: "empty value", props: formatter.Properties{"decimalPlaces": ""}, wantErr: formatter.ErrEmptyProperty},
		{name: "places above maximum", props: formatter.Properties{"decimalPlaces": "65"}, wantErr: formatter.ErrPropertyConstraint},
		{name: "places beyond int32", props: formatter.Properties{"decimalPlaces": "4294967297", "decimalPadding": "4294967297"}, wantErr: formatter.ErrPropertyConstraint},
	}

	builders := map[string]func(formatter.Properties, ...formatter.Option) (formatter.Formatter, error){
		"decimal":    formatter.NewDecimal,
		"percentage": formatter.NewPercentage,
		"currency":   formatter.NewCurrency,
	}

	for _, tt := range tests {
		for name, build := range builders {
			t.Run(name+" "+tt.name, func(t *testing.T) {
				t.Parallel()
				f, err := build(tt.props)
				require.Nil(t, f)
				require.ErrorIs(t, err, tt.wantErr)

				var propErr *formatter.PropertyError
				require.True(t, errors.As(err, &propErr))
			})
		}
	}
}

func TestInteger_Format(t *testing.T) {
	t.Parallel()

	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	var counter atomic.Int64
	counter.Store(1234567)

	var small atomic.Uint32
	small.Store(42)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "int", value: 1234, want: "1,234"},
		{name: "int8", value: int8(-12), want: "-12"},
		{name: "int16", value: int16(12345), want: "12,345"},
		{name: "int32", value: int32(-1000), want: "-1,000"},
		{name: "int64", value: int64(-9876543), want: "-9,876,543"},
		{name: "uint", value: uint(1000000), want: "1,000,000"},
		{name: "uint8", value: uint8(255), want: "255"},
		{name: "uint64", value: uint64(math.MaxUint64), want: "18,446,744,073,709,551,615"},
		{name: "big int", value: huge, want: "123,456,789,012,345,678,901,234,567,890"},
		{name: "atomic int64", value: &counter, want: "1,234,567"},
		{name: "atomic uint32", value: &small, want: "42"},
		{name: "zero", value: 0, want: "0"},
	}

	f := formatter.NewInteger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.Format(us, time.UTC, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	got, err := f.Format(german, time.UTC, 1234567)
	require.NoError(t, err)
	require.Equal(t, "1.234.567", got)
}

func TestString_Format(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	sb.WriteString("builder")
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "Holmes", want: "Holmes"},
		{name: "bytes", value: []byte("bytes"), want: "bytes"},
		{name: "runes", value: []rune("żółw"), want: "żółw"},
		{name: "builder", value: &sb, want: "builder"},
		{name: "buffer", value: bytes.NewBufferString("buffer"), want: "buffer"},
		{name: "uuid", value: id, want: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{name: "empty", value: "", want: ""},
	}

	f := formatter.NewString()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.Format(us, time.UTC, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDate_Format(t *testing.T) {
	t.Parallel()

	f := formatter.NewDate()
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, 12, 31, 20, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		tag   language.Tag
		zone  *time.Location
		value any
		want  string
	}{
		{name: "instant in UTC", tag: uk, zone: time.UTC, value: instant, want: "31/12/2024"},
		{name: "instant moved into zone", tag: uk, zone: tokyo, value: instant, want: "01/01/2025"},
		{name: "US layout", tag: us, zone: time.UTC, value: instant, want: "12/31/2024"},
		{name: "German layout", tag: german, zone: time.UTC, value: instant, want: "31.12.2024"},
		{name: "civil date ignores zone", tag: uk, zone: tokyo, value: civil.Date{Year: 2024, Month: time.December, Day: 31}, want: "31/12/2024"},
		{name: "civil date time", tag: uk, zone: tokyo, value: civil.DateTime{
			Date: civil.Date{Year: 2024, Month: time.December, Day: 31},
			Time: civil.Time{Hour: 23, Minute: 59},
		}, want: "31/12/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.Format(tt.tag, tt.zone, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTime_Format(t *testing.T) {
	t.Parallel()

	f := formatter.NewTime()
	clock := civil.Time{Hour: 13, Minute: 14}

	got, err := f.Format(uk, time.UTC, clock)
	require.NoError(t, err)
	require.Equal(t, "13:14", got)

	got, err = f.Format(us, time.FixedZone("X", 3600), clock)
	require.NoError(t, err)
	require.Equal(t, "1:14 PM", got)

	got, err = f.Format(uk, time.UTC, civil.DateTime{Date: civil.Date{Year: 2024, Month: 1, Day: 2}, Time: clock})
	require.NoError(t, err)
	require.Equal(t, "13:14", got)

	_, err = f.Format(uk, time.UTC, time.Now())
	require.ErrorIs(t, err, formatter.ErrUnsupportedType)
}

func TestDateTime_Format(t *testing.T) {
	t.Parallel()

	f := formatter.NewDateTime()
	instant := time.Date(2024, 12, 31, 13, 14, 0, 0, time.UTC)

	got, err := f.Format(uk, time.UTC, instant)
	require.NoError(t, err)
	require.Equal(t, "31/12/2024 13:14", got)

	got, err = f.Format(uk, time.FixedZone("CET", 3600), instant)
	require.NoError(t, err)
	require.Equal(t, "31/12/2024 14:14", got)
}

func TestFormatter_ArgumentErrors(t *testing.T) {
	t.Parallel()

	f := formatter.NewInteger()

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format(us, time.UTC, "42")
		require.ErrorIs(t, err, formatter.ErrUnsupportedType)

		var typeErr *formatter.TypeError
		require.True(t, errors.As(err, &typeErr))
		require.Equal(t, formatter.NameInteger, typeErr.Formatter)
		require.Equal(t, formatter.TypeOf[string](), typeErr.Type)
	})

	t.Run("nil value", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format(us, time.UTC, nil)
		require.ErrorIs(t, err, formatter.ErrNilValue)

		var missing *big.Int
		_, err = f.Format(us, time.UTC, missing)
		require.ErrorIs(t, err, formatter.ErrNilValue)
	})

	t.Run("nil text", func(t *testing.T) {
		t.Parallel()
		withDefault := formatter.NewInteger(formatter.WithNilText("n/a"))

		got, err := withDefault.Format(us, time.UTC, nil)
		require.NoError(t, err)
		require.Equal(t, "n/a", got)

		require.True(t, formatter.AcceptsNil(withDefault))
		require.False(t, formatter.AcceptsNil(f))
	})

	t.Run("undetermined locale", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format(language.Und, time.UTC, 1)
		require.ErrorIs(t, err, formatter.ErrNoLocale)
	})

	t.Run("nil zone", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format(us, nil, 1)
		require.ErrorIs(t, err, formatter.ErrNilZone)
	})
}

func TestWithLocales(t *testing.T) {
	t.Parallel()

	p := locale.NewProvider(locale.WithLocale(language.AmericanEnglish, locale.WithGroupSeparator("_")))
	f := formatter.NewInteger(formatter.WithLocales(p))

	got, err := f.Format(us, time.UTC, 1234567)
	require.NoError(t, err)
	require.Equal(t, "1_234_567", got)
}

func TestHTML_Format(t *testing.T) {
	t.Parallel()

	strict, err := formatter.NewHTML(nil)
	require.NoError(t, err)

	got, err := strict.Format(us, time.UTC, "<b>Hello</b> <script>alert(1)</script>world")
	require.NoError(t, err)
	require.Equal(t, "Hello world", got)

	safe, err := formatter.NewHTML(formatter.Properties{"policy": "Safe"})
	require.NoError(t, err)

	got, err = safe.Format(us, time.UTC, []byte(`<p onclick="x()">Hi <strong>there</strong></p>`))
	require.NoError(t, err)
	require.Equal(t, "<p>Hi <strong>there</strong></p>", got)

	_, err = formatter.NewHTML(formatter.Properties{"policy": "loose"})
	require.ErrorIs(t, err, formatter.ErrInvalidProperty)

	_, err = formatter.NewHTML(formatter.Properties{"mode": "safe"})
	require.ErrorIs(t, err, formatter.ErrUnknownProperty)
}

func TestMarkdown_Format(t *testing.T) {
	t.Parallel()

	f := formatter.NewMarkdown()

	got, err := f.Format(us, time.UTC, "**bold** move")
	require.NoError(t, err)
	require.Equal(t, "<p><strong>bold</strong> move</p>", got)

	got, err = f.Format(us, time.UTC, "<script>alert(1)</script>")
	require.NoError(t, err)
	require.NotContains(t, got, "script")
}

func TestFactories(t *testing.T) {
	t.Parallel()

	factories := formatter.Factories()
	for _, name := range []string{
		formatter.NameString,
		formatter.NameInteger,
		formatter.NameDecimal,
		formatter.NamePercentage,
		formatter.NameCurrency,
		formatter.NameDate,
		formatter.NameTime,
		formatter.NameDateTime,
		formatter.NameHTML,
		formatter.NameMarkdown,
	} {
		factory, ok := factories[name]
		require.True(t, ok, name)

		f, err := factory.New(nil)
		require.NoError(t, err, name)
		require.Equal(t, name, f.Name())
		require.Positive(t, f.Types().Len(), name)
	}

	_, err := factories[formatter.NameDate].New(formatter.Properties{"pattern": "short"})
	require.ErrorIs(t, err, formatter.ErrUnknownProperty)

	f, err := factories[formatter.NameDecimal].New(formatter.Properties{"decimalPlaces": "1"})
	require.NoError(t, err)
	got, err := f.Format(us, time.UTC, 1.99)
	require.NoError(t, err)
	require.Equal(t, "1.9", got)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	defaults := formatter.Defaults()

	tests := []struct {
		value any
		name  string
	}{
		{value: 1, name: formatter.NameInteger},
		{value: int8(1), name: formatter.NameInteger},
		{value: uint64(1), name: formatter.NameInteger},
		{value: big.NewInt(1), name: formatter.NameInteger},
		{value: &atomic.Int32{}, name: formatter.NameInteger},
		{value: 1.5, name: formatter.NameDecimal},
		{value: float32(1.5), name: formatter.NameDecimal},
		{value: decimal.NewFromInt(1), name: formatter.NameDecimal},
		{value: big.NewFloat(1), name: formatter.NameDecimal},
		{value: time.Now(), name: formatter.NameDate},
		{value: civil.Date{}, name: formatter.NameDate},
		{value: "s", name: formatter.NameString},
		{value: []byte("s"), name: formatter.NameString},
		{value: uuid.Nil, name: formatter.NameString},
	}

	for _, tt := range tests {
		got, ok := defaults[reflect.TypeOf(tt.value)]
		require.True(t, ok, "%T", tt.value)
		require.Equal(t, tt.name, got.Name(), "%T", tt.value)
	}

	_, ok := defaults[formatter.TypeOf[civil.Time]()]
	require.False(t, ok)

	got, err := defaults[formatter.TypeOf[float64]()].Format(us, time.UTC, 1234.567)
	require.NoError(t, err)
	require.Equal(t, "1,234.56", got)

	withNil := formatter.Defaults(formatter.WithNilText("-"))
	require.True(t, formatter.AcceptsNil(withNil[formatter.TypeOf[float64]()]))
	require.False(t, formatter.AcceptsNil(defaults[formatter.TypeOf[float64]()]))
}
