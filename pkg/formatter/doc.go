// Package formatter turns typed values into locale-aware text.
//
// A Formatter declares the exact runtime types it accepts and renders one of
// them for a language tag and time zone. Formatters are immutable and shared;
// a Factory builds one from a Properties bag, validating keys against the
// formatter's allow-list after trimming and lowercasing them.
//
// # Families
//
//	string      string, []byte, []rune, *strings.Builder, *bytes.Buffer, uuid.UUID
//	integer     all sized ints and uints, *big.Int, *atomic.{Int32,Int64,Uint32,Uint64}
//	decimal     float32, float64, decimal.Decimal, *big.Float
//	percentage  as decimal, scaled by 100
//	currency    as decimal, with the locale's currency symbol
//	date        time.Time, civil.Date, civil.DateTime
//	time        civil.Time, civil.DateTime
//	datetime    time.Time, civil.DateTime
//	html        string, []byte sanitized with bluemonday
//	markdown    string, []byte rendered with goldmark and sanitized
//
// The decimal family accepts decimalPlaces, decimalPadding and rounding:
//
//	f, err := formatter.NewDecimal(formatter.Properties{
//		"decimalPlaces":  "3",
//		"decimalPadding": "3",
//	})
//	s, err := f.Format(language.AmericanEnglish, time.UTC, 1.44) // "1.440"
//
// Locale conventions come from a locale.Provider, locale.Default unless
// WithLocales says otherwise.
package formatter
