// Package locale resolves the numeric and calendar conventions of a language.
//
// Symbols holds everything needed to lay out a number, a percentage, a
// currency amount, a date or a time for one locale. A Provider builds Symbols
// on demand: date and time layouts and currency placement come from a table of
// well-known locales, while separators, digits, percent and currency symbols
// are read from the CLDR data bundled with golang.org/x/text.
//
// Built Symbols are cached per language tag and shared by all callers.
//
// # Usage
//
//	sym := locale.Default().Symbols(language.German)
//	sym.Number(false, "1234567", "5") // "1.234.567,5"
//	sym.Currency(false, "12", "50")   // "12,50 €"
//
// Custom tables and overrides use the same option style as the defaults:
//
//	p := locale.NewProvider(
//		locale.WithLocale(language.MustParse("de-CH"),
//			locale.WithGroupSeparator("'"),
//			locale.WithCurrencySymbol("CHF"),
//		),
//	)
package locale
