package locale

import "golang.org/x/text/language"

// entry is one row of the locale table.
type entry struct {
	tag  language.Tag
	opts []SymbolsOption
}

// predefined lists the locales known without probing. The first row is the
// fallback for languages that match nothing else.
func predefined() []entry {
	return []entry{
		{tag: language.AmericanEnglish},
		{tag: language.BritishEnglish, opts: []SymbolsOption{
			WithCurrencySymbol("£"),
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
		}},
		{tag: language.MustParse("de-DE"), opts: []SymbolsOption{
			WithDecimalSeparator(","),
			WithGroupSeparator("."),
			WithCurrencySymbol("€"),
			WithCurrencyPosition(After),
			WithPercentAffixes("", " %"),
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02.01.2006 15:04"),
		}},
		{tag: language.MustParse("fr-FR"), opts: []SymbolsOption{
			WithDecimalSeparator(","),
			WithGroupSeparator(" "),
			WithCurrencySymbol("€"),
			WithCurrencyPosition(After),
			WithPercentAffixes("", " %"),
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
		}},
		{tag: language.MustParse("es-ES"), opts: []SymbolsOption{
			WithDecimalSeparator(","),
			WithGroupSeparator("."),
			WithCurrencySymbol("€"),
			WithCurrencyPosition(After),
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
		}},
		{tag: language.BrazilianPortuguese, opts: []SymbolsOption{
			WithDecimalSeparator(","),
			WithGroupSeparator("."),
			WithCurrencySymbol("R$"),
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02/01/2006 15:04"),
		}},
		{tag: language.MustParse("ja-JP"), opts: []SymbolsOption{
			WithCurrencySymbol("¥"),
			WithDateLayout("2006/01/02"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("2006/01/02 15:04"),
		}},
		{tag: language.MustParse("zh-CN"), opts: []SymbolsOption{
			WithCurrencySymbol("¥"),
			WithDateLayout("2006-01-02"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("2006-01-02 15:04"),
		}},
		{tag: language.MustParse("ko-KR"), opts: []SymbolsOption{
			WithCurrencySymbol("₩"),
			WithDateLayout("2006.01.02"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("2006.01.02 15:04"),
		}},
		{tag: language.MustParse("pl-PL"), opts: []SymbolsOption{
			WithDecimalSeparator(","),
			WithGroupSeparator(" "),
			WithCurrencySymbol("zł"),
			WithCurrencyPosition(After),
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02.01.2006 15:04"),
		}},
		{tag: language.MustParse("ru-RU"), opts: []SymbolsOption{
			WithDecimalSeparator(","),
			WithGroupSeparator(" "),
			WithCurrencySymbol("₽"),
			WithCurrencyPosition(After),
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04"),
			WithDateTimeLayout("02.01.2006 15:04"),
		}},
		{tag: language.MustParse("ar-SA"), opts: []SymbolsOption{
			WithCurrencySymbol("SAR"),
			WithCurrencyPosition(After),
			WithDateLayout("02/01/2006"),
			WithTimeLayout("3:04 PM"),
			WithDateTimeLayout("02/01/2006 3:04 PM"),
		}},
	}
}
