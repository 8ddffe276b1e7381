package locale

import (
	"slices"
	"sync"
	"unicode"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Provider builds and caches Symbols per language tag.
// It is safe for concurrent use.
type Provider struct {
	matcher   language.Matcher
	overrides map[language.Tag][]SymbolsOption
	cache     map[language.Tag]*Symbols
	entries   []entry
	group     singleflight.Group
	mu        sync.RWMutex
	probe     bool
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLocale adds a locale to the table or appends options to an existing row.
// Options registered here win over probed values.
func WithLocale(tag language.Tag, opts ...SymbolsOption) ProviderOption {
	return func(p *Provider) {
		known := slices.ContainsFunc(p.entries, func(e entry) bool { return e.tag == tag })
		if !known {
			p.entries = append(p.entries, entry{tag: tag})
		}
		p.overrides[tag] = append(p.overrides[tag], opts...)
	}
}

// WithoutProbe disables reading separators and symbols from CLDR data, so
// only the table is used.
func WithoutProbe() ProviderOption {
	return func(p *Provider) {
		p.probe = false
	}
}

// NewProvider creates a provider over the built-in locale table.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		entries:   predefined(),
		overrides: make(map[language.Tag][]SymbolsOption),
		cache:     make(map[language.Tag]*Symbols),
		probe:     true,
	}
	for _, opt := range opts {
		opt(p)
	}

	tags := make([]language.Tag, len(p.entries))
	for i, e := range p.entries {
		tags[i] = e.tag
	}
	p.matcher = language.NewMatcher(tags)

	return p
}

var defaultProvider = sync.OnceValue(func() *Provider { return NewProvider() })

// Default returns the shared provider used when none is configured.
func Default() *Provider {
	return defaultProvider()
}

// Tags returns the locales of the table in priority order.
func (p *Provider) Tags() []language.Tag {
	tags := make([]language.Tag, len(p.entries))
	for i, e := range p.entries {
		tags[i] = e.tag
	}
	return tags
}

// Match returns the table locale closest to tag and the match confidence.
func (p *Provider) Match(tag language.Tag) (language.Tag, language.Confidence) {
	_, idx, conf := p.matcher.Match(tag)
	return p.entries[idx].tag, conf
}

// Symbols returns the conventions for tag. Concurrent first requests for the
// same tag share one build.
func (p *Provider) Symbols(tag language.Tag) *Symbols {
	p.mu.RLock()
	s, ok := p.cache[tag]
	p.mu.RUnlock()
	if ok {
		return s
	}

	v, _, _ := p.group.Do(tag.String(), func() (any, error) {
		p.mu.RLock()
		cached, ok := p.cache[tag]
		p.mu.RUnlock()
		if ok {
			return cached, nil
		}

		built := p.build(tag)

		p.mu.Lock()
		p.cache[tag] = built
		p.mu.Unlock()

		return built, nil
	})

	return v.(*Symbols)
}

func (p *Provider) build(tag language.Tag) *Symbols {
	_, idx, _ := p.matcher.Match(tag)
	row := p.entries[idx]

	opts := []SymbolsOption{WithTag(tag)}
	opts = append(opts, row.opts...)
	if p.probe {
		opts = append(opts, probe(tag)...)
	}
	opts = append(opts, p.overrides[row.tag]...)

	return NewSymbols(opts...)
}

// probe reads the numeric conventions of tag from CLDR data.
func probe(tag language.Tag) []SymbolsOption {
	printer := message.NewPrinter(tag)
	var opts []SymbolsOption

	runs, seps := digitRuns(printer.Sprint(number.Decimal(1234567.5)))
	if len(runs) >= 2 && len(seps) == len(runs)-1 {
		opts = append(opts, WithDecimalSeparator(seps[len(seps)-1]))
		if len(seps) > 1 {
			opts = append(opts, WithGroupSeparator(seps[0]))
		} else {
			opts = append(opts, WithGroupSeparator(""))
		}
		if one := []rune(runs[0])[0]; unicode.IsDigit(one - 1) {
			opts = append(opts, WithZeroDigit(one-1))
		}
	}

	if prefix, _, ok := affixes(printer.Sprint(number.Decimal(-1))); ok && prefix != "" {
		opts = append(opts, WithMinusSign(prefix))
	}

	if prefix, suffix, ok := affixes(printer.Sprint(number.Percent(0.5))); ok {
		opts = append(opts, WithPercentAffixes(prefix, suffix))
	}

	if unit, conf := currency.FromTag(tag); conf != language.No {
		if sym := printer.Sprint(currency.Symbol(unit)); sym != "" {
			opts = append(opts, WithCurrencySymbol(sym))
		}
	}

	return opts
}

// digitRuns splits s into its runs of digits and the separators between them.
// Text before the first or after the last digit is dropped.
func digitRuns(s string) (runs, seps []string) {
	var cur []rune
	var sep []rune
	for _, r := range s {
		if unicode.IsDigit(r) {
			if len(sep) > 0 && len(runs) > 0 {
				seps = append(seps, string(sep))
			}
			sep = sep[:0]
			cur = append(cur, r)
			continue
		}
		if len(cur) > 0 {
			runs = append(runs, string(cur))
			cur = cur[:0]
		}
		if len(runs) > 0 {
			sep = append(sep, r)
		}
	}
	if len(cur) > 0 {
		runs = append(runs, string(cur))
	}
	return runs, seps
}

// affixes returns the text before the first and after the last digit of s.
func affixes(s string) (prefix, suffix string, ok bool) {
	runes := []rune(s)
	first := slices.IndexFunc(runes, unicode.IsDigit)
	if first < 0 {
		return "", "", false
	}
	last := len(runes) - 1
	for !unicode.IsDigit(runes[last]) {
		last--
	}
	return string(runes[:first]), string(runes[last+1:]), true
}
