package catalog

import (
	"maps"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/message"
)

// CLDR plural categories used as key suffixes by RenderCount.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// CountVariable is the variable RenderCount sets to the count.
const CountVariable = "count"

// PluralForm returns the CLDR cardinal category of n in lang.
func PluralForm(lang language.Tag, n int) string {
	if n < 0 {
		n = -n
	}
	switch plural.Cardinal.MatchPlural(lang, n, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// RenderCount renders the plural variant of key for n. Variants are stored
// as key.one, key.few, key.other and so on. An exact key.zero wins for n == 0
// in every language; a missing category falls back towards key.other.
// The count is available to the template as ${count}.
func (c *Catalog) RenderCount(lang language.Tag, namespace, key string, n int, values message.M, opts ...message.RenderOption) (string, error) {
	if namespace == "" {
		return "", ErrEmptyNamespace
	}
	if key == "" {
		return "", ErrEmptyKey
	}

	tag := lang
	if tag == language.Und {
		tag = c.defaultLang
	}

	merged := message.M{CountVariable: n}
	maps.Copy(merged, values)

	candidates := pluralFallbacks(PluralForm(tag, n))
	if n == 0 {
		candidates = append([]string{PluralZero}, candidates...)
	}
	// Variants of a closer language win over a better category elsewhere.
	for _, fallback := range c.fallbacks(lang) {
		for _, form := range candidates {
			if _, ok := c.messages[buildKey(fallback, namespace, key+"."+form)]; ok {
				return c.Render(lang, namespace, key+"."+form, merged, opts...)
			}
		}
	}

	return c.Render(lang, namespace, key, merged, opts...)
}

func pluralFallbacks(form string) []string {
	switch form {
	case PluralTwo:
		return []string{PluralTwo, PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralOther:
		return []string{PluralOther}
	default:
		return []string{form, PluralOther}
	}
}
