package locale

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the header size parsed.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the available language that best satisfies an
// Accept-Language header. Quality values are honoured and malformed entries are
// skipped. Without a usable match the first available language is returned,
// and language.Und when nothing is available.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: [pl en de]
// Returns: en
func ParseAcceptLanguage(header string, available []language.Tag) language.Tag {
	if len(available) == 0 {
		return language.Und
	}

	desired := parseTags(header)
	if len(desired) == 0 {
		return available[0]
	}

	_, idx, conf := language.NewMatcher(available).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[idx]
}

func parseTags(header string) []language.Tag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	if strings.TrimSpace(header) == "" {
		return nil
	}

	if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
		return tags
	}

	// One bad entry fails the whole header, so retry entry by entry.
	type weighted struct {
		tag language.Tag
		q   float32
	}
	var entries []weighted
	for part := range strings.SplitSeq(header, ",") {
		parsed, q, err := language.ParseAcceptLanguage(part)
		if err != nil || len(parsed) == 0 {
			continue
		}
		entries = append(entries, weighted{tag: parsed[0], q: q[0]})
	}
	slices.SortStableFunc(entries, func(a, b weighted) int {
		return cmp.Compare(b.q, a.q)
	})

	tags := make([]language.Tag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags
}
