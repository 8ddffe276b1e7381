package scan

import "strings"

// Split cuts text around every unescaped delimiter and returns all segments,
// leading and trailing empty ones included. Escaped delimiters stay verbatim
// inside their segment. Empty text yields an empty slice.
func Split(text, delim string, escape rune) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{}
	}

	d := []rune(delim)
	if len(d) == 0 {
		return []string{text}
	}

	var parts []string
	pos := 0
	for {
		idx := indexRunes(runes, d, pos, escape)
		if idx < 0 {
			parts = append(parts, string(runes[pos:]))
			return parts
		}
		parts = append(parts, string(runes[pos:idx]))
		pos = idx + len(d)
	}
}

// Unescape drops a single escape character wherever it directly precedes one
// of delims. Other escape characters are kept.
func Unescape(text string, escape rune, delims ...string) string {
	if len(delims) == 0 || !strings.ContainsRune(text, escape) {
		return text
	}

	ds := make([][]rune, 0, len(delims))
	for _, d := range delims {
		if d != "" {
			ds = append(ds, []rune(d))
		}
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); i++ {
		if runes[i] == escape && precedesAny(runes[i+1:], ds) {
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func precedesAny(rest []rune, delims [][]rune) bool {
	for _, d := range delims {
		if hasPrefix(rest, d) {
			return true
		}
	}
	return false
}
