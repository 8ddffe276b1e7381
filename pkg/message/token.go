package message

import (
	"strings"

	"github.com/guynir/jack/pkg/formatter"
	"github.com/guynir/jack/pkg/scan"
)

const (
	segmentSeparator  = ";"
	propertySeparator = "="
)

// TokenDefinition is the parsed body of a token:
//
//	variable (';' formatter (';' key '=' value)*)?
type TokenDefinition struct {
	Properties formatter.Properties
	Variable   string
	Formatter  string
}

// Explicit reports whether the token names its formatter. Tokens that do not
// are resolved by the runtime type of their value.
func (d TokenDefinition) Explicit() bool {
	return d.Formatter != ""
}

// ParseToken parses a token body using the default escape character.
func ParseToken(raw string) (TokenDefinition, error) {
	return parseToken(raw, scan.DefaultEscape)
}

func parseToken(raw string, escape rune) (TokenDefinition, error) {
	if raw == "" {
		return TokenDefinition{}, &TokenError{Err: ErrEmptyToken, Token: raw}
	}

	unescape := func(s string) string {
		return scan.Unescape(s, escape, segmentSeparator, propertySeparator)
	}

	segments := scan.Split(raw, segmentSeparator, escape)

	def := TokenDefinition{Variable: strings.TrimSpace(unescape(segments[0]))}
	if def.Variable == "" {
		return TokenDefinition{}, &TokenError{Err: ErrEmptyVariable, Token: raw}
	}
	if len(segments) == 1 {
		return def, nil
	}

	def.Formatter = strings.TrimSpace(unescape(segments[1]))
	if def.Formatter == "" {
		return TokenDefinition{}, &TokenError{Err: ErrEmptyFormatterName, Token: raw, Segment: 1}
	}

	def.Properties = make(formatter.Properties, len(segments)-2)
	for i, seg := range segments[2:] {
		at := scan.Index(seg, propertySeparator, 0, escape)
		if at < 0 {
			return TokenDefinition{}, &TokenError{Err: ErrMalformedProperty, Token: raw, Segment: i + 2}
		}
		runes := []rune(seg)
		key := formatter.NormalizeKey(unescape(string(runes[:at])))
		if key == "" {
			return TokenDefinition{}, &TokenError{Err: ErrMalformedProperty, Token: raw, Segment: i + 2}
		}
		def.Properties[key] = strings.TrimSpace(unescape(string(runes[at+1:])))
	}

	return def, nil
}
