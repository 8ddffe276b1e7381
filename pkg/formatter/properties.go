package formatter

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Properties is the key/value bag configuring a formatter.
type Properties map[string]string

// NormalizeKey trims and lowercases a property key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Normalize returns a copy with normalized keys and trimmed values. When two
// keys normalize to the same name the one sorting last wins.
func (p Properties) Normalize() Properties {
	out := make(Properties, len(p))
	for _, k := range slices.Sorted(maps.Keys(p)) {
		out[NormalizeKey(k)] = strings.TrimSpace(p[k])
	}
	return out
}

// Restrict fails on the first key that is not in allowed. Keys are compared
// after normalization, so "DecimalPlaces" matches "decimalplaces".
func (p Properties) Restrict(allowed ...string) error {
	norm := make([]string, len(allowed))
	for i, a := range allowed {
		norm[i] = NormalizeKey(a)
	}

	for _, k := range slices.Sorted(maps.Keys(p)) {
		if !slices.Contains(norm, NormalizeKey(k)) {
			return &PropertyError{Err: ErrUnknownProperty, Property: k}
		}
	}
	return nil
}

// lookup finds key ignoring case and surrounding whitespace.
func (p Properties) lookup(key string) (string, bool) {
	want := NormalizeKey(key)
	if v, ok := p[want]; ok {
		return v, true
	}
	for k, v := range p {
		if NormalizeKey(k) == want {
			return v, true
		}
	}
	return "", false
}

// value returns the trimmed, lowercased value of key. A present key with a
// blank value is an error.
func (p Properties) value(key string) (string, bool, error) {
	raw, ok := p.lookup(key)
	if !ok {
		return "", false, nil
	}
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", true, &PropertyError{Err: ErrEmptyProperty, Property: key}
	}
	return v, true, nil
}

// Text returns the lowercased value of key, or def when absent.
func (p Properties) Text(key, def string) (string, error) {
	v, ok, err := p.value(key)
	if err != nil || !ok {
		return def, err
	}
	return v, nil
}

// Int returns the integer value of key, or def when absent.
func (p Properties) Int(key string, def int) (int, error) {
	v, ok, err := p.value(key)
	if err != nil || !ok {
		return def, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, &PropertyError{Err: ErrInvalidProperty, Property: key, Value: v}
	}
	return n, nil
}

// NonNegativeInt is Int that also rejects values below zero.
func (p Properties) NonNegativeInt(key string, def int) (int, error) {
	n, err := p.Int(key, def)
	if err != nil {
		return def, err
	}
	if n < 0 {
		return def, &PropertyError{Err: ErrPropertyConstraint, Property: key, Value: strconv.Itoa(n)}
	}
	return n, nil
}

// Bool returns the boolean value of key, or def when absent. Only "true" and
// "false" are accepted.
func (p Properties) Bool(key string, def bool) (bool, error) {
	v, ok, err := p.value(key)
	if err != nil || !ok {
		return def, err
	}
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return def, &PropertyError{Err: ErrInvalidProperty, Property: key, Value: v}
	}
}
