package formatter

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

type stringFormatter struct {
	base
}

// NewString returns a formatter writing character sequences as they are.
func NewString(opts ...Option) Formatter {
	return &stringFormatter{
		base: newBase(NameString, newConfig(opts),
			TypeOf[string](),
			TypeOf[[]byte](),
			TypeOf[[]rune](),
			TypeOf[*strings.Builder](),
			TypeOf[*bytes.Buffer](),
			TypeOf[uuid.UUID](),
		),
	}
}

func (f *stringFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(_ *locale.Symbols, v any) (string, error) {
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return string(s), nil
		case []rune:
			return string(s), nil
		case *strings.Builder:
			return s.String(), nil
		case *bytes.Buffer:
			return s.String(), nil
		case uuid.UUID:
			return s.String(), nil
		}
		return "", f.typeError(v)
	})
}
