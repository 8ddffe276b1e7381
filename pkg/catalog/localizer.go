package catalog

import (
	"time"

	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/message"
)

// Localizer renders catalog messages for a fixed language, namespace and,
// optionally, time zone.
type Localizer struct {
	catalog   *Catalog
	zone      *time.Location
	lang      language.Tag
	namespace string
}

// NewLocalizer binds c to lang and namespace. An undetermined lang means the
// catalog's default language; a nil zone leaves the zone of each message's
// render context in effect.
func NewLocalizer(c *Catalog, lang language.Tag, namespace string, zone *time.Location) *Localizer {
	if c == nil {
		panic("catalog: catalog is not provided")
	}
	if lang == language.Und {
		lang = c.DefaultLanguage()
	}
	return &Localizer{catalog: c, lang: lang, namespace: namespace, zone: zone}
}

func (l *Localizer) options() []message.RenderOption {
	if l.zone == nil {
		return nil
	}
	return []message.RenderOption{message.WithZone(l.zone)}
}

// Render renders key with values.
func (l *Localizer) Render(key string, values message.M) (string, error) {
	return l.catalog.Render(l.lang, l.namespace, key, values, l.options()...)
}

// RenderCount renders the plural variant of key for n.
func (l *Localizer) RenderCount(key string, n int, values message.M) (string, error) {
	return l.catalog.RenderCount(l.lang, l.namespace, key, n, values, l.options()...)
}

// T renders key and falls back to the key itself on any error.
func (l *Localizer) T(key string, values message.M) string {
	s, err := l.Render(key, values)
	if err != nil {
		return key
	}
	return s
}

// MustRender is like Render but panics on error.
func (l *Localizer) MustRender(key string, values message.M) string {
	s, err := l.Render(key, values)
	if err != nil {
		panic(err)
	}
	return s
}

// Language returns the localizer's language.
func (l *Localizer) Language() language.Tag {
	return l.lang
}

// Namespace returns the localizer's namespace.
func (l *Localizer) Namespace() string {
	return l.namespace
}

// Zone returns the zone override, nil when there is none.
func (l *Localizer) Zone() *time.Location {
	return l.zone
}
