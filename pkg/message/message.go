package message

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// M is the value context of a render call, keyed by variable name.
type M map[string]any

// Message is a compiled template. It is immutable and safe for concurrent use.
type Message struct {
	ctx        *RenderContext
	template   string
	constructs []Construct
}

type renderOptions struct {
	locale    language.Tag
	zone      *time.Location
	hasLocale bool
	hasZone   bool
}

// RenderOption overrides the bound RenderContext for one call.
type RenderOption func(*renderOptions)

// WithLocale renders with tag instead of the context locale.
func WithLocale(tag language.Tag) RenderOption {
	return func(o *renderOptions) {
		o.locale = tag
		o.hasLocale = true
	}
}

// WithZone renders with zone instead of the context zone.
func WithZone(zone *time.Location) RenderOption {
	return func(o *renderOptions) {
		o.zone = zone
		o.hasZone = true
	}
}

func (m *Message) resolve(opts []RenderOption) (language.Tag, *time.Location, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	tag, zone := m.ctx.snapshot()
	if o.hasLocale {
		tag = o.locale
	}
	if o.hasZone {
		zone = o.zone
	}

	if tag == language.Und {
		return tag, zone, ErrNoLocale
	}
	if zone == nil {
		return tag, zone, ErrNilZone
	}
	return tag, zone, nil
}

// Render produces the message text for values. Either the whole text is
// returned or an error and an empty string.
func (m *Message) Render(values M, opts ...RenderOption) (string, error) {
	if values == nil {
		return "", ErrNilValues
	}
	tag, zone, err := m.resolve(opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, c := range m.constructs {
		s, err := c.render(values, tag, zone)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Validate reports the first error Render would hit while resolving variables,
// without formatting anything.
func (m *Message) Validate(values M, opts ...RenderOption) error {
	if values == nil {
		return ErrNilValues
	}
	if _, _, err := m.resolve(opts); err != nil {
		return err
	}
	for _, c := range m.constructs {
		if err := c.check(values); err != nil {
			return err
		}
	}
	return nil
}

// RenderContext returns the context the message renders with by default.
func (m *Message) RenderContext() *RenderContext {
	return m.ctx
}

// Template returns the source template.
func (m *Message) Template() string {
	return m.template
}

// Constructs returns a copy of the compiled steps.
func (m *Message) Constructs() []Construct {
	return slices.Clone(m.constructs)
}

// Variables lists the variables the message reads, in order of first use.
func (m *Message) Variables() []string {
	var names []string
	for _, c := range m.constructs {
		if c.kind != LiteralConstruct && !slices.Contains(names, c.variable) {
			names = append(names, c.variable)
		}
	}
	return names
}

func (m *Message) String() string {
	return m.template
}
