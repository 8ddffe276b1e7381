package message

import (
	"sync"
	"time"

	"golang.org/x/text/language"
)

// Defaults bound to a RenderContext when none are given.
var (
	DefaultLocale = language.English
	DefaultZone   = time.UTC
)

// RenderContext is the locale and time zone a Message renders with when the
// caller does not override them.
//
// One RenderContext may be shared by many messages. Changing it changes the
// defaults of every message holding it, and the last write wins.
type RenderContext struct {
	locale language.Tag
	zone   *time.Location
	mu     sync.RWMutex
}

// NewRenderContext creates a context for the given locale and zone.
func NewRenderContext(tag language.Tag, zone *time.Location) (*RenderContext, error) {
	if tag == language.Und {
		return nil, ErrNoLocale
	}
	if zone == nil {
		return nil, ErrNilZone
	}
	return &RenderContext{locale: tag, zone: zone}, nil
}

// Locale returns the current locale.
func (c *RenderContext) Locale() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// Zone returns the current time zone.
func (c *RenderContext) Zone() *time.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.zone
}

// SetLocale replaces the locale.
func (c *RenderContext) SetLocale(tag language.Tag) error {
	if tag == language.Und {
		return ErrNoLocale
	}
	c.mu.Lock()
	c.locale = tag
	c.mu.Unlock()
	return nil
}

// SetZone replaces the time zone.
func (c *RenderContext) SetZone(zone *time.Location) error {
	if zone == nil {
		return ErrNilZone
	}
	c.mu.Lock()
	c.zone = zone
	c.mu.Unlock()
	return nil
}

// snapshot reads locale and zone together.
func (c *RenderContext) snapshot() (language.Tag, *time.Location) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale, c.zone
}
