package formatter

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnknownProperty    = errors.New("formatter: unknown property")
	ErrEmptyProperty      = errors.New("formatter: property value cannot be empty")
	ErrInvalidProperty    = errors.New("formatter: invalid property value")
	ErrPropertyConstraint = errors.New("formatter: property value out of range")
	ErrUnsupportedType    = errors.New("formatter: unsupported value type")
	ErrNilValue           = errors.New("formatter: value is nil")
	ErrNoLocale           = errors.New("formatter: locale is required")
	ErrNilZone            = errors.New("formatter: time zone is required")
)

// PropertyError reports a property bag entry that failed validation.
type PropertyError struct {
	Err      error
	Property string
	Value    string
}

func (e *PropertyError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Property)
	}
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Property, e.Value)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// TypeError reports a value whose runtime type a formatter cannot handle.
type TypeError struct {
	Type      reflect.Type
	Formatter string
	Supported TypeSet
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: %s formatter cannot format %v (supports %v)", ErrUnsupportedType, e.Formatter, e.Type, e.Supported)
}

func (e *TypeError) Unwrap() error {
	return ErrUnsupportedType
}
