package message

import (
	"fmt"
	"reflect"
	"time"

	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/formatter"
)

// ConstructKind tags the variant held by a Construct.
type ConstructKind uint8

const (
	// LiteralConstruct writes fixed text.
	LiteralConstruct ConstructKind = iota
	// StaticConstruct formats a variable with a formatter chosen at compile time.
	StaticConstruct
	// DynamicConstruct formats a variable with the formatter bound to its
	// runtime type.
	DynamicConstruct
)

func (k ConstructKind) String() string {
	switch k {
	case LiteralConstruct:
		return "literal"
	case StaticConstruct:
		return "static"
	case DynamicConstruct:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Construct is one step of a compiled message.
type Construct struct {
	formatter  formatter.Formatter
	formatters map[reflect.Type]formatter.Formatter
	text       string
	variable   string
	offset     int
	kind       ConstructKind
}

// Kind returns the variant.
func (c Construct) Kind() ConstructKind { return c.kind }

// Text returns the literal text. Empty for other kinds.
func (c Construct) Text() string { return c.text }

// Variable returns the variable a static or dynamic construct reads.
func (c Construct) Variable() string { return c.variable }

// Formatter returns the formatter of a static construct.
func (c Construct) Formatter() formatter.Formatter { return c.formatter }

// Offset returns the template position the construct was compiled from.
func (c Construct) Offset() int { return c.offset }

// render produces the construct's contribution to the output.
func (c Construct) render(values M, tag language.Tag, zone *time.Location) (string, error) {
	switch c.kind {
	case LiteralConstruct:
		return c.text, nil
	case StaticConstruct:
		f, value, err := c.resolveStatic(values)
		if err != nil {
			return "", err
		}
		return c.format(f, tag, zone, value)
	case DynamicConstruct:
		f, value, err := c.resolveDynamic(values)
		if err != nil {
			return "", err
		}
		return c.format(f, tag, zone, value)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownConstruct, c.kind)
	}
}

// check runs the lookups of render without formatting.
func (c Construct) check(values M) error {
	var err error
	switch c.kind {
	case LiteralConstruct:
	case StaticConstruct:
		_, _, err = c.resolveStatic(values)
	case DynamicConstruct:
		_, _, err = c.resolveDynamic(values)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownConstruct, c.kind)
	}
	return err
}

// resolveStatic fetches the value of a static construct. A nil value counts
// as undefined unless the formatter renders nil.
func (c Construct) resolveStatic(values M) (formatter.Formatter, any, error) {
	value, ok := values[c.variable]
	if !ok {
		return nil, nil, &VariableError{Err: ErrVariableUndefined, Variable: c.variable}
	}
	if value != nil && !c.formatter.Types().Supports(value) {
		return nil, nil, &VariableError{Err: ErrVariableType, Variable: c.variable, Type: reflect.TypeOf(value)}
	}
	if formatter.IsNil(value) && !formatter.AcceptsNil(c.formatter) {
		return nil, nil, &VariableError{Err: ErrVariableUndefined, Variable: c.variable, Type: reflect.TypeOf(value)}
	}
	return c.formatter, value, nil
}

// resolveDynamic fetches the value of a dynamic construct and the formatter
// bound to its exact runtime type.
func (c Construct) resolveDynamic(values M) (formatter.Formatter, any, error) {
	value, ok := values[c.variable]
	if !ok || value == nil {
		return nil, nil, &VariableError{Err: ErrVariableUndefined, Variable: c.variable}
	}
	t := reflect.TypeOf(value)
	f, ok := c.formatters[t]
	if !ok {
		return nil, nil, &VariableError{Err: ErrNoFormatter, Variable: c.variable, Type: t}
	}
	if formatter.IsNil(value) && !formatter.AcceptsNil(f) {
		return nil, nil, &VariableError{Err: ErrVariableUndefined, Variable: c.variable, Type: t}
	}
	return f, value, nil
}

func (c Construct) format(f formatter.Formatter, tag language.Tag, zone *time.Location, value any) (string, error) {
	s, err := f.Format(tag, zone, value)
	if err != nil {
		return "", &VariableError{Err: err, Variable: c.variable, Type: reflect.TypeOf(value)}
	}
	return s, nil
}
