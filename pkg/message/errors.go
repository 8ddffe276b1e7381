package message

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEmptyToken         = errors.New("message: token cannot be empty")
	ErrEmptyVariable      = errors.New("message: variable name cannot be empty")
	ErrEmptyFormatterName = errors.New("message: formatter name cannot be empty")
	ErrMalformedProperty  = errors.New("message: property must have the form key=value")
	ErrUnknownFormatter   = errors.New("message: unknown formatter")

	ErrVariableUndefined = errors.New("message: variable undefined")
	ErrVariableType      = errors.New("message: variable type not supported by formatter")
	ErrNoFormatter       = errors.New("message: no formatter registered for variable type")
	ErrUnknownConstruct  = errors.New("message: unknown construct kind")

	ErrNilValues        = errors.New("message: values cannot be nil")
	ErrNoLocale         = errors.New("message: locale is required")
	ErrNilZone          = errors.New("message: time zone is required")
	ErrEmptyName        = errors.New("message: formatter registration name cannot be empty")
	ErrNilFactory       = errors.New("message: formatter factory cannot be nil")
	ErrNilType          = errors.New("message: type cannot be nil")
	ErrNilFormatter     = errors.New("message: formatter cannot be nil")
	ErrNilRenderContext = errors.New("message: render context cannot be nil")
)

// TokenError reports a token body that does not follow the token grammar.
// Segment is the 0-based index of the offending ';'-separated segment.
type TokenError struct {
	Err     error
	Token   string
	Segment int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: token %q, segment %d", e.Err, e.Token, e.Segment)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// CompileError reports why a template could not be compiled. Offset is the
// rune position in the template where the offending fragment starts.
type CompileError struct {
	Err      error
	Template string
	Offset   int
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile at offset %d: %v", e.Offset, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// VariableError reports a render-time failure tied to one variable.
type VariableError struct {
	Err      error
	Type     reflect.Type
	Variable string
}

func (e *VariableError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("variable %q: %v", e.Variable, e.Err)
	}
	return fmt.Sprintf("variable %q of type %v: %v", e.Variable, e.Type, e.Err)
}

func (e *VariableError) Unwrap() error {
	return e.Err
}
