// Package message compiles templates with embedded tokens into reusable,
// locale-aware messages.
//
// A template mixes literal text with tokens delimited by ${ and }. A token
// body names a variable, optionally a formatter and its properties:
//
//	${name}
//	${price;decimal;decimalPlaces=3;decimalPadding=3}
//
// A token that names a formatter is bound to it when the template compiles,
// so an unknown formatter or a bad property fails Compile. A token that names
// only a variable picks the formatter registered for the exact runtime type of
// the value at render time.
//
// Backslash escapes a delimiter, a ';' or an '='. The escape is removed from
// the output.
//
// # Usage
//
//	f, err := message.NewDefaultFactory()
//	if err != nil {
//		return err
//	}
//	msg, err := f.Compile("Mr. ${lastName} is ${age} years old.")
//	if err != nil {
//		return err
//	}
//	s, err := msg.Render(message.M{"lastName": "Holmes", "age": 60})
//	// "Mr. Holmes is 60 years old."
//
// Messages render with the locale and zone of their RenderContext. Per-call
// overrides are available:
//
//	s, err := msg.Render(values, message.WithLocale(language.German))
//
// # Errors
//
// Compile returns a *CompileError carrying the template offset. Render wraps
// variable failures in *VariableError; match them with errors.Is against
// ErrVariableUndefined, ErrVariableType and ErrNoFormatter.
package message
