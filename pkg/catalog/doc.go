// Package catalog stores compiled message templates by language, namespace
// and key.
//
// Templates come from inline maps, JSON or YAML directories and pluggable
// sources such as a Redis hash. Every template is compiled once when the
// catalog is built; a single bad template fails New with all compile errors
// joined.
//
// # Directory layout
//
//	en/common.json
//	en/errors.json
//	de/common.yaml
//
// Nested objects are flattened with dots, so {"user": {"greeting": "Hi"}}
// is addressed as "user.greeting".
//
// # Usage
//
//	c, err := catalog.New(
//		catalog.WithDefaultLanguage(language.English),
//		catalog.WithJSONDir(os.DirFS("templates")),
//	)
//	if err != nil {
//		return err
//	}
//
//	s, err := c.Render(language.German, "common", "welcome", message.M{"name": "Ada"})
//
// Lookups fall back from the exact language to its base language and then to
// the default language. A key missing everywhere returns ErrNotFound and calls
// the handler set with WithMissingKeyHandler.
//
// # Plurals
//
// RenderCount picks key.zero, key.one, key.few, key.other and so on by the
// CLDR cardinal rules of the language and exposes the count as ${count}.
//
// # Localizer
//
// A Localizer fixes language, namespace and zone for request-scoped use:
//
//	l := catalog.NewLocalizer(c, c.Match(r.Header.Get("Accept-Language")), "common", nil)
//	title := l.T("title", nil)
package catalog
