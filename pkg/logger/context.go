package logger

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"
)

type localeKey struct{}

type templateKey struct{}

// WithLocale stores the locale a render runs with.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// LocaleFromContext returns the locale stored by WithLocale.
func LocaleFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeKey{}).(language.Tag)
	return tag, ok
}

// LocaleExtractor adds the stored locale as "locale".
func LocaleExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		tag, ok := LocaleFromContext(ctx)
		if !ok || tag == language.Und {
			return slog.Attr{}, false
		}
		return slog.String("locale", tag.String()), true
	}
}

// WithTemplate stores the name of the template being handled, a file path or
// a catalog key.
func WithTemplate(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, templateKey{}, name)
}

// TemplateExtractor adds the stored template name as "template".
func TemplateExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		name, ok := ctx.Value(templateKey{}).(string)
		if !ok || name == "" {
			return slog.Attr{}, false
		}
		return slog.String("template", name), true
	}
}
