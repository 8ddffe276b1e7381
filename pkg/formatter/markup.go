package formatter

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

// PropPolicy selects the sanitizing policy of the html formatter.
const PropPolicy = "policy"

// Policies accepted by the policy property.
const (
	PolicyStrict = "strict"
	PolicySafe   = "safe"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	markdown     goldmark.Markdown
	initOnce     sync.Once
)

func initMarkup() {
	initOnce.Do(func() {
		// strict strips every tag and leaves the text
		strictPolicy = bluemonday.StrictPolicy()

		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"h1", "h2", "h3", "h4", "h5", "h6",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)

		markdown = goldmark.New()
	})
}

type htmlFormatter struct {
	base
	policy *bluemonday.Policy
}

// NewHTML returns a formatter that sanitizes untrusted text before it lands in
// an HTML message. The policy property picks "strict" (default), which strips
// all markup, or "safe", which keeps basic formatting tags.
func NewHTML(props Properties, opts ...Option) (Formatter, error) {
	if err := props.Restrict(PropPolicy); err != nil {
		return nil, err
	}
	name, err := props.Text(PropPolicy, PolicyStrict)
	if err != nil {
		return nil, err
	}

	initMarkup()
	f := &htmlFormatter{
		base: newBase(NameHTML, newConfig(opts), TypeOf[string](), TypeOf[[]byte]()),
	}
	switch name {
	case PolicyStrict:
		f.policy = strictPolicy
	case PolicySafe:
		f.policy = safePolicy
	default:
		return nil, &PropertyError{Err: ErrInvalidProperty, Property: PropPolicy, Value: name}
	}
	return f, nil
}

func (f *htmlFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(_ *locale.Symbols, v any) (string, error) {
		switch s := v.(type) {
		case string:
			return f.policy.Sanitize(s), nil
		case []byte:
			return string(f.policy.SanitizeBytes(s)), nil
		}
		return "", f.typeError(v)
	})
}

type markdownFormatter struct {
	base
}

// NewMarkdown returns a formatter converting Markdown to sanitized HTML.
func NewMarkdown(opts ...Option) Formatter {
	initMarkup()
	return &markdownFormatter{
		base: newBase(NameMarkdown, newConfig(opts), TypeOf[string](), TypeOf[[]byte]()),
	}
}

func (f *markdownFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(_ *locale.Symbols, v any) (string, error) {
		var src []byte
		switch s := v.(type) {
		case string:
			src = []byte(s)
		case []byte:
			src = s
		default:
			return "", f.typeError(v)
		}

		var out bytes.Buffer
		if err := markdown.Convert(src, &out); err != nil {
			return "", err
		}
		return strings.TrimSpace(string(safePolicy.SanitizeBytes(out.Bytes()))), nil
	})
}
