package fragment

import (
	"unicode/utf8"

	"github.com/guynir/jack/pkg/scan"
)

const (
	DefaultPrefix = "${"
	DefaultSuffix = "}"
)

// Parser splits templates into literal and token fragments.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	prefix string
	suffix string
	escape rune
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiters sets the token prefix and suffix.
func WithDelimiters(prefix, suffix string) Option {
	return func(p *Parser) {
		p.prefix = prefix
		p.suffix = suffix
	}
}

// WithEscape sets the escape character.
func WithEscape(r rune) Option {
	return func(p *Parser) {
		p.escape = r
	}
}

// NewParser creates a parser. Without options it recognises ${...} tokens and
// the backslash escape.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		prefix: DefaultPrefix,
		suffix: DefaultSuffix,
		escape: scan.DefaultEscape,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.prefix == "" || p.suffix == "" {
		return nil, ErrEmptyDelimiter
	}
	return p, nil
}

// Prefix returns the token prefix.
func (p *Parser) Prefix() string { return p.prefix }

// Suffix returns the token suffix.
func (p *Parser) Suffix() string { return p.suffix }

// Escape returns the escape character.
func (p *Parser) Escape() rune { return p.escape }

// Parse splits template into fragments. Tokens do not nest: the first
// unescaped suffix after a prefix closes the token.
func (p *Parser) Parse(template string) (*Fragments, error) {
	s := scan.New(template, scan.WithEscape(p.escape))
	prefixLen := utf8.RuneCountInString(p.prefix)
	suffixLen := utf8.RuneCountInString(p.suffix)

	var items []Fragment
	cur := 0
	for !s.Consumed() {
		start := s.Find(p.prefix)
		if start < 0 {
			break
		}
		if start > cur {
			items = append(items, Fragment{
				Kind:  Literal,
				Text:  s.Slice(cur, start),
				Start: cur,
				End:   start - 1,
			})
		}

		s.Seek(start + prefixLen)
		end := s.Find(p.suffix)
		if end < 0 {
			return nil, &SyntaxError{Err: ErrUnterminatedToken, Prefix: p.prefix, Offset: start}
		}

		items = append(items, Fragment{
			Kind:  Token,
			Text:  s.Slice(start+prefixLen, end),
			Start: start,
			End:   end + suffixLen - 1,
		})
		cur = end + suffixLen
		s.Seek(cur)
	}

	if cur < s.Len() {
		items = append(items, Fragment{
			Kind:  Literal,
			Text:  s.Slice(cur, s.Len()),
			Start: cur,
			End:   s.Len() - 1,
		})
	}

	return &Fragments{template: template, items: items}, nil
}

var defaultParser = &Parser{
	prefix: DefaultPrefix,
	suffix: DefaultSuffix,
	escape: scan.DefaultEscape,
}

// Parse splits template using the default delimiters.
func Parse(template string) (*Fragments, error) {
	return defaultParser.Parse(template)
}
