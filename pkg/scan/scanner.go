package scan

// DefaultEscape is the escape character used when none is configured.
const DefaultEscape = '\\'

// Scanner walks a text searching for successive unescaped delimiters.
// The cursor only moves forward, so a run of Find calls over the same text is
// linear in its length.
type Scanner struct {
	text     []rune
	escape   rune
	offset   int
	next     int
	consumed bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithEscape sets the escape character.
func WithEscape(r rune) Option {
	return func(s *Scanner) {
		s.escape = r
	}
}

// New creates a scanner over text positioned before the first rune.
func New(text string, opts ...Option) *Scanner {
	s := &Scanner{
		text:   []rune(text),
		escape: DefaultEscape,
		offset: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.consumed = len(s.text) == 0
	return s
}

// Find returns the offset of the next unescaped delimiter, starting one rune
// past the previous match. When nothing is found the cursor moves to the end of
// the text, the scanner becomes consumed and -1 is returned.
func (s *Scanner) Find(delim string) int {
	if s.consumed {
		return -1
	}

	idx := indexRunes(s.text, []rune(delim), s.next, s.escape)
	if idx < 0 {
		s.offset = len(s.text)
		s.next = len(s.text)
		s.consumed = true
		return -1
	}

	s.offset = idx
	s.next = idx + 1
	return idx
}

// Seek moves the start of the next search to pos. Positions outside the text
// are clamped.
func (s *Scanner) Seek(pos int) {
	pos = max(0, min(pos, len(s.text)))
	s.next = pos
	s.consumed = pos >= len(s.text)
	if s.consumed {
		s.offset = len(s.text)
	}
}

// Consumed reports whether the cursor reached the end of the text.
func (s *Scanner) Consumed() bool {
	return s.consumed
}

// Offset returns the offset of the last match, -1 before the first Find and
// the text length once consumed.
func (s *Scanner) Offset() int {
	return s.offset
}

// Len returns the length of the scanned text in runes.
func (s *Scanner) Len() int {
	return len(s.text)
}

// Slice returns the runes in [from, to) as a string.
func (s *Scanner) Slice(from, to int) string {
	from = max(0, min(from, len(s.text)))
	to = max(from, min(to, len(s.text)))
	return string(s.text[from:to])
}

// Index returns the rune offset of the first unescaped occurrence of delim in
// text at or after from, or -1.
func Index(text, delim string, from int, escape rune) int {
	return indexRunes([]rune(text), []rune(delim), from, escape)
}

func indexRunes(text, delim []rune, from int, escape rune) int {
	if len(delim) == 0 || from < 0 {
		return -1
	}

	for i := from; i+len(delim) <= len(text); i++ {
		if !hasPrefix(text[i:], delim) {
			continue
		}
		if i > 0 && text[i-1] == escape {
			continue
		}
		return i
	}
	return -1
}

func hasPrefix(text, prefix []rune) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if text[i] != r {
			return false
		}
	}
	return true
}
