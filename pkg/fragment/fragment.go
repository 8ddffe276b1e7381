package fragment

import (
	"iter"
	"slices"
)

// Kind classifies a fragment.
type Kind uint8

const (
	Literal Kind = iota
	Token
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Token:
		return "token"
	default:
		return "unknown"
	}
}

// Fragment is a contiguous slice of a template.
//
// Start and End are inclusive rune offsets into the template. For a token they
// span the delimiters too, while Text holds only what lies between them.
type Fragment struct {
	Text  string
	Kind  Kind
	Start int
	End   int
}

// IsToken reports whether the fragment is a placeholder.
func (f Fragment) IsToken() bool {
	return f.Kind == Token
}

// Fragments is the ordered result of parsing one template.
type Fragments struct {
	template string
	items    []Fragment
}

// Template returns the parsed template text.
func (f *Fragments) Template() string {
	return f.template
}

// Len returns the number of fragments.
func (f *Fragments) Len() int {
	return len(f.items)
}

// At returns the i-th fragment.
func (f *Fragments) At(i int) Fragment {
	return f.items[i]
}

// Slice returns a copy of all fragments.
func (f *Fragments) Slice() []Fragment {
	return slices.Clone(f.items)
}

// All iterates fragments in template order.
func (f *Fragments) All() iter.Seq2[int, Fragment] {
	return func(yield func(int, Fragment) bool) {
		for i, item := range f.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Visitor receives fragments by kind.
type Visitor interface {
	VisitLiteral(Fragment) error
	VisitToken(Fragment) error
}

// Visit dispatches every fragment to v in order, stopping at the first error.
func (f *Fragments) Visit(v Visitor) error {
	for _, item := range f.items {
		var err error
		switch item.Kind {
		case Literal:
			err = v.VisitLiteral(item)
		case Token:
			err = v.VisitToken(item)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
