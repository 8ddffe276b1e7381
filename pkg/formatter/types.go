package formatter

import (
	"reflect"
	"slices"
	"strings"
)

// TypeOf returns the type key for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// TypeSet is an immutable, ordered set of runtime types. Membership is exact
// type identity: a named type never matches its underlying type.
type TypeSet struct {
	types []reflect.Type
}

// NewTypeSet builds a set, dropping nil and duplicate types.
func NewTypeSet(types ...reflect.Type) TypeSet {
	set := make([]reflect.Type, 0, len(types))
	for _, t := range types {
		if t != nil && !slices.Contains(set, t) {
			set = append(set, t)
		}
	}
	return TypeSet{types: set}
}

// Contains reports whether t is in the set.
func (s TypeSet) Contains(t reflect.Type) bool {
	return t != nil && slices.Contains(s.types, t)
}

// Supports reports whether the dynamic type of v is in the set.
func (s TypeSet) Supports(v any) bool {
	return s.Contains(reflect.TypeOf(v))
}

// Len returns the number of types.
func (s TypeSet) Len() int {
	return len(s.types)
}

// Types returns a copy of the members in insertion order.
func (s TypeSet) Types() []reflect.Type {
	return slices.Clone(s.types)
}

func (s TypeSet) String() string {
	names := make([]string, len(s.types))
	for i, t := range s.types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
