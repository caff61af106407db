package arrays

import "slices"

// Tuple is an array shape with a fixed prefix, an optional variadic element
// and a fixed suffix.
type Tuple[T any] struct {
	// Prefix holds the leading elements whose positions are known.
	Prefix []T
	// Rest is the element that repeats zero or more times. Nil for
	// fixed-length tuples.
	Rest *T
	// Suffix holds the trailing elements that follow Rest.
	Suffix []T
}

// Fixed returns a fixed-length tuple holding elems.
func Fixed[T any](elems ...T) Tuple[T] {
	return Tuple[T]{Prefix: slices.Clone(elems)}
}

// Variadic returns a variable-length tuple: prefix, then any number of rest,
// then suffix.
func Variadic[T any](prefix []T, rest T, suffix ...T) Tuple[T] {
	return Tuple[T]{
		Prefix: slices.Clone(prefix),
		Rest:   &rest,
		Suffix: slices.Clone(suffix),
	}
}

// IsFixed reports whether the tuple's length is known.
func (t Tuple[T]) IsFixed() bool {
	return t.Rest == nil
}

// Len returns the tuple length and true for fixed tuples, or the minimum
// length and false for variable-length tuples.
func (t Tuple[T]) Len() (int, bool) {
	return len(t.Prefix) + len(t.Suffix), t.IsFixed()
}

// Elements returns a copy of a fixed tuple's elements. For a variable-length
// tuple it returns the prefix followed by the suffix.
func (t Tuple[T]) Elements() []T {
	out := make([]T, 0, len(t.Prefix)+len(t.Suffix))
	out = append(out, t.Prefix...)
	return append(out, t.Suffix...)
}

// At returns the element at position i, counting from zero.
// For a variable-length tuple, positions past the prefix resolve to the rest
// element. Negative positions and positions past a fixed tuple's end report
// false.
func (t Tuple[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 {
		return zero, false
	}
	if i < len(t.Prefix) {
		return t.Prefix[i], true
	}
	if t.Rest != nil {
		return *t.Rest, true
	}
	if j := i - len(t.Prefix); j < len(t.Suffix) {
		return t.Suffix[j], true
	}
	return zero, false
}

// Equal reports whether two tuples have the same shape and elements.
func Equal[T comparable](a, b Tuple[T]) bool {
	if a.IsFixed() != b.IsFixed() {
		return false
	}
	if a.IsFixed() {
		return slices.Equal(a.Elements(), b.Elements())
	}
	return *a.Rest == *b.Rest && slices.Equal(a.Prefix, b.Prefix) && slices.Equal(a.Suffix, b.Suffix)
}

// clone returns a deep copy of t's slices and rest element.
func (t Tuple[T]) clone() Tuple[T] {
	out := Tuple[T]{Prefix: slices.Clone(t.Prefix), Suffix: slices.Clone(t.Suffix)}
	if t.Rest != nil {
		rest := *t.Rest
		out.Rest = &rest
	}
	return out
}

// normalize folds the suffix of a fixed tuple into its prefix.
func (t Tuple[T]) normalize() Tuple[T] {
	if t.Rest == nil && len(t.Suffix) > 0 {
		return Tuple[T]{Prefix: t.Elements()}
	}
	return t
}
