package arrays

import (
	"fmt"

	"github.com/erraggy/taxokit/taxerrors"
)

// MaxExpand is the largest number of copies of a variable-length tuple's rest
// element that Slice and SplitAt materialize. Requests reaching further are
// clamped; CheckExpand rejects them up front.
const MaxExpand = 1 << 16

// CheckExpand returns a *taxerrors.ResourceLimitError when t is
// variable-length and one of indices lies more than limit positions past its
// prefix. Fixed tuples never expand.
func CheckExpand[T any](t Tuple[T], limit int, indices ...int) error {
	if t.IsFixed() {
		return nil
	}
	for _, i := range indices {
		if i > len(t.Prefix) && i-len(t.Prefix) > limit {
			return &taxerrors.ResourceLimitError{
				ResourceType: "rest_expansion",
				Limit:        int64(limit),
				Actual:       int64(i - len(t.Prefix)),
				Message:      fmt.Sprintf("index %d repeats the rest element too many times", i),
			}
		}
	}
	return nil
}

// Bound is an optional array index.
type Bound struct {
	n   int
	set bool
}

// Omit is the omitted bound.
var Omit = Bound{}

// At returns the bound n. Negative values count from the end.
func At(n int) Bound {
	return Bound{n: n, set: true}
}

// Value returns the index and whether the bound was given.
func (b Bound) Value() (int, bool) {
	return b.n, b.set
}

// Slice returns the part of t in the half-open range [start, end).
//
// When both bounds are omitted a copy of t is returned, and an omitted start
// alone means 0. Fixed tuples resolve negative bounds against their length
// and clamp both bounds into [0, length]. Variable-length tuples only accept
// non-negative bounds: a start without an end drops the first start
// elements, and a non-empty positive range yields a fixed tuple of the
// elements at those positions, holding at most MaxExpand copies of the rest
// element. Every other request yields an empty tuple.
func Slice[T any](t Tuple[T], start, end Bound) Tuple[T] {
	if !start.set && !end.set {
		return t.clone()
	}
	t = t.normalize()
	s, _ := start.Value()

	if !t.IsFixed() {
		return sliceVariable(t, s, end)
	}

	n := len(t.Prefix)
	s = clampIndex(s, n)
	e := n
	if end.set {
		e = clampIndex(end.n, n)
	}
	if e <= s {
		return Tuple[T]{}
	}
	return Fixed(t.Prefix[s:e]...)
}

func sliceVariable[T any](t Tuple[T], start int, end Bound) Tuple[T] {
	if start < 0 {
		return Tuple[T]{}
	}
	if !end.set {
		return t.tailAt(start)
	}
	if end.n < 0 || end.n <= start {
		return Tuple[T]{}
	}

	stop := end.n
	if from := max(start, len(t.Prefix)); stop-from > MaxExpand {
		stop = from + MaxExpand
	}
	out := make([]T, 0, stop-start)
	for i := start; i < stop; i++ {
		elem, _ := t.At(i)
		out = append(out, elem)
	}
	return Tuple[T]{Prefix: out}
}

// clampIndex resolves a possibly negative index against length n and clamps
// it into [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// SliceOf returns a copy of s[start:end] with slice semantics: negative
// indices count from the end, the optional end defaults to len(s), and out of
// range indices are clamped. An inverted range returns an empty slice.
func SliceOf[T any](s []T, start int, end ...int) []T {
	e := Omit
	if len(end) > 0 {
		e = At(end[0])
	}
	if len(s) == 0 {
		return []T{}
	}
	return Slice(Tuple[T]{Prefix: s}, At(start), e).Elements()
}
