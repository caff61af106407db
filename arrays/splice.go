package arrays

// SplitAt divides t into the elements before index n and the tuple that
// starts at n.
//
// Splitting at 0 returns no head and a copy of t. A fixed tuple is split
// directly, resolving a negative n from the end and clamping n into
// [0, length]. A variable-length tuple is split inside its prefix when the
// prefix is long enough; otherwise the missing head positions are filled
// with the rest element and the tail keeps the rest element and suffix.
// Negative n is treated as 0 for variable-length tuples, and the head holds
// at most MaxExpand copies of the rest element. Neither result shares memory
// with t.
func SplitAt[T any](t Tuple[T], n int) (head []T, tail Tuple[T]) {
	t = t.normalize()
	n = t.resolve(n)
	if n == 0 {
		return []T{}, t.clone()
	}
	if n <= len(t.Prefix) {
		return append([]T(nil), t.Prefix[:n]...), t.tailAt(n)
	}

	// Only a variable-length tuple reaches here: the split point lies in the
	// rest element's span.
	n = min(n, len(t.Prefix)+MaxExpand)
	head = make([]T, 0, n)
	head = append(head, t.Prefix...)
	for len(head) < n {
		head = append(head, *t.Rest)
	}
	return head, t.tailAt(n)
}

// resolve turns a split index into a position: fixed tuples resolve negative
// n from the end and clamp into [0, length], variable-length tuples clamp
// negative n to 0.
func (t Tuple[T]) resolve(n int) int {
	if t.IsFixed() {
		return clampIndex(n, len(t.Prefix))
	}
	return max(n, 0)
}

// tailAt returns a copy of the normalized tuple t without its first n
// elements, n >= 0. Positions past a variable-length prefix fall inside the
// rest element's span, so only the prefix shrinks.
func (t Tuple[T]) tailAt(n int) Tuple[T] {
	out := t.clone()
	if n >= len(out.Prefix) {
		out.Prefix = nil
	} else {
		out.Prefix = out.Prefix[n:]
	}
	return out
}

// Splice returns t with deleteCount elements removed at start and items
// inserted in their place. t is not modified and the result shares no memory
// with it.
//
// A delete count larger than the remaining elements deletes through the end;
// a negative delete count deletes nothing.
func Splice[T any](t Tuple[T], start, deleteCount int, items ...T) Tuple[T] {
	if deleteCount < 0 {
		deleteCount = 0
	}
	head, rest := SplitAt(t, start)
	tail := rest.tailAt(rest.resolve(deleteCount))

	prefix := make([]T, 0, len(head)+len(items)+len(tail.Prefix))
	prefix = append(prefix, head...)
	prefix = append(prefix, items...)
	prefix = append(prefix, tail.Prefix...)

	return Tuple[T]{Prefix: prefix, Rest: tail.Rest, Suffix: tail.Suffix}.normalize()
}

// SpliceOf returns a new slice holding s with deleteCount elements removed at
// start and items inserted in their place. s is not modified.
func SpliceOf[T any](s []T, start, deleteCount int, items ...T) []T {
	return Splice(Tuple[T]{Prefix: s}, start, deleteCount, items...).Elements()
}
