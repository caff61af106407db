// Package arrays computes slice and splice results for array shapes.
//
// A Tuple describes an array whose length may or may not be known: a fixed
// Prefix, an optional Rest element that repeats an unknown number of times,
// and a fixed Suffix after the rest. A Tuple with a nil Rest is fixed-length.
//
//	arrays.Fixed(0, 1, 2)                       // [0, 1, 2]
//	arrays.Variadic([]string{"id"}, "tag")      // ["id", ...tag[]]
//
// Slice follows Array.prototype.slice semantics: a half-open range, negative
// indices counting from the end, and an omitted end meaning "through the end".
// Splice follows Array.prototype.splice but never mutates its input.
//
// Indices are always clamped; an inverted or out-of-range request yields an
// empty tuple rather than an error. Results never share memory with their
// input. Positions inside a rest element's span are materialized at most
// MaxExpand times; callers taking indices from untrusted input can reject
// them first with CheckExpand.
//
// SliceOf and SpliceOf apply the same rules directly to Go slices.
package arrays
