// Package naming provides the word splitter shared by the casing and
// generator packages.
//
// SplitWords tokenizes a string at separator runes (hyphen, underscore,
// whitespace), at lower-to-upper case humps, at the end of an uppercase run
// that is followed by a capitalized word, and optionally at letter/digit
// boundaries. Capitalize and Uncapitalize change only the first rune.
//
// As an internal package, these functions are not part of the public API
// and may change without notice. Use the casing package instead.
package naming
