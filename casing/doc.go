// Package casing converts strings between programming-language naming cases.
//
// Every converter first splits its input into words (see SplitWords) and
// then re-joins the words with a casing rule:
//
//   - CamelCase: "foo-bar" -> "fooBar"
//   - PascalCase: "foo-bar" -> "FooBar"
//   - KebabCase: "fooBar" -> "foo-bar"
//   - SnakeCase: "fooBar" -> "foo_bar"
//   - ScreamingSnakeCase: "fooBar" -> "FOO_BAR"
//   - DelimiterCase: "fooBar" with "." -> "foo.bar"
//
// Input that contains no lowercase letters is lower-cased before splitting,
// so "FOO_BAR" becomes "fooBar" rather than "fOOBAR".
//
// # Options
//
// PreserveConsecutiveUppercase keeps runs of uppercase letters intact in
// camel and pascal case:
//
//	casing.CamelCase("foo-BAR-baz")                                           // "fooBarBaz"
//	casing.CamelCase("foo-BAR-baz", casing.PreserveConsecutiveUppercase(true)) // "fooBARBaz"
//
// SplitOnNumbers (default true) controls whether letter/digit boundaries
// start a new word.
//
// # Invalid input
//
// Strings that are not valid UTF-8 cannot be split into words. Every
// converter returns such input unchanged.
//
// All functions are deterministic and safe for concurrent use.
package casing
