package casing

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/taxokit/internal/naming"
)

// Converter converts a single string to a naming case.
type Converter func(string) string

// Casers are stateful and must not be shared between goroutines.
var (
	lowerPool = sync.Pool{New: func() any { c := cases.Lower(language.Und); return &c }}
	upperPool = sync.Pool{New: func() any { c := cases.Upper(language.Und); return &c }}
)

func toLower(s string) string {
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	c.Reset()
	return c.String(s)
}

func toUpper(s string) string {
	c := upperPool.Get().(*cases.Caser)
	defer upperPool.Put(c)
	c.Reset()
	return c.String(s)
}

// SplitWords splits s into the words the converters join.
// Example: "fooBARBaz" -> ["foo", "BAR", "Baz"]
func SplitWords(s string, opts ...Option) []string {
	cfg := newConfig(opts)
	return naming.SplitWords(s, cfg.splitOnNumbers)
}

// words lower-cases input without lowercase letters, then splits it.
func words(s string, cfg config) []string {
	if s == toUpper(s) {
		s = toLower(s)
	}
	return naming.SplitWords(s, cfg.splitOnNumbers)
}

// CamelCase converts s to camelCase.
// Example: "foo-bar" -> "fooBar"
// Example: "FOO_BAR" -> "fooBar"
// Example: "foo-BAR-baz" -> "fooBARBaz" (PreserveConsecutiveUppercase)
func CamelCase(s string, opts ...Option) string {
	if !utf8.ValidString(s) {
		return s
	}
	cfg := newConfig(opts)

	var b strings.Builder
	b.Grow(len(s))
	for _, word := range words(s, cfg) {
		if !cfg.preserveConsecutiveUppercase {
			word = toLower(word)
		}
		b.WriteString(naming.Capitalize(word))
	}
	return naming.Uncapitalize(b.String())
}

// PascalCase converts s to PascalCase: CamelCase with the first rune
// upper-cased.
// Example: "foo-bar" -> "FooBar"
func PascalCase(s string, opts ...Option) string {
	if !utf8.ValidString(s) {
		return s
	}
	return naming.Capitalize(CamelCase(s, opts...))
}

// DelimiterCase joins the lower-cased words of s with delimiter.
// Example: ("fooBar", ".") -> "foo.bar"
func DelimiterCase(s, delimiter string, opts ...Option) string {
	if !utf8.ValidString(s) {
		return s
	}
	cfg := newConfig(opts)
	return toLower(strings.Join(words(s, cfg), delimiter))
}

// KebabCase converts s to kebab-case.
// Example: "fooBar" -> "foo-bar"
func KebabCase(s string, opts ...Option) string {
	return DelimiterCase(s, "-", opts...)
}

// SnakeCase converts s to snake_case.
// Example: "fooBar" -> "foo_bar"
func SnakeCase(s string, opts ...Option) string {
	return DelimiterCase(s, "_", opts...)
}

// ScreamingSnakeCase converts s to SCREAMING_SNAKE_CASE.
// Example: "fooBar" -> "FOO_BAR"
func ScreamingSnakeCase(s string, opts ...Option) string {
	if !utf8.ValidString(s) {
		return s
	}
	return toUpper(SnakeCase(s, opts...))
}

// Delimiter returns a Converter that applies DelimiterCase with delimiter.
func Delimiter(delimiter string, opts ...Option) Converter {
	return func(s string) string {
		return DelimiterCase(s, delimiter, opts...)
	}
}
