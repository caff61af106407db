// Package naming provides shared word splitting utilities.
package naming

import (
	"unicode"
	"unicode/utf8"
)

// IsSeparator reports whether r separates words: '-', '_' or any Unicode
// white space.
func IsSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// SplitWords splits s into words.
// Separator runes are dropped and never produce empty words.
// Example: "foo-bar" -> ["foo", "bar"]
// Example: "fooBARBaz" -> ["foo", "BAR", "Baz"]
// Example: "foo123bar" -> ["foo", "123", "bar"] (splitOnNumbers)
// Example: "foo123bar" -> ["foo123bar"] (!splitOnNumbers)
//
// An empty string yields an empty, non-nil slice. A string that is not valid
// UTF-8 is returned unsplit as a single word.
func SplitWords(s string, splitOnNumbers bool) []string {
	words := []string{}
	if s == "" {
		return words
	}
	if !utf8.ValidString(s) {
		return []string{s}
	}

	var (
		current []rune
		last    rune
		hasLast bool
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for _, r := range s {
		switch {
		case IsSeparator(r):
			flush()
			hasLast = false
			continue
		case !hasLast:
			current = append(current, r)
		case unicode.IsDigit(last) != unicode.IsDigit(r):
			if splitOnNumbers {
				flush()
			}
			current = append(current, r)
		case unicode.IsDigit(last):
			current = append(current, r)
		case unicode.IsLower(last) && unicode.IsUpper(r):
			flush()
			current = append(current, r)
		case unicode.IsUpper(last) && unicode.IsLower(r):
			// The last uppercase rune starts the next word: "FOOBar" -> "FOO", "Bar".
			if head := current[:len(current)-1]; len(head) > 0 {
				words = append(words, string(head))
			}
			current = []rune{last, r}
		default:
			current = append(current, r)
		}
		last = r
		hasLast = true
	}
	flush()

	return words
}

// Capitalize converts the first rune of s to uppercase.
// Example: "hello" -> "Hello"
func Capitalize(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

// Uncapitalize converts the first rune of s to lowercase.
// Example: "Hello" -> "hello"
func Uncapitalize(s string) string {
	return mapFirst(s, unicode.ToLower)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return ""
	}
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n <= 1 {
		return s
	}
	mapped := fn(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[n:]
}
