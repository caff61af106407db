package casing

import (
	"fmt"
	"strings"

	"github.com/erraggy/taxokit/taxerrors"
)

// Style names a naming case.
type Style int

const (
	// StyleCamel is camelCase.
	StyleCamel Style = iota
	// StylePascal is PascalCase.
	StylePascal
	// StyleKebab is kebab-case.
	StyleKebab
	// StyleSnake is snake_case.
	StyleSnake
	// StyleScreamingSnake is SCREAMING_SNAKE_CASE.
	StyleScreamingSnake
)

var styleNames = map[Style]string{
	StyleCamel:          "camel",
	StylePascal:         "pascal",
	StyleKebab:          "kebab",
	StyleSnake:          "snake",
	StyleScreamingSnake: "screaming-snake",
}

// Styles returns all styles in declaration order.
func Styles() []Style {
	return []Style{StyleCamel, StylePascal, StyleKebab, StyleSnake, StyleScreamingSnake}
}

// String returns the style name accepted by ParseStyle.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStyle resolves a style name. Names are matched case-insensitively and
// common aliases are accepted ("camelCase", "kebab-case", "snake_case", ...).
func ParseStyle(name string) (Style, error) {
	normalized := KebabCase(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, "-case")
	switch normalized {
	case "camel", "lower-camel":
		return StyleCamel, nil
	case "pascal", "upper-camel":
		return StylePascal, nil
	case "kebab", "dash":
		return StyleKebab, nil
	case "snake":
		return StyleSnake, nil
	case "screaming-snake", "constant", "upper-snake":
		return StyleScreamingSnake, nil
	}

	valid := make([]string, 0, len(styleNames))
	for _, s := range Styles() {
		valid = append(valid, s.String())
	}
	return 0, &taxerrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: fmt.Sprintf("unknown case style (valid: %s)", strings.Join(valid, ", ")),
	}
}

// Converter returns the conversion function for the style.
func (s Style) Converter(opts ...Option) Converter {
	var fn func(string, ...Option) string
	switch s {
	case StylePascal:
		fn = PascalCase
	case StyleKebab:
		fn = KebabCase
	case StyleSnake:
		fn = SnakeCase
	case StyleScreamingSnake:
		fn = ScreamingSnakeCase
	default:
		fn = CamelCase
	}
	return func(in string) string {
		return fn(in, opts...)
	}
}

// Convert applies the style to s.
func (s Style) Convert(in string, opts ...Option) string {
	return s.Converter(opts...)(in)
}
