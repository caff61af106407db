package casing

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/taxokit/internal/naming"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  string
	}{
		// Empty and single words
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase word", input: "foo", want: "foo"},
		{name: "single capitalized word", input: "Foo", want: "foo"},
		{name: "single uppercase word", input: "FOO", want: "foo"},

		// Delimited input
		{name: "kebab-case", input: "foo-bar", want: "fooBar"},
		{name: "snake_case", input: "foo_bar", want: "fooBar"},
		{name: "space separated", input: "foo bar baz", want: "fooBarBaz"},
		{name: "screaming snake", input: "FOO_BAR", want: "fooBar"},
		{name: "leading separator", input: "_foo_bar", want: "fooBar"},

		// Cased input
		{name: "already camelCase", input: "fooBar", want: "fooBar"},
		{name: "PascalCase", input: "FooBar", want: "fooBar"},
		{name: "uppercase run", input: "foo-BAR-baz", want: "fooBarBaz"},
		{name: "acronym", input: "XMLHttpRequest", want: "xmlHttpRequest"},

		// Preserve consecutive uppercase
		{name: "preserve uppercase run", input: "foo-BAR-baz", opts: []Option{PreserveConsecutiveUppercase(true)}, want: "fooBARBaz"},
		{name: "preserve acronym", input: "XMLHttpRequest", opts: []Option{PreserveConsecutiveUppercase(true)}, want: "xMLHttpRequest"},
		{name: "preserve on all caps input", input: "FOO_BAR", opts: []Option{PreserveConsecutiveUppercase(true)}, want: "fooBar"},

		// Numbers
		{name: "digits split", input: "foo123bar", want: "foo123Bar"},
		{name: "digits not split", input: "foo123bar", opts: []Option{SplitOnNumbers(false)}, want: "foo123bar"},
		{name: "leading digits", input: "2fa-code", want: "2FaCode"},

		// Unicode
		{name: "unicode", input: "über-user", want: "überUser"},
		{name: "uncased script", input: "日本語-test", want: "日本語Test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CamelCase(tt.input, tt.opts...)
			assert.Equal(t, tt.want, got, "CamelCase(%q)", tt.input)
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "kebab-case", input: "foo-bar", want: "FooBar"},
		{name: "camelCase", input: "fooBar", want: "FooBar"},
		{name: "screaming snake", input: "FOO_BAR", want: "FooBar"},
		{name: "preserve uppercase run", input: "foo-BAR-baz", opts: []Option{PreserveConsecutiveUppercase(true)}, want: "FooBARBaz"},
		{name: "with numbers", input: "api_v2_client", want: "ApiV2Client"},
		{name: "unicode", input: "über_user", want: "ÜberUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PascalCase(tt.input, tt.opts...)
			assert.Equal(t, tt.want, got, "PascalCase(%q)", tt.input)
		})
	}
}

func TestDelimiterCases(t *testing.T) {
	tests := []struct {
		input     string
		kebab     string
		snake     string
		screaming string
	}{
		{input: "", kebab: "", snake: "", screaming: ""},
		{input: "fooBar", kebab: "foo-bar", snake: "foo_bar", screaming: "FOO_BAR"},
		{input: "FooBar", kebab: "foo-bar", snake: "foo_bar", screaming: "FOO_BAR"},
		{input: "foo bar_baz", kebab: "foo-bar-baz", snake: "foo_bar_baz", screaming: "FOO_BAR_BAZ"},
		{input: "XMLHttpRequest", kebab: "xml-http-request", snake: "xml_http_request", screaming: "XML_HTTP_REQUEST"},
		{input: "FOO_BAR", kebab: "foo-bar", snake: "foo_bar", screaming: "FOO_BAR"},
		{input: "foo123bar", kebab: "foo-123-bar", snake: "foo_123_bar", screaming: "FOO_123_BAR"},
		{input: "ÜberUser", kebab: "über-user", snake: "über_user", screaming: "ÜBER_USER"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.kebab, KebabCase(tt.input), "KebabCase(%q)", tt.input)
			assert.Equal(t, tt.snake, SnakeCase(tt.input), "SnakeCase(%q)", tt.input)
			assert.Equal(t, tt.screaming, ScreamingSnakeCase(tt.input), "ScreamingSnakeCase(%q)", tt.input)
		})
	}
}

func TestDelimiterCase(t *testing.T) {
	assert.Equal(t, "foo.bar.baz", DelimiterCase("fooBarBaz", "."))
	assert.Equal(t, "foo123bar", DelimiterCase("foo123bar", "#", SplitOnNumbers(false)))
	assert.Equal(t, "foo#123#bar", DelimiterCase("foo123bar", "#"))
	assert.Equal(t, "foo/bar", Delimiter("/")("FooBar"))
}

func TestInvalidUTF8IsReturnedUnchanged(t *testing.T) {
	input := "foo-\xff-bar"
	converters := map[string]func(string, ...Option) string{
		"camel":           CamelCase,
		"pascal":          PascalCase,
		"kebab":           KebabCase,
		"snake":           SnakeCase,
		"screaming-snake": ScreamingSnakeCase,
	}
	for name, fn := range converters {
		assert.Equal(t, input, fn(input), "%s should return invalid UTF-8 unchanged", name)
	}
	assert.Equal(t, input, DelimiterCase(input, "."))
}

var propertyInputs = []string{
	"",
	"foo",
	"foo-bar",
	"fooBar",
	"FooBar",
	"FOO_BAR",
	"foo-BAR-baz",
	"fooBARBaz",
	"XMLHttpRequest",
	"x-aBC",
	"foo123bar",
	"a1b",
	"some mixed_input-withHumps2go",
	"über_user",
}

// Converting an already camel-cased string is a no-op, except for inputs
// with adjacent one-letter words (see TestCamelCaseSingleLetterWords).
func TestCamelCaseIdempotent(t *testing.T) {
	for _, input := range propertyInputs {
		once := CamelCase(input)
		assert.Equal(t, once, CamelCase(once), "CamelCase(CamelCase(%q))", input)
	}
}

// Adjacent one-letter words join into an uppercase run, which the splitter
// reads back as a single acronym word. The second pass then settles.
func TestCamelCaseSingleLetterWords(t *testing.T) {
	once := CamelCase("a-b-c")
	assert.Equal(t, "aBC", once)
	assert.Equal(t, []string{"a", "BC"}, SplitWords(once))

	twice := CamelCase(once)
	assert.Equal(t, "aBc", twice)
	assert.Equal(t, twice, CamelCase(twice))
}

// PascalCase is CamelCase with the first rune upper-cased.
func TestPascalCaseIsCapitalizedCamelCase(t *testing.T) {
	for _, input := range propertyInputs {
		assert.Equal(t, naming.Capitalize(CamelCase(input)), PascalCase(input), "input %q", input)
	}
}

// Splitting lowercase kebab input and re-joining with "-" reproduces it.
func TestKebabRoundTrip(t *testing.T) {
	inputs := []string{"foo", "foo-bar", "foo-bar-baz", "a-b-c-d", "error-category"}
	for _, input := range inputs {
		assert.Equal(t, input, strings.Join(SplitWords(input), "-"), "input %q", input)
		assert.Equal(t, input, KebabCase(input), "input %q", input)
	}
}

func TestSplitWordsOptions(t *testing.T) {
	assert.Equal(t, []string{"foo", "123", "bar"}, SplitWords("foo123bar"))
	assert.Equal(t, []string{"foo123bar"}, SplitWords("foo123bar", SplitOnNumbers(false)))
	assert.Empty(t, SplitWords(""))
}

func TestNilOptionIgnored(t *testing.T) {
	assert.Equal(t, "fooBar", CamelCase("foo-bar", nil))
}

func TestConcurrentConversions(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "fooBarBaz", CamelCase("FOO_BAR_BAZ"))
				assert.Equal(t, "foo-bar-baz", KebabCase("fooBarBaz"))
			}
		}()
	}
	wg.Wait()
}
