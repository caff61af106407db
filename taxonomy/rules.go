package taxonomy

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/taxokit/taxerrors"
)

// Rule identifiers reported on findings.
const (
	RulePattern   = "pattern"
	RuleMaxLength = "max-length"
	RuleReserved  = "reserved"

	RuleUndocumented = "undocumented"
	RuleMissingFile  = "missing-file"
	RuleEmptyFile    = "empty-file"
	RuleDuplicate    = "duplicate"
	RuleSyntax       = "syntax"
)

// Defaults used by DefaultRules.
const (
	DefaultPattern      = `^[a-z][a-z0-9-]*$`
	DefaultMaxLength    = 30
	DefaultNamePattern  = `Taxonomy`
	DefaultFileContains = "taxonomy"
	DefaultFileSuffix   = ".d.ts"
)

// Rules configures which files are scanned and how taxonomy values are checked.
type Rules struct {
	// Pattern every value must match
	Pattern *regexp.Regexp
	// MaxLength is the maximum value length in characters
	MaxLength int
	// Reserved lists values that may not be used, matched exactly
	Reserved []string
	// NamePattern selects which type aliases are taxonomies
	NamePattern *regexp.Regexp
	// FileContains is a substring a file name must contain to be scanned
	FileContains string
	// FileSuffix is the suffix a file name must end with to be scanned
	FileSuffix string
	// SkipDirs lists directory names never descended into.
	// Directories whose name starts with a dot are always skipped.
	SkipDirs []string
	// ExpectedFiles lists paths, relative to the root, that should exist
	ExpectedFiles []string
}

// DefaultRules returns the built-in rule set.
func DefaultRules() *Rules {
	return &Rules{
		Pattern:       regexp.MustCompile(DefaultPattern),
		MaxLength:     DefaultMaxLength,
		Reserved:      []string{"admin", "system", "internal", "private", "public"},
		NamePattern:   regexp.MustCompile(DefaultNamePattern),
		FileContains:  DefaultFileContains,
		FileSuffix:    DefaultFileSuffix,
		SkipDirs:      []string{"node_modules"},
		ExpectedFiles: []string{"index.d.ts"},
	}
}

// rulesFile is the YAML form of Rules. Nil fields keep their defaults.
type rulesFile struct {
	Pattern       *string  `yaml:"pattern"`
	MaxLength     *int     `yaml:"max_length"`
	Reserved      []string `yaml:"reserved"`
	NamePattern   *string  `yaml:"name_pattern"`
	FileContains  *string  `yaml:"file_contains"`
	FileSuffix    *string  `yaml:"file_suffix"`
	SkipDirs      []string `yaml:"skip_dirs"`
	ExpectedFiles []string `yaml:"expected_files"`
}

// LoadRules reads a YAML rule file and merges it over DefaultRules.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, &taxerrors.ConfigError{Option: "rules file", Value: path, Message: "cannot read rule file", Cause: err}
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes YAML rule data and merges it over DefaultRules.
func ParseRules(data []byte) (*Rules, error) {
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, &taxerrors.ConfigError{Option: "rules file", Message: "invalid YAML", Cause: err}
	}

	rules := DefaultRules()
	if rf.Pattern != nil {
		re, err := compileRule("pattern", *rf.Pattern)
		if err != nil {
			return nil, err
		}
		rules.Pattern = re
	}
	if rf.MaxLength != nil {
		if *rf.MaxLength <= 0 {
			return nil, &taxerrors.ConfigError{Option: "max_length", Value: *rf.MaxLength, Message: "must be positive"}
		}
		rules.MaxLength = *rf.MaxLength
	}
	if rf.Reserved != nil {
		rules.Reserved = rf.Reserved
	}
	if rf.NamePattern != nil {
		re, err := compileRule("name_pattern", *rf.NamePattern)
		if err != nil {
			return nil, err
		}
		rules.NamePattern = re
	}
	if rf.FileContains != nil {
		rules.FileContains = *rf.FileContains
	}
	if rf.FileSuffix != nil {
		if *rf.FileSuffix == "" {
			return nil, &taxerrors.ConfigError{Option: "file_suffix", Value: "", Message: "must not be empty"}
		}
		rules.FileSuffix = *rf.FileSuffix
	}
	if rf.SkipDirs != nil {
		rules.SkipDirs = rf.SkipDirs
	}
	if rf.ExpectedFiles != nil {
		rules.ExpectedFiles = rf.ExpectedFiles
	}
	return rules, nil
}

func compileRule(option, expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, &taxerrors.ConfigError{Option: option, Value: expr, Message: "must not be empty"}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &taxerrors.ConfigError{Option: option, Value: expr, Message: "invalid regular expression", Cause: err}
	}
	return re, nil
}

// Check returns every rule violated by value. Each violation is reported
// separately, so a value can fail several rules at once.
func (r *Rules) Check(taxonomyName, value string) []*taxerrors.ValidationError {
	var violations []*taxerrors.ValidationError
	if !r.Pattern.MatchString(value) {
		violations = append(violations, &taxerrors.ValidationError{
			Taxonomy: taxonomyName,
			Value:    value,
			Rule:     RulePattern,
			Message:  "must match " + r.Pattern.String(),
		})
	}
	if n := utf8.RuneCountInString(value); n > r.MaxLength {
		violations = append(violations, &taxerrors.ValidationError{
			Taxonomy: taxonomyName,
			Value:    value,
			Rule:     RuleMaxLength,
			Message:  fmt.Sprintf("is %d characters long, maximum is %d", n, r.MaxLength),
		})
	}
	if slices.Contains(r.Reserved, value) {
		violations = append(violations, &taxerrors.ValidationError{
			Taxonomy: taxonomyName,
			Value:    value,
			Rule:     RuleReserved,
			Message:  "is a reserved word",
		})
	}
	return violations
}

// CheckValue returns the first rule violated by value, or nil.
func (r *Rules) CheckValue(value string) error {
	if v := r.Check("", value); len(v) > 0 {
		return v[0]
	}
	return nil
}

// IsTaxonomyFile reports whether a file name is selected for scanning.
func (r *Rules) IsTaxonomyFile(name string) bool {
	return strings.HasSuffix(name, r.FileSuffix) && strings.Contains(name, r.FileContains)
}

// SkipDir reports whether a directory name is never descended into.
func (r *Rules) SkipDir(name string) bool {
	return (len(name) > 1 && strings.HasPrefix(name, ".")) || slices.Contains(r.SkipDirs, name)
}
