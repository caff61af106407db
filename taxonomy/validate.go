package taxonomy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/taxokit/internal/issues"
	"github.com/erraggy/taxokit/internal/severity"
)

// Severity indicates the severity level of a finding
type Severity = severity.Severity

const (
	// SeverityError indicates a naming rule violation
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a documentation or layout problem
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// Finding represents a single validation finding
type Finding = issues.Issue

// Stats summarizes what a validation looked at.
type Stats struct {
	FilesScanned int `json:"files_scanned" yaml:"files_scanned"`
	Taxonomies   int `json:"taxonomies" yaml:"taxonomies"`
	Values       int `json:"values" yaml:"values"`
}

// ValidationResult contains the results of validating taxonomy files
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// Root is the validated directory (empty for in-memory sources)
	Root string `json:"root,omitempty" yaml:"root,omitempty"`
	// Errors contains all naming rule violations
	Errors []Finding `json:"errors" yaml:"errors"`
	// Warnings contains all warnings (empty when warnings are disabled)
	Warnings []Finding `json:"warnings" yaml:"warnings"`
	// Infos contains informational findings such as scan statistics
	Infos []Finding `json:"infos" yaml:"infos"`
	// ErrorCount is the total number of errors
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the total number of warnings
	WarningCount int `json:"warning_count" yaml:"warning_count"`
	// Stats contains counts of scanned files, taxonomies and values
	Stats Stats `json:"stats" yaml:"stats"`
	// Duration is the time the validation took
	Duration time.Duration `json:"-" yaml:"-"`
	// Files holds the extracted files, for reuse by code generation
	Files []*File `json:"-" yaml:"-"`
}

// FileCache stores extraction results between validations.
// Implementations must be safe for concurrent use.
type FileCache interface {
	Get(key CacheKey) (*File, bool)
	Put(key CacheKey, f *File)
}

// CacheKey identifies one extraction of a file on disk.
type CacheKey struct {
	Path        string
	ModTime     time.Time
	Size        int64
	NamePattern string
}

// ValidateWithOptions validates taxonomy files using functional options.
//
// Example:
//
//	result, err := taxonomy.ValidateWithOptions(
//	    taxonomy.WithRoot("src"),
//	    taxonomy.WithRulesFile("taxonomy-rules.yaml"),
//	)
//
// File system errors abort the validation and are returned; naming problems
// are reported in the result.
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: invalid options: %w", err)
	}

	v := &validator{
		rules:           cfg.rules,
		includeWarnings: cfg.includeWarnings,
		cache:           cfg.cache,
	}
	if len(cfg.sources) > 0 {
		return v.validateSources(cfg.sources)
	}
	root := DefaultRoot
	if cfg.root != nil {
		root = *cfg.root
	}
	return v.validateTree(root)
}

type validator struct {
	rules           *Rules
	includeWarnings bool
	cache           FileCache
}

func (v *validator) validateTree(root string) (*ValidationResult, error) {
	start := time.Now()
	result := newResult(root)

	paths, err := Scan(root, v.rules)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		f, err := v.load(path)
		if err != nil {
			return nil, err
		}
		v.checkFile(result, f)
	}
	if err := v.checkExpectedFiles(result, root); err != nil {
		return nil, err
	}

	v.finish(result, start)
	return result, nil
}

func (v *validator) validateSources(sources []Source) (*ValidationResult, error) {
	start := time.Now()
	result := newResult("")
	for _, src := range sources {
		f, err := Extract(src.Name, src.Content, v.rules.NamePattern)
		if err != nil {
			return nil, err
		}
		v.checkFile(result, f)
	}
	v.finish(result, start)
	return result, nil
}

func newResult(root string) *ValidationResult {
	return &ValidationResult{
		Root:     root,
		Errors:   make([]Finding, 0),
		Warnings: make([]Finding, 0),
		Infos:    make([]Finding, 0, 2),
	}
}

func (v *validator) load(path string) (*File, error) {
	if v.cache == nil {
		return ExtractFile(path, v.rules)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	key := CacheKey{
		Path:        path,
		ModTime:     info.ModTime(),
		Size:        info.Size(),
		NamePattern: v.rules.NamePattern.String(),
	}
	if f, ok := v.cache.Get(key); ok {
		return f, nil
	}
	f, err := ExtractFile(path, v.rules)
	if err != nil {
		return nil, err
	}
	v.cache.Put(key, f)
	return f, nil
}

func (v *validator) checkFile(result *ValidationResult, f *File) {
	result.Files = append(result.Files, f)
	result.Stats.FilesScanned++

	if f.SyntaxErrorLine > 0 {
		v.addWarning(result, Finding{
			File:    f.Path,
			Line:    f.SyntaxErrorLine,
			Column:  f.SyntaxErrorColumn,
			Rule:    RuleSyntax,
			Message: "syntax error; taxonomies near it may be incomplete",
		})
	}

	for _, tax := range f.Taxonomies {
		result.Stats.Taxonomies++
		result.Stats.Values += len(tax.Members) + tax.NumericMembers

		if !tax.Documented {
			v.addWarning(result, Finding{
				File:     f.Path,
				Line:     tax.Line,
				Column:   tax.Column,
				Taxonomy: tax.Name,
				Rule:     RuleUndocumented,
				Message:  "missing documentation comment",
			})
		}

		seen := make(map[string]bool, len(tax.Members))
		for _, m := range tax.Members {
			if seen[m.Value] {
				v.addWarning(result, Finding{
					File:     f.Path,
					Line:     m.Line,
					Column:   m.Column,
					Taxonomy: tax.Name,
					Value:    m.Value,
					Rule:     RuleDuplicate,
					Message:  "duplicate union member",
				})
				continue
			}
			seen[m.Value] = true

			for _, violation := range v.rules.Check(tax.Name, m.Value) {
				result.Errors = append(result.Errors, Finding{
					File:     f.Path,
					Line:     m.Line,
					Column:   m.Column,
					Taxonomy: tax.Name,
					Value:    m.Value,
					Rule:     violation.Rule,
					Message:  violation.Message,
					Severity: SeverityError,
				})
			}
		}
	}

	if f.ValueCount() == 0 {
		v.addWarning(result, Finding{
			File:    f.Path,
			Rule:    RuleEmptyFile,
			Message: "no taxonomy values found",
		})
	}
}

func (v *validator) checkExpectedFiles(result *ValidationResult, root string) error {
	for _, rel := range v.rules.ExpectedFiles {
		path := filepath.Join(root, rel)
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			v.addWarning(result, Finding{
				File:    path,
				Rule:    RuleMissingFile,
				Message: "expected file is missing",
			})
			continue
		}
		if err != nil {
			return fmt.Errorf("taxonomy: %w", err)
		}
	}
	return nil
}

// addWarning appends a warning if warnings are enabled.
func (v *validator) addWarning(result *ValidationResult, f Finding) {
	if !v.includeWarnings {
		return
	}
	f.Severity = SeverityWarning
	result.Warnings = append(result.Warnings, f)
}

func (v *validator) finish(result *ValidationResult, start time.Time) {
	result.Infos = append(result.Infos,
		Finding{
			Message:  fmt.Sprintf("scanned %d taxonomy files", result.Stats.FilesScanned),
			Severity: SeverityInfo,
		},
		Finding{
			Message:  fmt.Sprintf("found %d taxonomies with %d values", result.Stats.Taxonomies, result.Stats.Values),
			Severity: SeverityInfo,
		},
	)
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	result.Duration = time.Since(start)
}
