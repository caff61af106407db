package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/erraggy/taxokit"
	"github.com/erraggy/taxokit/casing"
	"github.com/erraggy/taxokit/internal/fileutil"
	"github.com/erraggy/taxokit/internal/issues"
	"github.com/erraggy/taxokit/internal/naming"
	"github.com/erraggy/taxokit/internal/severity"
	"github.com/erraggy/taxokit/taxonomy"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates taxonomies or values that were skipped or renamed
	SeverityWarning = severity.SeverityWarning
)

// GenerateIssue represents a single generation issue
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "taxonomies_gen.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating Go enums
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// GeneratedTypes is the count of enum types generated
	GeneratedTypes int
	// GeneratedConstants is the count of enum constants generated
	GeneratedConstants int
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// WriteFiles writes all generated files to outputDir, creating it if needed.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	for _, file := range r.Files {
		safeName := filepath.Base(file.Name)
		if safeName != file.Name {
			return fmt.Errorf("invalid file name %q: must not contain path separators", file.Name)
		}
		if err := file.WriteFile(filepath.Join(outputDir, safeName)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	if err := fileutil.WriteFileAtomic(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file %s: %w", f.Name, err)
	}
	return nil
}

// GenerateWithOptions generates Go enums from taxonomy declarations.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithRoot("src"),
//	    generator.WithPackageName("taxonomies"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	start := time.Now()
	files := cfg.files
	if files == nil {
		files, err = taxonomy.Collect(cfg.root, cfg.rules)
		if err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
	}

	g := &generator{result: &GenerateResult{PackageName: cfg.packageName}}
	data := templateData{
		Version:     taxokit.Version(),
		PackageName: cfg.packageName,
		Pattern:     cfg.rules.Pattern.String(),
		MaxLength:   cfg.rules.MaxLength,
		Reserved:    cfg.rules.Reserved,
		Types:       g.buildTypes(files),
	}

	content, err := executeTemplate("taxonomies.go.tmpl", cfg.fileName, data)
	if err != nil {
		if content == nil {
			return nil, fmt.Errorf("generator: %w", err)
		}
		g.addIssue(GenerateIssue{
			File:     cfg.fileName,
			Message:  "generated code could not be formatted: " + err.Error(),
			Severity: SeverityWarning,
		})
	}

	g.result.Files = []GeneratedFile{{Name: cfg.fileName, Content: content}}
	g.result.GenerateTime = time.Since(start)
	return g.result, nil
}

// templateData is the input of taxonomies.go.tmpl.
type templateData struct {
	Version     string
	PackageName string
	Pattern     string
	MaxLength   int
	Reserved    []string
	Types       []enumType
}

type enumType struct {
	Name      string
	ValuesVar string
	Doc       []string
	Constants []enumConst
}

type enumConst struct {
	Name  string
	Value string
}

type generator struct {
	result *GenerateResult
}

func (g *generator) addIssue(issue GenerateIssue) {
	g.result.Issues = append(g.result.Issues, issue)
	switch issue.Severity {
	case SeverityWarning:
		g.result.WarningCount++
	case SeverityInfo:
		g.result.InfoCount++
	}
}

func (g *generator) buildTypes(files []*taxonomy.File) []enumType {
	var types []enumType
	// Type names, constant names and values-var names share one namespace.
	used := map[string]string{"checkCustomValue": "", "customValuePattern": "", "customValueReserved": "", "customValueMaxLength": ""}

	for _, f := range files {
		for _, tax := range f.Taxonomies {
			if len(tax.Members) == 0 {
				g.addIssue(GenerateIssue{
					File:     tax.File,
					Line:     tax.Line,
					Column:   tax.Column,
					Taxonomy: tax.Name,
					Message:  "no string members; skipped",
					Severity: SeverityInfo,
				})
				continue
			}

			typeName := goIdentifier(casing.PascalCase(tax.Name), "Taxonomy")
			valuesVar := naming.Uncapitalize(typeName) + "Values"
			if prev, clash := used[typeName]; clash {
				g.addIssue(GenerateIssue{
					File:     tax.File,
					Line:     tax.Line,
					Column:   tax.Column,
					Taxonomy: tax.Name,
					Message:  fmt.Sprintf("type name %s already declared by %s; skipped", typeName, prev),
					Severity: SeverityWarning,
				})
				continue
			}
			source := fmt.Sprintf("%s:%d", filepath.ToSlash(tax.File), tax.Line)
			used[typeName] = source
			used[valuesVar] = source
			used[typeName+"Values"] = source
			used["Parse"+typeName] = source

			t := enumType{
				Name:      typeName,
				ValuesVar: valuesVar,
				Doc:       docLines(typeName, tax.Doc, source),
			}
			seen := make(map[string]bool, len(tax.Members))
			for _, m := range tax.Members {
				if seen[m.Value] {
					continue
				}
				seen[m.Value] = true

				name := typeName + goIdentifier(casing.PascalCase(m.Value), "Value")
				if _, clash := used[name]; clash {
					base := name
					for i := 2; ; i++ {
						name = fmt.Sprintf("%s%d", base, i)
						if _, taken := used[name]; !taken {
							break
						}
					}
					g.addIssue(GenerateIssue{
						File:     tax.File,
						Line:     m.Line,
						Column:   m.Column,
						Taxonomy: tax.Name,
						Value:    m.Value,
						Message:  fmt.Sprintf("constant name %s is taken; using %s", base, name),
						Severity: SeverityWarning,
					})
				}
				used[name] = source
				t.Constants = append(t.Constants, enumConst{Name: name, Value: m.Value})
			}

			types = append(types, t)
			g.result.GeneratedTypes++
			g.result.GeneratedConstants += len(t.Constants)
		}
	}
	return types
}

// goIdentifier keeps the letters and digits of s. Results that would be
// empty or start with a digit get fallback as prefix.
func goIdentifier(s, fallback string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	id := b.String()
	if id == "" {
		return fallback
	}
	if first := []rune(id)[0]; unicode.IsDigit(first) || !unicode.IsUpper(first) {
		return fallback + naming.Capitalize(id)
	}
	return id
}

// docLines renders the doc comment of a generated type, one entry per line.
func docLines(typeName, doc, source string) []string {
	if doc == "" {
		return []string{typeName + " is declared in " + source + "."}
	}
	lines := strings.Split(doc, "\n")
	if !strings.HasPrefix(lines[0], typeName) {
		lines[0] = typeName + ": " + lines[0]
	}
	return append(lines, "", "Declared in "+source+".")
}
