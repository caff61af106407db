// Package issues provides the finding record shared by the validator,
// the CLI and the MCP server.
package issues

import (
	"fmt"

	"github.com/erraggy/taxokit/internal/severity"
)

// Issue represents a single finding produced while validating taxonomies.
type Issue struct {
	// File is the source file path (empty when the finding is not tied to a file)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
	// Taxonomy is the type alias the finding belongs to (optional)
	Taxonomy string `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`
	// Value is the union member the finding is about (optional)
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// Rule identifies the check that produced the finding, e.g. "pattern"
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
	// Message is a human-readable description of the finding
	Message string `json:"message" yaml:"message"`
	// Severity indicates the severity level of the finding
	Severity severity.Severity `json:"severity" yaml:"severity"`
}

// Symbol returns the console marker for the finding's severity:
// "✗" for errors, "⚠" for warnings and "ℹ" for info.
func (i Issue) Symbol() string {
	switch i.Severity {
	case severity.SeverityError:
		return "✗"
	case severity.SeverityWarning:
		return "⚠"
	case severity.SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	result := i.Symbol()
	if loc := i.Location(); loc != "" {
		result += " " + loc
	}
	if i.Taxonomy != "" {
		result += " " + i.Taxonomy
	}
	if i.Value != "" {
		result += fmt.Sprintf(" %q", i.Value)
	}
	result += ": " + i.Message
	if i.Rule != "" {
		result += " [" + i.Rule + "]"
	}
	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file and line are set, the bare file if only
// the file is known, "line:column" if only the line is known, or "".
func (i Issue) Location() string {
	switch {
	case i.File != "" && i.Line > 0:
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	case i.File != "":
		return i.File
	case i.Line > 0:
		return fmt.Sprintf("%d:%d", i.Line, i.Column)
	}
	return ""
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}
