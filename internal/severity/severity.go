// Package severity provides severity level constants and utilities
// for findings reported by the taxonomy validator.
//
// The levels, from most to least severe:
//   - SeverityError: a naming rule violation; fails validation
//   - SeverityWarning: a documentation or layout problem; never fails validation
//   - SeverityInfo: informational notes such as scan statistics
package severity

import "fmt"

// Severity indicates the severity level of a finding.
type Severity int

const (
	// SeverityError indicates a value that violates a naming rule.
	SeverityError Severity = iota

	// SeverityWarning indicates a problem that should be addressed but does
	// not affect the exit status.
	SeverityWarning

	// SeverityInfo indicates an informational message.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("severity: unknown level %q", text)
	}
	return nil
}
