// Package taxerrors provides structured error types for the taxokit library.
//
// Import path: github.com/erraggy/taxokit/taxerrors
//
// Errors returned by taxokit packages can be inspected with [errors.Is] and
// [errors.As]. Naming-rule violations found while validating a taxonomy are
// reported as findings in a result, not as errors; the types here describe
// failures that prevent an operation from producing a result at all.
//
// # Error Types
//
//   - [ParseError]: a TypeScript, JSON or YAML input could not be parsed
//   - [ValidationError]: a single value was rejected by a naming rule
//   - [ResourceLimitError]: a recursion or size limit was exceeded
//   - [ConfigError]: an option, flag or rule file value is invalid
//
// # Sentinel Errors
//
// Each type matches its sentinel through an Is method:
//
//	_, err := keycase.Deep(value, casing.StyleCamel.Converter())
//	if errors.Is(err, taxerrors.ErrResourceLimit) {
//	    // value nests deeper than the configured limit
//	}
package taxerrors
