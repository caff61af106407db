// Package taxokit provides string casing and array shape utilities, together
// with a validator and code generator for string-literal "taxonomy" unions.
//
// # Overview
//
// The module is organised into small public packages:
//
//   - casing: split strings into words and re-join them as camelCase,
//     PascalCase, kebab-case, snake_case or any delimiter case
//   - keycase: rewrite every property key of a nested value or JSON document
//     with a casing converter
//   - arrays: slice and splice fixed-length and variable-length array shapes
//     with negative-index support
//   - taxonomy: extract taxonomy unions from TypeScript declaration files and
//     validate their members against naming rules
//   - generator: emit Go enum types for extracted taxonomies
//   - taxerrors: structured error types shared by the packages above
//
// # Quick Start
//
// Convert a string:
//
//	import "github.com/erraggy/taxokit/casing"
//
//	casing.CamelCase("foo-bar")  // "fooBar"
//	casing.PascalCase("foo-bar") // "FooBar"
//	casing.CamelCase("foo-BAR-baz", casing.PreserveConsecutiveUppercase(true)) // "fooBARBaz"
//
// Slice and splice:
//
//	import "github.com/erraggy/taxokit/arrays"
//
//	arrays.SliceOf([]int{0, 1, 2, 3, 4}, 0, -1)                 // [0 1 2 3]
//	arrays.SpliceOf([]string{"January", "April"}, 1, 0, "March") // [January March April]
//
// Validate a taxonomy tree:
//
//	import "github.com/erraggy/taxokit/taxonomy"
//
//	result, err := taxonomy.ValidateWithOptions(taxonomy.WithRoot("src"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		fmt.Printf("Found %d errors\n", result.ErrorCount)
//	}
//
// # Command Line
//
// The taxokit binary in cmd/taxokit exposes every package as a subcommand
// (validate, case, words, keys, slice, splice, generate) and can run as an
// MCP server over stdio (taxokit mcp).
package taxokit
