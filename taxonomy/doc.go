// Package taxonomy validates the naming of taxonomy type aliases declared in
// TypeScript declaration files.
//
// A taxonomy is a type alias whose name matches the configured name pattern
// (by default /Taxonomy/) and whose value is a union of string literals:
//
//	/** How a user authenticated. */
//	export type AuthMethodTaxonomy = 'password' | 'oauth' | 'magic-link';
//
// ValidateWithOptions walks a source tree, extracts every taxonomy from the
// files selected by the Rules, and checks each string member:
//
//   - "pattern": it matches ^[a-z][a-z0-9-]*$
//   - "max-length": it is at most 30 characters long
//   - "reserved": it is not one of admin, system, internal, private, public
//
// Violations are errors. Missing documentation comments, missing expected
// files, taxonomy files without values and duplicate members are warnings,
// which never make a result invalid.
//
//	result, err := taxonomy.ValidateWithOptions(
//	    taxonomy.WithRoot("src"),
//	    taxonomy.WithIncludeWarnings(true),
//	)
//	if err != nil {
//	    return err
//	}
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
//
// Rules can be loaded from YAML with LoadRules; keys that are absent keep
// their defaults:
//
//	pattern: "^[a-z][a-z0-9-]*$"
//	max_length: 30
//	reserved: [admin, system, internal, private, public]
//	name_pattern: "Taxonomy"
//	file_contains: "taxonomy"
//	file_suffix: ".d.ts"
//	skip_dirs: [node_modules]
//	expected_files: [index.d.ts]
package taxonomy
