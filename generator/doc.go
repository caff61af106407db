// Package generator turns extracted taxonomies into Go enums.
//
// Every taxonomy type alias becomes a string type with one constant per core
// value, a Values accessor, an IsCore method and a Parse constructor. Parse
// accepts any core value, and any other value that satisfies the naming rules
// the code was generated with. This mirrors the "core | custom" convention of
// the declaration files: callers can extend a taxonomy, but cannot typo a
// value past validation.
//
// # Quick Start
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithRoot("src"),
//		generator.WithPackageName("taxonomies"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./internal/taxonomies"); err != nil {
//		log.Fatal(err)
//	}
//
// For the declaration
//
//	/** How a user authenticated. */
//	export type AuthMethodTaxonomy = 'password' | 'magic-link';
//
// the generated code contains
//
//	// AuthMethodTaxonomy: How a user authenticated.
//	//
//	// Declared in src/auth-taxonomy.d.ts:2.
//	type AuthMethodTaxonomy string
//
//	const (
//		AuthMethodTaxonomyPassword  AuthMethodTaxonomy = "password"
//		AuthMethodTaxonomyMagicLink AuthMethodTaxonomy = "magic-link"
//	)
//
//	func AuthMethodTaxonomyValues() []AuthMethodTaxonomy
//	func (v AuthMethodTaxonomy) IsCore() bool
//	func ParseAuthMethodTaxonomy(s string) (AuthMethodTaxonomy, error)
package generator
