// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// AuthTaxonomy is a valid, documented taxonomy file.
const AuthTaxonomy = `/**
 * How a user authenticated.
 */
export type AuthMethodTaxonomy =
  | 'password'
  | 'oauth'
  | 'magic-link';

export type CustomAuthMethod = string & { __brand?: 'AuthMethod' };
`

// InvalidTaxonomy holds one value that breaks the naming pattern.
const InvalidTaxonomy = "type FooTaxonomy = 'Admin' | 'my-value';\n"

// EmptyTaxonomy declares no taxonomy values.
const EmptyTaxonomy = "// nothing here yet\nexport {};\n"

// WriteTree writes files, keyed by slash-separated relative path, under a
// fresh temporary directory and returns that directory.
// The tree is automatically cleaned up when the test completes (via t.TempDir).
func WriteTree(t testing.TB, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		WriteFile(t, root, rel, content)
	}
	return root
}

// WriteFile writes one file below root, creating parent directories.
// Returns the full path of the file.
func WriteFile(t testing.TB, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// SampleTree returns a taxonomy tree with one valid file, one invalid file,
// an index.d.ts and files that must be skipped.
func SampleTree(t testing.TB) string {
	t.Helper()

	return WriteTree(t, map[string]string{
		"index.d.ts":                         "export * from './auth/auth-taxonomy';\n",
		"auth/auth-taxonomy.d.ts":            AuthTaxonomy,
		"foo/foo.taxonomy.d.ts":              InvalidTaxonomy,
		"foo/notes.d.ts":                     "type NotesTaxonomy = 'Ignored';\n",
		"node_modules/pkg/pkg-taxonomy.d.ts": "type PkgTaxonomy = 'Skipped';\n",
		".cache/cached-taxonomy.d.ts":        "type CacheTaxonomy = 'Skipped';\n",
		"auth/auth-taxonomy.ts":              "export const x = 1;\n",
	})
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t testing.TB, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t testing.TB, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0o600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
