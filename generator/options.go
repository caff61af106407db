package generator

import (
	"go/token"
	"path/filepath"
	"strings"

	"github.com/erraggy/taxokit/internal/options"
	"github.com/erraggy/taxokit/taxerrors"
	"github.com/erraggy/taxokit/taxonomy"
)

const (
	// DefaultPackageName is the package clause of generated code.
	DefaultPackageName = "taxonomies"
	// DefaultFileName is the name of the generated file.
	DefaultFileName = "taxonomies_gen.go"
)

// Option is a function that configures a generation operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generation operation
type generateConfig struct {
	root        string
	files       []*taxonomy.File
	rules       *taxonomy.Rules
	packageName string
	fileName    string
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName: DefaultPackageName,
		fileName:    DefaultFileName,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.ValidateAtMostOneSource("input", "must specify either WithRoot or WithFiles, not both",
		cfg.root != "", cfg.files != nil); err != nil {
		return nil, err
	}
	if cfg.root == "" && cfg.files == nil {
		cfg.root = taxonomy.DefaultRoot
	}
	if cfg.rules == nil {
		cfg.rules = taxonomy.DefaultRules()
	}
	return cfg, nil
}

// WithRoot specifies the directory tree to extract taxonomies from.
// Default: taxonomy.DefaultRoot
func WithRoot(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.root = path
		return nil
	}
}

// WithFiles uses already extracted files, e.g. ValidationResult.Files.
func WithFiles(files []*taxonomy.File) Option {
	return func(cfg *generateConfig) error {
		if files == nil {
			files = []*taxonomy.File{}
		}
		cfg.files = files
		return nil
	}
}

// WithRules sets the rules used for scanning and embedded into the
// generated custom value check.
// Default: taxonomy.DefaultRules()
func WithRules(rules *taxonomy.Rules) Option {
	return func(cfg *generateConfig) error {
		if rules == nil {
			return &taxerrors.ConfigError{Option: "rules", Message: "must not be nil"}
		}
		cfg.rules = rules
		return nil
	}
}

// WithPackageName sets the package clause of the generated file.
// Default: DefaultPackageName
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if !token.IsIdentifier(name) || name == "_" {
			return &taxerrors.ConfigError{Option: "package name", Value: name, Message: "must be a valid Go identifier"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithFileName sets the name of the generated file.
// Default: DefaultFileName
func WithFileName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" || filepath.Base(name) != name || !strings.HasSuffix(name, ".go") {
			return &taxerrors.ConfigError{Option: "file name", Value: name, Message: "must be a bare .go file name"}
		}
		cfg.fileName = name
		return nil
	}
}
