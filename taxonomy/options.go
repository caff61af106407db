package taxonomy

import (
	"fmt"

	"github.com/erraggy/taxokit/internal/options"
)

// DefaultRoot is the directory validated when no input is given.
const DefaultRoot = "src"

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// Source is an in-memory declaration file.
type Source struct {
	Name    string
	Content []byte
}

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Input (at most one kind may be set; DefaultRoot otherwise)
	root    *string
	sources []Source

	rules           *Rules
	includeWarnings bool
	cache           FileCache
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateAtMostOneSource("input", "must specify either WithRoot or WithSource, not both",
		cfg.root != nil, len(cfg.sources) > 0); err != nil {
		return nil, err
	}
	if cfg.rules == nil {
		cfg.rules = DefaultRules()
	}
	return cfg, nil
}

// WithRoot specifies the directory tree to validate.
// Default: DefaultRoot
func WithRoot(path string) Option {
	return func(cfg *validateConfig) error {
		if path == "" {
			return fmt.Errorf("root must not be empty")
		}
		cfg.root = &path
		return nil
	}
}

// WithSource adds an in-memory declaration file to validate.
// It may be given several times; expected-file checks are skipped.
func WithSource(name string, content []byte) Option {
	return func(cfg *validateConfig) error {
		cfg.sources = append(cfg.sources, Source{Name: name, Content: content})
		return nil
	}
}

// WithRules replaces the default rule set.
func WithRules(rules *Rules) Option {
	return func(cfg *validateConfig) error {
		if rules == nil {
			return fmt.Errorf("rules must not be nil")
		}
		cfg.rules = rules
		return nil
	}
}

// WithRulesFile loads the rule set from a YAML file.
func WithRulesFile(path string) Option {
	return func(cfg *validateConfig) error {
		rules, err := LoadRules(path)
		if err != nil {
			return err
		}
		cfg.rules = rules
		return nil
	}
}

// WithIncludeWarnings enables or disables warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithFileCache reuses extraction results for files whose size and
// modification time are unchanged.
func WithFileCache(cache FileCache) Option {
	return func(cfg *validateConfig) error {
		cfg.cache = cache
		return nil
	}
}
