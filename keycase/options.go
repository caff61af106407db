package keycase

import "reflect"

// DefaultMaxDepth is the default nesting limit for Deep and JSON.
const DefaultMaxDepth = 100

// Option configures a key conversion.
type Option func(*config)

type config struct {
	maxDepth int
	opaque   map[reflect.Type]bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		maxDepth: DefaultMaxDepth,
		opaque:   make(map[reflect.Type]bool),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithMaxDepth limits how many levels of objects and arrays are walked.
// Values nested deeper produce a *taxerrors.ResourceLimitError.
// Non-positive values keep the default.
// Default: DefaultMaxDepth
func WithMaxDepth(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDepth = n
		}
	}
}

// WithOpaque marks the dynamic types of samples as leaves that are never
// walked. Use it for struct types that should be kept as-is.
func WithOpaque(samples ...any) Option {
	return func(cfg *config) {
		for _, s := range samples {
			if t := reflect.TypeOf(s); t != nil {
				cfg.opaque[t] = true
			}
		}
	}
}
