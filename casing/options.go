package casing

// Option configures a case conversion.
type Option func(*config)

type config struct {
	preserveConsecutiveUppercase bool
	splitOnNumbers               bool
}

func newConfig(opts []Option) config {
	cfg := config{
		preserveConsecutiveUppercase: false,
		splitOnNumbers:               true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// PreserveConsecutiveUppercase keeps runs of uppercase letters as-is instead
// of lower-casing them before capitalization. Only camel and pascal case are
// affected.
// Default: false
func PreserveConsecutiveUppercase(enabled bool) Option {
	return func(cfg *config) {
		cfg.preserveConsecutiveUppercase = enabled
	}
}

// SplitOnNumbers starts a new word at every letter/digit boundary.
// Default: true
func SplitOnNumbers(enabled bool) Option {
	return func(cfg *config) {
		cfg.splitOnNumbers = enabled
	}
}
