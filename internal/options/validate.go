// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/taxokit/taxerrors"

// ValidateAtMostOneSource ensures no more than one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// option names the conflicting setting in the returned *taxerrors.ConfigError,
// whose message is multiSourceMsg. Specifying no source is allowed; callers
// fall back to their default input.
func ValidateAtMostOneSource(option, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount > 1 {
		return &taxerrors.ConfigError{Option: option, Message: multiSourceMsg}
	}
	return nil
}
