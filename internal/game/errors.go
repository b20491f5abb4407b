// internal/game/errors.go
//
// ConfigurationError and the sentinels it matches with errors.Is.
// Raised only by Start; edits and submissions never fail.

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLength is matched by configuration errors for lengths
	// missing from the policy table.
	ErrUnsupportedLength = errors.New("unsupported word length")
	// ErrNoCandidates is matched by configuration errors raised when the word
	// list collaborator cannot supply a usable target.
	ErrNoCandidates = errors.New("no candidate words")
)

// ConfigurationError is fatal: the game cannot start with the requested setup.
type ConfigurationError struct {
	Length int
	Reason error // ErrUnsupportedLength or ErrNoCandidates
	Err    error // underlying collaborator error, if any
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("game: configuration error for length %d: %v: %v", e.Length, e.Reason, e.Err)
	}
	return fmt.Sprintf("game: configuration error for length %d: %v", e.Length, e.Reason)
}

// Is lets errors.Is match the reason sentinel.
func (e *ConfigurationError) Is(target error) bool { return target == e.Reason }

func (e *ConfigurationError) Unwrap() error { return e.Err }

func unsupportedLength(n int) *ConfigurationError {
	return &ConfigurationError{Length: n, Reason: ErrUnsupportedLength}
}

func noCandidates(n int, cause error) *ConfigurationError {
	return &ConfigurationError{Length: n, Reason: ErrNoCandidates, Err: cause}
}
