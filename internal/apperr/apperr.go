// internal/apperr/apperr.go
package apperr

import (
	"context"
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitConfig   = 2   // bad flags, missing inputs, unknown method
	ExitRuntime  = 3   // extraction, computation or write failure
	ExitCanceled = 130 // interrupted
)

// ConfigError is a user input problem: the run cannot start.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// Config creates a ConfigError with a formatted message.
func Config(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ExtractError wraps a failure while extracting one track's signal.
type ExtractError struct {
	Track string
	Cause error
}

func (e ExtractError) Error() string { return fmt.Sprintf("extract %s: %v", e.Track, e.Cause) }
func (e ExtractError) Unwrap() error { return e.Cause }

// ComputeError wraps a numeric failure during normalization.
type ComputeError struct {
	Cause error
}

func (e ComputeError) Error() string { return e.Cause.Error() }
func (e ComputeError) Unwrap() error { return e.Cause }

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ce ConfigError
	if errors.As(err, &ce) {
		return ExitConfig
	}
	return ExitRuntime
}
