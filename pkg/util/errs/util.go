// Package errs provides error utilities shared across the module.
package errs

import "errors"

var (
	ErrMissingConfig = errors.New("config is missing")
)

// SilentError is an error wrapper type that silences an
// error and only logs them in the debug log.
//
// It is used to prevent spamming the default log with expected
// failures such as mistyped console commands.
type SilentError struct{ error }

func (e *SilentError) Error() string {
	return e.error.Error()
}

func WrapSilent(wrappedErr error) error {
	return &SilentError{wrappedErr}
}

func (e *SilentError) Unwrap() error { return e.error }
