package config

import (
	"errors"
	"fmt"
)

// ErrAlreadyInitialized is returned when Initialize is called after the
// process-wide configuration has already been published. Re-loading within
// a process lifetime is a programming error; callers wanting the instance
// use Get.
var ErrAlreadyInitialized = errors.New("deployment configuration already initialized")

// MalformedConfigError reports that the raw artifact could not be parsed as
// structured data at all. This is fatal: startup aborts before validation
// is even attempted.
type MalformedConfigError struct {
	// Source identifies the artifact (file path, or "<bytes>").
	Source string

	// Cause is the underlying parse error.
	Cause error
}

// Error implements the error interface.
func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("malformed deployment configuration %q: %v", e.Source, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *MalformedConfigError) Unwrap() error {
	return e.Cause
}

// IsMalformed reports whether err is a MalformedConfigError.
func IsMalformed(err error) bool {
	var m *MalformedConfigError
	return errors.As(err, &m)
}
