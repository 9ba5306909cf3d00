package integration

import (
	"errors"
	"fmt"
	"time"
)

// ErrDisabled reports that the targeted integration slot is switched off in
// the deployment configuration. It is an expected outcome, not a failure:
// no network attempt was made and nothing needs retrying. Callers check it
// with errors.Is and degrade to their local behavior.
var ErrDisabled = errors.New("integration disabled")

// ErrUnknownSlot reports a call against a slot name the configuration does
// not define.
var ErrUnknownSlot = errors.New("unknown integration slot")

// IntegrationError represents a failed outbound call. It carries the slot
// name, the HTTP status code when one was received, and whether the failure
// class is worth retrying. The error text never includes credentials or
// response bodies.
type IntegrationError struct {
	// Slot is the integration slot name
	Slot string

	// StatusCode is the HTTP status code (0 if the call never completed)
	StatusCode int

	// Retryable indicates whether the failure class is transient.
	// Timeouts, connection failures, and 5xx responses are retryable;
	// authentication and other 4xx rejections are not.
	Retryable bool

	// RequestID is the correlation ID attached to the outbound call
	RequestID string

	// Cause is the underlying error (if any)
	Cause error
}

// Error implements the error interface.
func (e *IntegrationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("integration %q call failed (status %d, retryable=%v)", e.Slot, e.StatusCode, e.Retryable)
	}
	return fmt.Sprintf("integration %q call failed (retryable=%v): %v", e.Slot, e.Retryable, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *IntegrationError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents a call that exceeded the configured request
// timeout. Timeouts are always retryable.
type TimeoutError struct {
	// Slot is the integration slot name
	Slot string

	// Timeout is the configured request timeout
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("integration %q request timeout after %s", e.Slot, e.Timeout)
}

// IsRetryable reports whether err describes a transient failure the caller
// may retry. Disabled and unknown-slot outcomes are never retryable.
func IsRetryable(err error) bool {
	var intErr *IntegrationError
	if errors.As(err, &intErr) {
		return intErr.Retryable
	}
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}
