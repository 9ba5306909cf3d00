package integration

import (
	"context"
	"time"
)

// Integration slot names as they appear in the deployment artifact.
const (
	SlotNationalIDRegistry = "nationalIdRegistry"
	SlotCourtSystem        = "courtSystem"
)

// Request describes one outbound call to an integration slot.
type Request struct {
	// Method is the HTTP method. Defaults to GET when empty.
	Method string

	// Path is appended to the slot's configured endpoint.
	Path string

	// Body is the JSON payload, marshaled by the gateway. Nil means no body.
	Body any
}

// Result is the outcome of a successful call.
type Result struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is the raw response body.
	Body []byte

	// RequestID is the correlation ID attached to the call.
	RequestID string

	// Duration is the wall-clock call duration.
	Duration time.Duration
}

// CallRecord is the audit view of one call outcome. It carries no
// credentials and no payloads.
type CallRecord struct {
	// RequestID is the call correlation ID.
	RequestID string

	// Slot is the integration slot name.
	Slot string

	// Method and Path identify the call target.
	Method string
	Path   string

	// StatusCode is the HTTP status code (0 if the call never completed).
	StatusCode int

	// Outcome is "success", "error", or "disabled".
	Outcome string

	// Retryable reflects the failure classification for error outcomes.
	Retryable bool

	// Duration is the wall-clock call duration.
	Duration time.Duration

	// StartedAt is when the call began.
	StartedAt time.Time
}

// Recorder persists call records. The audit store implements it; a nil
// recorder disables auditing.
type Recorder interface {
	Record(ctx context.Context, record CallRecord) error
}
