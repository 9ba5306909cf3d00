// Package telemetry groups the engine's observability concerns.
//
// # Components
//
//   - logging: structured logging with credential and national-ID redaction
//
// Gateway metrics live next to the gateway itself in pkg/integration; the
// admin server exposes them on /metrics.
package telemetry
