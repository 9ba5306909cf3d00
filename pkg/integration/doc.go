// Package integration provides the outbound gateway for the deployment's
// external system connections: the national ID registry, the court case
// management system, and the telecom SMS path.
//
// # Gateway
//
// The gateway is built once from the validated deployment configuration.
// Each call targets a named integration slot; a disabled slot yields
// ErrDisabled without any network attempt. The gateway performs exactly one
// attempt per call and classifies failures as retryable or not, leaving
// retry policy to the caller.
//
// # Credentials
//
// Integration API keys are injected into the Authorization header only.
// They never appear in logs, errors, metrics labels, or audit records.
package integration
