// Package logging provides structured logging for the deployment
// configuration engine, built on log/slog with automatic redaction of
// credentials and configured national-ID values.
//
// The logger is configured once from the engine section of the deployment
// artifact. Redaction is on by default: values under secret-looking keys
// are masked, and free-text fields are scrubbed against built-in patterns
// plus the deployment's own national-ID pattern so a citizen's ID number
// never reaches the log stream.
package logging
