// Package config implements the CRMS deployment configuration engine.
//
// A CRMS deployment is driven by exactly one configuration artifact, a YAML
// document describing the jurisdiction: national-ID format, legal framework
// citations, offense taxonomy, police hierarchy, localization, telecom and
// external system integrations. This package loads the artifact once at
// process start, validates it exhaustively, and publishes it as a single
// immutable instance consumed by every downstream service.
//
// # Loading
//
//	cfg, err := config.Load("deployment.yaml")
//
// Loading fails with *MalformedConfigError when the artifact is not
// parseable YAML, and with *ValidationError when one or more schema
// invariants fail. Validation collects every violation with its dotted
// field path:
//
//	deployment configuration validation failed with 2 errors:
//	  - language.default: default language "sw" is not in language.supported
//	  - offenseCategories[3].code: duplicate category code "C1"
//
// # Process-wide instance
//
//	// At process startup, before serving anything:
//	if err := config.Initialize("deployment.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Afterwards, anywhere:
//	cfg := config.Get()
//
// Initialize is one-shot: calling it again after success returns
// ErrAlreadyInitialized. There is no reload; the aggregate is replaced only
// by restarting the process. The optional drift watcher (WatchArtifact)
// logs when the file on disk diverges from the running instance.
//
// # Secrets
//
// Credential fields (telecom.smsApiKey, integrations.*.apiKey) use the
// Secret type, which renders as "[REDACTED]" on every formatting and
// serialization path. Only Secret.Reveal returns the raw value, and only
// the integration gateway calls it. Secrets may also be injected from the
// environment (CRMS_SMS_API_KEY and friends) so artifacts can be committed
// without credentials.
//
// # Concurrency
//
// Load and Initialize run single-threaded during startup. The published
// instance and everything derived from it are immutable and safe for
// unlocked concurrent reads.
package config
