// Package identity derives the national-ID validator from the deployment
// configuration.
package identity

import (
	"fmt"
	"regexp"
	"strings"

	"opencrms/engine/pkg/config"
)

// InvalidRegexError reports that a configured validation pattern does not
// compile. The schema validator checks the same pattern during startup, so
// this error is unreachable from a published configuration; it exists for
// callers constructing validators from unvalidated descriptors.
type InvalidRegexError struct {
	// Pattern is the configured regular expression.
	Pattern string

	// Cause is the underlying compile error.
	Cause error
}

// Error implements the error interface.
func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("invalid national ID validation regex %q: %v", e.Pattern, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *InvalidRegexError) Unwrap() error {
	return e.Cause
}

// Validator checks candidate national IDs against the configured document
// descriptor. It is built once at startup and is immutable: the compiled
// pattern is safe for unlocked concurrent use.
type Validator struct {
	system  config.NationalIDSystem
	pattern *regexp.Regexp
}

// Description is the display metadata presentation forms need to render a
// jurisdiction-appropriate ID field.
type Description struct {
	Type        string
	DisplayName string
	Format      string
	Length      int
}

// NewValidator compiles the configured pattern once and returns the derived
// validator. Returns *InvalidRegexError if the pattern does not compile.
func NewValidator(system config.NationalIDSystem) (*Validator, error) {
	pattern, err := regexp.Compile(anchored(system.ValidationRegex))
	if err != nil {
		return nil, &InvalidRegexError{Pattern: system.ValidationRegex, Cause: err}
	}

	return &Validator{
		system:  system,
		pattern: pattern,
	}, nil
}

// IsValid reports whether candidate is a well-formed national ID: its
// length must equal the configured length AND it must fully match the
// configured pattern. The length check is independent of the pattern, so
// a permissive regex cannot admit a candidate of the wrong length.
func (v *Validator) IsValid(candidate string) bool {
	if len(candidate) != v.system.Length {
		return false
	}
	return v.pattern.MatchString(candidate)
}

// Describe returns the document's display metadata.
func (v *Validator) Describe() Description {
	return Description{
		Type:        v.system.Type,
		DisplayName: v.system.DisplayName,
		Format:      v.system.Format,
		Length:      v.system.Length,
	}
}

// anchored wraps a pattern so it must match the whole candidate. Go's
// regexp matches substrings by default; without this a pattern like
// "[0-9]{11}" would accept any string containing eleven digits.
func anchored(pattern string) string {
	if strings.HasPrefix(pattern, `\A`) && strings.HasSuffix(pattern, `\z`) {
		return pattern
	}
	return `\A(?:` + pattern + `)\z`
}
