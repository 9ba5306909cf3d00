package config

import "log/slog"

// redactedPlaceholder is what a Secret renders as on every output path.
const redactedPlaceholder = "[REDACTED]"

// Secret is a credential value with a type-level redaction guarantee.
// Every serialization and formatting path (fmt, yaml, json, slog) emits a
// placeholder; the raw value is obtainable only through Reveal, which only
// the integration gateway calls. This makes leaking a credential through a
// log line or the admin config view a compile-visible act rather than an
// accident.
type Secret string

// Reveal returns the raw credential value.
func (s Secret) Reveal() string {
	return string(s)
}

// IsZero reports whether the secret is unset.
func (s Secret) IsZero() bool {
	return s == ""
}

// String implements fmt.Stringer. It never returns the raw value.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redactedPlaceholder
}

// GoString implements fmt.GoStringer so %#v cannot leak the value.
func (s Secret) GoString() string {
	return "config.Secret(" + s.String() + ")"
}

// MarshalYAML implements yaml.Marshaler.
func (s Secret) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte(`""`), nil
	}
	return []byte(`"` + redactedPlaceholder + `"`), nil
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
