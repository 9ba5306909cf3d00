package identity

import (
	"errors"
	"testing"

	"opencrms/engine/pkg/config"
)

func ninSystem() config.NationalIDSystem {
	return config.NationalIDSystem{
		Type:            "NIN",
		DisplayName:     "National Identification Number",
		Format:          "11 digits",
		ValidationRegex: "^[0-9]{11}$",
		Length:          11,
	}
}

func TestNewValidator_InvalidRegex(t *testing.T) {
	system := ninSystem()
	system.ValidationRegex = "[0-9]{11"

	_, err := NewValidator(system)
	if err == nil {
		t.Fatal("expected error for unbalanced pattern, got nil")
	}

	var invalidErr *InvalidRegexError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected *InvalidRegexError, got %T", err)
	}
	if invalidErr.Pattern != "[0-9]{11" {
		t.Errorf("expected pattern in error, got %q", invalidErr.Pattern)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		system    config.NationalIDSystem
		candidate string
		want      bool
	}{
		{
			name:      "valid eleven digits",
			system:    ninSystem(),
			candidate: "12345678901",
			want:      true,
		},
		{
			name:      "too short",
			system:    ninSystem(),
			candidate: "1234567890",
			want:      false,
		},
		{
			name:      "too long",
			system:    ninSystem(),
			candidate: "123456789012",
			want:      false,
		},
		{
			name:      "non-digit characters",
			system:    ninSystem(),
			candidate: "1234567890a",
			want:      false,
		},
		{
			name:      "empty candidate",
			system:    ninSystem(),
			candidate: "",
			want:      false,
		},
		{
			name: "length check applies even when regex is permissive",
			system: config.NationalIDSystem{
				Type:            "ID",
				DisplayName:     "Identity Card",
				Format:          "free-form",
				ValidationRegex: ".*",
				Length:          8,
			},
			candidate: "toolongvalue",
			want:      false,
		},
		{
			name: "regex applies even when length matches",
			system: config.NationalIDSystem{
				Type:            "CNI",
				DisplayName:     "Carte Nationale d'Identite",
				Format:          "1 letter then 7 digits",
				ValidationRegex: "^[A-Z][0-9]{7}$",
				Length:          8,
			},
			candidate: "12345678",
			want:      false,
		},
		{
			name: "unanchored pattern cannot match a substring",
			system: config.NationalIDSystem{
				Type:            "ID",
				DisplayName:     "Identity Card",
				Format:          "4 digits",
				ValidationRegex: "[0-9]{4}",
				Length:          6,
			},
			candidate: "a1234b",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, err := NewValidator(tt.system)
			if err != nil {
				t.Fatalf("NewValidator returned error: %v", err)
			}
			if got := validator.IsValid(tt.candidate); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestIsValid_Deterministic(t *testing.T) {
	first, err := NewValidator(ninSystem())
	if err != nil {
		t.Fatalf("NewValidator returned error: %v", err)
	}
	second, err := NewValidator(ninSystem())
	if err != nil {
		t.Fatalf("NewValidator returned error: %v", err)
	}

	for _, candidate := range []string{"12345678901", "1234567890", "abcdefghijk", ""} {
		if first.IsValid(candidate) != second.IsValid(candidate) {
			t.Errorf("validators built from identical descriptors disagree on %q", candidate)
		}
	}
}

func TestDescribe(t *testing.T) {
	validator, err := NewValidator(ninSystem())
	if err != nil {
		t.Fatalf("NewValidator returned error: %v", err)
	}

	desc := validator.Describe()
	if desc.Type != "NIN" {
		t.Errorf("expected type NIN, got %q", desc.Type)
	}
	if desc.DisplayName != "National Identification Number" {
		t.Errorf("unexpected display name %q", desc.DisplayName)
	}
	if desc.Format != "11 digits" {
		t.Errorf("unexpected format %q", desc.Format)
	}
	if desc.Length != 11 {
		t.Errorf("expected length 11, got %d", desc.Length)
	}
}
