package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSecret_NeverFormatsRaw(t *testing.T) {
	s := Secret("super-secret-token")

	for name, rendered := range map[string]string{
		"Stringer": s.String(),
		"Sprintf v": fmt.Sprintf("%v", s),
		"Sprintf s": fmt.Sprintf("%s", s),
		"Sprintf GoString": fmt.Sprintf("%#v", s),
	} {
		if strings.Contains(rendered, "super-secret-token") {
			t.Errorf("%s leaked the raw value: %q", name, rendered)
		}
	}

	if s.Reveal() != "super-secret-token" {
		t.Error("Reveal must return the raw value")
	}
}

func TestSecret_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Key Secret `json:"key"`
	}{Key: "super-secret-token"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "super-secret-token") {
		t.Errorf("JSON output leaked the raw value: %s", out)
	}
	if !strings.Contains(string(out), redactedPlaceholder) {
		t.Errorf("JSON output should carry the placeholder: %s", out)
	}
}

func TestSecret_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Secret{"apiKey": "super-secret-token"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "super-secret-token") {
		t.Errorf("YAML output leaked the raw value: %s", out)
	}
}

func TestSecret_EmptyStaysEmpty(t *testing.T) {
	var s Secret
	if !s.IsZero() {
		t.Error("zero secret should report IsZero")
	}
	if s.String() != "" {
		t.Errorf("empty secret should render empty, got %q", s.String())
	}
}

func TestRedactedView(t *testing.T) {
	cfg := validConfig()
	view := cfg.Redacted()

	if view.Telecom.SMSAPIKey.Reveal() == cfg.Telecom.SMSAPIKey.Reveal() {
		t.Error("redacted view must not carry the raw SMS key")
	}
	if view.Integrations.NationalIDRegistry.APIKey.Reveal() == cfg.Integrations.NationalIDRegistry.APIKey.Reveal() {
		t.Error("redacted view must not carry the raw registry key")
	}

	// Non-secret data survives untouched.
	if view.CountryCode != cfg.CountryCode {
		t.Error("redaction must not alter non-secret fields")
	}
	if len(view.OffenseCategories) != len(cfg.OffenseCategories) {
		t.Error("redaction must preserve the taxonomy")
	}

	// The view is a copy: mutating it leaves the original alone.
	view.PoliceStructure.Ranks[0] = "mutated"
	if cfg.PoliceStructure.Ranks[0] == "mutated" {
		t.Error("redacted view must not alias the original's slices")
	}
}
