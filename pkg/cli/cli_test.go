package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	formatter := NewFormatter(FormatJSON)

	var buf bytes.Buffer
	data := map[string]any{"artifact": "nigeria.yaml", "valid": true}
	if err := formatter.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["artifact"] != "nigeria.yaml" || decoded["valid"] != true {
		t.Errorf("unexpected output: %v", decoded)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output should be indented")
	}
}

func TestTextFormatterIsDefault(t *testing.T) {
	formatter := NewFormatter("junitxml")
	if _, ok := formatter.(*TextFormatter); !ok {
		t.Errorf("unknown format must fall back to text, got %T", formatter)
	}

	var buf bytes.Buffer
	if err := formatter.FormatTo(&buf, "3 violations"); err != nil {
		t.Fatalf("FormatTo returned error: %v", err)
	}
	if buf.String() != "3 violations\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestArtifactError(t *testing.T) {
	err := NewArtifactError("nigeria.yaml", "language.default not in supported set")
	if !strings.Contains(err.Error(), "nigeria.yaml") {
		t.Errorf("error missing artifact path: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "language.default") {
		t.Errorf("error missing reason: %s", err.Error())
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	cause := errors.New("3 validation violations")
	err := NewCommandError("validate", cause)

	if !errors.Is(err, cause) {
		t.Error("CommandError must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "validate") {
		t.Errorf("error missing command name: %s", err.Error())
	}
}
