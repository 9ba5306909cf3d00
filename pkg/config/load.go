package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the deployment artifact from a YAML file, applies defaults,
// injects secret overrides from the environment, and validates the result.
// It returns *MalformedConfigError when the artifact cannot be parsed and
// *ValidationError when one or more schema invariants fail; both are fatal
// to startup.
func Load(path string) (*DeploymentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment configuration %q: %w", path, err)
	}
	return loadBytes(data, path)
}

// LoadBytes parses and validates an artifact already held in memory
// (environment-provided blob, test fixture).
func LoadBytes(data []byte) (*DeploymentConfig, error) {
	return loadBytes(data, "<bytes>")
}

func loadBytes(data []byte, source string) (*DeploymentConfig, error) {
	var cfg DeploymentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &MalformedConfigError{Source: source, Cause: err}
	}

	ApplyDefaults(&cfg)
	applySecretOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applySecretOverrides injects credentials from the environment. Only secret
// fields are overridable: the artifact remains the sole authority on
// jurisdiction shape, while credentials can be kept out of it entirely.
//
//	CRMS_SMS_API_KEY                  -> telecom.smsApiKey
//	CRMS_NATIONAL_ID_REGISTRY_API_KEY -> integrations.nationalIdRegistry.apiKey
//	CRMS_COURT_SYSTEM_API_KEY         -> integrations.courtSystem.apiKey
func applySecretOverrides(cfg *DeploymentConfig) {
	if val := os.Getenv("CRMS_SMS_API_KEY"); val != "" {
		cfg.Telecom.SMSAPIKey = Secret(val)
	}
	if val := os.Getenv("CRMS_NATIONAL_ID_REGISTRY_API_KEY"); val != "" {
		cfg.Integrations.NationalIDRegistry.APIKey = Secret(val)
	}
	if val := os.Getenv("CRMS_COURT_SYSTEM_API_KEY"); val != "" {
		cfg.Integrations.CourtSystem.APIKey = Secret(val)
	}
}
