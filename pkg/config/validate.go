package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FieldError represents a validation error for a specific configuration
// field, identified by its dotted path in the artifact.
type FieldError struct {
	// Field is the dotted path to the field (e.g., "language.default").
	Field string `json:"field"`

	// Message is a human-readable error message.
	Message string `json:"message"`
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more violations found in a deployment
// configuration. Validation is exhaustive, not fail-fast: a single pass
// reports every violation so the artifact author fixes them all at once.
type ValidationError struct {
	// Errors contains all violations found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string listing every violation.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "deployment configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("deployment configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("deployment configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire deployment configuration and returns a
// *ValidationError if any rules fail. It returns nil when the configuration
// is valid. All violations are collected and returned together.
func Validate(cfg *DeploymentConfig) error {
	var errs []FieldError

	errs = append(errs, validateCountry(cfg)...)
	errs = append(errs, validateNationalIDSystem(&cfg.NationalIDSystem)...)
	errs = append(errs, validateLanguage(&cfg.Language)...)
	errs = append(errs, validateCurrency(&cfg.Currency)...)
	errs = append(errs, validatePoliceStructure(&cfg.PoliceStructure)...)
	errs = append(errs, validateLegalFramework(&cfg.LegalFramework)...)
	errs = append(errs, validateOffenseCategories(cfg.OffenseCategories)...)
	errs = append(errs, validateTelecom(&cfg.Telecom)...)
	errs = append(errs, validateIntegrations(&cfg.Integrations)...)
	errs = append(errs, validateEngine(&cfg.Engine)...)

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}

// validateCountry validates the root country fields.
func validateCountry(cfg *DeploymentConfig) []FieldError {
	var errs []FieldError

	if cfg.CountryCode == "" {
		errs = append(errs, FieldError{
			Field:   "countryCode",
			Message: "country code is required",
		})
	}
	if cfg.CountryName == "" {
		errs = append(errs, FieldError{
			Field:   "countryName",
			Message: "country name is required",
		})
	}
	if cfg.Capital == "" {
		errs = append(errs, FieldError{
			Field:   "capital",
			Message: "capital is required",
		})
	}

	return errs
}

// validateNationalIDSystem validates the identity document descriptor.
// A non-compiling validationRegex is reported here so the national ID
// validator can never fail post-load.
func validateNationalIDSystem(cfg *NationalIDSystem) []FieldError {
	var errs []FieldError

	if cfg.Type == "" {
		errs = append(errs, FieldError{
			Field:   "nationalIdSystem.type",
			Message: "type is required",
		})
	}
	if cfg.DisplayName == "" {
		errs = append(errs, FieldError{
			Field:   "nationalIdSystem.displayName",
			Message: "display name is required",
		})
	}
	if cfg.Format == "" {
		errs = append(errs, FieldError{
			Field:   "nationalIdSystem.format",
			Message: "format hint is required",
		})
	}

	if cfg.ValidationRegex == "" {
		errs = append(errs, FieldError{
			Field:   "nationalIdSystem.validationRegex",
			Message: "validation regex is required",
		})
	} else if _, err := regexp.Compile(cfg.ValidationRegex); err != nil {
		errs = append(errs, FieldError{
			Field:   "nationalIdSystem.validationRegex",
			Message: fmt.Sprintf("invalid regular expression: %v", err),
		})
	}

	if cfg.Length <= 0 {
		errs = append(errs, FieldError{
			Field:   "nationalIdSystem.length",
			Message: "length must be positive",
		})
	}

	return errs
}

// validateLanguage validates language and formatting settings.
func validateLanguage(cfg *Language) []FieldError {
	var errs []FieldError

	if len(cfg.Supported) == 0 {
		errs = append(errs, FieldError{
			Field:   "language.supported",
			Message: "at least one supported language is required",
		})
	}

	if cfg.Default == "" {
		errs = append(errs, FieldError{
			Field:   "language.default",
			Message: "default language is required",
		})
	} else {
		found := false
		for _, tag := range cfg.Supported {
			if tag == cfg.Default {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, FieldError{
				Field:   "language.default",
				Message: fmt.Sprintf("default language %q is not in language.supported", cfg.Default),
			})
		}
	}

	if cfg.DateFormat == "" {
		errs = append(errs, FieldError{
			Field:   "language.dateFormat",
			Message: "date format is required",
		})
	} else if !strings.Contains(cfg.DateFormat, "DD") ||
		!strings.Contains(cfg.DateFormat, "MM") ||
		!strings.Contains(cfg.DateFormat, "YYYY") {
		// Same token rule the localization resolver applies; rejecting it
		// here keeps the defect inside the field-path violation report.
		errs = append(errs, FieldError{
			Field:   "language.dateFormat",
			Message: fmt.Sprintf("invalid date format %q: must contain DD, MM and YYYY tokens", cfg.DateFormat),
		})
	}

	if cfg.TimeFormat != "12h" && cfg.TimeFormat != "24h" {
		errs = append(errs, FieldError{
			Field:   "language.timeFormat",
			Message: fmt.Sprintf("invalid time format %q: must be '12h' or '24h'", cfg.TimeFormat),
		})
	}

	return errs
}

// validateCurrency validates the currency descriptor.
func validateCurrency(cfg *Currency) []FieldError {
	var errs []FieldError

	if cfg.Code == "" {
		errs = append(errs, FieldError{
			Field:   "currency.code",
			Message: "currency code is required",
		})
	}
	if cfg.Symbol == "" {
		errs = append(errs, FieldError{
			Field:   "currency.symbol",
			Message: "currency symbol is required",
		})
	}
	if cfg.Name == "" {
		errs = append(errs, FieldError{
			Field:   "currency.name",
			Message: "currency name is required",
		})
	}

	return errs
}

// validatePoliceStructure validates the hierarchy and rank ladder.
func validatePoliceStructure(cfg *PoliceStructure) []FieldError {
	var errs []FieldError

	validTypes := map[string]bool{
		PoliceCentralized: true,
		PoliceFederal:     true,
		PoliceRegional:    true,
	}
	if cfg.Type == "" {
		errs = append(errs, FieldError{
			Field:   "policeStructure.type",
			Message: "type is required",
		})
	} else if !validTypes[cfg.Type] {
		errs = append(errs, FieldError{
			Field:   "policeStructure.type",
			Message: fmt.Sprintf("invalid type %q: must be 'centralized', 'federal', or 'regional'", cfg.Type),
		})
	}

	if len(cfg.Levels) == 0 {
		errs = append(errs, FieldError{
			Field:   "policeStructure.levels",
			Message: "at least one hierarchy level is required",
		})
	}
	if len(cfg.Ranks) == 0 {
		errs = append(errs, FieldError{
			Field:   "policeStructure.ranks",
			Message: "at least one rank is required",
		})
	}

	// Duplicate ranks would make seniority comparison ambiguous.
	seen := make(map[string]bool, len(cfg.Ranks))
	for _, rank := range cfg.Ranks {
		if seen[rank] {
			errs = append(errs, FieldError{
				Field:   "policeStructure.ranks",
				Message: fmt.Sprintf("duplicate rank %q", rank),
			})
		}
		seen[rank] = true
	}

	return errs
}

// validateLegalFramework requires the three citations to be present.
func validateLegalFramework(cfg *LegalFramework) []FieldError {
	var errs []FieldError

	if cfg.DataProtectionAct == "" {
		errs = append(errs, FieldError{
			Field:   "legalFramework.dataProtectionAct",
			Message: "data protection act citation is required",
		})
	}
	if cfg.PenalCode == "" {
		errs = append(errs, FieldError{
			Field:   "legalFramework.penalCode",
			Message: "penal code citation is required",
		})
	}
	if cfg.EvidenceAct == "" {
		errs = append(errs, FieldError{
			Field:   "legalFramework.evidenceAct",
			Message: "evidence act citation is required",
		})
	}

	return errs
}

// validateOffenseCategories validates the offense taxonomy: category codes
// unique across the configuration, subcategory codes unique within their
// category, names present, and no mixed-form subcategory sequences.
func validateOffenseCategories(categories []OffenseCategory) []FieldError {
	var errs []FieldError

	if len(categories) == 0 {
		errs = append(errs, FieldError{
			Field:   "offenseCategories",
			Message: "at least one offense category is required",
		})
		return errs
	}

	seenCodes := make(map[string]bool, len(categories))
	for i, cat := range categories {
		prefix := fmt.Sprintf("offenseCategories[%d]", i)

		if cat.Code == "" {
			errs = append(errs, FieldError{
				Field:   prefix + ".code",
				Message: "category code is required",
			})
		} else if seenCodes[cat.Code] {
			errs = append(errs, FieldError{
				Field:   prefix + ".code",
				Message: fmt.Sprintf("duplicate category code %q", cat.Code),
			})
		}
		seenCodes[cat.Code] = true

		if cat.Name == "" {
			errs = append(errs, FieldError{
				Field:   prefix + ".name",
				Message: "category name is required",
			})
		}

		if cat.Subcategories.Form() == FormMixed {
			errs = append(errs, FieldError{
				Field:   prefix + ".subcategories",
				Message: "subcategories must be all strings or all records, not a mix",
			})
			continue
		}

		seenSubCodes := make(map[string]bool)
		for j, sub := range cat.Subcategories.Records() {
			subPrefix := fmt.Sprintf("%s.subcategories[%d]", prefix, j)
			if sub.Name == "" {
				errs = append(errs, FieldError{
					Field:   subPrefix + ".name",
					Message: "subcategory name is required",
				})
			}
			if sub.Code != "" {
				if seenSubCodes[sub.Code] {
					errs = append(errs, FieldError{
						Field:   subPrefix + ".code",
						Message: fmt.Sprintf("duplicate subcategory code %q within category %q", sub.Code, cat.Code),
					})
				}
				seenSubCodes[sub.Code] = true
			}
		}

		for j, name := range cat.Subcategories.Strings() {
			if name == "" {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("%s.subcategories[%d]", prefix, j),
					Message: "subcategory name must not be empty",
				})
			}
		}
	}

	return errs
}

// validateTelecom validates SMS/USSD settings. Telecom delivery is optional
// per deployment, but configured endpoints must be well-formed.
func validateTelecom(cfg *Telecom) []FieldError {
	var errs []FieldError

	if cfg.SMSEndpoint != "" {
		if u, err := url.Parse(cfg.SMSEndpoint); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{
				Field:   "telecom.smsEndpoint",
				Message: fmt.Sprintf("invalid URL %q", cfg.SMSEndpoint),
			})
		}
		if cfg.SMSProvider == "" {
			errs = append(errs, FieldError{
				Field:   "telecom.smsProvider",
				Message: "SMS provider is required when an SMS endpoint is configured",
			})
		}
	}

	for i, gw := range cfg.USSDGateways {
		if gw == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("telecom.ussdGateways[%d]", i),
				Message: "USSD gateway identifier must not be empty",
			})
		}
	}

	return errs
}

// validateIntegrations validates the two integration slots: an enabled slot
// must carry a usable endpoint.
func validateIntegrations(cfg *Integrations) []FieldError {
	var errs []FieldError
	errs = append(errs, validateIntegration("integrations.nationalIdRegistry", &cfg.NationalIDRegistry)...)
	errs = append(errs, validateIntegration("integrations.courtSystem", &cfg.CourtSystem)...)
	return errs
}

// validateIntegration validates a single integration slot.
func validateIntegration(prefix string, cfg *Integration) []FieldError {
	var errs []FieldError

	if !cfg.Enabled {
		return errs
	}

	if cfg.APIEndpoint == "" {
		errs = append(errs, FieldError{
			Field:   prefix + ".apiEndpoint",
			Message: "API endpoint is required when the integration is enabled",
		})
	} else if u, err := url.Parse(cfg.APIEndpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, FieldError{
			Field:   prefix + ".apiEndpoint",
			Message: fmt.Sprintf("invalid URL %q", cfg.APIEndpoint),
		})
	}

	return errs
}

// validateEngine validates the engine runtime section.
func validateEngine(cfg *EngineConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "engine.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "engine.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json' or 'text'", cfg.Logging.Format),
		})
	}

	if cfg.Admin.Enabled && cfg.Admin.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "engine.admin.listenAddress",
			Message: "listen address is required when the admin server is enabled",
		})
	}

	// Zero means "not configured" and is defaulted before validation runs.
	if cfg.Gateway.RequestTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "engine.gateway.requestTimeout",
			Message: "request timeout must not be negative",
		})
	}

	if cfg.Audit.Enabled && cfg.Audit.Path == "" {
		errs = append(errs, FieldError{
			Field:   "engine.audit.path",
			Message: "audit database path is required when the audit log is enabled",
		})
	}

	return errs
}
