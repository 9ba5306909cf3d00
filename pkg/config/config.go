package config

import "time"

// DeploymentConfig is the root configuration structure for a CRMS deployment.
// Exactly one instance exists per running process. It describes everything
// that distinguishes one jurisdiction from another: the national identity
// document, legal framework references, offense taxonomy, police hierarchy,
// localization rules, telecom integrations, and external system integrations.
//
// The instance is immutable after Initialize; downstream services hold a
// reference and never re-read the artifact.
type DeploymentConfig struct {
	// CountryCode is the ISO-style short code for the jurisdiction.
	// Unique per deployment (e.g., "NG", "KE").
	CountryCode string `yaml:"countryCode" json:"countryCode"`

	// CountryName is the full country name (e.g., "Nigeria").
	CountryName string `yaml:"countryName" json:"countryName"`

	// Capital is the capital city name.
	Capital string `yaml:"capital" json:"capital"`

	// NationalIDSystem describes the jurisdiction's identity document.
	NationalIDSystem NationalIDSystem `yaml:"nationalIdSystem" json:"nationalIdSystem"`

	// Language contains language and date/time formatting settings.
	Language Language `yaml:"language" json:"language"`

	// Currency describes the jurisdiction's currency.
	Currency Currency `yaml:"currency" json:"currency"`

	// PoliceStructure describes the police hierarchy and rank ladder.
	PoliceStructure PoliceStructure `yaml:"policeStructure" json:"policeStructure"`

	// LegalFramework contains legal citation references.
	LegalFramework LegalFramework `yaml:"legalFramework" json:"legalFramework"`

	// OffenseCategories is the offense taxonomy, in configuration order.
	OffenseCategories []OffenseCategory `yaml:"offenseCategories" json:"offenseCategories"`

	// Telecom contains SMS and USSD delivery settings.
	Telecom Telecom `yaml:"telecom" json:"telecom"`

	// Integrations contains the external system integration slots.
	Integrations Integrations `yaml:"integrations" json:"integrations"`

	// Engine contains runtime settings for the configuration engine itself
	// (logging, admin surface, gateway timeouts, audit log). Every field has
	// a default, so older artifacts that omit the section remain valid.
	Engine EngineConfig `yaml:"engine" json:"engine"`
}

// NationalIDSystem describes the jurisdiction's identity document.
type NationalIDSystem struct {
	// Type is a free-form identifier for the document (e.g., "NIN").
	Type string `yaml:"type" json:"type"`

	// DisplayName is the human-readable document name shown on forms.
	DisplayName string `yaml:"displayName" json:"displayName"`

	// Format is a human-readable pattern hint (e.g., "11 digits").
	Format string `yaml:"format" json:"format"`

	// ValidationRegex is the pattern a candidate ID must fully match.
	// It must compile as a valid regular expression.
	ValidationRegex string `yaml:"validationRegex" json:"validationRegex"`

	// Length is the expected character count. Must be positive. Length is
	// checked independently of the regex so a permissive pattern cannot
	// accept a truncated ID.
	Length int `yaml:"length" json:"length"`
}

// Language contains language and date/time formatting settings.
type Language struct {
	// Default is the deployment's default language tag.
	// Must be a member of Supported.
	Default string `yaml:"default" json:"default"`

	// Supported is the non-empty set of language tags the deployment offers.
	Supported []string `yaml:"supported" json:"supported"`

	// DateFormat is a token pattern using DD, MM, YYYY (e.g., "DD/MM/YYYY").
	// Default: "DD/MM/YYYY"
	DateFormat string `yaml:"dateFormat" json:"dateFormat"`

	// TimeFormat selects the clock convention.
	// Options: "12h", "24h"
	// Default: "24h"
	TimeFormat string `yaml:"timeFormat" json:"timeFormat"`
}

// Currency describes the jurisdiction's currency.
type Currency struct {
	// Code is the ISO 4217-style currency code (e.g., "NGN").
	Code string `yaml:"code" json:"code"`

	// Symbol is the display symbol (e.g., "₦").
	Symbol string `yaml:"symbol" json:"symbol"`

	// Name is the full currency name (e.g., "Nigerian Naira").
	Name string `yaml:"name" json:"name"`
}

// Police structure types.
const (
	PoliceCentralized = "centralized"
	PoliceFederal     = "federal"
	PoliceRegional    = "regional"
)

// PoliceStructure describes the police hierarchy and rank ladder.
type PoliceStructure struct {
	// Type is the organizational model.
	// Options: "centralized", "federal", "regional"
	Type string `yaml:"type" json:"type"`

	// Levels is the ordered sequence of hierarchy tier names, outermost
	// first (e.g., national command down to station).
	Levels []string `yaml:"levels" json:"levels"`

	// Ranks is the ordered sequence of rank names as configured. Order is
	// significant: authorization logic compares positions in this sequence
	// to decide seniority, so the engine never reorders it.
	Ranks []string `yaml:"ranks" json:"ranks"`
}

// RankIndex returns the position of rank in the configured ladder and
// whether the rank exists. Comparison of two indexes gives relative
// seniority in whatever order the artifact established.
func (p *PoliceStructure) RankIndex(rank string) (int, bool) {
	for i, r := range p.Ranks {
		if r == rank {
			return i, true
		}
	}
	return 0, false
}

// LegalFramework contains legal citation references. The citations are
// informational free text; validation only requires them to be non-empty.
type LegalFramework struct {
	// DataProtectionAct cites the applicable data protection legislation.
	DataProtectionAct string `yaml:"dataProtectionAct" json:"dataProtectionAct"`

	// PenalCode cites the applicable penal code.
	PenalCode string `yaml:"penalCode" json:"penalCode"`

	// EvidenceAct cites the applicable evidence legislation.
	EvidenceAct string `yaml:"evidenceAct" json:"evidenceAct"`
}

// OffenseCategory is one node of the offense taxonomy.
type OffenseCategory struct {
	// Code is the category key, unique across the configuration.
	// Lookup is exact and case-sensitive.
	Code string `yaml:"code" json:"code"`

	// Name is the category display name.
	Name string `yaml:"name" json:"name"`

	// Subcategories holds the category's subcategories in either of the two
	// supported artifact forms (plain strings or structured records).
	Subcategories Subcategories `yaml:"subcategories" json:"subcategories"`
}

// OffenseSubcategory is the structured subcategory record form.
type OffenseSubcategory struct {
	// Code is an optional subcategory key, unique within its category.
	Code string `yaml:"code,omitempty" json:"code,omitempty"`

	// Name is the subcategory display name. Required.
	Name string `yaml:"name" json:"name"`
}

// Telecom contains SMS and USSD delivery settings.
type Telecom struct {
	// USSDGateways is the ordered sequence of USSD gateway endpoint
	// identifiers.
	USSDGateways []string `yaml:"ussdGateways" json:"ussdGateways"`

	// USSDShortcode is the deployment's USSD shortcode (e.g., "*347#").
	USSDShortcode string `yaml:"ussdShortcode" json:"ussdShortcode"`

	// SMSProvider names the SMS delivery provider.
	SMSProvider string `yaml:"smsProvider" json:"smsProvider"`

	// SMSEndpoint is the provider's dispatch URL. SMS delivery is disabled
	// when empty.
	SMSEndpoint string `yaml:"smsEndpoint,omitempty" json:"smsEndpoint,omitempty"`

	// SMSAPIKey is the provider credential. Never logged or serialized.
	SMSAPIKey Secret `yaml:"smsApiKey" json:"smsApiKey"`
}

// Integration is a single external-system connection slot.
type Integration struct {
	// Enabled controls whether outbound calls to this system are permitted.
	// When false, calls return a Disabled outcome without any network attempt.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// APIEndpoint is the external system's URL. Required when Enabled.
	APIEndpoint string `yaml:"apiEndpoint,omitempty" json:"apiEndpoint,omitempty"`

	// APIKey is the credential presented to the external system.
	// Never logged or serialized.
	APIKey Secret `yaml:"apiKey,omitempty" json:"apiKey,omitempty"`
}

// Integrations contains the two named integration slots.
type Integrations struct {
	// NationalIDRegistry connects to the national identity registry.
	NationalIDRegistry Integration `yaml:"nationalIdRegistry" json:"nationalIdRegistry"`

	// CourtSystem connects to the court case management system.
	CourtSystem Integration `yaml:"courtSystem" json:"courtSystem"`
}

// EngineConfig contains runtime settings for the engine itself.
type EngineConfig struct {
	// Logging contains structured logging settings.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Admin contains the read-only admin HTTP surface settings.
	Admin AdminConfig `yaml:"admin" json:"admin"`

	// Gateway contains integration gateway settings.
	Gateway GatewayConfig `yaml:"gateway" json:"gateway"`

	// Audit contains the integration call audit log settings.
	Audit AuditConfig `yaml:"audit" json:"audit"`

	// WatchArtifact enables drift detection on the artifact file. When the
	// file changes after startup a warning is logged; the running instance
	// is never replaced.
	// Default: false
	WatchArtifact bool `yaml:"watchArtifact" json:"watchArtifact"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level" json:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format" json:"format"`
}

// AdminConfig contains the admin HTTP surface settings.
type AdminConfig struct {
	// Enabled controls whether the admin server is started.
	// Default: false
	Enabled bool `yaml:"enabled" json:"enabled"`

	// ListenAddress is the address and port for the admin server.
	// Default: "127.0.0.1:8085"
	ListenAddress string `yaml:"listenAddress" json:"listenAddress"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" json:"shutdownTimeout"`
}

// GatewayConfig contains integration gateway settings.
type GatewayConfig struct {
	// RequestTimeout bounds each outbound integration call. The gateway
	// never retries; retry policy belongs to the caller.
	// Default: 10s
	RequestTimeout time.Duration `yaml:"requestTimeout" json:"requestTimeout"`

	// HealthSchedule is a cron expression for probing enabled integration
	// endpoints. Empty disables probing.
	// Default: "@every 5m"
	HealthSchedule string `yaml:"healthSchedule" json:"healthSchedule"`
}

// AuditConfig contains the integration call audit log settings.
type AuditConfig struct {
	// Enabled controls whether call outcomes are recorded.
	// Default: false
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Path is the SQLite database file path.
	// Default: "data/integration_audit.db"
	Path string `yaml:"path" json:"path"`
}
