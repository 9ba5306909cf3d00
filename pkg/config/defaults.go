package config

import "time"

// Default values for configuration fields.
const (
	// Language defaults
	DefaultDateFormat = "DD/MM/YYYY"
	DefaultTimeFormat = "24h"

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "json"

	// Admin defaults
	DefaultAdminListenAddress   = "127.0.0.1:8085"
	DefaultAdminShutdownTimeout = 10 * time.Second

	// Gateway defaults
	DefaultGatewayRequestTimeout = 10 * time.Second
	DefaultGatewayHealthSchedule = "@every 5m"

	// Audit defaults
	DefaultAuditPath = "data/integration_audit.db"
)

// ApplyDefaults fills in default values for fields the artifact omitted.
// It never overrides an explicitly configured value. Jurisdiction fields
// (identity, taxonomy, integrations) have no defaults: what the artifact
// does not state, validation rejects.
func ApplyDefaults(cfg *DeploymentConfig) {
	if cfg.Language.DateFormat == "" {
		cfg.Language.DateFormat = DefaultDateFormat
	}
	if cfg.Language.TimeFormat == "" {
		cfg.Language.TimeFormat = DefaultTimeFormat
	}

	if cfg.Engine.Logging.Level == "" {
		cfg.Engine.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Engine.Logging.Format == "" {
		cfg.Engine.Logging.Format = DefaultLoggingFormat
	}

	if cfg.Engine.Admin.ListenAddress == "" {
		cfg.Engine.Admin.ListenAddress = DefaultAdminListenAddress
	}
	if cfg.Engine.Admin.ShutdownTimeout == 0 {
		cfg.Engine.Admin.ShutdownTimeout = DefaultAdminShutdownTimeout
	}

	if cfg.Engine.Gateway.RequestTimeout == 0 {
		cfg.Engine.Gateway.RequestTimeout = DefaultGatewayRequestTimeout
	}
	if cfg.Engine.Gateway.HealthSchedule == "" {
		cfg.Engine.Gateway.HealthSchedule = DefaultGatewayHealthSchedule
	}

	if cfg.Engine.Audit.Path == "" {
		cfg.Engine.Audit.Path = DefaultAuditPath
	}
}
