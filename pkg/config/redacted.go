package config

// Redacted returns a deep copy of the configuration with every secret field
// replaced by its placeholder. The copy is what display surfaces (the admin
// config view) serialize; the Secret type already marshals redacted, so
// this is a second, independent barrier for paths that read values instead
// of marshaling them.
func (c *DeploymentConfig) Redacted() *DeploymentConfig {
	out := *c

	out.Language.Supported = append([]string(nil), c.Language.Supported...)
	out.PoliceStructure.Levels = append([]string(nil), c.PoliceStructure.Levels...)
	out.PoliceStructure.Ranks = append([]string(nil), c.PoliceStructure.Ranks...)
	out.Telecom.USSDGateways = append([]string(nil), c.Telecom.USSDGateways...)

	out.OffenseCategories = make([]OffenseCategory, len(c.OffenseCategories))
	for i, cat := range c.OffenseCategories {
		cp := cat
		cp.Subcategories = Subcategories{
			form:    cat.Subcategories.form,
			strings: append([]string(nil), cat.Subcategories.strings...),
			records: append([]OffenseSubcategory(nil), cat.Subcategories.records...),
		}
		out.OffenseCategories[i] = cp
	}

	if !c.Telecom.SMSAPIKey.IsZero() {
		out.Telecom.SMSAPIKey = Secret(redactedPlaceholder)
	}
	if !c.Integrations.NationalIDRegistry.APIKey.IsZero() {
		out.Integrations.NationalIDRegistry.APIKey = Secret(redactedPlaceholder)
	}
	if !c.Integrations.CourtSystem.APIKey.IsZero() {
		out.Integrations.CourtSystem.APIKey = Secret(redactedPlaceholder)
	}

	return &out
}
