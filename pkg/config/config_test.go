package config

// Test fixtures shared across the package tests. The fixture mirrors a
// realistic single-jurisdiction artifact.

func validConfig() *DeploymentConfig {
	cfg := &DeploymentConfig{
		CountryCode: "NG",
		CountryName: "Nigeria",
		Capital:     "Abuja",
		NationalIDSystem: NationalIDSystem{
			Type:            "NIN",
			DisplayName:     "National Identification Number",
			Format:          "11 digits",
			ValidationRegex: "^[0-9]{11}$",
			Length:          11,
		},
		Language: Language{
			Default:   "en",
			Supported: []string{"en", "ha", "ig", "yo"},
		},
		Currency: Currency{
			Code:   "NGN",
			Symbol: "₦",
			Name:   "Nigerian Naira",
		},
		PoliceStructure: PoliceStructure{
			Type:   PoliceCentralized,
			Levels: []string{"Force Headquarters", "Zonal Command", "State Command", "Division"},
			Ranks:  []string{"Constable", "Corporal", "Sergeant", "Inspector", "Superintendent", "Commissioner"},
		},
		LegalFramework: LegalFramework{
			DataProtectionAct: "Nigeria Data Protection Act 2023",
			PenalCode:         "Criminal Code Act, Cap C38 LFN 2004",
			EvidenceAct:       "Evidence Act 2011",
		},
		OffenseCategories: []OffenseCategory{
			{
				Code:          "C1",
				Name:          "Theft",
				Subcategories: SubcategoryNames("Petty", "Grand"),
			},
			{
				Code: "C2",
				Name: "Assault",
				Subcategories: SubcategoriesOf(
					OffenseSubcategory{Code: "C2-1", Name: "Simple Assault"},
					OffenseSubcategory{Code: "C2-2", Name: "Aggravated Assault"},
				),
			},
		},
		Telecom: Telecom{
			USSDGateways:  []string{"mtn-ng", "airtel-ng"},
			USSDShortcode: "*347#",
			SMSProvider:   "termii",
			SMSEndpoint:   "https://api.termii.example/v1/sms",
			SMSAPIKey:     Secret("sms-key-1234"),
		},
		Integrations: Integrations{
			NationalIDRegistry: Integration{
				Enabled:     true,
				APIEndpoint: "https://nimc.example/api/v1/verify",
				APIKey:      Secret("registry-key-5678"),
			},
			CourtSystem: Integration{
				Enabled: false,
			},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

const validArtifactYAML = `
countryCode: NG
countryName: Nigeria
capital: Abuja
nationalIdSystem:
  type: NIN
  displayName: National Identification Number
  format: 11 digits
  validationRegex: "^[0-9]{11}$"
  length: 11
language:
  default: en
  supported: [en, ha, ig, yo]
currency:
  code: NGN
  symbol: "₦"
  name: Nigerian Naira
policeStructure:
  type: centralized
  levels: [Force Headquarters, Zonal Command, State Command, Division]
  ranks: [Constable, Corporal, Sergeant, Inspector, Superintendent, Commissioner]
legalFramework:
  dataProtectionAct: Nigeria Data Protection Act 2023
  penalCode: Criminal Code Act, Cap C38 LFN 2004
  evidenceAct: Evidence Act 2011
offenseCategories:
  - code: C1
    name: Theft
    subcategories: [Petty, Grand]
  - code: C2
    name: Assault
    subcategories:
      - code: C2-1
        name: Simple Assault
      - code: C2-2
        name: Aggravated Assault
telecom:
  ussdGateways: [mtn-ng, airtel-ng]
  ussdShortcode: "*347#"
  smsProvider: termii
  smsEndpoint: https://api.termii.example/v1/sms
  smsApiKey: sms-key-1234
integrations:
  nationalIdRegistry:
    enabled: true
    apiEndpoint: https://nimc.example/api/v1/verify
    apiKey: registry-key-5678
  courtSystem:
    enabled: false
`
