package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.OneBot.APIBaseURL == "" || cfg.OneBot.RequestTimeout == 0 {
		return ErrInvalidOneBotConfigs
	}

	if cfg.Grants.Cera < 0 || cfg.Grants.CeraPoint < 0 {
		return ErrInvalidGrantsConfigs
	}

	return nil
}
