package config

import "time"

// defaultTokenDuration is the session token lifetime applied when no
// duration is configured. One hour, matching the documented token contract.
const defaultTokenDuration = time.Hour

// defaultTokenIssuer identifies this service in the "iss" claim when no
// issuer is configured explicitly.
const defaultTokenIssuer = "travel-diary"

// applyDefaults fills zero-valued fields that have a safe application
// default. Secrets deliberately have no default and are caught by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.SQLitePath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
