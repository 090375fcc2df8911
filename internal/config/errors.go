package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty token signing key). The signing key is never
	// hardcoded; it must arrive through configuration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (neither a PostgreSQL DSN nor a SQLite path was provided).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
