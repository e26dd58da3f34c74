package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidOneBotConfigs indicates invalid chat transport settings
	// (for example, missing API base URL or request timeout).
	ErrInvalidOneBotConfigs = errors.New("invalid onebot configuration")
	// ErrInvalidGrantsConfigs indicates invalid initial currency settings
	// (for example, a negative grant amount).
	ErrInvalidGrantsConfigs = errors.New("invalid grants configuration")
)
