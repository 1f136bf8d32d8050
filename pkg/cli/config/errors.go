package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidLogLevel  = goerr.New("invalid log level")
	ErrInvalidLogFormat = goerr.New("invalid log format")
	ErrInvalidBackend   = goerr.New("invalid repository backend")
	ErrMissingProjectID = goerr.New("firestore project ID is required")
	ErrMissingDatabase  = goerr.New("mongo database name is required")
	ErrSecretsNotFound  = goerr.New("mongo secrets file not found")
	ErrInvalidSecrets   = goerr.New("invalid mongo secrets file")
	ErrInvalidTimezone  = goerr.New("invalid timezone")
)

// Context keys for error values
const (
	SecretsPathKey = "secrets_path"
	BackendKey     = "backend"
	TimezoneKey    = "timezone"
)
