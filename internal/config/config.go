// Package config resolves the API credential and runtime settings.
package config

import (
	"errors"
	"os"
)

// APIKeyEnv is the environment variable holding the Todoist API key.
const APIKeyEnv = "TODOIST_API_KEY"

// ErrMissingAPIKey is returned when the API key environment variable is
// unset or empty.
var ErrMissingAPIKey = errors.New("TODOIST_API_KEY environment variable not set")

// MissingKeyHelp is the remediation message printed when no API key is found.
const MissingKeyHelp = `Error: TODOIST_API_KEY environment variable not set.
Set it with: export TODOIST_API_KEY='your-api-key'
Or add to ~/.bashrc for persistence.
`

// Config holds the resolved credential and runtime settings.
type Config struct {
	// APIKey is the Todoist API key.
	APIKey string

	// BaseURL overrides the API endpoint. Empty means production.
	BaseURL string

	// Debug enables debug logging to stderr.
	Debug bool
}

// FromEnv resolves the configuration from the environment.
// Returns ErrMissingAPIKey if the key variable is unset or empty.
func FromEnv() (*Config, error) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: key}, nil
}
