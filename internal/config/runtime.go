// Package config provides centralized configuration for apptremind runtime values.
package config

import "github.com/manav03panchal/apptremind/internal/reminder"

// RuntimeConfig holds the values a session starts with. Command-line flags
// override them.
type RuntimeConfig struct {
	// Template is the reminder message the session starts with.
	// Default: reminder.DefaultMessage
	Template string

	// Color is the color mode: auto, always or never.
	// Default: auto
	Color string

	// Debug enables structured debug logs on stderr.
	// Default: false
	Debug bool
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Template: reminder.DefaultMessage,
		Color:    "auto",
		Debug:    false,
	}
}

// Load returns the configuration a session starts from before flags apply.
// The environment is not consulted.
func Load() *RuntimeConfig {
	return DefaultRuntimeConfig()
}
