// Package model defines the domain models for apptremind.
package model

// Model is the interface that all stored models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixAppointment = "appointment"
)
