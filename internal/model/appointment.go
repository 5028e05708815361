package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/manav03panchal/apptremind/internal/errors"
)

// Category tags a detailed appointment. The zero value marks a plain appointment.
type Category string

const (
	CategoryNone         Category = ""
	CategoryConsultation Category = "consultation"
	CategoryFollowup     Category = "followup"
	CategoryInterview    Category = "interview"
)

// ValidCategories returns the accepted categories in prompt order.
func ValidCategories() []Category {
	return []Category{CategoryConsultation, CategoryFollowup, CategoryInterview}
}

// ParseCategory matches input case-insensitively against the accepted categories.
// Surrounding whitespace is significant: " interview" is rejected.
func ParseCategory(input string) (Category, error) {
	lower := strings.ToLower(input)
	for _, c := range ValidCategories() {
		if lower == string(c) {
			return c, nil
		}
	}
	return CategoryNone, errors.NewInputError(errors.ErrInvalidCategory, "category", input, "Invalid appointment type.")
}

// Appointment is a scheduled meeting with a person. A non-empty Category makes it
// a detailed (typed) appointment.
type Appointment struct {
	Key       string    `json:"key"`
	Time      string    `json:"time"`
	Name      string    `json:"name"`
	Category  Category  `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAppointment creates a plain appointment.
func NewAppointment(t, name string) *Appointment {
	return &Appointment{
		Time:      t,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewDetailedAppointment creates a typed appointment.
func NewDetailedAppointment(t, name string, category Category) *Appointment {
	a := NewAppointment(t, name)
	a.Category = category
	return a
}

// NewDetailedAppointmentFromInput parses the category and creates a typed appointment.
func NewDetailedAppointmentFromInput(t, name, categoryInput string) (*Appointment, error) {
	category, err := ParseCategory(categoryInput)
	if err != nil {
		return nil, err
	}
	return NewDetailedAppointment(t, name, category), nil
}

// SetKey sets the database key for this appointment.
func (a *Appointment) SetKey(key string) {
	a.Key = key
}

// GetKey returns the database key for this appointment.
func (a *Appointment) GetKey() string {
	return a.Key
}

// IsTyped returns true if the appointment carries a category.
func (a *Appointment) IsTyped() bool {
	return a.Category != CategoryNone
}

func (a *Appointment) String() string {
	s := fmt.Sprintf("Appointment with %s at %s", a.Name, a.Time)
	if a.IsTyped() {
		s += " for " + string(a.Category)
	}
	return s
}

// GenerateAppointmentKey builds a key that sorts in insertion order.
// Key format: "appointment:<20-digit sequence>:<uuid>"
func GenerateAppointmentKey(seq uint64, id string) string {
	return fmt.Sprintf("%s:%020d:%s", PrefixAppointment, seq, id)
}
