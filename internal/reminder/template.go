// Package reminder renders appointments into reminder text.
//
// Substitution is literal: every occurrence of the word "time" in the template is
// replaced by the appointment time, then every occurrence of "name" in the result is
// replaced by the appointment name. Occurrences inside other words, or inside a value
// substituted by the first pass, are replaced too.
package reminder

import (
	"strings"

	"github.com/manav03panchal/apptremind/internal/model"
)

// Substitution markers.
const (
	MarkerTime = "time"
	MarkerName = "name"
)

// DefaultMessage is the template used until the user sets a new one.
const DefaultMessage = "Hi name, this is Parker. I just want to remind you about your appointment with bishop at time"

// TextTemplate holds the current reminder message. It is shared by pointer between
// the menu loop and the manager.
type TextTemplate struct {
	message string
}

// NewTextTemplate creates a template with the given message.
func NewTextTemplate(message string) *TextTemplate {
	return &TextTemplate{message: message}
}

// Message returns the current message.
func (t *TextTemplate) Message() string {
	return t.message
}

// SetMessage replaces the message. Markers are not required.
func (t *TextTemplate) SetMessage(message string) {
	t.message = message
}

// Render applies the template to an appointment.
func (t *TextTemplate) Render(a *model.Appointment) string {
	msg := strings.ReplaceAll(t.message, MarkerTime, a.Time)
	msg = strings.ReplaceAll(msg, MarkerName, a.Name)
	if a.IsTyped() {
		msg += " for " + string(a.Category)
	}
	return msg
}

// RenderAll renders each appointment in order.
func (t *TextTemplate) RenderAll(appointments []*model.Appointment) []string {
	out := make([]string, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, t.Render(a))
	}
	return out
}
