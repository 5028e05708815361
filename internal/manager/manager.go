// Package manager holds the appointment collection and writes reminders for it.
package manager

import (
	"github.com/manav03panchal/apptremind/internal/logging"
	"github.com/manav03panchal/apptremind/internal/model"
	"github.com/manav03panchal/apptremind/internal/output"
	"github.com/manav03panchal/apptremind/internal/reminder"
	"github.com/manav03panchal/apptremind/internal/storage"
)

// NoAppointmentsNotice is written instead of reminders when the collection is empty.
const NoAppointmentsNotice = "No appointments to create"

// Manager keeps appointments in insertion order and renders them through a shared
// template. Changes to the template are seen by the next WriteReminders call.
type Manager struct {
	repo     *storage.AppointmentRepo
	template *reminder.TextTemplate
}

// New creates a manager over repo using tmpl.
func New(repo *storage.AppointmentRepo, tmpl *reminder.TextTemplate) *Manager {
	return &Manager{
		repo:     repo,
		template: tmpl,
	}
}

// Template returns the shared template.
func (m *Manager) Template() *reminder.TextTemplate {
	return m.template
}

// Add appends an appointment. Only a store failure can make it fail.
func (m *Manager) Add(a *model.Appointment) error {
	if err := m.repo.Create(a); err != nil {
		return err
	}
	logging.LogOperation("add", logging.KeyAppointment, a.String(), logging.KeyCategory, string(a.Category))
	return nil
}

// Appointments returns the collection in insertion order.
func (m *Manager) Appointments() ([]*model.Appointment, error) {
	return m.repo.List()
}

// Count returns the number of appointments.
func (m *Manager) Count() (int, error) {
	return m.repo.Count()
}

// Reminders renders every appointment with the current template.
func (m *Manager) Reminders() ([]string, error) {
	appointments, err := m.repo.List()
	if err != nil {
		return nil, err
	}
	return m.template.RenderAll(appointments), nil
}

// WriteReminders prints one reminder per appointment, or the empty notice.
func (m *Manager) WriteReminders(out *output.CLIFormatter) error {
	reminders, err := m.Reminders()
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		out.Muted(NoAppointmentsNotice)
		return nil
	}

	for _, r := range reminders {
		out.Line(r)
	}
	logging.LogOperation("write_reminders", logging.KeyCount, len(reminders))
	return nil
}
