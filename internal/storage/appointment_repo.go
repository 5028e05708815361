package storage

import (
	"github.com/google/uuid"

	"github.com/manav03panchal/apptremind/internal/model"
)

// AppointmentRepo stores appointments in insertion order. Duplicates are allowed.
type AppointmentRepo struct {
	db  *DB
	seq uint64
}

// NewAppointmentRepo creates a new appointment repository.
func NewAppointmentRepo(db *DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

// Create appends an appointment and assigns its key.
func (r *AppointmentRepo) Create(a *model.Appointment) error {
	key := model.GenerateAppointmentKey(r.seq, uuid.New().String())
	a.SetKey(key)
	if err := r.db.Set(a); err != nil {
		a.SetKey("")
		return err
	}
	r.seq++
	return nil
}

// List retrieves all appointments in insertion order.
func (r *AppointmentRepo) List() ([]*model.Appointment, error) {
	return GetAllByPrefix(r.db, model.PrefixAppointment+":", func() *model.Appointment {
		return &model.Appointment{}
	})
}

// Count returns the number of stored appointments.
func (r *AppointmentRepo) Count() (int, error) {
	return r.db.CountByPrefix(model.PrefixAppointment + ":")
}
