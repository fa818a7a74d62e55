package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"vittahub/internal/domain/entity"
	domainRepo "vittahub/internal/domain/repository"
)

// appointmentRepository keeps confirmed appointments in memory for the
// lifetime of the process. They are a hand-off record, not durable state.
type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, appointment := range r.appointments {
		if appointment.ID == id {
			a := appointment
			return &a, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) FindBySessionID(ctx context.Context, sessionID string) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]entity.Appointment, 0)
	for _, appointment := range r.appointments {
		if appointment.SessionID == sessionID {
			results = append(results, appointment)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}
