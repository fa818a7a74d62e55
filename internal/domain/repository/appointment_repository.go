package repository

import (
	"context"

	"github.com/google/uuid"

	"vittahub/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindBySessionID(ctx context.Context, sessionID string) ([]entity.Appointment, error)
}
