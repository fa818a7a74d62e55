package repository

import (
	"context"

	"vittahub/internal/domain/entity"
)

// ClinicFilter is a domain-level filter for querying the clinic catalog.
// Used by the repository layer to avoid coupling with delivery DTOs.
type ClinicFilter struct {
	Term     string // free-text search over name, specialties, category, description
	Location string // location label such as "São Paulo - SP", matched against addresses
}

type ClinicRepository interface {
	FindAll(ctx context.Context) ([]entity.Clinic, error)
	FindByID(ctx context.Context, id int) (*entity.Clinic, error)
	Search(ctx context.Context, filter ClinicFilter) ([]entity.Clinic, error)
}
