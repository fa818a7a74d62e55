package repository

import (
	"context"

	"vittahub/internal/domain/entity"
	domainRepo "vittahub/internal/domain/repository"
	"vittahub/internal/scheduling"
)

type procedureRepository struct {
	procedures []entity.Procedure
}

// NewProcedureRepository builds an in-memory procedure repository over the
// static procedure catalog.
func NewProcedureRepository(procedures []entity.Procedure) domainRepo.ProcedureRepository {
	return &procedureRepository{procedures: procedures}
}

func (r *procedureRepository) FindAll(ctx context.Context) ([]entity.Procedure, error) {
	out := make([]entity.Procedure, len(r.procedures))
	copy(out, r.procedures)
	return out, nil
}

func (r *procedureRepository) FindByID(ctx context.Context, id int) (*entity.Procedure, error) {
	for _, procedure := range r.procedures {
		if procedure.ID == id {
			p := procedure
			return &p, nil
		}
	}
	return nil, nil
}

func (r *procedureRepository) Search(ctx context.Context, query string) ([]entity.Procedure, error) {
	return scheduling.FilterBySubstring(r.procedures, query, func(p entity.Procedure) []string {
		return []string{p.Name, p.Description}
	}), nil
}
