package repository

import (
	"context"

	"vittahub/internal/domain/entity"
)

type ProcedureRepository interface {
	FindAll(ctx context.Context) ([]entity.Procedure, error)
	FindByID(ctx context.Context, id int) (*entity.Procedure, error)
	Search(ctx context.Context, query string) ([]entity.Procedure, error)
}
