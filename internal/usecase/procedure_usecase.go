package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"vittahub/internal/converter"
	"vittahub/internal/delivery/dto"
	"vittahub/internal/domain/repository"
)

var ErrProcedureNotFound = errors.New("procedure not found")

type ProcedureUsecase interface {
	ListProcedures(ctx context.Context, query string) (*dto.ProcedureListResponse, error)
}

type procedureUsecase struct {
	log           *logrus.Logger
	procedureRepo repository.ProcedureRepository
}

func NewProcedureUsecase(log *logrus.Logger, procedureRepo repository.ProcedureRepository) ProcedureUsecase {
	return &procedureUsecase{
		log:           log,
		procedureRepo: procedureRepo,
	}
}

func (u *procedureUsecase) ListProcedures(ctx context.Context, query string) (*dto.ProcedureListResponse, error) {
	procedures, err := u.procedureRepo.Search(ctx, query)
	if err != nil {
		u.log.Warnf("Failed to list procedures: %+v", err)
		return nil, err
	}
	return &dto.ProcedureListResponse{
		Procedures: converter.ProceduresToResponses(procedures),
		Total:      len(procedures),
	}, nil
}
