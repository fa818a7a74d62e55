package converter

import (
	"vittahub/internal/delivery/dto"
	"vittahub/internal/domain/entity"
	"vittahub/pkg/format"
)

// ProcedureToResponse converts a Procedure entity to its DTO, including the
// pt-BR price label.
func ProcedureToResponse(procedure *entity.Procedure) *dto.ProcedureResponse {
	if procedure == nil {
		return nil
	}
	return &dto.ProcedureResponse{
		ID:          procedure.ID,
		Name:        procedure.Name,
		Description: procedure.Description,
		Price:       procedure.Price,
		PriceLabel:  format.Currency(procedure.Price),
	}
}

// ProceduresToResponses converts a slice of Procedure entities to DTOs
func ProceduresToResponses(procedures []entity.Procedure) []dto.ProcedureResponse {
	responses := make([]dto.ProcedureResponse, len(procedures))
	for i := range procedures {
		responses[i] = *ProcedureToResponse(&procedures[i])
	}
	return responses
}
