package handler

import (
	"net/http"

	"vittahub/internal/usecase"
	"vittahub/pkg/response"
)

type ProcedureHandler struct {
	procedureUsecase usecase.ProcedureUsecase
}

func NewProcedureHandler(procedureUsecase usecase.ProcedureUsecase) *ProcedureHandler {
	return &ProcedureHandler{
		procedureUsecase: procedureUsecase,
	}
}

func (h *ProcedureHandler) GetAllProcedures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	procedures, err := h.procedureUsecase.ListProcedures(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to list procedures")
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}
