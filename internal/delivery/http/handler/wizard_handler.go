package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vittahub/internal/delivery/dto"
	"vittahub/internal/delivery/http/middleware"
	"vittahub/internal/usecase"
	"vittahub/pkg/response"
	"vittahub/pkg/validator"
)

type WizardHandler struct {
	wizardUsecase usecase.WizardUsecase
	validator     *validator.CustomValidator
}

func NewWizardHandler(wizardUsecase usecase.WizardUsecase, validator *validator.CustomValidator) *WizardHandler {
	return &WizardHandler{
		wizardUsecase: wizardUsecase,
		validator:     validator,
	}
}

func (h *WizardHandler) OpenWizard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	vars := mux.Vars(r)
	clinicID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	// The body is optional; opening from a professional card pre-selects
	var req dto.OpenWizardRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
		if err := h.validator.Validate(&req); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	state, err := h.wizardUsecase.Open(r.Context(), sessionID, clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrProfessionalNotFound:
			response.Error(w, http.StatusBadRequest, "Professional not found in clinic roster", nil)
		default:
			response.InternalServerError(w, "Failed to open wizard")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Wizard opened successfully", state)
}

func (h *WizardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.State(r.Context(), sessionID)
	})
}

func (h *WizardHandler) SelectProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectProfessionalRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.SelectProfessional(r.Context(), sessionID, req.ProfessionalID)
	})
}

func (h *WizardHandler) SelectProcedure(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectProcedureRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.SelectProcedure(r.Context(), sessionID, req.ProcedureID)
	})
}

func (h *WizardHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDateRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.SelectDate(r.Context(), sessionID, req.Date)
	})
}

func (h *WizardHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectTimeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.SelectTime(r.Context(), sessionID, req.Time)
	})
}

func (h *WizardHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.Advance(r.Context(), sessionID)
	})
}

func (h *WizardHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.respondState(w, r, func(sessionID string) (*dto.WizardStateResponse, error) {
		return h.wizardUsecase.Retreat(r.Context(), sessionID)
	})
}

func (h *WizardHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	appointment, err := h.wizardUsecase.Confirm(r.Context(), sessionID)
	if err != nil {
		switch err {
		case usecase.ErrWizardNotFound:
			response.NotFound(w, "No open wizard for this session")
		case usecase.ErrNotConfirmable:
			response.Error(w, http.StatusConflict, "Wizard is not at the confirmation step", nil)
		default:
			response.InternalServerError(w, "Failed to confirm appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment confirmed successfully", appointment)
}

func (h *WizardHandler) CloseWizard(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	if err := h.wizardUsecase.Close(r.Context(), sessionID); err != nil {
		if err == usecase.ErrWizardNotFound {
			response.NotFound(w, "No open wizard for this session")
			return
		}
		response.InternalServerError(w, "Failed to close wizard")
		return
	}

	response.Success(w, http.StatusOK, "Wizard closed successfully", nil)
}

func (h *WizardHandler) GetBookableDates(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	dates, err := h.wizardUsecase.BookableDates(r.Context(), sessionID)
	if err != nil {
		h.wizardError(w, err, "Failed to get bookable dates")
		return
	}

	response.Success(w, http.StatusOK, "Bookable dates retrieved successfully", dates)
}

func (h *WizardHandler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	date := r.URL.Query().Get("date")
	times, err := h.wizardUsecase.AvailableTimes(r.Context(), sessionID, date)
	if err != nil {
		h.wizardError(w, err, "Failed to get available times")
		return
	}

	response.Success(w, http.StatusOK, "Available times retrieved successfully", times)
}

func (h *WizardHandler) SearchProfessionals(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	roster, err := h.wizardUsecase.SearchProfessionals(r.Context(), sessionID, r.URL.Query().Get("q"))
	if err != nil {
		h.wizardError(w, err, "Failed to search professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", roster)
}

func (h *WizardHandler) SearchProcedures(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	procedures, err := h.wizardUsecase.SearchProcedures(r.Context(), sessionID, r.URL.Query().Get("q"))
	if err != nil {
		h.wizardError(w, err, "Failed to search procedures")
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}

func (h *WizardHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	appointments, err := h.wizardUsecase.Appointments(r.Context(), sessionID)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *WizardHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *WizardHandler) respondState(w http.ResponseWriter, r *http.Request, op func(sessionID string) (*dto.WizardStateResponse, error)) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	state, err := op(sessionID)
	if err != nil {
		switch err {
		case usecase.ErrWizardNotFound:
			response.NotFound(w, "No open wizard for this session")
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrProfessionalNotFound:
			response.Error(w, http.StatusBadRequest, "Professional not found in clinic roster", nil)
		case usecase.ErrProcedureNotFound:
			response.Error(w, http.StatusBadRequest, "Procedure not found", nil)
		default:
			response.InternalServerError(w, "Failed to update wizard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Wizard state retrieved successfully", state)
}

func (h *WizardHandler) wizardError(w http.ResponseWriter, err error, fallback string) {
	if err == usecase.ErrWizardNotFound {
		response.NotFound(w, "No open wizard for this session")
		return
	}
	response.InternalServerError(w, fallback)
}
