package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vittahub/internal/delivery/http/middleware"
	"vittahub/internal/usecase"
	"vittahub/pkg/response"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
	}
}

func (h *ClinicHandler) GetAllClinics(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	location := r.URL.Query().Get("location")

	// A bare list and a filtered list share one endpoint
	if term != "" || location != "" {
		h.SearchClinics(w, r)
		return
	}

	clinics, err := h.clinicUsecase.ListClinics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) SearchClinics(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	location := r.URL.Query().Get("location")

	clinics, err := h.clinicUsecase.SearchClinics(r.Context(), term, location)
	if err != nil {
		response.InternalServerError(w, "Failed to search clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetNearbyClinics(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	clinics, err := h.clinicUsecase.NearbyClinics(r.Context(), sessionID)
	if err != nil {
		response.InternalServerError(w, "Failed to get nearby clinics")
		return
	}

	response.Success(w, http.StatusOK, "Nearby clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	clinic, err := h.clinicUsecase.GetClinic(r.Context(), clinicID)
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

func (h *ClinicHandler) GetClinicProfessionals(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	query := r.URL.Query().Get("q")
	specialty := r.URL.Query().Get("specialty")

	roster, err := h.clinicUsecase.GetRoster(r.Context(), clinicID, query, specialty)
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", roster)
}
