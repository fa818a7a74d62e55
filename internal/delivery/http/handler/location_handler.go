package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"vittahub/internal/delivery/dto"
	"vittahub/internal/delivery/http/middleware"
	"vittahub/internal/infrastructure/geocode"
	"vittahub/internal/usecase"
	"vittahub/pkg/response"
	"vittahub/pkg/validator"
)

type LocationHandler struct {
	locationUsecase usecase.LocationUsecase
	validator       *validator.CustomValidator
}

func NewLocationHandler(locationUsecase usecase.LocationUsecase, validator *validator.CustomValidator) *LocationHandler {
	return &LocationHandler{
		locationUsecase: locationUsecase,
		validator:       validator,
	}
}

func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	location, err := h.locationUsecase.GetLocation(r.Context(), sessionID)
	if err != nil {
		response.InternalServerError(w, "Failed to load location")
		return
	}

	response.Success(w, http.StatusOK, "Location retrieved successfully", location)
}

func (h *LocationHandler) SaveLocation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	var req dto.SaveLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.SaveLocation(r.Context(), sessionID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save location")
		return
	}

	response.Success(w, http.StatusOK, "Location saved successfully", location)
}

func (h *LocationHandler) ClearLocation(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusBadRequest, "Session not resolved", nil)
		return
	}

	if err := h.locationUsecase.ClearLocation(r.Context(), sessionID); err != nil {
		response.InternalServerError(w, "Failed to clear location")
		return
	}

	response.Success(w, http.StatusOK, "Location cleared successfully", nil)
}

func (h *LocationHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	var req dto.ReverseGeocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	location, err := h.locationUsecase.ReverseGeocode(r.Context(), &req)
	if err != nil {
		if errors.Is(err, geocode.ErrLocationNotFound) {
			response.NotFound(w, "No location found for these coordinates")
			return
		}
		response.BadGateway(w, "Reverse geocoding is unavailable")
		return
	}

	response.Success(w, http.StatusOK, "Location resolved successfully", location)
}
