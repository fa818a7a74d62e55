package converter

import (
	"vittahub/internal/delivery/dto"
	"vittahub/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to its list-level DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}
	return &dto.ClinicResponse{
		ID:          clinic.ID,
		Name:        clinic.Name,
		Category:    clinic.Category,
		Description: clinic.Description,
		Address:     clinic.Address,
		Phone:       clinic.Phone,
		Rating:      clinic.Rating,
		Specialties: clinic.Specialties,
	}
}

// ClinicsToResponses converts a slice of Clinic entities to list DTOs
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i := range clinics {
		responses[i] = *ClinicToResponse(&clinics[i])
	}
	return responses
}

// ClinicToDetailResponse converts a Clinic entity to its detail DTO,
// including the (possibly synthesized) roster, reviews and opening hours.
func ClinicToDetailResponse(clinic *entity.Clinic) *dto.ClinicDetailResponse {
	if clinic == nil {
		return nil
	}

	reviews := make([]dto.ReviewResponse, len(clinic.Reviews))
	for i, review := range clinic.Reviews {
		reviews[i] = dto.ReviewResponse{
			ID:      review.ID,
			Name:    review.Name,
			Rating:  review.Rating,
			Date:    review.Date,
			Comment: review.Comment,
		}
	}

	hours := make([]dto.OpeningHoursResponse, len(clinic.OpeningHours))
	for i, h := range clinic.OpeningHours {
		hours[i] = dto.OpeningHoursResponse{Days: h.Days, Hours: h.Hours}
	}

	return &dto.ClinicDetailResponse{
		ClinicResponse: *ClinicToResponse(clinic),
		Professionals:  ProfessionalsToResponses(clinic.Roster()),
		Reviews:        reviews,
		OpeningHours:   hours,
	}
}

// ProfessionalToResponse converts a Professional entity to its DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}
	return &dto.ProfessionalResponse{
		ID:        professional.ID,
		Name:      professional.Name,
		Specialty: professional.Specialty,
		Rating:    professional.Rating,
		Image:     professional.ImageURL,
		Origin:    string(professional.Origin),
	}
}

// ProfessionalsToResponses converts a roster to DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
