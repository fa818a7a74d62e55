package converter

import (
	"vittahub/internal/delivery/dto"
	"vittahub/internal/domain/entity"
	"vittahub/internal/wizard"
	"vittahub/pkg/format"
)

// WizardToStateResponse converts a wizard to the full state snapshot
// returned by every wizard endpoint. Rejected transitions are observable
// only as an unchanged snapshot.
func WizardToStateResponse(w *wizard.Wizard) *dto.WizardStateResponse {
	selection := w.Selection()
	clinic := w.Clinic()

	steps := make([]dto.WizardStepResponse, 0, int(wizard.StepConfirmation))
	for s := wizard.StepProfessional; s <= wizard.StepConfirmation; s++ {
		steps = append(steps, dto.WizardStepResponse{
			ID:      int(s),
			Title:   s.Label(),
			Current: s == w.Step(),
			Done:    s < w.Step(),
		})
	}

	response := &dto.WizardStateResponse{
		ClinicID:     clinic.ID,
		ClinicName:   clinic.Name,
		Step:         int(w.Step()),
		StepTitle:    w.Step().Label(),
		Steps:        steps,
		Professional: ProfessionalToResponse(selection.Professional),
		Procedure:    ProcedureToResponse(selection.Procedure),
		Date:         selection.Date,
		Time:         selection.Time,
		CanAdvance:   w.CanAdvance(),
	}
	if selection.Date != "" {
		response.DateLabel = format.LongDate(selection.Date)
	}
	return response
}

// AppointmentToResponse converts a confirmed Appointment to its DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		BookingCode:  appointment.BookingCode,
		ClinicID:     appointment.ClinicID,
		ClinicName:   appointment.ClinicName,
		Professional: *ProfessionalToResponse(&appointment.Professional),
		Procedure:    *ProcedureToResponse(&appointment.Procedure),
		Date:         appointment.Date,
		DateLabel:    format.LongDate(appointment.Date),
		Time:         appointment.Time,
		CreatedAt:    appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointments to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
