package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID           uuid.UUID            `json:"id"`
	BookingCode  string               `json:"booking_code"`
	ClinicID     int                  `json:"clinic_id"`
	ClinicName   string               `json:"clinic_name"`
	Professional ProfessionalResponse `json:"professional"`
	Procedure    ProcedureResponse    `json:"procedure"`
	Date         string               `json:"date"`
	DateLabel    string               `json:"date_label"`
	Time         string               `json:"time"`
	CreatedAt    time.Time            `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
