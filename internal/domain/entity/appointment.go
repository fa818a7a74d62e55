package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a confirmed booking hand-off produced by the wizard.
// It is the terminal payload of a booking attempt: professional, procedure,
// date and time plus the ambient clinic context.
type Appointment struct {
	ID           uuid.UUID    `json:"id"`
	SessionID    string       `json:"session_id"`
	BookingCode  string       `json:"booking_code"`
	ClinicID     int          `json:"clinic_id"`
	ClinicName   string       `json:"clinic_name"`
	Professional Professional `json:"professional"`
	Procedure    Procedure    `json:"procedure"`
	Date         string       `json:"date"` // YYYY-MM-DD
	Time         string       `json:"time"` // HH:MM
	CreatedAt    time.Time    `json:"created_at"`
}
