package dto

// Request DTOs

type OpenWizardRequest struct {
	ProfessionalID *int `json:"professional_id" validate:"omitempty,min=1"`
}

type SelectProfessionalRequest struct {
	ProfessionalID int `json:"professional_id" validate:"required,min=1"`
}

type SelectProcedureRequest struct {
	ProcedureID int `json:"procedure_id" validate:"required,min=1"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required"` // Format: YYYY-MM-DD
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required"` // Format: HH:MM
}

// Response DTOs

type WizardStepResponse struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Current bool   `json:"current"`
	Done    bool   `json:"done"`
}

type WizardStateResponse struct {
	ClinicID     int                   `json:"clinic_id"`
	ClinicName   string                `json:"clinic_name"`
	Step         int                   `json:"step"`
	StepTitle    string                `json:"step_title"`
	Steps        []WizardStepResponse  `json:"steps"`
	Professional *ProfessionalResponse `json:"professional,omitempty"`
	Procedure    *ProcedureResponse    `json:"procedure,omitempty"`
	Date         string                `json:"date,omitempty"`
	DateLabel    string                `json:"date_label,omitempty"` // long pt-BR form
	Time         string                `json:"time,omitempty"`
	CanAdvance   bool                  `json:"can_advance"`
}

type BookableDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailableTimesResponse struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}
