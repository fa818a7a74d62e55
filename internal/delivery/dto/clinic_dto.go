package dto

// Response DTOs

type ClinicResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
}

type ClinicDetailResponse struct {
	ClinicResponse
	Professionals []ProfessionalResponse `json:"professionals"`
	Reviews       []ReviewResponse       `json:"reviews"`
	OpeningHours  []OpeningHoursResponse `json:"opening_hours"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}

type ProfessionalResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	Image     string  `json:"image,omitempty"`
	Origin    string  `json:"origin"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Specialties   []string               `json:"specialties"`
	Total         int                    `json:"total"`
}

type ReviewResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}

type OpeningHoursResponse struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}
