package entity

// Clinic represents a medical clinic in the static catalog
type Clinic struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Description   string         `json:"description"`
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	Rating        float64        `json:"rating"`
	Specialties   []string       `json:"specialties"`
	Professionals []Professional `json:"professionals,omitempty"`
	Reviews       []Review       `json:"reviews,omitempty"`
	OpeningHours  []OpeningHours `json:"opening_hours,omitempty"`
}

// Review is a patient review attached to a clinic
type Review struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"` // YYYY-MM-DD
	Comment string `json:"comment"`
}

// OpeningHours describes a clinic's attendance window for a day range
type OpeningHours struct {
	Days  string `json:"days"`  // e.g. "Seg - Sex"
	Hours string `json:"hours"` // e.g. "08:00 - 18:00"
}

// Roster returns the clinic's professionals, synthesizing them from the
// specialty list when the clinic did not supply its own.
func (c *Clinic) Roster() []Professional {
	if len(c.Professionals) > 0 {
		return c.Professionals
	}
	return SynthesizeRoster(c.Specialties)
}

// RosterSpecialties returns the distinct specialties present in the roster,
// in first-seen order.
func (c *Clinic) RosterSpecialties() []string {
	seen := make(map[string]bool)
	specialties := make([]string, 0)
	for _, p := range c.Roster() {
		if !seen[p.Specialty] {
			seen[p.Specialty] = true
			specialties = append(specialties, p.Specialty)
		}
	}
	return specialties
}
