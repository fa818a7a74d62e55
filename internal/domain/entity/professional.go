package entity

// ProfessionalOrigin tags where a professional record came from
type ProfessionalOrigin string

const (
	// ProfessionalOriginSupplied means the clinic provided its own roster entry
	ProfessionalOriginSupplied ProfessionalOrigin = "supplied"
	// ProfessionalOriginSynthesized means the entry was derived from the clinic's specialty list
	ProfessionalOriginSynthesized ProfessionalOrigin = "synthesized"
)

// Professional represents a care provider offered by a clinic.
// Supplied and synthesized professionals share the exact same shape so
// downstream code never branches on where the record came from.
type Professional struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Specialty string             `json:"specialty"`
	Rating    float64            `json:"rating"`
	ImageURL  string             `json:"image,omitempty"`
	Origin    ProfessionalOrigin `json:"origin"`
}

// Fixed pools used when a clinic has no roster of its own and professionals
// must be synthesized from its specialty list.
var sampleProfessionalNames = []string{
	"Dr. Ana Lima",
	"Dr. Carlos Mendes",
	"Dra. Júlia Rocha",
	"Dr. Pedro Alves",
	"Dra. Marina Torres",
	"Dr. Rafael Nunes",
}

var sampleProfessionalImages = []string{
	"https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=300&h=300&fit=crop&crop=faces",
	"https://images.unsplash.com/photo-1472099645785-648ed127bb54?w=300&h=300&fit=crop&crop=faces",
	"https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=300&h=300&fit=crop&crop=faces",
}

const synthesizedRosterLimit = 6

// SynthesizeRoster derives a deterministic professional roster from a
// specialty list, one professional per specialty, capped at six entries.
func SynthesizeRoster(specialties []string) []Professional {
	limit := synthesizedRosterLimit
	if len(specialties) < limit {
		limit = len(specialties)
	}

	roster := make([]Professional, 0, limit)
	for idx, specialty := range specialties[:limit] {
		roster = append(roster, Professional{
			ID:        idx + 1,
			Name:      sampleProfessionalNames[idx%len(sampleProfessionalNames)],
			Specialty: specialty,
			Rating:    4.8,
			ImageURL:  sampleProfessionalImages[idx%len(sampleProfessionalImages)],
			Origin:    ProfessionalOriginSynthesized,
		})
	}
	return roster
}
