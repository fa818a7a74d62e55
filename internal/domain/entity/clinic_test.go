package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_PrefersSuppliedProfessionals(t *testing.T) {
	clinic := Clinic{
		Specialties: []string{"Cardiologia", "Ortopedia"},
		Professionals: []Professional{
			{ID: 10, Name: "Dr. House", Specialty: "Diagnóstico", Origin: ProfessionalOriginSupplied},
		},
	}

	roster := clinic.Roster()
	require.Len(t, roster, 1)
	assert.Equal(t, "Dr. House", roster[0].Name)
	assert.Equal(t, ProfessionalOriginSupplied, roster[0].Origin)
}

func TestRoster_SynthesizesFromSpecialties(t *testing.T) {
	clinic := Clinic{
		Specialties: []string{"Cardiologia", "Ortopedia", "Dermatologia"},
	}

	roster := clinic.Roster()
	require.Len(t, roster, 3)

	for i, p := range roster {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Equal(t, clinic.Specialties[i], p.Specialty)
		assert.Equal(t, 4.8, p.Rating)
		assert.NotEmpty(t, p.ImageURL)
		assert.Equal(t, ProfessionalOriginSynthesized, p.Origin)
	}

	// Determinism: same input, same roster
	assert.Equal(t, roster, clinic.Roster())
}

func TestSynthesizeRoster_CapsAtSixEntries(t *testing.T) {
	specialties := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	roster := SynthesizeRoster(specialties)
	assert.Len(t, roster, 6)
}

func TestSynthesizeRoster_EmptySpecialties(t *testing.T) {
	assert.Empty(t, SynthesizeRoster(nil))
}

func TestRosterSpecialties_DistinctFirstSeenOrder(t *testing.T) {
	clinic := Clinic{
		Professionals: []Professional{
			{ID: 1, Specialty: "Cardiologia"},
			{ID: 2, Specialty: "Ortopedia"},
			{ID: 3, Specialty: "Cardiologia"},
		},
	}

	assert.Equal(t, []string{"Cardiologia", "Ortopedia"}, clinic.RosterSpecialties())
}
