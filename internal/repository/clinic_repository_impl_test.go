package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vittahub/internal/domain/entity"
	domainRepo "vittahub/internal/domain/repository"
)

func testClinics() []entity.Clinic {
	return []entity.Clinic{
		{
			ID:          1,
			Name:        "Clínica CardioVida",
			Category:    "Cardiologia",
			Description: "Centro especializado em saúde cardiovascular.",
			Address:     "Av. Paulista, 1000 - São Paulo, SP",
			Specialties: []string{"Cardiologia", "Angiologia"},
		},
		{
			ID:          2,
			Name:        "OrtoCenter Ipanema",
			Category:    "Ortopedia",
			Description: "Tratamento de lesões ortopédicas e esportivas.",
			Address:     "Rua Visconde de Pirajá, 500 - Rio de Janeiro, RJ",
			Specialties: []string{"Ortopedia", "Fisioterapia"},
		},
		{
			ID:          3,
			Name:        "Sorriso & Cia",
			Category:    "Odontologia",
			Description: "Odontologia geral e estética.",
			Address:     "Av. Afonso Pena, 300 - Belo Horizonte, MG",
			Specialties: []string{"Odontologia"},
		},
	}
}

func clinicIDs(clinics []entity.Clinic) []int {
	ids := make([]int, 0, len(clinics))
	for _, c := range clinics {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestClinicRepository_FindAll(t *testing.T) {
	repo := NewClinicRepository(testClinics())

	clinics, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, clinicIDs(clinics))
}

func TestClinicRepository_FindByID(t *testing.T) {
	repo := NewClinicRepository(testClinics())
	ctx := context.Background()

	clinic, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, clinic)
	assert.Equal(t, "OrtoCenter Ipanema", clinic.Name)

	missing, err := repo.FindByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClinicRepository_Search(t *testing.T) {
	repo := NewClinicRepository(testClinics())
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  domainRepo.ClinicFilter
		wantIDs []int
	}{
		{"empty filter keeps all", domainRepo.ClinicFilter{}, []int{1, 2, 3}},
		{"term over name", domainRepo.ClinicFilter{Term: "cardiovida"}, []int{1}},
		{"term over name word", domainRepo.ClinicFilter{Term: "sorriso"}, []int{3}},
		{"term over specialty", domainRepo.ClinicFilter{Term: "fisioterapia"}, []int{2}},
		{"term over category", domainRepo.ClinicFilter{Term: "odonto"}, []int{3}},
		{"term over description", domainRepo.ClinicFilter{Term: "esportivas"}, []int{2}},
		{"term is case insensitive", domainRepo.ClinicFilter{Term: "CARDIO"}, []int{1}},
		{"location by city", domainRepo.ClinicFilter{Location: "Rio de Janeiro - RJ"}, []int{2}},
		{"location by parsed state", domainRepo.ClinicFilter{Location: "Campinas - SP"}, []int{1}},
		{"unparseable location falls back to raw contains", domainRepo.ClinicFilter{Location: "Belo Horizonte"}, []int{3}},
		{"location narrows before term", domainRepo.ClinicFilter{Term: "clínica", Location: "São Paulo - SP"}, []int{1}},
		{"location excludes despite term match", domainRepo.ClinicFilter{Term: "ortopedia", Location: "São Paulo - SP"}, []int{}},
		{"no match", domainRepo.ClinicFilter{Term: "pediatria"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, clinicIDs(got))
		})
	}
}
