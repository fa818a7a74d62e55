package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vittahub/internal/delivery/dto"
	"vittahub/internal/infrastructure/catalog"
	"vittahub/internal/repository"
	"vittahub/internal/service"
)

func newTestClinicUsecase(t *testing.T) (ClinicUsecase, *service.LocationService) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	locationService := service.NewLocationService(service.NewMemorySessionStore(), log)
	uc := NewClinicUsecase(log, repository.NewClinicRepository(catalog.Clinics()), locationService)
	return uc, locationService
}

func responseIDs(clinics []dto.ClinicResponse) []int {
	ids := make([]int, 0, len(clinics))
	for _, c := range clinics {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestClinicUsecase_ListClinics(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	clinics, err := uc.ListClinics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, clinics.Total)
	assert.Len(t, clinics.Clinics, 8)
}

func TestClinicUsecase_SearchClinics(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	results, err := uc.SearchClinics(context.Background(), "cardio", "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7}, responseIDs(results.Clinics))

	results, err = uc.SearchClinics(context.Background(), "cardio", "Rio de Janeiro - RJ")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, responseIDs(results.Clinics))
}

func TestClinicUsecase_GetClinic(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)
	ctx := context.Background()

	clinic, err := uc.GetClinic(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Clínica CardioVida", clinic.Name)
	// Supplied roster passes through untouched
	require.Len(t, clinic.Professionals, 3)
	assert.Equal(t, "supplied", clinic.Professionals[0].Origin)
	assert.NotEmpty(t, clinic.Reviews)

	_, err = uc.GetClinic(ctx, 999)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestClinicUsecase_GetClinic_SynthesizesRoster(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	// Clinic 2 carries no roster of its own
	clinic, err := uc.GetClinic(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, clinic.Professionals, 3)
	for i, p := range clinic.Professionals {
		assert.Equal(t, "synthesized", p.Origin)
		assert.Equal(t, clinic.Specialties[i], p.Specialty)
	}
}

func TestClinicUsecase_GetRoster(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)
	ctx := context.Background()

	roster, err := uc.GetRoster(ctx, 1, "", "")
	require.NoError(t, err)
	assert.Equal(t, 3, roster.Total)
	assert.Equal(t, []string{"Cardiologia", "Angiologia"}, roster.Specialties)

	roster, err = uc.GetRoster(ctx, 1, "helena", "")
	require.NoError(t, err)
	require.Equal(t, 1, roster.Total)
	assert.Equal(t, "Dra. Helena Duarte", roster.Professionals[0].Name)

	roster, err = uc.GetRoster(ctx, 1, "", "Angiologia")
	require.NoError(t, err)
	require.Equal(t, 1, roster.Total)
	assert.Equal(t, "Dr. Fábio Siqueira", roster.Professionals[0].Name)

	_, err = uc.GetRoster(ctx, 999, "", "")
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestClinicUsecase_NearbyClinics_WithoutLocation(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	nearby, err := uc.NearbyClinics(context.Background(), "visitor-1")
	require.NoError(t, err)

	// Best-rated overall, capped at four
	assert.Equal(t, []int{4, 1, 8, 3}, responseIDs(nearby.Clinics))
}

func TestClinicUsecase_NearbyClinics_SameCityFirst(t *testing.T) {
	uc, locationService := newTestClinicUsecase(t)
	ctx := context.Background()

	require.NoError(t, locationService.Save(ctx, "visitor-1", "Rio de Janeiro - RJ"))

	nearby, err := uc.NearbyClinics(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, responseIDs(nearby.Clinics))
}

func TestClinicUsecase_NearbyClinics_SameStateFallback(t *testing.T) {
	uc, locationService := newTestClinicUsecase(t)
	ctx := context.Background()

	// No catalog clinic sits in Campinas, but two share the state
	require.NoError(t, locationService.Save(ctx, "visitor-1", "Campinas - SP"))

	nearby, err := uc.NearbyClinics(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, responseIDs(nearby.Clinics))
}

func TestClinicUsecase_NearbyClinics_UnmatchedRegionFallsBackToRating(t *testing.T) {
	uc, locationService := newTestClinicUsecase(t)
	ctx := context.Background()

	require.NoError(t, locationService.Save(ctx, "visitor-1", "Fortaleza - CE"))

	nearby, err := uc.NearbyClinics(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 8, 3}, responseIDs(nearby.Clinics))
}
