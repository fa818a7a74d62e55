package repository

import (
	"context"
	"strings"

	"vittahub/internal/domain/entity"
	domainRepo "vittahub/internal/domain/repository"
)

type clinicRepository struct {
	clinics []entity.Clinic
}

// NewClinicRepository builds an in-memory clinic repository over a static
// catalog snapshot.
func NewClinicRepository(clinics []entity.Clinic) domainRepo.ClinicRepository {
	return &clinicRepository{clinics: clinics}
}

func (r *clinicRepository) FindAll(ctx context.Context) ([]entity.Clinic, error) {
	out := make([]entity.Clinic, len(r.clinics))
	copy(out, r.clinics)
	return out, nil
}

func (r *clinicRepository) FindByID(ctx context.Context, id int) (*entity.Clinic, error) {
	for _, clinic := range r.clinics {
		if clinic.ID == id {
			c := clinic
			return &c, nil
		}
	}
	return nil, nil
}

// Search applies the location filter first (a clinic outside the requested
// city and state is never a hit), then the free-text term over name, name
// words, specialties, category and description. An empty term keeps every
// clinic that passed the location filter.
func (r *clinicRepository) Search(ctx context.Context, filter domainRepo.ClinicFilter) ([]entity.Clinic, error) {
	region := entity.ParseRegion(filter.Location)
	term := strings.ToLower(strings.TrimSpace(filter.Term))

	results := make([]entity.Clinic, 0)
	for _, clinic := range r.clinics {
		if filter.Location != "" && !matchesLocation(clinic, filter.Location, region) {
			continue
		}
		if term == "" || matchesTerm(clinic, term) {
			results = append(results, clinic)
		}
	}
	return results, nil
}

func matchesLocation(clinic entity.Clinic, location string, region entity.Region) bool {
	address := strings.ToLower(clinic.Address)
	if region.IsZero() {
		return strings.Contains(address, strings.ToLower(strings.TrimSpace(location)))
	}
	return strings.Contains(address, strings.ToLower(region.City)) ||
		strings.Contains(address, strings.ToLower(region.State))
}

func matchesTerm(clinic entity.Clinic, term string) bool {
	name := strings.ToLower(clinic.Name)
	if strings.Contains(name, term) {
		return true
	}
	for _, word := range strings.Fields(name) {
		if strings.Contains(word, term) {
			return true
		}
	}
	for _, specialty := range clinic.Specialties {
		if strings.Contains(strings.ToLower(specialty), term) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(clinic.Category), term) {
		return true
	}
	return strings.Contains(strings.ToLower(clinic.Description), term)
}
