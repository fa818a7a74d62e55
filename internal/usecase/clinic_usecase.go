package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"vittahub/internal/converter"
	"vittahub/internal/delivery/dto"
	"vittahub/internal/domain/entity"
	"vittahub/internal/domain/repository"
	"vittahub/internal/scheduling"
	"vittahub/internal/service"
)

var ErrClinicNotFound = errors.New("clinic not found")

const nearbyLimit = 4

type ClinicUsecase interface {
	ListClinics(ctx context.Context) (*dto.ClinicListResponse, error)
	SearchClinics(ctx context.Context, term, location string) (*dto.ClinicListResponse, error)
	GetClinic(ctx context.Context, clinicID int) (*dto.ClinicDetailResponse, error)
	GetRoster(ctx context.Context, clinicID int, query, specialty string) (*dto.ProfessionalListResponse, error)
	NearbyClinics(ctx context.Context, sessionID string) (*dto.ClinicListResponse, error)
}

type clinicUsecase struct {
	log             *logrus.Logger
	clinicRepo      repository.ClinicRepository
	locationService *service.LocationService
}

func NewClinicUsecase(
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	locationService *service.LocationService,
) ClinicUsecase {
	return &clinicUsecase{
		log:             log,
		clinicRepo:      clinicRepo,
		locationService: locationService,
	}
}

func (u *clinicUsecase) ListClinics(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list clinics: %+v", err)
		return nil, err
	}
	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}

func (u *clinicUsecase) SearchClinics(ctx context.Context, term, location string) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.Search(ctx, repository.ClinicFilter{Term: term, Location: location})
	if err != nil {
		u.log.Warnf("Failed to search clinics: %+v", err)
		return nil, err
	}
	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}

func (u *clinicUsecase) GetClinic(ctx context.Context, clinicID int) (*dto.ClinicDetailResponse, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return converter.ClinicToDetailResponse(clinic), nil
}

// GetRoster returns the clinic's professional list, narrowed by a free-text
// query over name and specialty plus an optional exact specialty filter.
func (u *clinicUsecase) GetRoster(ctx context.Context, clinicID int, query, specialty string) (*dto.ProfessionalListResponse, error) {
	clinic, err := u.clinicRepo.FindByID(ctx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %d: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	roster := scheduling.FilterBySubstring(clinic.Roster(), query, func(p entity.Professional) []string {
		return []string{p.Name, p.Specialty}
	})
	if specialty != "" {
		filtered := make([]entity.Professional, 0, len(roster))
		for _, p := range roster {
			if p.Specialty == specialty {
				filtered = append(filtered, p)
			}
		}
		roster = filtered
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(roster),
		Specialties:   clinic.RosterSpecialties(),
		Total:         len(roster),
	}, nil
}

// NearbyClinics ranks the catalog against the session's stored region:
// same-city clinics first, then same-state, ordered by rating, capped at
// four. Without a usable region, or when nothing matches, the best-rated
// clinics overall are returned.
func (u *clinicUsecase) NearbyClinics(ctx context.Context, sessionID string) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list clinics: %+v", err)
		return nil, err
	}

	label := ""
	if sessionID != "" {
		label, err = u.locationService.Load(ctx, sessionID)
		if err != nil {
			u.log.Warnf("Failed to load location for session %s: %+v", sessionID, err)
			label = ""
		}
	}

	ranked := rankByRegion(clinics, entity.ParseRegion(label))
	if len(ranked) > nearbyLimit {
		ranked = ranked[:nearbyLimit]
	}
	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(ranked),
		Total:   len(ranked),
	}, nil
}

func rankByRegion(clinics []entity.Clinic, region entity.Region) []entity.Clinic {
	byRating := func(items []entity.Clinic) []entity.Clinic {
		out := make([]entity.Clinic, len(items))
		copy(out, items)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
		return out
	}

	if region.City == "" {
		return byRating(clinics)
	}

	sameCity := func(c entity.Clinic) bool {
		return strings.EqualFold(entity.ParseRegion(c.Address).City, region.City)
	}

	matched := make([]entity.Clinic, 0, len(clinics))
	for _, clinic := range clinics {
		clinicRegion := entity.ParseRegion(clinic.Address)
		if sameCity(clinic) || (region.State != "" && clinicRegion.State == region.State) {
			matched = append(matched, clinic)
		}
	}
	if len(matched) == 0 {
		return byRating(clinics)
	}

	matched = byRating(matched)
	sort.SliceStable(matched, func(i, j int) bool {
		return sameCity(matched[i]) && !sameCity(matched[j])
	})
	return matched
}
