package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"vittahub/internal/delivery/dto"
	"vittahub/internal/infrastructure/geocode"
	"vittahub/internal/service"
)

type LocationUsecase interface {
	GetLocation(ctx context.Context, sessionID string) (*dto.LocationResponse, error)
	SaveLocation(ctx context.Context, sessionID string, req *dto.SaveLocationRequest) (*dto.LocationResponse, error)
	ClearLocation(ctx context.Context, sessionID string) error
	ReverseGeocode(ctx context.Context, req *dto.ReverseGeocodeRequest) (*dto.LocationResponse, error)
}

type locationUsecase struct {
	log             *logrus.Logger
	locationService *service.LocationService
	geocoder        geocode.Client
}

func NewLocationUsecase(
	log *logrus.Logger,
	locationService *service.LocationService,
	geocoder geocode.Client,
) LocationUsecase {
	return &locationUsecase{
		log:             log,
		locationService: locationService,
		geocoder:        geocoder,
	}
}

func (u *locationUsecase) GetLocation(ctx context.Context, sessionID string) (*dto.LocationResponse, error) {
	label, err := u.locationService.Load(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load location for session %s: %+v", sessionID, err)
		return nil, err
	}
	return &dto.LocationResponse{Location: label}, nil
}

func (u *locationUsecase) SaveLocation(ctx context.Context, sessionID string, req *dto.SaveLocationRequest) (*dto.LocationResponse, error) {
	if err := u.locationService.Save(ctx, sessionID, req.Location); err != nil {
		u.log.Warnf("Failed to save location for session %s: %+v", sessionID, err)
		return nil, err
	}
	return &dto.LocationResponse{Location: req.Location}, nil
}

func (u *locationUsecase) ClearLocation(ctx context.Context, sessionID string) error {
	if err := u.locationService.Clear(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to clear location for session %s: %+v", sessionID, err)
		return err
	}
	return nil
}

// ReverseGeocode resolves coordinates to a "City - ST" label. It does not
// store the result; saving remains an explicit, separate write.
func (u *locationUsecase) ReverseGeocode(ctx context.Context, req *dto.ReverseGeocodeRequest) (*dto.LocationResponse, error) {
	label, err := u.geocoder.ReverseLookup(ctx, req.Latitude, req.Longitude)
	if err != nil {
		u.log.Warnf("Reverse geocode failed for (%f, %f): %+v", req.Latitude, req.Longitude, err)
		return nil, err
	}
	return &dto.LocationResponse{Location: label}, nil
}
