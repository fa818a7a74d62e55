// Package geocode resolves coordinates to the "City - ST" labels the rest
// of the service works with. It is an external HTTP collaborator; the
// booking core never depends on it.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"vittahub/config"
)

var ErrLocationNotFound = errors.New("location not found for coordinates")

// Client resolves latitude/longitude into a location label
type Client interface {
	ReverseLookup(ctx context.Context, lat, lon float64) (string, error)
}

type nominatimClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewNominatimClient(cfg config.GeocodeConfig, log *logrus.Logger) Client {
	return &nominatimClient{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Region  string `json:"region"`
		County  string `json:"county"`
	} `json:"address"`
}

// ReverseLookup asks nominatim for the address at lat/lon and reduces it to
// "City - ST". When only a city is known the bare city is returned.
func (c *nominatimClient) ReverseLookup(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	query.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode failed with status %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	city := firstNonEmpty(payload.Address.City, payload.Address.Town, payload.Address.Village)
	state := firstNonEmpty(payload.Address.State, payload.Address.Region, payload.Address.County)

	switch {
	case city != "" && state != "":
		return fmt.Sprintf("%s - %s", city, StateAbbreviation(state)), nil
	case city != "":
		return city, nil
	default:
		return "", ErrLocationNotFound
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
