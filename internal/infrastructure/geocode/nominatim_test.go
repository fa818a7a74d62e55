package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vittahub/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewNominatimClient(config.GeocodeConfig{BaseURL: server.URL, Timeout: time.Second}, log)
}

func TestReverseLookup_CityAndState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		w.Write([]byte(`{"address":{"city":"São Paulo","state":"São Paulo"}}`))
	})

	label, err := client.ReverseLookup(context.Background(), -23.55, -46.63)
	require.NoError(t, err)
	assert.Equal(t, "São Paulo - SP", label)
}

func TestReverseLookup_TownAndRegionFallbacks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"town":"Gramado","region":"Rio Grande do Sul"}}`))
	})

	label, err := client.ReverseLookup(context.Background(), -29.37, -50.87)
	require.NoError(t, err)
	assert.Equal(t, "Gramado - RS", label)
}

func TestReverseLookup_CityOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"village":"Alter do Chão"}}`))
	})

	label, err := client.ReverseLookup(context.Background(), -2.50, -54.95)
	require.NoError(t, err)
	assert.Equal(t, "Alter do Chão", label)
}

func TestReverseLookup_NothingUsable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{}}`))
	})

	_, err := client.ReverseLookup(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestReverseLookup_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ReverseLookup(context.Background(), -23.55, -46.63)
	assert.Error(t, err)
}

func TestStateAbbreviation(t *testing.T) {
	assert.Equal(t, "SP", StateAbbreviation("São Paulo"))
	assert.Equal(t, "RJ", StateAbbreviation("Rio de Janeiro"))
	assert.Equal(t, "PE", StateAbbreviation("Pernambuco"))
	// Unknown states pass through unchanged
	assert.Equal(t, "Acre do Norte", StateAbbreviation("Acre do Norte"))
}
