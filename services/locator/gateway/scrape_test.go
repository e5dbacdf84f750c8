package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

func newTestGateway(scrapeURL string) *LocatorGW {
	return NewLocatorGW(&models.Config{
		Locator: models.LocatorConfig{
			ScrapeURL:      scrapeURL,
			TimeoutSeconds: 2,
		},
	})
}

func TestLocateBusiness_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.LocateBusinessRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com/scrapyard", req.URL)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"name":      "GreenCycle Traders",
			"address":   "14 Hosur Rd, Bengaluru",
			"summary":   "Buys scrap metal and e-waste.",
			"latitude":  12.9352,
			"longitude": 77.6245,
		})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	location, err := gw.LocateBusiness(context.Background(), "https://example.com/scrapyard")

	require.NoError(t, err)
	assert.Equal(t, "GreenCycle Traders", location.Name)
	assert.Equal(t, "14 Hosur Rd, Bengaluru", location.Address)
	assert.InDelta(t, 12.9352, location.Latitude, 0.0001)
	assert.InDelta(t, 77.6245, location.Longitude, 0.0001)
}

func TestLocateBusiness_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "page could not be fetched"})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	location, err := gw.LocateBusiness(context.Background(), "https://example.com/dead-link")

	assert.Nil(t, location)
	assert.True(t, errors.Is(err, models.ErrBackendUnavailable))
	assert.Contains(t, err.Error(), "page could not be fetched")
}

func TestLocateBusiness_EndpointDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	server.Close() // closed before the call so the dial fails

	gw := newTestGateway(server.URL)

	location, err := gw.LocateBusiness(context.Background(), "https://example.com/scrapyard")

	assert.Nil(t, location)
	assert.True(t, errors.Is(err, models.ErrBackendUnavailable))
}

func TestLocateBusiness_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timeout", http.StatusGatewayTimeout)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	_, err := gw.LocateBusiness(context.Background(), "https://example.com/scrapyard")

	assert.True(t, errors.Is(err, models.ErrBackendUnavailable))
}
