package gateway

import (
	"context"
	"fmt"
	"time"

	httppkg "github.com/scrapcycle/scrapcycle/internal/pkg/http"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// LocatorGW calls the external scraping endpoint. The endpoint fetches the
// page, summarizes it and geocodes the address; all of that happens on the
// remote side, this gateway only does the round trip.
type LocatorGW struct {
	client *httppkg.Client
}

// NewLocatorGW creates a new locator gateway
func NewLocatorGW(cfg *models.Config) *LocatorGW {
	return &LocatorGW{
		client: httppkg.NewClient(cfg.Locator.ScrapeURL, time.Duration(cfg.Locator.TimeoutSeconds)*time.Second),
	}
}

type scrapeResponse struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Summary   string  `json:"summary"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Error     string  `json:"error"`
}

// LocateBusiness resolves the given business page into a geocoded location
func (g *LocatorGW) LocateBusiness(ctx context.Context, url string) (*models.BusinessLocation, error) {
	var resp scrapeResponse
	if err := g.client.PostJSON(ctx, "", models.LocateBusinessRequest{URL: url}, &resp); err != nil {
		logger.Warn("Scrape endpoint call failed",
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("%w: locate business: %v", models.ErrBackendUnavailable, err)
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("%w: locate business: %s", models.ErrBackendUnavailable, resp.Error)
	}

	return &models.BusinessLocation{
		Name:      resp.Name,
		Address:   resp.Address,
		Summary:   resp.Summary,
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
	}, nil
}
