package locator

import (
	"context"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/scrapcycle/scrapcycle/services/locator LocatorGW

// LocatorGW resolves a business web page into a named, geocoded location
// through the external scraping endpoint.
type LocatorGW interface {
	LocateBusiness(ctx context.Context, url string) (*models.BusinessLocation, error)
}
