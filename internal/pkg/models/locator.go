package models

// LocateBusinessRequest asks the locator to resolve a business web page
type LocateBusinessRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// BusinessLocation is the resolved place returned by the scrape endpoint
type BusinessLocation struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Summary   string  `json:"summary"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
