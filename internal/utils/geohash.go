package utils

import (
	"github.com/mmcloughlin/geohash"
)

// GeoCellPrecision is the geohash precision used for scrapper location
// cells (~5km at precision 5).
const GeoCellPrecision = 5

// EncodeGeoCell converts coordinates to the coarse geohash cell stored on a
// scrapper profile.
func EncodeGeoCell(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeoCellPrecision)
}

// DecodeGeoCell converts a geohash cell back to its center coordinates.
func DecodeGeoCell(cell string) (latitude, longitude float64) {
	return geohash.Decode(cell)
}
