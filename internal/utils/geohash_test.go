package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGeoCell(t *testing.T) {
	// Bengaluru city center
	cell := EncodeGeoCell(12.9716, 77.5946)
	assert.Len(t, cell, GeoCellPrecision)

	lat, lng := DecodeGeoCell(cell)
	assert.InDelta(t, 12.9716, lat, 0.05)
	assert.InDelta(t, 77.5946, lng, 0.05)
}

func TestEncodeGeoCellStability(t *testing.T) {
	// Nearby points within the same cell encode identically
	a := EncodeGeoCell(12.97160, 77.59460)
	b := EncodeGeoCell(12.97161, 77.59461)
	assert.Equal(t, a, b)
}
