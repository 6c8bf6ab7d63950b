package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMagneticVariation_PlausibleRange(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Portland area declination is roughly +15°E
	hio := MagneticVariation(45.54, -122.95, 208, date)
	assert.Greater(t, hio, 5.0)
	assert.Less(t, hio, 25.0)

	// New York area declination is roughly -13°W
	jfk := MagneticVariation(40.64, -73.78, 13, date)
	assert.Less(t, jfk, -5.0)
	assert.Greater(t, jfk, -25.0)
}

func TestMagneticFromTrue(t *testing.T) {
	assert.InDelta(t, 345, MagneticFromTrue(360, 15), 1e-9)
	assert.InDelta(t, 13, MagneticFromTrue(0, -13), 1e-9)
	assert.InDelta(t, 75, MagneticFromTrue(90, 15), 1e-9)
	assert.InDelta(t, 355, MagneticFromTrue(10, 15), 1e-9)
}
