package geo

import (
	"math"
	"time"

	"github.com/westphae/geomag/pkg/egm96"
	"github.com/westphae/geomag/pkg/wmm"
)

const feetToMeters = 0.3048

// MagneticVariation calculates the magnetic declination for a given position and time.
// Returns declination in degrees (+East, -West).
func MagneticVariation(lat, lon, elevFt float64, date time.Time) float64 {
	// WMM wants altitude in meters
	altM := elevFt * feetToMeters

	loc := egm96.NewLocationGeodetic(lat, lon, altM)

	mag, err := wmm.CalculateWMMMagneticField(loc, date)
	if err != nil {
		// Return 0 for safety if calculation fails
		return 0.0
	}

	return mag.D()
}

// MagneticFromTrue converts a true bearing to a magnetic bearing given the
// local declination, normalized to [0, 360).
func MagneticFromTrue(trueDeg, declination float64) float64 {
	magnetic := math.Mod(trueDeg-declination, 360)
	if magnetic < 0 {
		magnetic += 360
	}
	return magnetic
}
