package coord

import (
	"math"

	"github.com/astral-go/astral/units"
)

// MeanObliquity returns the mean obliquity of the ecliptic at the given
// number of Julian centuries since J2000.0 (IAU 1980 cubic polynomial,
// Lieske 1979, Meeus 22.2).
func MeanObliquity(t float64) units.Angle {
	sec := 84381.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return units.FromArcseconds(sec)
}

// EclipticToEquatorial converts ecliptic longitude and latitude to ICRS
// right ascension and declination for the given obliquity.
func EclipticToEquatorial(lon, lat, obliquity units.Angle) ICRS {
	sinLon, cosLon := lon.Sincos()
	sinLat, cosLat := lat.Sincos()
	sinEps, cosEps := obliquity.Sincos()

	ra := math.Atan2(sinLon*cosEps-sinLat/cosLat*sinEps, cosLon)
	dec := math.Asin(clamp(sinLat*cosEps+cosLat*sinEps*sinLon, -1, 1))

	return ICRS{RA: units.FromRadians(wrap2Pi(ra)), Dec: units.FromRadians(dec)}
}
