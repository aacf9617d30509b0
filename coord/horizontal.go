package coord

import (
	"fmt"
	"math"

	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

// ToHorizontal converts an ICRS coordinate to the topocentric horizontal
// frame for an observer at the given latitude and longitude (degrees,
// positive North and East) at the given Julian Date.
//
// The hour angle is H = LST − α, wrapped to (−180°, 180°]; altitude and
// azimuth follow the standard relations with azimuth measured North through
// East. The reverse conversion is not provided at this layer because it
// needs the same time-and-place arguments.
func (c ICRS) ToHorizontal(jd timescale.JulianDate, lat, lon units.Angle, rec *verbose.Recorder) Horizontal {
	lst := jd.LST(lon.Degrees())
	lstAngle := units.FromHours(lst)

	rec.Step("Local Sidereal Time", fmt.Sprintf(
		"LST = %.10f hours = %s", lst, lstAngle.FormatHMS(2, true)))

	ha := lstAngle.Sub(c.RA).Normalize(units.FromDegrees(0))
	if ha.Radians() <= -math.Pi {
		ha = units.FromRadians(ha.Radians() + 2*math.Pi)
	}

	rec.Step("Hour angle", fmt.Sprintf(
		"HA = LST − RA = %s", ha.FormatHMS(2, true)))

	sinDec, cosDec := c.Dec.Sincos()
	sinLat, cosLat := lat.Sincos()
	sinHA, cosHA := ha.Sincos()

	sinAlt := sinDec*sinLat + cosDec*cosLat*cosHA
	alt := math.Asin(clamp(sinAlt, -1, 1))

	rec.Step("Altitude", fmt.Sprintf(
		"sin(alt) = sin(δ)sin(φ) + cos(δ)cos(φ)cos(H)\n         = %.10f\nalt = %.6f°",
		sinAlt, alt*rad2deg))

	y := -cosDec * sinHA
	x := sinDec*cosLat - cosDec*sinLat*cosHA
	var az float64
	if math.Abs(math.Cos(alt)) < poleEpsilon {
		az = 0
	} else {
		az = wrap2Pi(math.Atan2(y, x))
	}

	rec.Step("Azimuth", fmt.Sprintf(
		"az = atan2(−cos(δ)sin(H), sin(δ)cos(φ) − cos(δ)sin(φ)cos(H))\n   = %.6f°",
		az*rad2deg))

	return Horizontal{Alt: units.FromRadians(alt), Az: units.FromRadians(az)}
}
