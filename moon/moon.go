// Package moon implements a low-precision lunar ephemeris (truncated
// Meeus-style series, roughly 0.5° in position), the lunar phase model, and
// the observer-facing rise/set and next-phase computations.
package moon

import (
	"fmt"
	"math"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// SynodicMonth is the mean length of the lunation cycle in days.
	SynodicMonth = 29.5306

	// moonRadiusKm is the IAU mean lunar radius.
	moonRadiusKm = 1737.4

	// earthRadiusKm is the WGS84 equatorial radius, the baseline of the
	// horizontal parallax.
	earthRadiusKm = 6378.137
)

// Position is the computed state of the Moon at an instant.
type Position struct {
	Longitude       units.Angle    // geocentric ecliptic longitude
	Latitude        units.Angle    // geocentric ecliptic latitude
	RA              units.Angle    // right ascension
	Dec             units.Angle    // declination
	Distance        units.Distance // geocentric distance
	AngularDiameter units.Angle    // apparent disc diameter
	Parallax        units.Angle    // equatorial horizontal parallax
}

// fundamentals returns the Moon's mean arguments in radians for d days since
// J2000: mean longitude L', Sun's mean anomaly M, Moon's mean anomaly M',
// mean elongation D and argument of latitude F.
func fundamentals(d float64) (lp, m, mp, dd, f float64) {
	lp = wrapDeg(218.3164477+13.17639648*d) * deg2rad
	m = wrapDeg(357.5291092+0.98560028*d) * deg2rad
	mp = wrapDeg(134.9633964+13.06499295*d) * deg2rad
	dd = wrapDeg(297.8501921+12.19074912*d) * deg2rad
	f = wrapDeg(93.2720950+13.22935024*d) * deg2rad
	return
}

// PositionAt computes the Moon's position at the given Julian Date.
//
// The longitude series carries the equation of the centre, evection,
// variation and the annual equation; the latitude series the principal
// terms in F. The distance comes from the horizontal parallax expansion.
func PositionAt(jd timescale.JulianDate, rec *verbose.Recorder) Position {
	d := jd.DaysSinceJ2000()
	lp, m, mp, dd, f := fundamentals(d)

	rec.Step("Fundamental arguments", fmt.Sprintf(
		"L' = %.6f°  M = %.6f°  M' = %.6f°\nD  = %.6f°  F = %.6f°",
		lp*rad2deg, m*rad2deg, mp*rad2deg, dd*rad2deg, f*rad2deg))

	// Longitude perturbations, degrees: equation of the centre (M'),
	// evection (2D-M'), variation (2D), annual equation (M).
	lonDeg := lp*rad2deg +
		6.289*math.Sin(mp) +
		1.274*math.Sin(2*dd-mp) +
		0.658*math.Sin(2*dd) +
		0.214*math.Sin(2*mp) -
		0.186*math.Sin(m) -
		0.114*math.Sin(2*f)

	// Latitude, degrees: principal terms in F.
	latDeg := 5.128*math.Sin(f) +
		0.280*math.Sin(mp+f) +
		0.277*math.Sin(mp-f) +
		0.173*math.Sin(2*dd-f)

	// Equatorial horizontal parallax expansion, degrees.
	parallaxDeg := 0.9508 +
		0.0518*math.Cos(mp) +
		0.0095*math.Cos(2*dd-mp) +
		0.0078*math.Cos(2*dd) +
		0.0028*math.Cos(2*mp)

	distKm := earthRadiusKm / math.Sin(parallaxDeg*deg2rad)

	rec.Step("Perturbed ecliptic position", fmt.Sprintf(
		"λ = %.6f°\nβ = %.6f°\nπ = %.4f° → Δ = %.0f km",
		wrapDeg(lonDeg), latDeg, parallaxDeg, distKm))

	lon := units.FromDegrees(wrapDeg(lonDeg))
	lat := units.FromDegrees(latDeg)

	eps := coord.MeanObliquity(jd.J2000Century())
	eq := coord.EclipticToEquatorial(lon, lat, eps)

	rec.Step("Equatorial position", fmt.Sprintf(
		"RA = %s\nDec = %s", eq.RA.FormatHMS(2, true), eq.Dec.FormatDMS(2, true)))

	angDiam := units.FromRadians(2 * math.Asin(moonRadiusKm/distKm))

	return Position{
		Longitude:       lon,
		Latitude:        lat,
		RA:              eq.RA,
		Dec:             eq.Dec,
		Distance:        units.DistanceFromKm(distKm),
		AngularDiameter: angDiam,
		Parallax:        units.FromDegrees(parallaxDeg),
	}
}

// ICRSAt returns the Moon's equatorial coordinates at the given instant.
func ICRSAt(jd timescale.JulianDate) coord.ICRS {
	pos := PositionAt(jd, nil)
	return coord.ICRS{RA: pos.RA, Dec: pos.Dec}
}

func wrapDeg(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
