// Package sun implements the low-precision solar ephemeris (about 0.01° in
// ecliptic longitude, Meeus Ch. 25) and the observer-facing event
// computations built on it: rise, set, twilight, solar noon and day length.
package sun

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
)

// Position is the computed state of the Sun at an instant.
type Position struct {
	Longitude      units.Angle    // apparent ecliptic longitude
	Latitude       units.Angle    // ecliptic latitude, 0 within this approximation
	RA             units.Angle    // right ascension
	Dec            units.Angle    // declination
	Distance       units.Distance // Earth-Sun distance
	EquationOfTime float64        // apparent minus mean solar time, minutes
}

// meanAnomaly returns the solar mean anomaly in radians for T Julian
// centuries since J2000 (Meeus 25.3).
func meanAnomaly(t float64) float64 {
	return (357.52911 + t*(35999.05029-t*0.0001537)) * deg2rad
}

// meanLongitude returns the solar mean longitude in radians (Meeus 25.2).
func meanLongitude(t float64) float64 {
	return (280.46646 + t*(36000.76983+t*0.0003032)) * deg2rad
}

// eccentricity returns the eccentricity of Earth's orbit (Meeus 25.4).
func eccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+t*0.0000001267)
}

// PositionAt computes the Sun's position at the given Julian Date.
func PositionAt(jd timescale.JulianDate, rec *verbose.Recorder) Position {
	t := jd.J2000Century()

	m := meanAnomaly(t)
	l0 := meanLongitude(t)

	rec.Step("Mean elements", fmt.Sprintf(
		"T = %.12f centuries since J2000\nL₀ = %.6f°\nM  = %.6f°",
		t, wrapDeg(l0*rad2deg), wrapDeg(m*rad2deg)))

	// Equation of centre (Meeus 25.2 series).
	c := ((1.914602-t*(0.004817+t*0.000014))*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)) * deg2rad

	trueLon := l0 + c
	trueAnomaly := m + c

	rec.Step("Equation of centre", fmt.Sprintf(
		"C = %.6f°\ntrue longitude ☉ = %.6f°", c*rad2deg, wrapDeg(trueLon*rad2deg)))

	e := eccentricity(t)
	// Radius vector (Meeus 25.5).
	distAU := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(trueAnomaly))

	eps := coord.MeanObliquity(t)
	lon := units.FromRadians(trueLon).Normalize(units.FromDegrees(180))
	eq := coord.EclipticToEquatorial(lon, units.FromDegrees(0), eps)

	rec.Step("Equatorial position", fmt.Sprintf(
		"ε = %.6f°\nRA = %s\nDec = %s\nR = %.8f AU",
		eps.Degrees(), eq.RA.FormatHMS(2, true), eq.Dec.FormatDMS(2, true), distAU))

	eot := equationOfTime(eps, l0, e, m)

	rec.Step("Equation of time", fmt.Sprintf("E = %+.3f minutes", eot))

	return Position{
		Longitude:      lon,
		Latitude:       units.FromDegrees(0),
		RA:             eq.RA,
		Dec:            eq.Dec,
		Distance:       units.DistanceFromAU(distAU),
		EquationOfTime: eot,
	}
}

// equationOfTime evaluates Smart's series (Meeus 28.3) in minutes of time.
func equationOfTime(eps units.Angle, l0, e, m float64) float64 {
	y := math.Tan(eps.Radians() / 2)
	y *= y

	sin2L0 := math.Sin(2 * l0)
	cos2L0 := math.Cos(2 * l0)
	sin4L0 := math.Sin(4 * l0)
	sinM := math.Sin(m)
	sin2M := math.Sin(2 * m)

	eRad := y*sin2L0 - 2*e*sinM + 4*e*y*sinM*cos2L0 -
		0.5*y*y*sin4L0 - 1.25*e*e*sin2M
	// Radians of hour angle to minutes of time: 1 rad = (180/π)·4 minutes.
	return eRad * rad2deg * 4.0
}

// ICRSAt returns the Sun's equatorial coordinates at the given instant.
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
