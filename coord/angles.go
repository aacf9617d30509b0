package coord

import (
	"fmt"
	"math"

	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

// Separation returns the angular separation between two sky positions using
// Vincenty's formula, which stays numerically stable at both very small and
// nearly antipodal separations (unlike the haversine or law-of-cosines
// forms).
func Separation(a, b ICRS, rec *verbose.Recorder) units.Angle {
	rec.Step("Input coordinates", fmt.Sprintf(
		"Point 1: RA = %s, Dec = %s\nPoint 2: RA = %s, Dec = %s",
		a.RA.FormatHMS(2, true), a.Dec.FormatDMS(2, true),
		b.RA.FormatHMS(2, true), b.Dec.FormatDMS(2, true)))

	sinPhi1, cosPhi1 := a.Dec.Sincos()
	sinPhi2, cosPhi2 := b.Dec.Sincos()
	dLambda := b.RA.Radians() - a.RA.Radians()
	sinDL, cosDL := math.Sincos(dLambda)

	term1 := cosPhi2 * sinDL
	term2 := cosPhi1*sinPhi2 - sinPhi1*cosPhi2*cosDL
	num := math.Sqrt(term1*term1 + term2*term2)
	den := sinPhi1*sinPhi2 + cosPhi1*cosPhi2*cosDL

	rec.Step("Vincenty formula", fmt.Sprintf(
		"numerator   = √[(cos φ₂ sin Δλ)² + (cos φ₁ sin φ₂ − sin φ₁ cos φ₂ cos Δλ)²] = %.10f\n"+
			"denominator = sin φ₁ sin φ₂ + cos φ₁ cos φ₂ cos Δλ = %.10f", num, den))

	sep := math.Atan2(num, den)

	rec.Step("Result", fmt.Sprintf("σ = atan2(%.10f, %.10f) = %.10f°", num, den, sep*rad2deg))

	return units.FromRadians(sep)
}

// PositionAngle returns the position angle from position a to position b,
// measured from North through East, in [0°, 360°).
func PositionAngle(a, b ICRS, rec *verbose.Recorder) units.Angle {
	sinPhi1, cosPhi1 := a.Dec.Sincos()
	sinPhi2, cosPhi2 := b.Dec.Sincos()
	dLambda := b.RA.Radians() - a.RA.Radians()
	sinDL, cosDL := math.Sincos(dLambda)

	y := sinDL * cosPhi2
	x := cosPhi1*sinPhi2 - sinPhi1*cosPhi2*cosDL

	rec.Step("Position angle formula", fmt.Sprintf(
		"y = sin(Δλ)cos(φ₂) = %.10f\nx = cos(φ₁)sin(φ₂) − sin(φ₁)cos(φ₂)cos(Δλ) = %.10f", y, x))

	pa := wrap2Pi(math.Atan2(y, x))

	rec.Step("Result", fmt.Sprintf("PA = atan2(y, x) = %.6f°", pa*rad2deg))

	return units.FromRadians(pa)
}

// Elongation returns the difference of two ecliptic longitudes in degrees,
// reduced to [0, 360). For the lunar phase, pass the Moon's longitude as
// target and the Sun's as reference: 0°=new, 90°=first quarter, 180°=full,
// 270°=last quarter.
func Elongation(targetLonDeg, referenceLonDeg float64) float64 {
	e := math.Mod(targetLonDeg-referenceLonDeg, 360.0)
	if e < 0 {
		e += 360.0
	}
	return e
}

// FractionIlluminated returns the illuminated fraction of a spherical body's
// disc given the phase angle, in [0, 1].
func FractionIlluminated(phase units.Angle) float64 {
	return 0.5 * (1.0 + phase.Cos())
}
