package coord

import (
	"fmt"
	"math"

	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

// North Galactic Pole in J2000.0 equatorial coordinates (IAU 1958, precessed),
// and the galactic longitude of the North Celestial Pole.
const (
	ngpRADeg  = 192.8594813
	ngpDecDeg = 27.1282511
	lNCPDeg   = 122.9319185
)

// ToGalactic converts an ICRS coordinate to the Galactic frame using the
// standard spherical triangle relations against the North Galactic Pole.
//
// At the galactic poles (cos b below 1e-10) the longitude is indeterminate
// and reported as 0.
func (c ICRS) ToGalactic(rec *verbose.Recorder) Galactic {
	raNGP := units.FromDegrees(ngpRADeg).Radians()
	decNGP := units.FromDegrees(ngpDecDeg).Radians()
	lNCP := units.FromDegrees(lNCPDeg).Radians()

	rec.Step("Reference frame parameters", fmt.Sprintf(
		"NGP RA  = %.6f°\nNGP Dec = %.6f°\nl(NCP)  = %.6f°",
		ngpRADeg, ngpDecDeg, lNCPDeg))

	ra := c.RA.Radians()
	dec := c.Dec.Radians()

	sinDec, cosDec := math.Sincos(dec)
	sinDecNGP, cosDecNGP := math.Sincos(decNGP)
	sinDRA, cosDRA := math.Sincos(ra - raNGP)

	sinB := sinDec*sinDecNGP + cosDec*cosDecNGP*cosDRA
	b := math.Asin(clamp(sinB, -1, 1))
	cosB := math.Cos(b)

	rec.Step("Galactic latitude", fmt.Sprintf(
		"sin(b) = sin(δ)sin(δ_NGP) + cos(δ)cos(δ_NGP)cos(α−α_NGP)\n       = %.10f\nb = %.6f°",
		sinB, b*rad2deg))

	var l float64
	if math.Abs(cosB) < poleEpsilon {
		l = 0
	} else {
		y := cosDec * sinDRA
		x := sinDec*cosDecNGP - cosDec*sinDecNGP*cosDRA
		l = lNCP - math.Atan2(y, x)
	}
	l = wrap2Pi(l)

	rec.Step("Galactic longitude", fmt.Sprintf(
		"l = l_NCP − atan2(cos(δ)sin(α−α_NGP), sin(δ)cos(δ_NGP) − cos(δ)sin(δ_NGP)cos(α−α_NGP))\n  = %.6f°",
		l*rad2deg))

	return Galactic{L: units.FromRadians(l), B: units.FromRadians(b)}
}

// ToICRS converts a Galactic coordinate back to ICRS.
//
// At the celestial poles (cos δ below 1e-10) the right ascension is
// indeterminate and reported as 0.
func (c Galactic) ToICRS(rec *verbose.Recorder) ICRS {
	raNGP := units.FromDegrees(ngpRADeg).Radians()
	decNGP := units.FromDegrees(ngpDecDeg).Radians()
	lNCP := units.FromDegrees(lNCPDeg).Radians()

	rec.Step("Input Galactic coordinates", fmt.Sprintf(
		"l = %.6f°\nb = %.6f°", c.L.Degrees(), c.B.Degrees()))

	sinB, cosB := c.B.Sincos()
	sinDecNGP, cosDecNGP := math.Sincos(decNGP)
	sinDL, cosDL := math.Sincos(c.L.Radians() - lNCP)

	sinDec := sinB*sinDecNGP + cosB*cosDecNGP*cosDL
	dec := math.Asin(clamp(sinDec, -1, 1))
	cosDec := math.Cos(dec)

	rec.Step("Declination", fmt.Sprintf(
		"sin(δ) = sin(b)sin(δ_NGP) + cos(b)cos(δ_NGP)cos(l−l_NCP)\n       = %.10f\nδ = %.6f°",
		sinDec, dec*rad2deg))

	var ra float64
	if math.Abs(cosDec) < poleEpsilon {
		ra = 0
	} else {
		y := -cosB * sinDL
		x := sinB*cosDecNGP - cosB*sinDecNGP*cosDL
		ra = raNGP + math.Atan2(y, x)
	}
	ra = wrap2Pi(ra)

	rec.Step("Right ascension", fmt.Sprintf(
		"α = α_NGP + atan2(−cos(b)sin(l−l_NCP), sin(b)cos(δ_NGP) − cos(b)sin(δ_NGP)cos(l−l_NCP))\n  = %.6f°",
		ra*rad2deg))

	return ICRS{RA: units.FromRadians(ra), Dec: units.FromRadians(dec)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap2Pi reduces an angle in radians to [0, 2π).
func wrap2Pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
