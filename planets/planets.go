// Package planets computes geocentric apparent positions, magnitudes and
// phases for the seven classical planets from Keplerian mean elements.
//
// Elements are J2000 mean values with linear per-century rates (Standish's
// approximate-position tables). Positions come out of Kepler's equation and
// a perifocal-to-ecliptic rotation; subtracting Earth's heliocentric
// position and rotating by the J2000 obliquity yields apparent ICRS
// coordinates good to a few arcminutes over 1900-2100.
package planets

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// J2000 mean obliquity: 84381.448 arcseconds (Lieske 1979).
	obliquitySin = 0.3977771559319137062
	obliquityCos = 0.9174820620691818140
)

// ErrUnknownPlanet is returned when a name does not resolve to a planet.
var ErrUnknownPlanet = errors.New("planets: unknown planet")

// Planet identifies one of the seven classical planets.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// All lists the planets in heliocentric order.
var All = []Planet{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}

var planetNames = [...]string{
	"Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune",
}

var planetSymbols = [...]string{"☿", "♀", "♂", "♃", "♄", "♅", "♆"}

// Mean equatorial radii in km (IAU).
var planetRadiiKm = [...]float64{
	2439.7, 6051.8, 3396.2, 71492.0, 60268.0, 25559.0, 24764.0,
}

func (p Planet) String() string { return planetNames[p] }

// Symbol returns the planet's astronomical glyph.
func (p Planet) Symbol() string { return planetSymbols[p] }

// RadiusKm returns the planet's mean equatorial radius in kilometers.
func (p Planet) RadiusKm() float64 { return planetRadiiKm[p] }

// ParsePlanet resolves a planet name, case-insensitively.
func ParsePlanet(name string) (Planet, error) {
	for i, n := range planetNames {
		if equalFold(n, name) {
			return Planet(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownPlanet, "%q", name)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// elements holds J2000 mean orbital elements and their per-Julian-century
// rates: semi-major axis a (AU), eccentricity e, inclination i, mean
// longitude L, longitude of perihelion ϖ, longitude of the ascending node Ω
// (angles in degrees).
type elements struct {
	a, e, i, l, lp, node       float64
	da, de, di, dl, dlp, dnode float64
}

// Standish approximate-position mean elements, J2000 values and rates.
var planetElements = [...]elements{
	{ // Mercury
		0.38709843, 0.20563661, 7.00559432, 252.25166724, 77.45771895, 48.33961819,
		0.00000000, 0.00002123, -0.00590158, 149472.67486623, 0.15940013, -0.12214182,
	},
	{ // Venus
		0.72333566, 0.00677672, 3.39467605, 181.97970850, 131.76755713, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.05679648, -0.27769418,
	},
	{ // Mars
		1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
	},
	{ // Jupiter
		5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
	},
	{ // Saturn
		9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
	},
	{ // Uranus
		19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
		-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589,
	},
	{ // Neptune
		30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
		0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664,
	},
}

// earthElements are Earth's mean elements (for the Earth-Moon barycenter),
// needed to project heliocentric positions to geocentric ones.
var earthElements = elements{
	1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
	0.00000562, -0.00004392, -0.01294668, 35999.37306329, 0.32327364, 0.0,
}

// ofDate applies the per-century rates for T Julian centuries since J2000.
func (el elements) ofDate(t float64) elements {
	return elements{
		a:    el.a + el.da*t,
		e:    el.e + el.de*t,
		i:    el.i + el.di*t,
		l:    el.l + el.dl*t,
		lp:   el.lp + el.dlp*t,
		node: el.node + el.dnode*t,
	}
}

// heliocentric returns the body's heliocentric rectangular coordinates in
// the J2000 ecliptic frame (AU) and the heliocentric distance.
func (el elements) heliocentric() (pos [3]float64, r float64, err error) {
	// Mean anomaly and argument of perihelion from the longitudes.
	m := wrapDeg(el.l-el.lp) * deg2rad
	w := (el.lp - el.node) * deg2rad

	ecc, err := solveKepler(m, el.e)
	if err != nil {
		return pos, 0, errors.Wrapf(err, "elements a=%.4f", el.a)
	}

	sinE, cosE := math.Sincos(ecc)
	nu := math.Atan2(math.Sqrt(1-el.e*el.e)*sinE, cosE-el.e)
	r = el.a * (1 - el.e*cosE)

	// Position in the orbital plane, then rotate by ω, i, Ω into the
	// J2000 ecliptic.
	xOrb := r * math.Cos(nu)
	yOrb := r * math.Sin(nu)

	sinW, cosW := math.Sincos(w)
	sinI, cosI := math.Sincos(el.i * deg2rad)
	sinO, cosO := math.Sincos(el.node * deg2rad)

	x1 := xOrb*cosW - yOrb*sinW
	y1 := xOrb*sinW + yOrb*cosW

	pos[0] = x1*cosO - y1*cosI*sinO
	pos[1] = x1*sinO + y1*cosI*cosO
	pos[2] = y1 * sinI
	return pos, r, nil
}

// Position is the computed state of a planet at an instant.
type Position struct {
	Planet Planet

	HelioLongitude units.Angle // heliocentric ecliptic longitude
	HelioLatitude  units.Angle // heliocentric ecliptic latitude
	HelioDistance  float64     // heliocentric distance, AU

	RA       units.Angle    // geocentric apparent right ascension
	Dec      units.Angle    // geocentric apparent declination
	Distance units.Distance // geocentric distance

	Magnitude       float64     // apparent visual magnitude
	Elongation      units.Angle // angular separation from the Sun
	PhaseAngle      units.Angle // Sun-planet-Earth angle
	Illumination    float64     // illuminated disc fraction, [0, 1]
	AngularDiameter units.Angle // apparent disc diameter
}

// PositionAt computes the planet's apparent geocentric position at the given
// Julian Date.
func PositionAt(p Planet, jd timescale.JulianDate, rec *verbose.Recorder) (Position, error) {
	t := jd.J2000Century()

	el := planetElements[p].ofDate(t)
	helio, rHelio, err := el.heliocentric()
	if err != nil {
		return Position{}, errors.Wrapf(err, "%s", p)
	}

	rec.Step("Heliocentric position", fmt.Sprintf(
		"elements of date: a=%.6f AU e=%.6f i=%.4f°\nx=%.6f y=%.6f z=%.6f AU (r=%.6f)",
		el.a, el.e, el.i, helio[0], helio[1], helio[2], rHelio))

	earth, _, err := earthElements.ofDate(t).heliocentric()
	if err != nil {
		return Position{}, errors.Wrap(err, "Earth")
	}

	// Geocentric vector in the J2000 ecliptic.
	geo := [3]float64{helio[0] - earth[0], helio[1] - earth[1], helio[2] - earth[2]}

	// Rotate into the equatorial frame by the J2000 obliquity.
	eq := [3]float64{
		geo[0],
		obliquityCos*geo[1] - obliquitySin*geo[2],
		obliquitySin*geo[1] + obliquityCos*geo[2],
	}

	distAU := vecLen(eq)
	ra := wrap2Pi(math.Atan2(eq[1], eq[0]))
	dec := math.Asin(eq[2] / distAU)

	rec.Step("Geocentric position", fmt.Sprintf(
		"Δ = %.6f AU\nRA = %.6f°  Dec = %.6f°", distAU, ra*rad2deg, dec*rad2deg))

	// Phase angle at the planet between Sun and Earth, elongation at Earth
	// between Sun and planet.
	planetToSun := [3]float64{-helio[0], -helio[1], -helio[2]}
	planetToEarth := [3]float64{-geo[0], -geo[1], -geo[2]}
	phaseDeg := angleBetween(planetToSun, planetToEarth)

	earthToSun := [3]float64{-earth[0], -earth[1], -earth[2]}
	elongDeg := angleBetween(earthToSun, geo)

	illum := 0.5 * (1.0 + math.Cos(phaseDeg*deg2rad))

	mag := magnitude(p, phaseDeg, rHelio, distAU, 2000.0+t*100.0)

	angDiam := 2.0 * math.Asin(p.RadiusKm()/(distAU*units.AUToKm))

	rec.Step("Aspect", fmt.Sprintf(
		"phase angle = %.4f°  elongation = %.4f°\nillumination = %.4f  V = %+.2f",
		phaseDeg, elongDeg, illum, mag))

	helioLon := wrap2Pi(math.Atan2(helio[1], helio[0]))
	helioLat := math.Asin(helio[2] / rHelio)

	return Position{
		Planet:          p,
		HelioLongitude:  units.FromRadians(helioLon),
		HelioLatitude:   units.FromRadians(helioLat),
		HelioDistance:   rHelio,
		RA:              units.FromRadians(ra),
		Dec:             units.FromRadians(dec),
		Distance:        units.DistanceFromAU(distAU),
		Magnitude:       mag,
		Elongation:      units.FromDegrees(elongDeg),
		PhaseAngle:      units.FromDegrees(phaseDeg),
		Illumination:    illum,
		AngularDiameter: units.FromRadians(angDiam),
	}, nil
}

// AllPositions computes every planet's position at the given instant.
func AllPositions(jd timescale.JulianDate) (map[Planet]Position, error) {
	out := make(map[Planet]Position, len(All))
	for _, p := range All {
		pos, err := PositionAt(p, jd, nil)
		if err != nil {
			return nil, err
		}
		out[p] = pos
	}
	return out, nil
}

// angleBetween returns the angle between two vectors in degrees, using the
// numerically stable half-angle form.
func angleBetween(u, v [3]float64) float64 {
	uMag := vecLen(u)
	vMag := vecLen(v)
	if uMag == 0 || vMag == 0 {
		return 0
	}
	var diffSq, sumSq float64
	for i := 0; i < 3; i++ {
		a := u[i] * vMag
		b := v[i] * uMag
		d := a - b
		s := a + b
		diffSq += d * d
		sumSq += s * s
	}
	return 2.0 * math.Atan2(math.Sqrt(diffSq), math.Sqrt(sumSq)) * rad2deg
}

func vecLen(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func wrapDeg(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

func wrap2Pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
