// Package coord provides the three celestial reference frames used by astral
// (ICRS equatorial, Galactic, topocentric horizontal), the pairwise
// conversions between them, and the spherical-trigonometry helpers (angular
// separation, position angle) shared by the ephemeris and visibility layers.
//
// Every frame converts through ICRS. The set of frames is closed; the
// Transform dispatcher selects the target by name.
package coord

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/astral-go/astral/units"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// poleEpsilon is the cos threshold below which the indeterminate
	// longitude at a pole is reported as 0. Deliberate choice, not a
	// numerical accident.
	poleEpsilon = 1e-10
)

// Invariant violation sentinels. Parsing accepts out-of-range values;
// construction rejects them.
var (
	ErrDeclinationRange = errors.New("coord: declination must be in [-90°, +90°]")
	ErrLatitudeRange    = errors.New("coord: galactic latitude must be in [-90°, +90°]")
	ErrAltitudeRange    = errors.New("coord: altitude must be in [-90°, +90°]")
)

// ICRS is an equatorial position in the International Celestial Reference
// System (practically the J2000 equatorial frame).
type ICRS struct {
	RA  units.Angle // right ascension
	Dec units.Angle // declination, |dec| <= 90°
}

// NewICRS constructs an ICRS coordinate, rejecting out-of-range declination.
func NewICRS(ra, dec units.Angle) (ICRS, error) {
	if math.Abs(dec.Degrees()) > 90.0 {
		return ICRS{}, errors.Wrapf(ErrDeclinationRange, "got %.6f°", dec.Degrees())
	}
	return ICRS{RA: ra, Dec: dec}, nil
}

// ICRSFromDegrees constructs an ICRS coordinate from decimal degrees.
func ICRSFromDegrees(raDeg, decDeg float64) (ICRS, error) {
	return NewICRS(units.FromDegrees(raDeg), units.FromDegrees(decDeg))
}

func (c ICRS) String() string {
	return fmt.Sprintf("%s %s", c.RA.FormatHMS(2, true), c.Dec.FormatDMS(2, true))
}

// Galactic is a position in the IAU 1958 Galactic frame, precessed to J2000:
// l=0° toward the Galactic centre, b=+90° at the North Galactic Pole.
type Galactic struct {
	L units.Angle // galactic longitude
	B units.Angle // galactic latitude, |b| <= 90°
}

// NewGalactic constructs a Galactic coordinate, rejecting out-of-range latitude.
func NewGalactic(l, b units.Angle) (Galactic, error) {
	if math.Abs(b.Degrees()) > 90.0 {
		return Galactic{}, errors.Wrapf(ErrLatitudeRange, "got %.6f°", b.Degrees())
	}
	return Galactic{L: l, B: b}, nil
}

// GalacticFromDegrees constructs a Galactic coordinate from decimal degrees.
func GalacticFromDegrees(lDeg, bDeg float64) (Galactic, error) {
	return NewGalactic(units.FromDegrees(lDeg), units.FromDegrees(bDeg))
}

func (c Galactic) String() string {
	return fmt.Sprintf("l=%.4f° b=%.4f°", c.L.Degrees(), c.B.Degrees())
}

// Horizontal is a topocentric position: altitude above the horizon and
// azimuth measured from North through East.
type Horizontal struct {
	Alt units.Angle // altitude, |alt| <= 90°
	Az  units.Angle // azimuth, N through E
}

// NewHorizontal constructs a Horizontal coordinate, rejecting out-of-range
// altitude.
func NewHorizontal(alt, az units.Angle) (Horizontal, error) {
	if math.Abs(alt.Degrees()) > 90.0 {
		return Horizontal{}, errors.Wrapf(ErrAltitudeRange, "got %.6f°", alt.Degrees())
	}
	return Horizontal{Alt: alt, Az: az}, nil
}

// HorizontalFromDegrees constructs a Horizontal coordinate from decimal degrees.
func HorizontalFromDegrees(altDeg, azDeg float64) (Horizontal, error) {
	return NewHorizontal(units.FromDegrees(altDeg), units.FromDegrees(azDeg))
}

// ZenithAngle returns the complement of the altitude.
func (c Horizontal) ZenithAngle() units.Angle {
	return units.FromDegrees(90.0).Sub(c.Alt)
}

func (c Horizontal) String() string {
	return fmt.Sprintf("Alt=%s Az=%.2f°", c.Alt.FormatDMS(2, true), c.Az.Degrees())
}
