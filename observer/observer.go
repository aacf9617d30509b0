// Package observer models a ground observer (name, signed latitude and
// longitude, elevation, optional timezone) and manages the per-user profile
// store. Elevation and timezone are display metadata; they do not enter the
// formulas of the computation packages.
package observer

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/astral-go/astral/units"
)

// ErrLatitudeRange is returned when a latitude falls outside [-90°, +90°].
var ErrLatitudeRange = errors.New("observer: latitude must be in [-90°, +90°]")

// Observer is a ground location. Latitude is positive North, longitude
// positive East; longitude is stored as given, without normalization.
type Observer struct {
	Name      string
	Latitude  units.Angle
	Longitude units.Angle
	Elevation float64 // meters above sea level
	Timezone  string  // IANA name, optional
}

// FromDegrees constructs an Observer from decimal degrees.
func FromDegrees(name string, latDeg, lonDeg, elevationM float64, timezone string) (Observer, error) {
	if math.Abs(latDeg) > 90.0 {
		return Observer{}, errors.Wrapf(ErrLatitudeRange, "got %.6f°", latDeg)
	}
	return Observer{
		Name:      name,
		Latitude:  units.FromDegrees(latDeg),
		Longitude: units.FromDegrees(lonDeg),
		Elevation: elevationM,
		Timezone:  timezone,
	}, nil
}

// LatDeg returns the latitude in decimal degrees.
func (o Observer) LatDeg() float64 { return o.Latitude.Degrees() }

// LonDeg returns the longitude in decimal degrees.
func (o Observer) LonDeg() float64 { return o.Longitude.Degrees() }

func (o Observer) String() string {
	latDir, lonDir := "N", "E"
	if o.LatDeg() < 0 {
		latDir = "S"
	}
	if o.LonDeg() < 0 {
		lonDir = "W"
	}
	return fmt.Sprintf("%s (%.4f°%s, %.4f°%s, %.0fm)",
		o.Name, math.Abs(o.LatDeg()), latDir, math.Abs(o.LonDeg()), lonDir, o.Elevation)
}
