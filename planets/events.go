package planets

import (
	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/visibility"
)

// ICRSAt returns the planet's apparent equatorial coordinates at jd.
func ICRSAt(p Planet, jd timescale.JulianDate) (coord.ICRS, error) {
	pos, err := PositionAt(p, jd, nil)
	if err != nil {
		return coord.ICRS{}, err
	}
	return coord.ICRS{RA: pos.RA, Dec: pos.Dec}, nil
}

// Altitude returns the planet's altitude for the observer at jd.
func Altitude(p Planet, obs observer.Observer, jd timescale.JulianDate) (units.Angle, error) {
	c, err := ICRSAt(p, jd)
	if err != nil {
		return units.Angle{}, err
	}
	return visibility.TargetAltitude(c, obs, jd), nil
}

// Transit returns the planet's meridian passage nearest jd.
func Transit(p Planet, obs observer.Observer, jd timescale.JulianDate) (timescale.JulianDate, error) {
	c, err := ICRSAt(p, jd)
	if err != nil {
		return timescale.JulianDate{}, err
	}
	return visibility.TransitTime(c, obs, jd), nil
}

// RiseSet returns the planet's horizon crossings around its transit nearest
// jd. Either may be nil for circumpolar or never-rising geometry. Planetary
// motion within a day is far below the accuracy of the fixed-target
// hour-angle recipe, so no per-event iteration is needed.
func RiseSet(p Planet, obs observer.Observer, jd timescale.JulianDate) (rise, set *timescale.JulianDate, err error) {
	c, err := ICRSAt(p, jd)
	if err != nil {
		return nil, nil, err
	}
	rise, set = visibility.RiseSet(c, obs, jd, units.FromDegrees(0))
	return rise, set, nil
}
