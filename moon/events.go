package moon

import (
	"math"

	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
)

// refractionDeg is the standard horizon refraction of 34 arcminutes.
const refractionDeg = 34.0 / 60.0

// riseSetAltitude returns the geometric altitude threshold for moonrise and
// moonset: the topocentric correction 0.7275·π (parallax minus the apparent
// semidiameter) minus standard refraction.
func riseSetAltitude(parallax units.Angle) float64 {
	return 0.7275*parallax.Degrees() - refractionDeg
}

// Transit returns the Moon's local meridian passage nearest local noon of
// the civil day containing jd. Iterated because the Moon's right ascension
// moves about half a degree per hour.
func Transit(obs observer.Observer, jd timescale.JulianDate) timescale.JulianDate {
	t := timescale.New(math.Floor(jd.JD()-0.5) + 0.5).AddDays((12.0 - obs.LonDeg()/15.0) / 24.0)
	for i := 0; i < 3; i++ {
		pos := PositionAt(t, nil)
		diff := wrapHours(pos.RA.Hours() - t.LST(obs.LonDeg()))
		t = t.AddDays(diff / 24.0 * 0.9655) // lunar-day correction for RA drift
	}
	return t
}

// wrapHours reduces an hour difference to (-12, +12].
func wrapHours(h float64) float64 {
	h = math.Mod(h, 24.0)
	if h > 12.0 {
		h -= 24.0
	} else if h <= -12.0 {
		h += 24.0
	}
	return h
}

// crossing finds the horizon crossing on one side of the Moon's transit.
// dir is -1 for rise, +1 for set. The position is recomputed at each
// candidate time (at least twice) because the threshold, declination and
// transit all drift within a lunar day.
func crossing(obs observer.Observer, jd timescale.JulianDate, dir float64) *timescale.JulianDate {
	transit := Transit(obs, jd)
	t := transit
	for i := 0; i < 3; i++ {
		pos := PositionAt(t, nil)
		h0, ok := hourAngleAt(pos.Dec, pos.Parallax, obs.LatDeg())
		if !ok {
			return nil
		}
		// Step by the remaining hour angle; the Moon's hour angle advances
		// only about 0.966 h per hour because its RA drifts eastward.
		ha := wrapHours(t.LST(obs.LonDeg()) - pos.RA.Hours())
		t = t.AddDays((dir*h0/15.0 - ha) / 24.0 / 0.966)
	}
	return &t
}

// hourAngleAt returns the half-arc in degrees for the Moon to reach its
// rise/set threshold altitude, and whether the crossing occurs.
func hourAngleAt(dec, parallax units.Angle, latDeg float64) (float64, bool) {
	hDeg := riseSetAltitude(parallax)
	sinDec, cosDec := dec.Sincos()
	sinLat, cosLat := math.Sincos(latDeg * deg2rad)
	cosH0 := (math.Sin(hDeg*deg2rad) - sinLat*sinDec) / (cosLat * cosDec)
	if cosH0 > 1 || cosH0 < -1 {
		return 0, false
	}
	return math.Acos(cosH0) * rad2deg, true
}

// Rise returns the time of moonrise nearest the civil day containing jd, or
// nil when the Moon does not cross the horizon (never rises or circumpolar
// at that declination and latitude).
func Rise(obs observer.Observer, jd timescale.JulianDate) *timescale.JulianDate {
	return crossing(obs, jd, -1)
}

// Set returns the time of moonset nearest the civil day containing jd, or
// nil when the Moon does not cross the horizon.
func Set(obs observer.Observer, jd timescale.JulianDate) *timescale.JulianDate {
	return crossing(obs, jd, +1)
}

// Altitude returns the Moon's altitude above the horizon for the observer at
// the given instant.
func Altitude(obs observer.Observer, jd timescale.JulianDate) units.Angle {
	hz := ICRSAt(jd).ToHorizontal(jd, obs.Latitude, obs.Longitude, nil)
	return hz.Alt
}
