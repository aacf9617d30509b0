package sun

import (
	"math"

	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

// Altitude thresholds for the solar events, in degrees. Sunrise and sunset
// use -0.833° (16' solar semidiameter plus 34' standard refraction), folding
// atmospheric refraction into the threshold rather than modeling it
// separately.
const (
	RiseSetAltitude      = -0.833
	CivilAltitude        = -6.0
	NauticalAltitude     = -12.0
	AstronomicalAltitude = -18.0
)

// TwilightKind selects the solar depression angle for twilight events.
type TwilightKind int

const (
	Civil TwilightKind = iota
	Nautical
	Astronomical
)

func (k TwilightKind) altitude() float64 {
	switch k {
	case Nautical:
		return NauticalAltitude
	case Astronomical:
		return AstronomicalAltitude
	default:
		return CivilAltitude
	}
}

func (k TwilightKind) String() string {
	switch k {
	case Nautical:
		return "nautical"
	case Astronomical:
		return "astronomical"
	default:
		return "civil"
	}
}

// startOfDay returns 00:00 UTC of the civil day containing jd.
func startOfDay(jd timescale.JulianDate) timescale.JulianDate {
	return timescale.New(math.Floor(jd.JD()-0.5) + 0.5)
}

// SolarNoon returns the instant of the Sun's local meridian transit on the
// civil day containing jd. One correction pass from local mean noon plus one
// refinement absorbs the Sun's own motion.
func SolarNoon(obs observer.Observer, jd timescale.JulianDate) timescale.JulianDate {
	t := startOfDay(jd).AddDays((12.0 - obs.LonDeg()/15.0) / 24.0)
	for i := 0; i < 2; i++ {
		pos := PositionAt(t, nil)
		diff := wrapHours(pos.RA.Hours() - t.LST(obs.LonDeg()))
		t = t.AddDays(diff / 24.0)
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

// hourAngleAt returns the half-arc H₀ in degrees for the Sun to reach
// altitude hDeg at the given latitude, from
// cos H₀ = (sin h − sin φ sin δ)/(cos φ cos δ). The boolean reports whether
// the crossing occurs; when it does not, above tells circumpolar daylight
// (true) apart from polar night (false).
func hourAngleAt(dec units.Angle, latDeg, hDeg float64) (h0Deg float64, ok, above bool) {
	sinDec, cosDec := dec.Sincos()
	sinLat, cosLat := math.Sincos(latDeg * deg2rad)
	cosH0 := (math.Sin(hDeg*deg2rad) - sinLat*sinDec) / (cosLat * cosDec)
	if cosH0 > 1 {
		return 0, false, false // sun stays below the threshold all day
	}
	if cosH0 < -1 {
		return 0, false, true // sun stays above the threshold all day
	}
	return math.Acos(cosH0) * rad2deg, true, false
}

// crossing solves for the altitude-threshold crossing on one side of solar
// noon. dir is -1 for the morning event, +1 for the evening one. The
// declination is re-evaluated once at the first estimate.
func crossing(obs observer.Observer, jd timescale.JulianDate, hDeg float64, dir float64) *timescale.JulianDate {
	noon := SolarNoon(obs, jd)
	t := noon
	for i := 0; i < 2; i++ {
		pos := PositionAt(t, nil)
		h0, ok, _ := hourAngleAt(pos.Dec, obs.LatDeg(), hDeg)
		if !ok {
			return nil
		}
		t = noon.AddDays(dir * h0 / 15.0 / 24.0)
	}
	return &t
}

// Rise returns the time of sunrise on the civil day containing jd, or nil
// when the Sun does not cross the horizon that day (polar night or midnight
// sun).
func Rise(obs observer.Observer, jd timescale.JulianDate) *timescale.JulianDate {
	return crossing(obs, jd, RiseSetAltitude, -1)
}

// Set returns the time of sunset on the civil day containing jd, or nil when
// the Sun does not cross the horizon that day.
func Set(obs observer.Observer, jd timescale.JulianDate) *timescale.JulianDate {
	return crossing(obs, jd, RiseSetAltitude, +1)
}

// Twilight returns the morning and evening instants at which the Sun crosses
// the depression angle for the given twilight kind. Either may be nil when
// the crossing does not occur at that latitude and date.
func Twilight(obs observer.Observer, jd timescale.JulianDate, kind TwilightKind) (morning, evening *timescale.JulianDate) {
	h := kind.altitude()
	return crossing(obs, jd, h, -1), crossing(obs, jd, h, +1)
}

// Altitude returns the Sun's altitude above the horizon for the observer at
// the given instant.
func Altitude(obs observer.Observer, jd timescale.JulianDate) units.Angle {
	hz := ICRSAt(jd).ToHorizontal(jd, obs.Latitude, obs.Longitude, nil)
	return hz.Alt
}

// DayLength returns the length of the day in hours: sunset minus sunrise,
// 24 for circumpolar daylight, 0 for polar night.
func DayLength(obs observer.Observer, jd timescale.JulianDate) float64 {
	rise := Rise(obs, jd)
	set := Set(obs, jd)
	if rise != nil && set != nil {
		return set.Sub(*rise) * 24.0
	}

	noon := SolarNoon(obs, jd)
	pos := PositionAt(noon, nil)
	_, _, above := hourAngleAt(pos.Dec, obs.LatDeg(), RiseSetAltitude)
	if above {
		return 24.0
	}
	return 0.0
}

// PositionNow is a convenience for PositionAt(timescale.Now()).
func PositionNow(rec *verbose.Recorder) Position {
	return PositionAt(timescale.Now(), rec)
}
