// Package visibility answers observability questions about a fixed celestial
// target: where it sits in the sky for an observer, when it transits, when
// it rises and sets, how much atmosphere its light crosses, and how far it
// stands from the Moon.
package visibility

import (
	"fmt"
	"math"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/moon"
	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/sun"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

const (
	deg2rad = math.Pi / 180.0

	// airmassFloor is the altitude below which the Pickering formula is
	// not meaningful and the airmass is reported as +Inf.
	airmassFloor = 0.1
)

// TargetAltitude returns the target's altitude for the observer at jd.
func TargetAltitude(target coord.ICRS, obs observer.Observer, jd timescale.JulianDate) units.Angle {
	return target.ToHorizontal(jd, obs.Latitude, obs.Longitude, nil).Alt
}

// TargetAzimuth returns the target's azimuth (North through East) for the
// observer at jd.
func TargetAzimuth(target coord.ICRS, obs observer.Observer, jd timescale.JulianDate) units.Angle {
	return target.ToHorizontal(jd, obs.Latitude, obs.Longitude, nil).Az
}

// Airmass returns the relative atmospheric path length along the line of
// sight at the given altitude, from Pickering's (2002) interpolative
// formula:
//
//	X = 1 / sin(h + 244/(165 + 47·h^1.1))
//
// with h in degrees. Below 0.1° altitude the result is +Inf.
func Airmass(alt units.Angle) float64 {
	h := alt.Degrees()
	if h < airmassFloor {
		return math.Inf(1)
	}
	return 1.0 / math.Sin((h+244.0/(165.0+47.0*math.Pow(h, 1.1)))*deg2rad)
}

// TransitTime returns the instant the target crosses the local meridian
// nearest to jd, solving LST = α with a single correction pass reduced to
// the nearest half-day.
func TransitTime(target coord.ICRS, obs observer.Observer, jd timescale.JulianDate) timescale.JulianDate {
	diff := target.RA.Hours() - jd.LST(obs.LonDeg())
	diff = math.Mod(diff, 24.0)
	if diff > 12.0 {
		diff -= 24.0
	} else if diff <= -12.0 {
		diff += 24.0
	}
	return jd.AddDays(diff / 24.0)
}

// TransitAltitude returns the target's altitude at meridian transit,
// 90° − |φ − δ|, capped at +90°. A negative result means the target never
// rises for that observer.
func TransitAltitude(target coord.ICRS, obs observer.Observer) units.Angle {
	alt := 90.0 - math.Abs(obs.LatDeg()-target.Dec.Degrees())
	if alt > 90.0 {
		alt = 90.0
	}
	return units.FromDegrees(alt)
}

// RiseSet returns the times the target crosses the given horizon altitude
// around its transit nearest jd. Both results are nil when the target never
// crosses that horizon: either it never rises or it is circumpolar — compare
// TransitAltitude against the horizon to tell which.
func RiseSet(target coord.ICRS, obs observer.Observer, jd timescale.JulianDate, horizon units.Angle) (rise, set *timescale.JulianDate) {
	sinDec, cosDec := target.Dec.Sincos()
	sinLat, cosLat := obs.Latitude.Sincos()
	cosH0 := (horizon.Sin() - sinLat*sinDec) / (cosLat * cosDec)
	if cosH0 > 1 || cosH0 < -1 {
		return nil, nil
	}
	h0Hours := math.Acos(cosH0) * 180.0 / math.Pi / 15.0

	transit := TransitTime(target, obs, jd)
	r := transit.AddDays(-h0Hours / 24.0)
	s := transit.AddDays(h0Hours / 24.0)
	return &r, &s
}

// MoonSeparation returns the angular separation between the Moon and the
// target at jd.
func MoonSeparation(target coord.ICRS, jd timescale.JulianDate) units.Angle {
	return coord.Separation(moon.ICRSAt(jd), target, nil)
}

// IsNight reports whether the Sun is below the geometric horizon for the
// observer at jd.
func IsNight(obs observer.Observer, jd timescale.JulianDate) bool {
	return sun.Altitude(obs, jd).Degrees() < 0.0
}

// Report is the comprehensive visibility assessment for a target.
type Report struct {
	Altitude        units.Angle
	Azimuth         units.Angle
	Airmass         float64
	Transit         timescale.JulianDate
	TransitAltitude units.Angle
	Rise            *timescale.JulianDate
	Set             *timescale.JulianDate
	MoonSeparation  units.Angle
	Night           bool
}

// Assess computes the full visibility report for a target at jd, using the
// geometric horizon for rise and set.
func Assess(target coord.ICRS, obs observer.Observer, jd timescale.JulianDate, rec *verbose.Recorder) Report {
	hz := target.ToHorizontal(jd, obs.Latitude, obs.Longitude, rec)
	rise, set := RiseSet(target, obs, jd, units.FromDegrees(0))
	rep := Report{
		Altitude:        hz.Alt,
		Azimuth:         hz.Az,
		Airmass:         Airmass(hz.Alt),
		Transit:         TransitTime(target, obs, jd),
		TransitAltitude: TransitAltitude(target, obs),
		Rise:            rise,
		Set:             set,
		MoonSeparation:  MoonSeparation(target, jd),
		Night:           IsNight(obs, jd),
	}

	rec.Step("Visibility summary", fmt.Sprintf(
		"alt = %.4f°  az = %.4f°  X = %.3f\ntransit alt = %.4f°  night = %v",
		rep.Altitude.Degrees(), rep.Azimuth.Degrees(), rep.Airmass,
		rep.TransitAltitude.Degrees(), rep.Night))

	return rep
}
