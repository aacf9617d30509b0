// Package timescale provides the Julian Date time model: calendar
// conversions (Meeus, Astronomical Algorithms Ch. 7), sidereal time, and the
// J2000-relative views used by the ephemeris packages.
//
// All calendar conversions assume UTC. The distinction between UTC, UT1 and
// TT (under a minute and a half across 1900-2100) is below the accuracy of
// the low-precision ephemerides built on top of this package.
package timescale

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian Date of the standard epoch J2000.0,
	// 2000 January 1 12:00 UTC.
	J2000 = 2451545.0

	// MJDOffset converts between Julian Date and Modified Julian Date.
	MJDOffset = 2400000.5

	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0

	// gregorianStart is the first JD of the Gregorian calendar
	// (1582 October 15). Below it the Julian calendar branch applies.
	gregorianStart = 2299161.0

	approxRelTol = 1e-12
)

// JulianDate is a continuous count of days since the start of the Julian
// Period. It is a value type; arithmetic returns new values.
type JulianDate struct {
	jd float64
}

// New creates a JulianDate from a raw day count.
func New(jd float64) JulianDate { return JulianDate{jd: jd} }

// FromMJD creates a JulianDate from a Modified Julian Date.
func FromMJD(mjd float64) JulianDate { return JulianDate{jd: mjd + MJDOffset} }

// J2000Epoch returns the JulianDate of the J2000.0 epoch.
func J2000Epoch() JulianDate { return JulianDate{jd: J2000} }

// Now returns the current Julian Date.
func Now() JulianDate { return FromTime(time.Now().UTC()) }

// FromCalendar creates a JulianDate from calendar components, assumed UTC.
// Seconds may be fractional; microsecond precision survives the round trip
// through Time.
//
// Meeus Ch. 7: the Gregorian correction b = 2 - a + floor(a/4) applies from
// 1582 October 15 onward; earlier dates use the Julian calendar rules.
func FromCalendar(year, month, day, hour, minute int, second float64) JulianDate {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	dayFraction := (float64(hour) + float64(minute)/60.0 + second/3600.0) / 24.0

	b := 0.0
	if !beforeGregorian(year, month, day) {
		a := math.Floor(float64(y) / 100.0)
		b = 2.0 - a + math.Floor(a/4.0)
	}

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + dayFraction + b - 1524.5
	return JulianDate{jd: jd}
}

// beforeGregorian reports whether the calendar date predates the Gregorian
// reform of 1582 October 15.
func beforeGregorian(year, month, day int) bool {
	if year != 1582 {
		return year < 1582
	}
	if month != 10 {
		return month < 10
	}
	return day < 15
}

// FromTime creates a JulianDate from a time.Time, normalizing to UTC first.
func FromTime(t time.Time) JulianDate {
	t = t.UTC()
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return FromCalendar(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), sec)
}

// JD returns the raw Julian Date in days.
func (j JulianDate) JD() float64 { return j.jd }

// MJD returns the Modified Julian Date (JD - 2400000.5).
func (j JulianDate) MJD() float64 { return j.jd - MJDOffset }

// J2000Century returns Julian centuries elapsed since J2000.0.
func (j JulianDate) J2000Century() float64 { return (j.jd - J2000) / JulianCentury }

// DaysSinceJ2000 returns days elapsed since J2000.0.
func (j JulianDate) DaysSinceJ2000() float64 { return j.jd - J2000 }

// Time converts the Julian Date to a calendar time.Time in UTC using the
// inverse Meeus Ch. 7 algorithm. Microsecond precision is preserved.
func (j JulianDate) Time() time.Time {
	jd := j.jd + 0.5
	z := math.Floor(jd)
	f := jd - z

	a := z
	if z >= gregorianStart {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4.0)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))

	var month int
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}

	var year int
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	hoursTotal := f * 24.0
	hour := int(hoursTotal)
	minutesTotal := (hoursTotal - float64(hour)) * 60.0
	minute := int(minutesTotal)
	secondsTotal := (minutesTotal - float64(minute)) * 60.0
	second := int(secondsTotal)
	microsecond := int(math.Round((secondsTotal - float64(second)) * 1e6))
	if microsecond >= 1000000 {
		microsecond -= 1000000
		second++
	}

	return time.Date(year, time.Month(month), day, hour, minute, second,
		microsecond*1000, time.UTC)
}

// GMST returns Greenwich Mean Sidereal Time in hours, in [0, 24).
//
// Uses the IAU 2006 polynomial in seconds of time.
func (j JulianDate) GMST() float64 {
	t := j.J2000Century()
	gmstSec := 67310.54841 +
		(876600.0*3600.0+8640184.812866)*t +
		0.093104*t*t -
		6.2e-6*t*t*t

	gmstHours := math.Mod(gmstSec/3600.0, 24.0)
	if gmstHours < 0 {
		gmstHours += 24.0
	}
	return gmstHours
}

// LST returns Local Mean Sidereal Time in hours for the given longitude in
// degrees (positive East), in [0, 24).
func (j JulianDate) LST(lonEastDeg float64) float64 {
	lst := math.Mod(j.GMST()+lonEastDeg/15.0, 24.0)
	if lst < 0 {
		lst += 24.0
	}
	return lst
}

// AddDays returns the Julian Date shifted by the given number of days.
func (j JulianDate) AddDays(days float64) JulianDate { return JulianDate{jd: j.jd + days} }

// Sub returns the difference j - other in days.
func (j JulianDate) Sub(other JulianDate) float64 { return j.jd - other.jd }

// Before reports whether j is earlier than other.
func (j JulianDate) Before(other JulianDate) bool { return j.jd < other.jd }

// ApproxEqual reports whether two Julian Dates agree to within a relative
// tolerance of 1e-12.
func (j JulianDate) ApproxEqual(other JulianDate) bool {
	diff := math.Abs(j.jd - other.jd)
	if diff == 0 {
		return true
	}
	scale := math.Max(math.Abs(j.jd), math.Abs(other.jd))
	return diff <= approxRelTol*scale
}
