// Package units provides the angular and distance value types used across
// astral. Values are immutable and trivially copyable; all unit conversions
// are arithmetic-pure.
package units

import (
	"fmt"
	"math"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// approxRelTol is the relative tolerance used by ApproxEqual.
	approxRelTol = 1e-12
)

// Angle represents an angular measurement stored in radians.
type Angle struct {
	rad float64
}

// FromRadians creates an Angle from radians.
func FromRadians(radians float64) Angle { return Angle{rad: radians} }

// FromDegrees creates an Angle from decimal degrees.
func FromDegrees(deg float64) Angle { return Angle{rad: deg * deg2rad} }

// FromHours creates an Angle from hours of right ascension (15° per hour).
func FromHours(hours float64) Angle { return Angle{rad: hours * 15.0 * deg2rad} }

// FromArcminutes creates an Angle from arcminutes.
func FromArcminutes(arcmin float64) Angle { return Angle{rad: arcmin / 60.0 * deg2rad} }

// FromArcseconds creates an Angle from arcseconds.
func FromArcseconds(arcsec float64) Angle { return Angle{rad: arcsec / 3600.0 * deg2rad} }

// FromDMS creates an Angle from degrees, arcminutes and arcseconds.
// The sign of the degrees field applies to the whole value; pass negative
// degrees for southern declinations. For values between 0° and -1°, use
// negative minutes or seconds instead.
func FromDMS(deg, min, sec float64) Angle {
	sign := 1.0
	if deg < 0 || min < 0 || sec < 0 {
		sign = -1.0
	}
	total := math.Abs(deg) + math.Abs(min)/60.0 + math.Abs(sec)/3600.0
	return FromDegrees(sign * total)
}

// FromHMS creates an Angle from hours, minutes and seconds of right ascension.
func FromHMS(hours, min, sec float64) Angle {
	sign := 1.0
	if hours < 0 || min < 0 || sec < 0 {
		sign = -1.0
	}
	total := math.Abs(hours) + math.Abs(min)/60.0 + math.Abs(sec)/3600.0
	return FromHours(sign * total)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in decimal degrees.
func (a Angle) Degrees() float64 { return a.rad * rad2deg }

// Hours returns the angle in hours of right ascension.
func (a Angle) Hours() float64 { return a.Degrees() / 15.0 }

// Arcminutes returns the angle in arcminutes.
func (a Angle) Arcminutes() float64 { return a.Degrees() * 60.0 }

// Arcseconds returns the angle in arcseconds.
func (a Angle) Arcseconds() float64 { return a.Degrees() * 3600.0 }

// DMS decomposes the angle into sign, integer degrees, integer arcminutes,
// and fractional arcseconds. Sign is +1 or -1, and is carried even when the
// degrees field is zero, so formatters can render "-0° 30′".
func (a Angle) DMS() (sign float64, deg, min int, sec float64) {
	total := a.Degrees()
	sign = 1.0
	if math.Signbit(total) {
		sign = -1.0
		total = -total
	}
	deg = int(total)
	remainder := (total - float64(deg)) * 60.0
	min = int(remainder)
	sec = (remainder - float64(min)) * 60.0
	return
}

// HMS decomposes the angle (as right ascension) into sign, integer hours,
// integer minutes, and fractional seconds. Sign is +1 or -1.
func (a Angle) HMS() (sign float64, hours, min int, sec float64) {
	total := a.Hours()
	sign = 1.0
	if math.Signbit(total) {
		sign = -1.0
		total = -total
	}
	hours = int(total)
	remainder := (total - float64(hours)) * 60.0
	min = int(remainder)
	sec = (remainder - float64(min)) * 60.0
	return
}

// FormatDMS renders the angle as a degrees-arcminutes-arcseconds string with
// the given number of fractional digits on the seconds field. When unicode is
// true the °′″ glyphs are used, otherwise the ASCII letters d/m/s.
func (a Angle) FormatDMS(precision int, unicode bool) string {
	sign, d, m, s := a.DMS()
	d, m, s = carrySixty(d, m, s, precision)
	prefix := ""
	if sign < 0 {
		prefix = "-"
	}
	if unicode {
		return fmt.Sprintf("%s%d° %02d′ %0*.*f″", prefix, d, m, precision+3, precision, s)
	}
	if prefix == "" {
		prefix = "+"
	}
	return fmt.Sprintf("%s%dd %02dm %0*.*fs", prefix, d, m, precision+3, precision, s)
}

// FormatHMS renders the angle as an hours-minutes-seconds string with the
// given number of fractional digits on the seconds field.
func (a Angle) FormatHMS(precision int, unicode bool) string {
	sign, h, m, s := a.HMS()
	h, m, s = carrySixty(h, m, s, precision)
	prefix := ""
	if sign < 0 {
		prefix = "-"
	}
	if unicode {
		return fmt.Sprintf("%s%dʰ %02dᵐ %0*.*fˢ", prefix, h, m, precision+3, precision, s)
	}
	return fmt.Sprintf("%s%dh %02dm %0*.*fs", prefix, h, m, precision+3, precision, s)
}

// carrySixty rounds the seconds field to the requested precision and carries
// 60.0 into the minutes (and minutes into the leading field) so "59.999…"
// never renders as "60.00".
func carrySixty(lead, min int, sec float64, precision int) (int, int, float64) {
	scale := math.Pow(10, float64(precision))
	sec = math.Round(sec*scale) / scale
	if sec >= 60.0 {
		sec -= 60.0
		min++
	}
	if min >= 60 {
		min -= 60
		lead++
	}
	return lead, min, sec
}

// Add returns a + b.
func (a Angle) Add(b Angle) Angle { return Angle{rad: a.rad + b.rad} }

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle { return Angle{rad: a.rad - b.rad} }

// Neg returns -a.
func (a Angle) Neg() Angle { return Angle{rad: -a.rad} }

// Abs returns the magnitude of the angle.
func (a Angle) Abs() Angle { return Angle{rad: math.Abs(a.rad)} }

// Mul returns the angle scaled by k.
func (a Angle) Mul(k float64) Angle { return Angle{rad: a.rad * k} }

// Div returns the angle divided by k.
func (a Angle) Div(k float64) Angle { return Angle{rad: a.rad / k} }

// ApproxEqual reports whether two angles agree to within a relative
// tolerance of 1e-12 radians.
func (a Angle) ApproxEqual(b Angle) bool {
	diff := math.Abs(a.rad - b.rad)
	if diff == 0 {
		return true
	}
	scale := math.Max(math.Abs(a.rad), math.Abs(b.rad))
	if scale == 0 {
		return diff == 0
	}
	return diff <= approxRelTol*scale
}

// Less reports whether a is strictly smaller than b by radian value.
func (a Angle) Less(b Angle) bool { return a.rad < b.rad }

// Normalize reduces the angle into the half-open interval
// [center-180°, center+180°). The default center of 180° yields [0°, 360°);
// center 0° yields [-180°, 180°).
func (a Angle) Normalize(center Angle) Angle {
	deg := a.Degrees()
	lower := center.Degrees() - 180.0
	deg = math.Mod(deg-lower, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return FromDegrees(deg + lower)
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.rad) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.rad) }

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 { return math.Tan(a.rad) }

// Sincos returns both sine and cosine of the angle.
func (a Angle) Sincos() (sin, cos float64) { return math.Sincos(a.rad) }

// String renders the angle in DMS with arcsecond precision 2.
func (a Angle) String() string { return a.FormatDMS(2, true) }
