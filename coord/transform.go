package coord

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

// Dispatcher sentinels.
var (
	ErrUnknownFrame   = errors.New("coord: unknown coordinate frame")
	ErrMissingContext = errors.New("coord: jd, lat and lon are required for horizontal conversion")
	ErrNotInvertible  = errors.New("coord: horizontal coordinates cannot be converted without time and place")
)

// Frame is a tagged union over the closed set of coordinate frames. Exactly
// one of the three fields is set, indicated by Kind.
type Frame struct {
	Kind       FrameKind
	ICRS       ICRS
	Galactic   Galactic
	Horizontal Horizontal
}

// FrameKind names one of the three supported frames.
type FrameKind int

const (
	KindICRS FrameKind = iota
	KindGalactic
	KindHorizontal
)

func (k FrameKind) String() string {
	switch k {
	case KindICRS:
		return "icrs"
	case KindGalactic:
		return "galactic"
	case KindHorizontal:
		return "horizontal"
	}
	return "unknown"
}

// ParseFrameKind resolves a frame alias, case-insensitively. Recognized:
// icrs|j2000|equatorial, galactic|gal, horizontal|altaz|alt-az.
func ParseFrameKind(name string) (FrameKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "icrs", "j2000", "equatorial":
		return KindICRS, nil
	case "galactic", "gal":
		return KindGalactic, nil
	case "horizontal", "altaz", "alt-az":
		return KindHorizontal, nil
	}
	return 0, errors.Wrapf(ErrUnknownFrame, "%q", name)
}

// InICRS wraps an ICRS coordinate as a Frame.
func InICRS(c ICRS) Frame { return Frame{Kind: KindICRS, ICRS: c} }

// InGalactic wraps a Galactic coordinate as a Frame.
func InGalactic(c Galactic) Frame { return Frame{Kind: KindGalactic, Galactic: c} }

// InHorizontal wraps a Horizontal coordinate as a Frame.
func InHorizontal(c Horizontal) Frame { return Frame{Kind: KindHorizontal, Horizontal: c} }

// Context carries the observer time and place needed when the target frame
// is horizontal.
type Context struct {
	JD       timescale.JulianDate
	Lat, Lon units.Angle
	set      bool
}

// At builds a conversion Context.
func At(jd timescale.JulianDate, lat, lon units.Angle) *Context {
	return &Context{JD: jd, Lat: lat, Lon: lon, set: true}
}

// Transform converts a frame value to the named target frame, threading the
// conversion through ICRS. ctx may be nil unless the target is horizontal.
// Horizontal input cannot be transformed (its inverse needs time and place).
func Transform(in Frame, target string, ctx *Context, rec *verbose.Recorder) (Frame, error) {
	kind, err := ParseFrameKind(target)
	if err != nil {
		return Frame{}, err
	}

	var icrs ICRS
	switch in.Kind {
	case KindICRS:
		icrs = in.ICRS
	case KindGalactic:
		icrs = in.Galactic.ToICRS(rec)
	case KindHorizontal:
		return Frame{}, ErrNotInvertible
	default:
		return Frame{}, errors.Wrapf(ErrUnknownFrame, "kind %d", in.Kind)
	}

	switch kind {
	case KindICRS:
		return InICRS(icrs), nil
	case KindGalactic:
		return InGalactic(icrs.ToGalactic(rec)), nil
	case KindHorizontal:
		if ctx == nil || !ctx.set {
			return Frame{}, ErrMissingContext
		}
		return InHorizontal(icrs.ToHorizontal(ctx.JD, ctx.Lat, ctx.Lon, rec)), nil
	}
	return Frame{}, errors.Wrapf(ErrUnknownFrame, "%q", target)
}
