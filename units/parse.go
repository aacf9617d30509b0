package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnparseable is returned (wrapped) when a string matches none of the
// accepted angle formats.
var ErrUnparseable = errors.New("units: cannot parse angle")

var (
	// 12h30m00s, 12H 30M 00S, 12h30m, 12h
	hmsPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)[hH]\s*(?:(\d+(?:\.\d*)?)[mM]?)?\s*(?:(\d+(?:\.\d*)?)[sS]?)?$`)
	// 45d30m00s, 45°30′00″, 45D 30' 00"
	dmsPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)[dD°]\s*(\d+(?:\.\d*)?)[′'mM]?\s*(\d+(?:\.\d*)?)[″"sS]?$`)
	// 45:30:00
	colonPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?):(\d+(?:\.\d*)?):(\d+(?:\.\d*)?)$`)
	// 45 30 00
	spacePattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)\s+(\d+(?:\.\d*)?)\s+(\d+(?:\.\d*)?)$`)
	// 45.5 or 45.5d
	plainPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?)[dD°]?$`)
)

// Parse reads an angle from a string.
//
// Accepted formats:
//
//	"45.5", "45.5d"     decimal degrees
//	"45d30m00s"         DMS with letter separators
//	"45°30′00″"         DMS with unicode glyphs
//	"45:30:00"          DMS with colons
//	"45 30 00"          DMS with spaces
//	"12h30m00s"         HMS
//
// A leading sign applies to the whole value.
func Parse(value string) (Angle, error) {
	value = strings.TrimSpace(value)

	if m := hmsPattern.FindStringSubmatch(value); m != nil {
		h, min, sec, err := parseTriple(m)
		if err != nil {
			return Angle{}, err
		}
		return signedHMS(h, min, sec), nil
	}
	if m := dmsPattern.FindStringSubmatch(value); m != nil {
		d, min, sec, err := parseTriple(m)
		if err != nil {
			return Angle{}, err
		}
		return signedDMS(d, min, sec), nil
	}
	if m := colonPattern.FindStringSubmatch(value); m != nil {
		d, min, sec, err := parseTriple(m)
		if err != nil {
			return Angle{}, err
		}
		return signedDMS(d, min, sec), nil
	}
	if m := spacePattern.FindStringSubmatch(value); m != nil {
		d, min, sec, err := parseTriple(m)
		if err != nil {
			return Angle{}, err
		}
		return signedDMS(d, min, sec), nil
	}
	if m := plainPattern.FindStringSubmatch(value); m != nil {
		deg, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Angle{}, errors.Wrapf(ErrUnparseable, "%q", value)
		}
		return FromDegrees(deg), nil
	}
	return Angle{}, errors.Wrapf(ErrUnparseable, "%q", value)
}

// ParseHours reads an angle from a string, treating bare numbers and
// colon-separated triples as hours rather than degrees. Used for right
// ascension input.
func ParseHours(value string) (Angle, error) {
	value = strings.TrimSpace(value)
	if m := colonPattern.FindStringSubmatch(value); m != nil {
		h, min, sec, err := parseTriple(m)
		if err != nil {
			return Angle{}, err
		}
		return signedHMS(h, min, sec), nil
	}
	if m := plainPattern.FindStringSubmatch(value); m != nil && !strings.ContainsAny(value, "dD°") {
		h, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Angle{}, errors.Wrapf(ErrUnparseable, "%q", value)
		}
		return FromHours(h), nil
	}
	return Parse(value)
}

func parseTriple(m []string) (lead, min, sec float64, err error) {
	lead, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrUnparseable, "%q", m[0])
	}
	if m[2] != "" {
		if min, err = strconv.ParseFloat(m[2], 64); err != nil {
			return 0, 0, 0, errors.Wrapf(ErrUnparseable, "%q", m[0])
		}
	}
	if m[3] != "" {
		if sec, err = strconv.ParseFloat(m[3], 64); err != nil {
			return 0, 0, 0, errors.Wrapf(ErrUnparseable, "%q", m[0])
		}
	}
	return lead, min, sec, nil
}

// signedDMS applies a leading sign written on the degrees field ("-0" included)
// to the whole value.
func signedDMS(d, min, sec float64) Angle {
	if math.Signbit(d) {
		return FromDegrees(-(-d + min/60.0 + sec/3600.0))
	}
	return FromDegrees(d + min/60.0 + sec/3600.0)
}

func signedHMS(h, min, sec float64) Angle {
	if math.Signbit(h) {
		return FromHours(-(-h + min/60.0 + sec/3600.0))
	}
	return FromHours(h + min/60.0 + sec/3600.0)
}
