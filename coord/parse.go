package coord

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/astral-go/astral/units"
)

// ErrUnparseableCoord is returned (wrapped) when a coordinate string matches
// none of the accepted formats.
var ErrUnparseableCoord = errors.New("coord: cannot parse coordinates")

var decSplit = regexp.MustCompile(`^(.+?)\s+([+-].*)$`)

// ParseICRS reads an equatorial coordinate pair from a string.
//
// Accepted formats:
//
//	"12h30m00s +45d30m00s"
//	"12:30:00 +45:30:00"      (RA read as hours)
//	"187.5 45.5"              (both decimal degrees)
//
// The declination is validated against the |dec| <= 90° invariant.
func ParseICRS(value string) (ICRS, error) {
	value = strings.TrimSpace(value)

	parts := strings.Fields(value)
	var raStr, decStr string
	if len(parts) == 2 {
		raStr, decStr = parts[0], parts[1]
	} else if m := decSplit.FindStringSubmatch(value); m != nil {
		raStr, decStr = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	} else {
		return ICRS{}, errors.Wrapf(ErrUnparseableCoord, "%q", value)
	}

	var ra units.Angle
	var err error
	if strings.ContainsAny(raStr, "hH") || strings.Contains(raStr, ":") {
		ra, err = units.ParseHours(raStr)
	} else {
		ra, err = units.Parse(raStr)
	}
	if err != nil {
		return ICRS{}, errors.Wrapf(err, "right ascension %q", raStr)
	}

	dec, err := units.Parse(decStr)
	if err != nil {
		return ICRS{}, errors.Wrapf(err, "declination %q", decStr)
	}

	return NewICRS(ra.Normalize(units.FromDegrees(180)), dec)
}
