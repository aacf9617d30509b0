// Package constants collects the fixed physical and astronomical scalars
// used across astral, each with its unit, uncertainty and source reference.
// Values follow IAU 2015 Resolution B3 and CODATA 2018 unless noted.
package constants

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknown is returned (wrapped) when a constant name is not registered.
var ErrUnknown = errors.New("constants: unknown constant")

// Constant is a named scalar with metadata. Uncertainty zero means the value
// is exact by definition or nominal.
type Constant struct {
	Name        string
	Value       float64
	Unit        string
	Uncertainty float64
	Reference   string
}

// Registered constants, keyed by short name.
var (
	SpeedOfLight = Constant{
		Name:      "Speed of light",
		Value:     299792458.0,
		Unit:      "m/s",
		Reference: "SI 2019 (exact)",
	}
	Gravitational = Constant{
		Name:        "Gravitational constant",
		Value:       6.67430e-11,
		Unit:        "m³/(kg·s²)",
		Uncertainty: 1.5e-15,
		Reference:   "CODATA 2018",
	}
	AU = Constant{
		Name:      "Astronomical Unit",
		Value:     149597870700.0,
		Unit:      "m",
		Reference: "IAU 2012 (exact)",
	}
	JDJ2000 = Constant{
		Name:      "Julian Date of J2000.0",
		Value:     2451545.0,
		Unit:      "days",
		Reference: "IAU (exact)",
	}
	MJDOffset = Constant{
		Name:      "Modified Julian Date offset",
		Value:     2400000.5,
		Unit:      "days",
		Reference: "IAU (exact)",
	}
	JulianYear = Constant{
		Name:      "Julian year",
		Value:     365.25,
		Unit:      "days",
		Reference: "IAU (exact)",
	}
	JulianCentury = Constant{
		Name:      "Julian century",
		Value:     36525.0,
		Unit:      "days",
		Reference: "IAU (exact)",
	}
	ArcsecPerRadian = Constant{
		Name:      "Arcseconds per radian",
		Value:     206264.806247096355,
		Unit:      "arcsec/rad",
		Reference: "Derived (exact)",
	}
	EarthRadiusEquatorial = Constant{
		Name:      "Earth equatorial radius",
		Value:     6378137.0,
		Unit:      "m",
		Reference: "WGS84",
	}
	EarthFlattening = Constant{
		Name:      "Earth flattening",
		Value:     1.0 / 298.257223563,
		Unit:      "",
		Reference: "WGS84",
	}
	EarthRotationRate = Constant{
		Name:      "Earth rotation rate",
		Value:     7.292115e-5,
		Unit:      "rad/s",
		Reference: "IERS",
	}
	ObliquityJ2000 = Constant{
		Name:      "Mean obliquity at J2000.0",
		Value:     23.439291111,
		Unit:      "degrees",
		Reference: "IAU 2006",
	}
	GalacticPoleRA = Constant{
		Name:      "Galactic North Pole RA (ICRS)",
		Value:     192.8594813,
		Unit:      "degrees",
		Reference: "IAU 1958, precessed to J2000",
	}
	GalacticPoleDec = Constant{
		Name:      "Galactic North Pole Dec (ICRS)",
		Value:     27.1282511,
		Unit:      "degrees",
		Reference: "IAU 1958, precessed to J2000",
	}
	GalacticLonNCP = Constant{
		Name:      "Galactic longitude of the North Celestial Pole",
		Value:     122.9319185,
		Unit:      "degrees",
		Reference: "IAU 1958, precessed to J2000",
	}
	SolarMass = Constant{
		Name:        "Solar mass",
		Value:       1.98841e30,
		Unit:        "kg",
		Uncertainty: 4e25,
		Reference:   "IAU 2015",
	}
	SolarRadius = Constant{
		Name:      "Solar radius",
		Value:     6.957e8,
		Unit:      "m",
		Reference: "IAU 2015 (nominal)",
	}
	SolarLuminosity = Constant{
		Name:      "Solar luminosity",
		Value:     3.828e26,
		Unit:      "W",
		Reference: "IAU 2015 (nominal)",
	}
)

var registry = map[string]Constant{
	"c":                 SpeedOfLight,
	"G":                 Gravitational,
	"AU":                AU,
	"JD_J2000":          JDJ2000,
	"MJD_OFFSET":        MJDOffset,
	"JULIAN_YEAR":       JulianYear,
	"JULIAN_CENTURY":    JulianCentury,
	"ARCSEC_PER_RADIAN": ArcsecPerRadian,
	"EARTH_RADIUS_EQ":   EarthRadiusEquatorial,
	"EARTH_FLATTENING":  EarthFlattening,
	"EARTH_ROTATION":    EarthRotationRate,
	"OBLIQUITY_J2000":   ObliquityJ2000,
	"GALACTIC_POLE_RA":  GalacticPoleRA,
	"GALACTIC_POLE_DEC": GalacticPoleDec,
	"GALACTIC_LON_NCP":  GalacticLonNCP,
	"SOLAR_MASS":        SolarMass,
	"SOLAR_RADIUS":      SolarRadius,
	"SOLAR_LUMINOSITY":  SolarLuminosity,
}

// Names returns the registered short names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// List returns all registered constants ordered by short name.
func List() []Constant {
	names := Names()
	out := make([]Constant, len(names))
	for i, n := range names {
		out[i] = registry[n]
	}
	return out
}

// Get looks up a constant by its short name, case-insensitively.
func Get(name string) (Constant, error) {
	for k, c := range registry {
		if strings.EqualFold(k, name) {
			return c, nil
		}
	}
	return Constant{}, errors.Wrapf(ErrUnknown, "%q", name)
}

// Search returns constants whose long or short name contains the query,
// case-insensitively, ordered by short name.
func Search(query string) []Constant {
	q := strings.ToLower(query)
	var out []Constant
	for _, n := range Names() {
		c := registry[n]
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(n), q) {
			out = append(out, c)
		}
	}
	return out
}
