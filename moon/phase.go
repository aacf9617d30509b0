package moon

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/search"
	"github.com/astral-go/astral/sun"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
	"github.com/astral-go/astral/verbose"
)

// Quarter names one of the four principal phases searched by NextPhase.
type Quarter int

const (
	NewMoon      Quarter = iota // elongation 0°
	FirstQuarter                // elongation 90°
	FullMoon                    // elongation 180°
	LastQuarter                 // elongation 270°
)

func (q Quarter) String() string {
	switch q {
	case FirstQuarter:
		return "First Quarter"
	case FullMoon:
		return "Full Moon"
	case LastQuarter:
		return "Last Quarter"
	default:
		return "New Moon"
	}
}

// phaseNames are the eight buckets of the lunation, in elongation order.
var phaseNames = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// phaseGlyphs mirror phaseNames for terminal display.
var phaseGlyphs = [8]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}

// PhaseInfo describes the Moon's phase at an instant.
type PhaseInfo struct {
	Elongation   units.Angle // Moon minus Sun ecliptic longitude, [0°, 360°)
	PhaseAngle   units.Angle // Sun-Moon-Earth angle, [0°, 180°]
	Illumination float64     // illuminated disc fraction, [0, 1]
	AgeDays      float64     // days since new moon, by mean synodic rate
	Waxing       bool        // elongation below 180°
	Name         string      // one of the eight bucket names
	Glyph        string      // phase emoji for terminal output
}

// PercentIlluminated returns the illumination as a percentage.
func (p PhaseInfo) PercentIlluminated() float64 { return p.Illumination * 100.0 }

// PhaseAt computes the Moon's phase at the given Julian Date.
//
// The phase angle is 180° minus the elongation from the Sun; the illuminated
// fraction is (1 + cos phase)/2. Waxing versus waning follows the sign of
// the elongation's progression through the synodic month.
func PhaseAt(jd timescale.JulianDate, rec *verbose.Recorder) PhaseInfo {
	moonLon := PositionAt(jd, nil).Longitude.Degrees()
	sunLon := sun.PositionAt(jd, nil).Longitude.Degrees()

	elong := coord.Elongation(moonLon, sunLon)

	rec.Step("Elongation from the Sun", fmt.Sprintf(
		"λ_moon = %.6f°, λ_sun = %.6f°\nelongation = %.6f°", moonLon, sunLon, elong))

	phaseDeg := math.Abs(180.0 - elong)
	phase := units.FromDegrees(phaseDeg)
	illum := coord.FractionIlluminated(phase)
	age := elong / 360.0 * SynodicMonth

	bucket := int(math.Floor(elong/45.0+0.5)) % 8

	rec.Step("Phase", fmt.Sprintf(
		"phase angle = %.4f°\nillumination = %.4f\nage = %.2f days → %s",
		phaseDeg, illum, age, phaseNames[bucket]))

	return PhaseInfo{
		Elongation:   units.FromDegrees(elong),
		PhaseAngle:   phase,
		Illumination: illum,
		AgeDays:      age,
		Waxing:       elong < 180.0,
		Name:         phaseNames[bucket],
		Glyph:        phaseGlyphs[bucket],
	}
}

// NextPhase finds the first instant after jd at which the Moon reaches the
// given principal phase, searching forward one synodic month. The elongation
// quadrant is tracked as a discrete function and the transition bisected to
// millisecond precision.
func NextPhase(jd timescale.JulianDate, q Quarter) (timescale.JulianDate, error) {
	quadrant := func(t float64) int {
		tj := timescale.New(t)
		moonLon := PositionAt(tj, nil).Longitude.Degrees()
		sunLon := sun.PositionAt(tj, nil).Longitude.Degrees()
		return int(math.Floor(coord.Elongation(moonLon, sunLon)/90.0)) % 4
	}

	events, err := search.FindDiscrete(jd.JD(), jd.JD()+SynodicMonth+2.0, 1.0, quadrant, 0)
	if err != nil {
		return timescale.JulianDate{}, err
	}
	for _, ev := range events {
		if Quarter(ev.NewValue) == q {
			return timescale.New(ev.JD), nil
		}
	}
	// A full synodic month plus margin contains every quadrant transition,
	// so reaching this point indicates a defect in the search window.
	return timescale.JulianDate{}, errors.Errorf("moon: no %s found within one synodic month of JD %.5f", q, jd.JD())
}
