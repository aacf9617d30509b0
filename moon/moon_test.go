package moon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/timescale"
)

func greenwich(t *testing.T) observer.Observer {
	t.Helper()
	obs, err := observer.FromDegrees("Greenwich", 51.4772, 0.0, 62, "")
	require.NoError(t, err)
	return obs
}

func TestPosition_PhysicalBounds(t *testing.T) {
	for day := 0.0; day < 60.0; day += 1.7 {
		jd := timescale.New(2460300.5 + day)
		pos := PositionAt(jd, nil)

		assert.Greater(t, pos.Distance.Km(), 350000.0, "day %v", day)
		assert.Less(t, pos.Distance.Km(), 410000.0, "day %v", day)

		assert.Less(t, math.Abs(pos.Latitude.Degrees()), 5.5, "day %v", day)

		arcmin := pos.AngularDiameter.Arcminutes()
		assert.Greater(t, arcmin, 29.0, "day %v", day)
		assert.Less(t, arcmin, 34.0, "day %v", day)

		par := pos.Parallax.Degrees()
		assert.Greater(t, par, 0.85, "day %v", day)
		assert.Less(t, par, 1.05, "day %v", day)

		assert.GreaterOrEqual(t, pos.RA.Degrees(), 0.0)
		assert.Less(t, pos.RA.Degrees(), 360.0)
		assert.LessOrEqual(t, math.Abs(pos.Dec.Degrees()), 29.0)
	}
}

func TestPosition_J2000Longitude(t *testing.T) {
	// The truncated series lands within about half a degree of the
	// reference value near J2000 (λ ≈ 222.8°).
	pos := PositionAt(timescale.New(2451545.0), nil)
	assert.InDelta(t, 222.8, pos.Longitude.Degrees(), 1.0)
}

func TestPhase_Invariants(t *testing.T) {
	for day := 0.0; day < 30.0; day++ {
		ph := PhaseAt(timescale.New(2460300.5+day), nil)

		assert.GreaterOrEqual(t, ph.Illumination, 0.0)
		assert.LessOrEqual(t, ph.Illumination, 1.0)
		assert.GreaterOrEqual(t, ph.Elongation.Degrees(), 0.0)
		assert.Less(t, ph.Elongation.Degrees(), 360.0)
		assert.GreaterOrEqual(t, ph.PhaseAngle.Degrees(), 0.0)
		assert.LessOrEqual(t, ph.PhaseAngle.Degrees(), 180.0)
		assert.GreaterOrEqual(t, ph.AgeDays, 0.0)
		assert.Less(t, ph.AgeDays, 30.0)
		assert.NotEmpty(t, ph.Name)
		assert.NotEmpty(t, ph.Glyph)
		assert.Equal(t, ph.Waxing, ph.Elongation.Degrees() < 180.0)
	}
}

func TestPhase_FullCycleReached(t *testing.T) {
	// Over one lunation the disc runs from nearly dark to nearly full.
	minIllum, maxIllum := 1.0, 0.0
	for day := 0.0; day < 30.0; day += 0.5 {
		ph := PhaseAt(timescale.New(2460300.5+day), nil)
		minIllum = math.Min(minIllum, ph.Illumination)
		maxIllum = math.Max(maxIllum, ph.Illumination)
	}
	assert.Less(t, minIllum, 0.05)
	assert.Greater(t, maxIllum, 0.95)
}

func TestPhase_BucketMatchesElongation(t *testing.T) {
	// Near zero elongation the bucket must be New Moon; near 180° Full.
	for day := 0.0; day < 30.0; day += 0.25 {
		ph := PhaseAt(timescale.New(2460300.5+day), nil)
		e := ph.Elongation.Degrees()
		switch {
		case e < 20 || e > 340:
			assert.Equal(t, "New Moon", ph.Name, "elongation %v", e)
		case 160 < e && e < 200:
			assert.Equal(t, "Full Moon", ph.Name, "elongation %v", e)
		}
	}
}

func TestNextPhase_WithinSynodicMonth(t *testing.T) {
	jd := timescale.New(2460300.5)
	for _, q := range []Quarter{NewMoon, FirstQuarter, FullMoon, LastQuarter} {
		next, err := NextPhase(jd, q)
		require.NoError(t, err, q)
		assert.Greater(t, next.JD(), jd.JD(), q)
		assert.Less(t, next.Sub(jd), 30.0, q)

		// At the solved instant the elongation sits on the quarter's
		// target angle.
		ph := PhaseAt(next, nil)
		target := float64(int(q)) * 90.0
		diff := math.Abs(ph.Elongation.Degrees() - target)
		if diff > 180 {
			diff = 360 - diff
		}
		assert.Less(t, diff, 0.01, q)
	}
}

func TestNextPhase_SynodicSpacing(t *testing.T) {
	jd := timescale.New(2460300.5)
	full1, err := NextPhase(jd, FullMoon)
	require.NoError(t, err)
	full2, err := NextPhase(full1.AddDays(1), FullMoon)
	require.NoError(t, err)

	spacing := full2.Sub(full1)
	assert.Greater(t, spacing, 29.0)
	assert.Less(t, spacing, 30.0)
}

func TestRiseSet_Greenwich(t *testing.T) {
	obs := greenwich(t)
	jd := timescale.New(2460000.5)

	rise := Rise(obs, jd)
	require.NotNil(t, rise)
	assert.Less(t, math.Abs(rise.Sub(jd)), 2.0)

	set := Set(obs, jd)
	require.NotNil(t, set)
	assert.Less(t, math.Abs(set.Sub(jd)), 2.0)
}

func TestRiseSet_CrossingIsAtThreshold(t *testing.T) {
	// The iterated solution should put the Moon's centre near the
	// rise/set threshold altitude (within the series' accuracy).
	obs := greenwich(t)
	rise := Rise(obs, timescale.New(2460000.5))
	require.NotNil(t, rise)

	pos := PositionAt(*rise, nil)
	alt := Altitude(obs, *rise).Degrees()
	assert.InDelta(t, riseSetAltitude(pos.Parallax), alt, 1.0)
}

func TestAltitude_Range(t *testing.T) {
	obs := greenwich(t)
	for hour := 0; hour <= 24; hour++ {
		alt := Altitude(obs, timescale.New(2460000.5+float64(hour)/24.0)).Degrees()
		assert.GreaterOrEqual(t, alt, -90.0)
		assert.LessOrEqual(t, alt, 90.0)
	}
}

func TestEdge_ExtremeLatitudes(t *testing.T) {
	pole, err := observer.FromDegrees("North Pole", 90, 0, 0, "")
	require.NoError(t, err)
	jd := timescale.New(2460300.5)

	// Position and phase are observer-independent and must not blow up;
	// altitude stays bounded at the pole.
	_ = PositionAt(jd, nil)
	_ = PhaseAt(jd, nil)
	alt := Altitude(pole, jd).Degrees()
	assert.GreaterOrEqual(t, alt, -90.0)
	assert.LessOrEqual(t, alt, 90.0)

	// At the pole the Moon never crosses the horizon within a day: the
	// hour-angle recipe reports the absent value.
	assert.Nil(t, Rise(pole, jd))
}
