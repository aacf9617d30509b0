package visibility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astral-go/astral/coord"
	"github.com/astral-go/astral/observer"
	"github.com/astral-go/astral/search"
	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
)

func greenwich(t *testing.T) observer.Observer {
	t.Helper()
	obs, err := observer.FromDegrees("Greenwich", 51.4772, 0.0, 62, "")
	require.NoError(t, err)
	return obs
}

func TestAirmass_Anchors(t *testing.T) {
	assert.InDelta(t, 1.00, Airmass(units.FromDegrees(90)), 0.01)
	assert.InDelta(t, 1.41, Airmass(units.FromDegrees(45)), 0.02*1.41)
	assert.InDelta(t, 2.00, Airmass(units.FromDegrees(30)), 0.02*2.00)
}

func TestAirmass_LowAltitude(t *testing.T) {
	assert.Greater(t, Airmass(units.FromDegrees(5)), 10.0)
	assert.Greater(t, Airmass(units.FromDegrees(1)), 25.0)

	// Monotone growth toward the horizon.
	assert.Greater(t, Airmass(units.FromDegrees(5)), Airmass(units.FromDegrees(10)))
	assert.Greater(t, Airmass(units.FromDegrees(1)), Airmass(units.FromDegrees(5)))
}

func TestAirmass_UndefinedBelowFloor(t *testing.T) {
	assert.True(t, math.IsInf(Airmass(units.FromDegrees(-5)), 1))
	assert.True(t, math.IsInf(Airmass(units.FromDegrees(0)), 1))
	assert.True(t, math.IsInf(Airmass(units.FromDegrees(0.05)), 1))
	assert.False(t, math.IsInf(Airmass(units.FromDegrees(0.2)), 1))
}

func TestTargetAltitudeAzimuth_Range(t *testing.T) {
	obs := greenwich(t)
	target, _ := coord.ICRSFromDegrees(180, 45)
	for hour := 0; hour < 24; hour += 3 {
		jd := timescale.New(2460000.5 + float64(hour)/24.0)
		alt := TargetAltitude(target, obs, jd).Degrees()
		az := TargetAzimuth(target, obs, jd).Degrees()
		assert.GreaterOrEqual(t, alt, -90.0)
		assert.LessOrEqual(t, alt, 90.0)
		assert.GreaterOrEqual(t, az, 0.0)
		assert.Less(t, az, 360.0)
	}
}

func TestTransitTime_LSTMatchesRA(t *testing.T) {
	obs := greenwich(t)
	target, _ := coord.ICRSFromDegrees(120, 30)
	jd := timescale.New(2460000.5)

	transit := TransitTime(target, obs, jd)

	// Within half a day of the reference instant.
	assert.Less(t, math.Abs(transit.Sub(jd)), 0.55)

	// LST at the computed transit equals the target's RA to within the
	// sidereal-vs-solar rate residual of the one-pass correction.
	lst := transit.LST(obs.LonDeg())
	diff := math.Abs(lst - target.RA.Hours())
	if diff > 12 {
		diff = 24 - diff
	}
	assert.Less(t, diff, 0.05)
}

func TestTransit_AltitudeDominatesNeighborhood(t *testing.T) {
	obs := greenwich(t)
	target, _ := coord.ICRSFromDegrees(40, 20)
	jd := timescale.New(2460123.5)

	transit := TransitTime(target, obs, jd)
	altTransit := TargetAltitude(target, obs, transit).Degrees()

	for _, offset := range []float64{-1.0, -0.5, 0.5, 1.0} {
		alt := TargetAltitude(target, obs, transit.AddDays(offset/24.0)).Degrees()
		assert.LessOrEqual(t, alt, altTransit+0.01, "offset %vh", offset)
	}

	// The altitude peak found numerically agrees with the analytic
	// transit to within the one-pass correction's residual.
	peaks, err := search.FindMaxima(transit.JD()-0.25, transit.JD()+0.25, 0.02,
		func(t float64) float64 {
			return TargetAltitude(target, obs, timescale.New(t)).Degrees()
		}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, peaks)
	assert.InDelta(t, transit.JD(), peaks[0].JD, 0.005)

	// And it matches the closed-form transit altitude.
	assert.InDelta(t, TransitAltitude(target, obs).Degrees(), peaks[0].Value, 0.01)
}

func TestTransitAltitude(t *testing.T) {
	obs := greenwich(t)

	overhead, _ := coord.ICRSFromDegrees(0, 51.4772)
	assert.InDelta(t, 90.0, TransitAltitude(overhead, obs).Degrees(), 1e-9)

	equatorial, _ := coord.ICRSFromDegrees(0, 0)
	assert.InDelta(t, 90.0-51.4772, TransitAltitude(equatorial, obs).Degrees(), 1e-9)

	// Far southern targets never rise: negative transit altitude.
	southern, _ := coord.ICRSFromDegrees(0, -60)
	assert.Less(t, TransitAltitude(southern, obs).Degrees(), 0.0)

	// The cap applies when |φ - δ| would exceed the zenith.
	equatorObs, err := observer.FromDegrees("Equator", 0, 0, 0, "")
	require.NoError(t, err)
	zenith, _ := coord.ICRSFromDegrees(0, 0)
	assert.InDelta(t, 90.0, TransitAltitude(zenith, equatorObs).Degrees(), 1e-9)
}

func TestRiseSet_EquatorialTarget(t *testing.T) {
	obs := greenwich(t)
	target, _ := coord.ICRSFromDegrees(0, 0)
	jd := timescale.New(2460000.5)

	rise, set := RiseSet(target, obs, jd, units.FromDegrees(0))
	require.NotNil(t, rise)
	require.NotNil(t, set)
	assert.Less(t, rise.JD(), set.JD())

	// An equatorial target spends close to half the day above the
	// geometric horizon.
	assert.InDelta(t, 0.5, set.Sub(*rise), 0.02)

	// At the crossings the target sits on the horizon, within the
	// one-pass transit correction's sidereal-rate residual.
	assert.InDelta(t, 0.0, TargetAltitude(target, obs, *rise).Degrees(), 0.5)
	assert.InDelta(t, 0.0, TargetAltitude(target, obs, *set).Degrees(), 0.5)
}

func TestRiseSet_AbsentCases(t *testing.T) {
	obs := greenwich(t)
	jd := timescale.New(2460000.5)

	// Circumpolar: both absent, transit altitude above the horizon.
	polaris, _ := coord.ICRSFromDegrees(0, 89)
	rise, set := RiseSet(polaris, obs, jd, units.FromDegrees(0))
	assert.Nil(t, rise)
	assert.Nil(t, set)
	assert.Greater(t, TransitAltitude(polaris, obs).Degrees(), 0.0)

	// Never rises: both absent, transit altitude below the horizon.
	southern, _ := coord.ICRSFromDegrees(0, -80)
	rise, set = RiseSet(southern, obs, jd, units.FromDegrees(0))
	assert.Nil(t, rise)
	assert.Nil(t, set)
	assert.Less(t, TransitAltitude(southern, obs).Degrees(), 0.0)
}

func TestRiseSet_CustomHorizon(t *testing.T) {
	obs := greenwich(t)
	target, _ := coord.ICRSFromDegrees(0, 20)
	jd := timescale.New(2460000.5)

	rise0, set0 := RiseSet(target, obs, jd, units.FromDegrees(0))
	rise20, set20 := RiseSet(target, obs, jd, units.FromDegrees(20))
	require.NotNil(t, rise0)
	require.NotNil(t, rise20)

	// A higher horizon shortens the interval above it.
	assert.Less(t, set20.Sub(*rise20), set0.Sub(*rise0))
}

func TestMoonSeparation_Range(t *testing.T) {
	target, _ := coord.ICRSFromDegrees(180, 45)
	for day := 0.0; day < 28.0; day += 4.0 {
		sep := MoonSeparation(target, timescale.New(2460000.5+day)).Degrees()
		assert.GreaterOrEqual(t, sep, 0.0)
		assert.LessOrEqual(t, sep, 180.0)
	}
}

func TestIsNight(t *testing.T) {
	obs := greenwich(t)

	// January midnight UTC is night; noon is not.
	assert.True(t, IsNight(obs, timescale.New(2460325.5)))
	assert.False(t, IsNight(obs, timescale.New(2460326.0)))
}

func TestPoleVisibility(t *testing.T) {
	pole, err := observer.FromDegrees("North Pole", 90, 0, 0, "")
	require.NoError(t, err)
	jd := timescale.New(2460000.5)

	ncp, _ := coord.ICRSFromDegrees(0, 90)
	assert.Greater(t, TargetAltitude(ncp, pole, jd).Degrees(), 85.0)

	scp, _ := coord.ICRSFromDegrees(0, -90)
	assert.Less(t, TargetAltitude(scp, pole, jd).Degrees(), -85.0)
}

func TestAssess_Report(t *testing.T) {
	obs := greenwich(t)
	target, _ := coord.ICRSFromDegrees(180, 45)
	jd := timescale.New(2460000.5)

	rep := Assess(target, obs, jd, nil)

	assert.Equal(t, TargetAltitude(target, obs, jd).Degrees(), rep.Altitude.Degrees())
	assert.Equal(t, TransitAltitude(target, obs).Degrees(), rep.TransitAltitude.Degrees())
	// Dec 45° from latitude 51.5° is circumpolar: rise and set absent.
	assert.Nil(t, rep.Rise)
	assert.Nil(t, rep.Set)
	assert.GreaterOrEqual(t, rep.MoonSeparation.Degrees(), 0.0)
	if rep.Altitude.Degrees() > 0.1 {
		assert.False(t, math.IsInf(rep.Airmass, 1))
	} else {
		assert.True(t, math.IsInf(rep.Airmass, 1))
	}
}
