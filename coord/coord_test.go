package coord

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astral-go/astral/timescale"
	"github.com/astral-go/astral/units"
)

func TestConstructors_RejectOutOfRange(t *testing.T) {
	_, err := ICRSFromDegrees(10, 91)
	assert.ErrorIs(t, err, ErrDeclinationRange)

	_, err = ICRSFromDegrees(10, -90.0001)
	assert.ErrorIs(t, err, ErrDeclinationRange)

	_, err = GalacticFromDegrees(0, 95)
	assert.ErrorIs(t, err, ErrLatitudeRange)

	_, err = HorizontalFromDegrees(-91, 0)
	assert.ErrorIs(t, err, ErrAltitudeRange)

	_, err = ICRSFromDegrees(350, 90)
	assert.NoError(t, err)
}

func TestGalactic_RoundTrip(t *testing.T) {
	for ra := 0.0; ra < 360.0; ra += 30.0 {
		for dec := -89.0; dec <= 89.0; dec += 22.0 {
			in, err := ICRSFromDegrees(ra, dec)
			require.NoError(t, err)

			gal := in.ToGalactic(nil)
			out := gal.ToICRS(nil)

			assert.InDelta(t, dec, out.Dec.Degrees(), 1e-6, "ra=%v dec=%v", ra, dec)
			dRA := math.Abs(out.RA.Sub(in.RA).Normalize(units.FromDegrees(0)).Degrees())
			assert.Less(t, dRA*math.Cos(dec*math.Pi/180), 1e-6, "ra=%v dec=%v", ra, dec)
		}
	}
}

func TestGalactic_Centre(t *testing.T) {
	gc, err := GalacticFromDegrees(0, 0)
	require.NoError(t, err)
	icrs := gc.ToICRS(nil)

	assert.Greater(t, icrs.RA.Degrees(), 265.0)
	assert.Less(t, icrs.RA.Degrees(), 268.0)
	assert.Greater(t, icrs.Dec.Degrees(), -30.0)
	assert.Less(t, icrs.Dec.Degrees(), -28.0)
}

func TestGalactic_NorthPole(t *testing.T) {
	ngp, err := ICRSFromDegrees(ngpRADeg, ngpDecDeg)
	require.NoError(t, err)
	gal := ngp.ToGalactic(nil)

	assert.InDelta(t, 90.0, gal.B.Degrees(), 1e-6)
	// At the pole the longitude is indeterminate and reported as 0.
	assert.Equal(t, 0.0, gal.L.Degrees())
}

func TestGalactic_LongitudeNormalized(t *testing.T) {
	for ra := 0.0; ra < 360.0; ra += 45.0 {
		c, err := ICRSFromDegrees(ra, 15)
		require.NoError(t, err)
		l := c.ToGalactic(nil).L.Degrees()
		assert.GreaterOrEqual(t, l, 0.0)
		assert.Less(t, l, 360.0)
	}
}

func TestHorizontal_PoleGeometry(t *testing.T) {
	jd := timescale.New(2460000.5)
	lat90 := units.FromDegrees(90)
	lon := units.FromDegrees(0)

	// From the North Pole the celestial pole sits at the zenith and any
	// target's altitude equals its declination.
	ncp, _ := ICRSFromDegrees(123, 90)
	hz := ncp.ToHorizontal(jd, lat90, lon, nil)
	assert.InDelta(t, 90.0, hz.Alt.Degrees(), 1e-6)

	target, _ := ICRSFromDegrees(40, 35)
	hz = target.ToHorizontal(jd, lat90, lon, nil)
	assert.InDelta(t, 35.0, hz.Alt.Degrees(), 1e-6)
}

func TestHorizontal_TransitAltitude(t *testing.T) {
	// A target observed exactly at its meridian passage: pick the JD so
	// that LST equals the target's RA, then alt = 90 - |lat - dec|.
	jd := timescale.New(2460000.5)
	lat := units.FromDegrees(51.4772)
	lon := units.FromDegrees(0)

	ra := units.FromHours(jd.LST(0))
	target := ICRS{RA: ra, Dec: units.FromDegrees(20)}
	hz := target.ToHorizontal(jd, lat, lon, nil)

	assert.InDelta(t, 90.0-(51.4772-20.0), hz.Alt.Degrees(), 1e-6)
	assert.GreaterOrEqual(t, hz.Az.Degrees(), 0.0)
	assert.Less(t, hz.Az.Degrees(), 360.0)
}

func TestSeparation_SiriusBetelgeuse(t *testing.T) {
	sirius, err := ParseICRS("6h45m09s -16d42m58s")
	require.NoError(t, err)
	betelgeuse, err := ParseICRS("5h55m10s +7d24m26s")
	require.NoError(t, err)

	sep := Separation(sirius, betelgeuse, nil)
	assert.Greater(t, sep.Degrees(), 26.0)
	assert.Less(t, sep.Degrees(), 28.0)
}

func TestSeparation_Degenerate(t *testing.T) {
	a, _ := ICRSFromDegrees(120, 45)
	assert.InDelta(t, 0.0, Separation(a, a, nil).Degrees(), 1e-12)

	// Antipodal points.
	b, _ := ICRSFromDegrees(300, -45)
	assert.InDelta(t, 180.0, Separation(a, b, nil).Degrees(), 1e-9)

	// Tiny separations survive without catastrophic cancellation.
	c, _ := ICRSFromDegrees(120.0000001, 45)
	tiny := Separation(a, c, nil).Degrees()
	assert.Greater(t, tiny, 0.0)
	assert.Less(t, tiny, 1e-6)
}

func TestPositionAngle_Cardinal(t *testing.T) {
	origin, _ := ICRSFromDegrees(0, 0)

	north, _ := ICRSFromDegrees(0, 10)
	assert.InDelta(t, 0.0, PositionAngle(origin, north, nil).Degrees(), 1e-9)

	east, _ := ICRSFromDegrees(10, 0)
	assert.InDelta(t, 90.0, PositionAngle(origin, east, nil).Degrees(), 1e-9)

	south, _ := ICRSFromDegrees(0, -10)
	assert.InDelta(t, 180.0, PositionAngle(origin, south, nil).Degrees(), 1e-9)

	west, _ := ICRSFromDegrees(350, 0)
	assert.InDelta(t, 270.0, PositionAngle(origin, west, nil).Degrees(), 1e-9)
}

func TestElongation(t *testing.T) {
	assert.Equal(t, 90.0, Elongation(100, 10))
	assert.Equal(t, 270.0, Elongation(10, 100))
	assert.Equal(t, 0.0, Elongation(42, 42))
}

func TestFractionIlluminated(t *testing.T) {
	assert.InDelta(t, 1.0, FractionIlluminated(units.FromDegrees(0)), 1e-12)
	assert.InDelta(t, 0.5, FractionIlluminated(units.FromDegrees(90)), 1e-12)
	assert.InDelta(t, 0.0, FractionIlluminated(units.FromDegrees(180)), 1e-12)
}

func TestMeanObliquity(t *testing.T) {
	eps := MeanObliquity(0)
	assert.InDelta(t, 23.4392911, eps.Degrees(), 1e-6)

	// The obliquity decreases slowly with time.
	assert.Less(t, MeanObliquity(1).Degrees(), eps.Degrees())
}

func TestEclipticToEquatorial(t *testing.T) {
	eps := MeanObliquity(0)

	// The equinox direction maps to the origin of both frames.
	eq := EclipticToEquatorial(units.FromDegrees(0), units.FromDegrees(0), eps)
	assert.InDelta(t, 0.0, eq.RA.Degrees(), 1e-9)
	assert.InDelta(t, 0.0, eq.Dec.Degrees(), 1e-9)

	// The summer solstice point sits at RA 90°, Dec +ε.
	eq = EclipticToEquatorial(units.FromDegrees(90), units.FromDegrees(0), eps)
	assert.InDelta(t, 90.0, eq.RA.Degrees(), 1e-9)
	assert.InDelta(t, eps.Degrees(), eq.Dec.Degrees(), 1e-9)
}

func TestTransform_Dispatcher(t *testing.T) {
	c, _ := ICRSFromDegrees(266.4, -28.94)
	in := InICRS(c)

	for _, alias := range []string{"galactic", "GAL", "Galactic"} {
		out, err := Transform(in, alias, nil, nil)
		require.NoError(t, err, alias)
		assert.Equal(t, KindGalactic, out.Kind)
	}

	for _, alias := range []string{"icrs", "J2000", "equatorial"} {
		out, err := Transform(in, alias, nil, nil)
		require.NoError(t, err, alias)
		assert.Equal(t, KindICRS, out.Kind)
		assert.Equal(t, c, out.ICRS)
	}

	_, err := Transform(in, "ecliptic", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownFrame)
}

func TestTransform_HorizontalNeedsContext(t *testing.T) {
	c, _ := ICRSFromDegrees(10, 10)

	_, err := Transform(InICRS(c), "altaz", nil, nil)
	assert.ErrorIs(t, err, ErrMissingContext)

	ctx := At(timescale.New(2460000.5), units.FromDegrees(51.5), units.FromDegrees(0))
	out, err := Transform(InICRS(c), "alt-az", ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, KindHorizontal, out.Kind)
}

func TestTransform_HorizontalInputRejected(t *testing.T) {
	h, _ := HorizontalFromDegrees(45, 180)
	_, err := Transform(InHorizontal(h), "icrs", nil, nil)
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestTransform_RoundTripThroughGalactic(t *testing.T) {
	in, _ := ICRSFromDegrees(83.633, 22.0145) // Crab nebula neighborhood
	gal, err := Transform(InICRS(in), "galactic", nil, nil)
	require.NoError(t, err)
	back, err := Transform(gal, "icrs", nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, in.RA.Degrees(), back.ICRS.RA.Degrees(), 1e-6)
	assert.InDelta(t, in.Dec.Degrees(), back.ICRS.Dec.Degrees(), 1e-6)
}

func TestParseICRS(t *testing.T) {
	tests := []struct {
		in      string
		wantRA  float64
		wantDec float64
	}{
		{"12h30m00s +45d30m00s", 187.5, 45.5},
		{"12:30:00 +45:30:00", 187.5, 45.5},
		{"187.5 45.5", 187.5, 45.5},
		{"0 0", 0, 0},
		{"6h45m09s -16d42m58s", 101.2875, -16.71611},
	}
	for _, tt := range tests {
		c, err := ParseICRS(tt.in)
		require.NoError(t, err, "parse %q", tt.in)
		assert.InDelta(t, tt.wantRA, c.RA.Degrees(), 1e-3, "RA of %q", tt.in)
		assert.InDelta(t, tt.wantDec, c.Dec.Degrees(), 1e-3, "Dec of %q", tt.in)
	}
}

func TestParseICRS_Invalid(t *testing.T) {
	_, err := ParseICRS("nonsense")
	assert.Error(t, err)

	// Parseable but out of range: rejection happens at construction.
	_, err = ParseICRS("10.0 95.0")
	assert.ErrorIs(t, err, ErrDeclinationRange)
}

func TestZenithAngle(t *testing.T) {
	h, _ := HorizontalFromDegrees(30, 120)
	assert.InDelta(t, 60.0, h.ZenithAngle().Degrees(), 1e-12)
}
