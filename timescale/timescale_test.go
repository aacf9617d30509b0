package timescale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCalendar_J2000(t *testing.T) {
	jd := FromCalendar(2000, 1, 1, 12, 0, 0)
	assert.Equal(t, 2451545.0, jd.JD())
}

func TestFromCalendar_MeeusExamples(t *testing.T) {
	// Meeus Ch. 7 worked examples.
	tests := []struct {
		name            string
		y, mo, d, h, mi int
		sec             float64
		want            float64
	}{
		{"sputnik", 1957, 10, 4, 19, 26, 24, 2436116.31},
		{"gregorian day", 1987, 1, 27, 0, 0, 0, 2446822.5},
		{"julian branch", 333, 1, 27, 12, 0, 0, 1842713.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd := FromCalendar(tt.y, tt.mo, tt.d, tt.h, tt.mi, tt.sec)
			assert.InDelta(t, tt.want, jd.JD(), 0.01)
		})
	}
}

func TestTime_RoundTripPreservesMicroseconds(t *testing.T) {
	// Round-trip through the calendar must recover the instant across the
	// supported JD span. Near JD 2.4e6 a float64 day count quantizes at a
	// few times 1e-5 s, which bounds what any round trip can promise.
	for _, base := range []float64{2400000.5, 2430000.25, 2451545.0, 2460325.7, 2499999.5} {
		jd := New(base)
		back := FromTime(jd.Time())
		assert.InDelta(t, jd.JD(), back.JD(), 2e-4/86400.0, "jd %v", base)
	}

	in := FromCalendar(2024, 3, 15, 13, 45, 30.123456)
	out := in.Time()
	assert.Equal(t, 2024, out.Year())
	assert.Equal(t, time.March, out.Month())
	assert.Equal(t, 15, out.Day())
	assert.Equal(t, 13, out.Hour())
	assert.Equal(t, 45, out.Minute())
	sec := float64(out.Second()) + float64(out.Nanosecond())/1e9
	assert.InDelta(t, 30.123456, sec, 1e-4)
}

func TestTime_GregorianCutover(t *testing.T) {
	// 1582 October 4 (Julian) is immediately followed by October 15
	// (Gregorian).
	before := FromCalendar(1582, 10, 4, 0, 0, 0)
	after := FromCalendar(1582, 10, 15, 0, 0, 0)
	assert.InDelta(t, 1.0, after.Sub(before), 1e-9)

	back := after.Time()
	assert.Equal(t, 15, back.Day())
	assert.Equal(t, time.October, back.Month())
}

func TestFromTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	local := time.Date(2024, 6, 1, 14, 0, 0, 0, loc)
	jd := FromTime(local)
	assert.Equal(t, FromCalendar(2024, 6, 1, 12, 0, 0).JD(), jd.JD())
}

func TestDerivedViews(t *testing.T) {
	jd := New(2451545.0)
	assert.InDelta(t, 51544.5, jd.MJD(), 1e-9)
	assert.Zero(t, jd.J2000Century())
	assert.Zero(t, jd.DaysSinceJ2000())

	later := New(2451545.0 + 36525.0)
	assert.InDelta(t, 1.0, later.J2000Century(), 1e-12)

	assert.Equal(t, 2451545.0, FromMJD(51544.5).JD())
}

func TestGMST_J2000(t *testing.T) {
	gmst := New(2451545.0).GMST()
	assert.Greater(t, gmst, 18.6)
	assert.Less(t, gmst, 18.8)
	assert.InDelta(t, 18.697374558, gmst, 1e-4)
}

func TestGMST_Range(t *testing.T) {
	for jd := 2400000.5; jd < 2500000.0; jd += 3333.625 {
		g := New(jd).GMST()
		assert.GreaterOrEqual(t, g, 0.0, "jd %v", jd)
		assert.Less(t, g, 24.0, "jd %v", jd)
	}
}

func TestLST(t *testing.T) {
	jd := New(2460325.5)

	// At zero longitude LST is exactly GMST.
	assert.Equal(t, jd.GMST(), jd.LST(0))

	// 15° east adds one sidereal hour, modulo a day.
	want := math.Mod(jd.GMST()+1.0, 24.0)
	assert.InDelta(t, want, jd.LST(15), 1e-12)

	// Western longitudes stay in range.
	lst := jd.LST(-120)
	assert.GreaterOrEqual(t, lst, 0.0)
	assert.Less(t, lst, 24.0)
}

func TestArithmetic(t *testing.T) {
	jd := New(2451545.0)
	assert.Equal(t, 2451546.25, jd.AddDays(1.25).JD())
	assert.InDelta(t, -1.25, jd.Sub(jd.AddDays(1.25)), 1e-12)
	assert.True(t, jd.Before(jd.AddDays(0.001)))
}

func TestApproxEqual(t *testing.T) {
	jd := New(2451545.0)
	assert.True(t, jd.ApproxEqual(New(2451545.0)))
	assert.True(t, jd.ApproxEqual(New(2451545.0*(1+1e-14))))
	assert.False(t, jd.ApproxEqual(New(2451545.1)))
}

func TestNow_IsCurrent(t *testing.T) {
	jd := Now()
	back := jd.Time()
	require.WithinDuration(t, time.Now().UTC(), back, 2*time.Second)
}
