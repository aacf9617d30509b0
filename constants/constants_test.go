package constants

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c, err := Get("c")
	require.NoError(t, err)
	assert.Equal(t, 299792458.0, c.Value)
	assert.Equal(t, "m/s", c.Unit)

	// Lookup is case-insensitive.
	au, err := Get("au")
	require.NoError(t, err)
	assert.Equal(t, 149597870700.0, au.Value)

	_, err = Get("flux_capacitance")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestList_SortedAndComplete(t *testing.T) {
	list := List()
	assert.Len(t, list, len(Names()))

	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
}

func TestSearch(t *testing.T) {
	hits := Search("galactic")
	assert.Len(t, hits, 3)

	hits = Search("SOLAR")
	assert.NotEmpty(t, hits)

	assert.Empty(t, Search("neutrino"))
}

func TestWellKnownValues(t *testing.T) {
	assert.Equal(t, 2451545.0, JDJ2000.Value)
	assert.Equal(t, 2400000.5, MJDOffset.Value)
	assert.Equal(t, 36525.0, JulianCentury.Value)
	assert.InDelta(t, 23.439291111, ObliquityJ2000.Value, 1e-9)
	assert.InDelta(t, 192.8594813, GalacticPoleRA.Value, 1e-7)

	// Exact-by-definition constants carry zero uncertainty.
	assert.Zero(t, SpeedOfLight.Uncertainty)
	assert.NotZero(t, Gravitational.Uncertainty)
}
