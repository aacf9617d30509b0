package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astral-go/astral/verbose"
)

func sample() *Result {
	r := &Result{Title: "Sun"}
	r.Add("julian_date", "Julian Date", 2451545.0, "").
		Add("ra_degrees", "RA", 281.28, "deg").
		Add("rise_jd", "Rise JD", nil, "")
	return r
}

func TestJSON_StableKeys(t *testing.T) {
	out, err := JSON{}.Format(sample())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, 2451545.0, decoded["julian_date"])
	assert.Equal(t, 281.28, decoded["ra_degrees"])

	// Absent values serialize as explicit nulls, not missing keys.
	v, present := decoded["rise_jd"]
	assert.True(t, present)
	assert.Nil(t, v)

	// No steps key without a recorder.
	_, present = decoded["steps"]
	assert.False(t, present)
}

func TestJSON_IncludesSteps(t *testing.T) {
	r := sample()
	r.Steps = verbose.New()
	r.Steps.Step("Mean anomaly", "M = 357.529°")

	out, err := JSON{Pretty: true}.Format(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	steps, ok := decoded["steps"].([]interface{})
	require.True(t, ok)
	assert.Len(t, steps, 1)
}

func TestPlain_ContainsLabelsAndUnits(t *testing.T) {
	out, err := Plain{NoColor: true}.Format(sample())
	require.NoError(t, err)

	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Julian Date")
	assert.Contains(t, out, "2.451545e+06")
	assert.Contains(t, out, "deg")
}

func TestPlain_ShowsSteps(t *testing.T) {
	r := sample()
	r.Steps = verbose.New()
	r.Steps.Step("Equation of centre", "C = -0.08°")

	out, err := Plain{ShowSteps: true, NoColor: true}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, out, "Calculation steps")
	assert.Contains(t, out, "Equation of centre")
}

func TestForMode(t *testing.T) {
	f, err := ForMode("plain", false)
	require.NoError(t, err)
	assert.IsType(t, Plain{}, f)

	f, err = ForMode("json", false)
	require.NoError(t, err)
	assert.IsType(t, JSON{}, f)

	_, err = ForMode("latex", false)
	assert.Error(t, err)
}
