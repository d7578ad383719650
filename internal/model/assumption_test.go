package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"7", 7},
		{"6.5", 6.5},
		{" 20 ", 20},
		{"7%", 7},
		{"1,250.50", 1250.5},
		{"0", 0},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.InDelta(t, tt.want, got, 1e-12, "ParseValue(%q)", tt.input)
	}
}

func TestParseValue_Errors(t *testing.T) {
	badInputs := []string{"", "   ", "abc", "7.0.1", "%", "twenty"}
	for _, input := range badInputs {
		_, err := ParseValue(input)
		assert.Error(t, err, "expected error for input: %q", input)
	}

	_, err := ParseValue("-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestAssumptionEdit(t *testing.T) {
	a := Assumption{Title: TitleInterestRate, Value: 7, Default: 7, Input: PercentageSlider{Step: 0.25}}

	got, ok := a.Edit("6.5")
	assert.True(t, ok)
	assert.InDelta(t, 6.5, got.Value, 1e-12)

	// Original is a value; editing returns a copy.
	assert.InDelta(t, 7.0, a.Value, 1e-12)
}

func TestAssumptionEdit_FallsBackToDefault(t *testing.T) {
	a := Assumption{Title: TitleDownPayment, Value: 35, Default: 20, Input: PercentageSlider{Step: 1}}

	got, ok := a.Edit("lots")
	assert.False(t, ok)
	assert.InDelta(t, 20.0, got.Value, 1e-12)

	got, ok = a.Edit("-10")
	assert.False(t, ok)
	assert.InDelta(t, 20.0, got.Value, 1e-12)
}

func TestAssumptionEdit_NilInputIsFreeEntry(t *testing.T) {
	a := Assumption{Title: "Target", Default: 1000}
	got, ok := a.Edit("250000")
	assert.True(t, ok)
	assert.InDelta(t, 250000.0, got.Value, 1e-9)
}

func TestInputClamp(t *testing.T) {
	tests := []struct {
		name  string
		input InputType
		in    float64
		want  float64
	}{
		{"percentage above range", PercentageSlider{Step: 1}, 140, 100},
		{"percentage snaps to step", PercentageSlider{Step: 0.5}, 6.6, 6.5},
		{"percentage without step", PercentageSlider{}, 6.6, 6.6},
		{"year below min", YearSlider{Min: 10, Max: 30}, 5, 10},
		{"year above max", YearSlider{Min: 10, Max: 30}, 45, 30},
		{"year rounds", YearSlider{Min: 1, Max: 7}, 4.6, 5},
		{"text field keeps large", TextField{}, 1e7, 1e7},
		{"distribution caps", PercentageDistribution{}, 120, 100},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.input.Clamp(tt.in), 1e-9, tt.name)
	}
}

func TestInputKinds(t *testing.T) {
	assert.Equal(t, InputPercentageSlider, PercentageSlider{}.Kind())
	assert.Equal(t, InputYearSlider, YearSlider{}.Kind())
	assert.Equal(t, InputTextField, TextField{}.Kind())
	assert.Equal(t, InputPercentageDistribution, PercentageDistribution{}.Kind())
}
