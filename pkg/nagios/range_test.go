package nagios

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Range
	}{
		{"upper bound only", "~:60", Range{Start: math.Inf(-1), End: 60}},
		{"bare value", "50", Range{Start: 0, End: 50}},
		{"explicit bounds", "10:20", Range{Start: 10, End: 20}},
		{"open end", "90:", Range{Start: 90, End: math.Inf(1)}},
		{"empty start", ":90", Range{Start: 0, End: 90}},
		{"inverted", "@0:50", Range{Start: 0, End: 50, Invert: true}},
		{"inverted bare", "@1", Range{Start: 0, End: 1, Invert: true}},
		{"negative bounds", "-10:-5", Range{Start: -10, End: -5}},
		{"fractional", "0.5:1.25", Range{Start: 0.5, End: 1.25}},
		{"whitespace", " ~:0 ", Range{Start: math.Inf(-1), End: 0}},
		{"unbounded", "~:", Range{Start: math.Inf(-1), End: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"@",
		"abc",
		"10:5",
		"1:2:3",
		"~:~",
		"inf",
		"0:nan",
		"5:x",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRange(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestMustParseRangePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseRange("10:5") })
	assert.NotPanics(t, func() { MustParseRange("~:0") })
}

func TestRangeAlert(t *testing.T) {
	upper := MustParseRange("~:60")
	assert.False(t, upper.Alert(-1000))
	assert.False(t, upper.Alert(60))
	assert.True(t, upper.Alert(60.0001))
	assert.True(t, upper.Alert(61))

	inverted := MustParseRange("@0:50")
	assert.True(t, inverted.Alert(0))
	assert.True(t, inverted.Alert(25))
	assert.True(t, inverted.Alert(50))
	assert.False(t, inverted.Alert(-0.1))
	assert.False(t, inverted.Alert(50.1))

	lower := MustParseRange("90:")
	assert.True(t, lower.Alert(89))
	assert.False(t, lower.Alert(90))
	assert.False(t, lower.Alert(100))
}

func TestBareValueEquivalence(t *testing.T) {
	bare := MustParseRange("50")
	explicit := MustParseRange("0:50")

	assert.Equal(t, explicit, bare)

	for _, v := range []float64{-1, 0, 25, 50, 51} {
		assert.Equal(t, explicit.Alert(v), bare.Alert(v), "value %v", v)
	}
}

func TestRangeRoundTrip(t *testing.T) {
	inputs := []string{
		"~:0", "~:60", "~:80", "90:", ":90", "@0:1", "@0:50", "50",
		"-3.5:7.25", "~:", "@~:10", "@5:", "1e-06:2e+10",
	}
	samples := []float64{
		math.Inf(-1), -1e12, -3.5, -1, 0, 1e-06, 0.5, 1, 7.25, 10, 50,
		59.9, 60, 60.1, 80, 90, 100, 2e+10, math.Inf(1),
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			r := MustParseRange(input)

			again, err := ParseRange(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, again)
			assert.Equal(t, r.String(), again.String())

			for _, v := range samples {
				assert.Equal(t, r.Alert(v), again.Alert(v), "value %v", v)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "~:60", MustParseRange("~:60").String())
	assert.Equal(t, "0:50", MustParseRange("50").String())
	assert.Equal(t, "@0:50", MustParseRange("@0:50").String())
	assert.Equal(t, "90:", MustParseRange("90:").String())
	assert.Equal(t, "0:90", MustParseRange(":90").String())
}
