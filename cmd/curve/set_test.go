package curve

import (
	"testing"

	"github.com/board2go/board2go/internal/curves"
	"github.com/stretchr/testify/assert"
)

func TestParsePoints(t *testing.T) {
	// WHEN
	curve, err := ParsePoints([]string{"60:200", "40:100", " 50 : 150 "})

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, curves.Curve{
		{Temp: 40, Pwm: 100},
		{Temp: 50, Pwm: 150},
		{Temp: 60, Pwm: 200},
	}, curve)
}

func TestParsePoints_Invalid(t *testing.T) {
	for _, arg := range []string{"40", "40:abc", "x:100", "40:256", "40:-1", "40:1:2"} {
		// WHEN
		_, err := ParsePoints([]string{arg})

		// THEN
		assert.Error(t, err, arg)
	}
}

func TestPlotValues(t *testing.T) {
	// WHEN
	values := plotValues(curves.DefaultCurve())

	// THEN
	assert.Len(t, values, plotTempMax-plotTempMin+1)
	assert.Equal(t, 100.0, values[0])
	assert.Equal(t, 130.0, values[50-plotTempMin])
	assert.Equal(t, 200.0, values[len(values)-1])
}
