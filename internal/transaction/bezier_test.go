package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicBezierLinearIdentity(t *testing.T) {
	c := &cubicBezier{curves: [4]float64{0, 0, 1, 1}}
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.73, 0.9} {
		assert.InDelta(t, tt, c.getValue(tt), 1e-4, "t=%v", tt)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	c := &cubicBezier{curves: [4]float64{0.25, 0.1, 0.25, 1.0}}
	require.Equal(t, 0.0, c.getValue(0))
	require.Equal(t, 1.0, c.getValue(1))
}

func TestCubicBezierStartExtrapolation(t *testing.T) {
	// start gradient = curves[1]/curves[0] = 2
	c := &cubicBezier{curves: [4]float64{0.5, 1.0, 0.0, 1.0}}
	assert.InDelta(t, -1.0, c.getValue(-0.5), 1e-12)

	// curves[0] == 0, curves[1] == 0: gradient = curves[3]/curves[2]
	c = &cubicBezier{curves: [4]float64{0.0, 0.0, 0.5, 0.75}}
	assert.InDelta(t, -0.75, c.getValue(-0.5), 1e-12)
}

func TestCubicBezierEndExtrapolation(t *testing.T) {
	// end gradient = (curves[3]-1)/(curves[2]-1) = 0.5
	c := &cubicBezier{curves: [4]float64{0.0, 0.0, 0.5, 0.75}}
	assert.InDelta(t, 1.5, c.getValue(2.0), 1e-12)
}

func TestCubicBezierKnownValues(t *testing.T) {
	// Reference values from an independent implementation of the same
	// bisection.
	tests := []struct {
		curves [4]float64
		t      float64
		want   float64
	}{
		{[4]float64{0.25, 0.1, 0.25, 1.0}, 0.5, 0.8024002076969768},
		{[4]float64{0.42, 0.0, 0.58, 1.0}, 0.25, 0.12916400127238603},
		{[4]float64{0.0, 0.0, 1.0, 1.0}, 0.73, 0.7300033038200695},
	}
	for _, tc := range tests {
		c := &cubicBezier{curves: tc.curves}
		assert.InDelta(t, tc.want, c.getValue(tc.t), 1e-12, "curves=%v t=%v", tc.curves, tc.t)
	}
}
