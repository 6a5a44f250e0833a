package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateMidpoint(t *testing.T) {
	got, err := interpolate([]float64{0, 0}, []float64{10, 10}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, got)
}

func TestInterpolateEndpoints(t *testing.T) {
	from := []float64{3, -2, 7}
	to := []float64{9, 4, 0}

	got, err := interpolate(from, to, 0)
	require.NoError(t, err)
	assert.Equal(t, from, got)

	got, err = interpolate(from, to, 1)
	require.NoError(t, err)
	assert.Equal(t, to, got)
}

func TestInterpolateLengthMismatch(t *testing.T) {
	_, err := interpolate([]float64{1}, []float64{1, 2}, 0.5)
	require.Error(t, err)

	_, err = interpolateBools([]bool{true}, []bool{true, false}, 0.5)
	require.Error(t, err)
}

func TestInterpolateBoolsThreshold(t *testing.T) {
	from := []bool{true, false}
	to := []bool{false, true}

	got, err := interpolateBools(from, to, 0.4)
	require.NoError(t, err)
	assert.Equal(t, from, got)

	got, err = interpolateBools(from, to, 0.6)
	require.NoError(t, err)
	assert.Equal(t, to, got)
}
