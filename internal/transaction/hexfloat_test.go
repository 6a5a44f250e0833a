package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatToHex(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{255.0, "FF"},
		{0.5, ".8"},
		{0.0, ""},
		// The platform's recurrence emits no integer digits for values
		// below 16; only the fractional remainder survives.
		{1.0, ""},
		{2.55, ".8CCCCCCCCCCCC"},
		{16.0, "10"},
		{0.25, ".4"},
		{100.0, "64"},
		{255.9375, "FF.F"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, floatToHex(tc.in), "floatToHex(%v)", tc.in)
	}
}

func TestFloatToHexFractionBound(t *testing.T) {
	// 0.1 has no terminating base-16 expansion; the digit cap stops it.
	assert.Equal(t, ".1999999999999", floatToHex(0.1))
	assert.LessOrEqual(t, len(floatToHex(0.1)), 1+maxFractionDigits)
}
