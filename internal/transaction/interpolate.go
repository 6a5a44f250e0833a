package transaction

import "fmt"

// interpolate linearly blends two equal-length numeric sequences at
// factor f.
func interpolate(from, to []float64, f float64) ([]float64, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("interpolate: length mismatch %d vs %d", len(from), len(to))
	}
	out := make([]float64, len(from))
	for i := range from {
		out[i] = from[i]*(1-f) + to[i]*f
	}
	return out, nil
}

// interpolateBools picks per element between two equal-length boolean
// sequences: below 0.5 the from value wins, otherwise the to value.
func interpolateBools(from, to []bool, f float64) ([]bool, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("interpolate: length mismatch %d vs %d", len(from), len(to))
	}
	out := make([]bool, len(from))
	for i := range from {
		if f < 0.5 {
			out[i] = from[i]
		} else {
			out[i] = to[i]
		}
	}
	return out, nil
}
