package transaction

import "math"

// bisection stops once the x estimate is within this distance of the
// target time; the iteration cap guards against a stalled interval at
// double precision.
const (
	bezierTolerance = 0.00001
	bezierMaxIters  = 64
)

// cubicBezier evaluates an easing curve defined by four control values
// (x1, y1, x2, y2) the way the platform's animation runtime does.
type cubicBezier struct {
	curves [4]float64
}

// getValue maps a normalized time t to the eased progress value.
// Outside [0,1] the curve is extrapolated linearly using the boundary
// gradients; inside, a bisection search inverts the x-parameterization.
func (c *cubicBezier) getValue(t float64) float64 {
	if t <= 0.0 {
		var startGradient float64
		if c.curves[0] > 0.0 {
			startGradient = c.curves[1] / c.curves[0]
		} else if c.curves[1] == 0.0 && c.curves[2] > 0.0 {
			startGradient = c.curves[3] / c.curves[2]
		}
		return startGradient * t
	}
	if t >= 1.0 {
		var endGradient float64
		if c.curves[2] < 1.0 {
			endGradient = (c.curves[3] - 1.0) / (c.curves[2] - 1.0)
		} else if c.curves[2] == 1.0 && c.curves[0] < 1.0 {
			endGradient = (c.curves[1] - 1.0) / (c.curves[0] - 1.0)
		}
		return 1.0 + endGradient*(t-1.0)
	}

	start := 0.0
	end := 1.0
	mid := 0.0
	for i := 0; i < bezierMaxIters && start < end; i++ {
		mid = (start + end) / 2
		xEst := cubicCalc(c.curves[0], c.curves[2], mid)
		if math.Abs(t-xEst) < bezierTolerance {
			return cubicCalc(c.curves[1], c.curves[3], mid)
		}
		if xEst < t {
			start = mid
		} else {
			end = mid
		}
	}
	return cubicCalc(c.curves[1], c.curves[3], mid)
}

// cubicCalc evaluates one axis of the cubic bezier at parameter m with
// implicit anchors at 0 and 1.
func cubicCalc(a, b, m float64) float64 {
	return 3.0*a*(1-m)*(1-m)*m + 3.0*b*(1-m)*m*m + m*m*m
}
