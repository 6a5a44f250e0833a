package transaction

import "math"

// convertRotationToMatrix converts a rotation angle in degrees into the
// four components of a 2x2 rotation matrix, column order
// [cos, -sin, sin, cos].
func convertRotationToMatrix(degrees float64) []float64 {
	rad := degrees * math.Pi / 180
	return []float64{math.Cos(rad), -math.Sin(rad), math.Sin(rad), math.Cos(rad)}
}
