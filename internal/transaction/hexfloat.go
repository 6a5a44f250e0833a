package transaction

import "math"

// maxFractionDigits bounds the fractional loop for values whose base-16
// expansion never terminates. 13 hex digits cover the 52-bit mantissa of
// a float64; the platform's own encoder has no bound, so terminating
// expansions are unaffected.
const maxFractionDigits = 13

// floatToHex renders a non-negative value in the platform's hexadecimal
// text form. The integer loop is a transcription of the platform's own
// recurrence: the loop condition tests the quotient of the previous
// value, so inputs below 16 emit no integer digits at all (1.0 -> "",
// 0.5 -> ".8"). Do not "fix" this into plain repeated division; the
// animation key depends on it byte for byte.
func floatToHex(x float64) string {
	var result []byte
	quotient := int(math.Floor(x / 16))
	fraction := x - math.Floor(x)

	for quotient > 0 {
		quotient = int(math.Floor(x / 16))
		remainder := int(math.Floor(x - float64(quotient)*16))
		result = append([]byte{hexDigit(remainder)}, result...)
		x = float64(quotient)
	}

	if fraction == 0 {
		return string(result)
	}

	result = append(result, '.')
	for i := 0; fraction > 0 && i < maxFractionDigits; i++ {
		fraction *= 16
		integer := int(math.Floor(fraction))
		fraction -= float64(integer)
		result = append(result, hexDigit(integer))
	}
	return string(result)
}

// hexDigit maps 0-15 to '0'-'9', 'A'-'F' (digit+55, as the platform
// computes it).
func hexDigit(d int) byte {
	if d > 9 {
		return byte(d + 55)
	}
	return byte('0' + d)
}
