package transaction

import (
	"fmt"
	"math"
	"strings"

	"github.com/qm4/xtid/internal/document"
)

// fallbackAnimationKey is substituted whenever any step of the
// derivation chain fails, so a generator instance always stays usable.
const fallbackAnimationKey = "1e00f00"

// totalFrameTime is the denominator normalizing the key byte product
// into a [0,1] target time.
const totalFrameTime = 4096

// solveValue scales a raw 0-255 frame value into [minVal, maxVal],
// either floored or rounded to two decimals.
func solveValue(value, minVal, maxVal float64, rounding bool) float64 {
	result := value*(maxVal-minVal)/255 + minVal
	if rounding {
		return math.Floor(result)
	}
	return math.Round(result*100) / 100
}

// oddFloor returns the curve control minimum for position i: odd
// positions may dip to -1, even ones bottom out at 0.
func oddFloor(i int) float64 {
	if i%2 != 0 {
		return -1.0
	}
	return 0.0
}

// animate renders one frame row at the given target time into the
// animation key string: eased color digits, the rotation matrix in the
// platform's hex-float form, and a trailing "00", with all '.' and '-'
// stripped.
func animate(row []int, targetTime float64) (string, error) {
	if len(row) < 7 {
		return "", fmt.Errorf("animate: frame row holds %d values, need at least 7", len(row))
	}

	fromColor := []float64{float64(row[0]), float64(row[1]), float64(row[2]), 1}
	toColor := []float64{float64(row[3]), float64(row[4]), float64(row[5]), 1}
	fromRotation := []float64{0.0}
	toRotation := []float64{solveValue(float64(row[6]), 60.0, 360.0, true)}

	remaining := row[7:]
	if len(remaining) < 4 {
		return "", fmt.Errorf("animate: %d curve controls, need at least 4", len(remaining))
	}
	var curves [4]float64
	for i := 0; i < 4; i++ {
		curves[i] = solveValue(float64(remaining[i]), oddFloor(i), 1.0, false)
	}

	cubic := &cubicBezier{curves: curves}
	val := cubic.getValue(targetTime)

	color, err := interpolate(fromColor, toColor, val)
	if err != nil {
		return "", err
	}
	for i := range color {
		if color[i] < 0 {
			color[i] = 0
		}
	}

	rotation, err := interpolate(fromRotation, toRotation, val)
	if err != nil {
		return "", err
	}
	matrix := convertRotationToMatrix(rotation[0])

	var parts []string
	for _, v := range color[:3] {
		parts = append(parts, fmt.Sprintf("%x", int(math.Round(v))))
	}
	for _, v := range matrix {
		rounded := math.Round(v*100) / 100
		if rounded < 0 {
			rounded = -rounded
		}
		hexVal := floatToHex(rounded)
		if strings.HasPrefix(hexVal, ".") {
			hexVal = "0" + hexVal
		}
		parts = append(parts, strings.ToLower(hexVal))
	}
	parts = append(parts, "0", "0")

	joined := strings.Join(parts, "")
	joined = strings.ReplaceAll(joined, ".", "")
	joined = strings.ReplaceAll(joined, "-", "")
	return joined, nil
}

// deriveAnimationKey runs the full chain: select a frame row and a
// target time from site key bytes, then animate. Every failure mode
// collapses to the fixed fallback key.
func deriveAnimationKey(doc *document.Document, siteKey []byte, cfg indicesConfig) string {
	if len(siteKey) <= 5 || cfg.rowIndex >= len(siteKey) {
		return fallbackAnimationKey
	}

	rowIndex := int(siteKey[cfg.rowIndex]) % 16

	frameTime := 1
	for _, idx := range cfg.keyByteIndices {
		if idx < len(siteKey) {
			frameTime *= int(siteKey[idx]) % 16
		}
	}

	table := buildFrameTable(doc, siteKey)
	if len(table) == 0 {
		return fallbackAnimationKey
	}
	row := table[rowIndex%len(table)]

	targetTime := float64(frameTime) / totalFrameTime
	key, err := animate(row, targetTime)
	if err != nil {
		return fallbackAnimationKey
	}
	return key
}
