package substats

import (
	"math"
	"strconv"
)

// FormatRatio formats a ratio with two decimals, or "-" when it is not a
// finite number.
func FormatRatio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

// Ticks returns axis tick values from 0 to maxValue using a 1-2-5 step
// sequence, aiming for at most maxCount intervals. maxValue is always the
// last tick.
func Ticks(maxValue float64, maxCount int) []float64 {
	if maxValue <= 0 || maxCount <= 0 {
		return []float64{0}
	}

	approx := maxValue / float64(maxCount)
	magnitude := math.Pow(10, math.Floor(math.Log10(approx)))
	var step float64
	switch normalized := approx / magnitude; {
	case normalized < 1.5:
		step = 1
	case normalized < 3:
		step = 2
	case normalized < 7:
		step = 5
	default:
		step = 10
	}
	step *= magnitude

	var ticks []float64
	for v := 0.0; v <= maxValue+step*0.1; v += step {
		ticks = append(ticks, math.Round(v*100)/100)
	}
	if ticks[len(ticks)-1] != maxValue {
		ticks = append(ticks, maxValue)
	}
	return ticks
}
