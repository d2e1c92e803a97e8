package render

import (
	"fmt"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// dataBounds returns min/max over every point of every series.
func dataBounds(series []types.Series) (minX, maxX, minY, maxY float64) {
	var xs, ys []float64
	for _, s := range series {
		xs = append(xs, s.XValues()...)
		ys = append(ys, s.YValues()...)
	}
	if len(xs) == 0 {
		return 0, 1, 0, 1
	}
	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys)
}

// xAxisBounds keeps the data extent and only widens a degenerate (single x) range.
func xAxisBounds(min, max float64) (float64, float64) {
	if max <= min {
		return min - 0.5, min + 0.5
	}
	return min, max
}

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		// one order below the span keeps [0.3, 0.9] from snapping out to [0, 1]
		mag /= 10
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceStep picks a 1/2/2.5/5/10 multiple of a power of ten giving close to n ticks over span.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	return bestStep
}

// stepTicks lays ticks every step from floor(min) to ceil(max), so the first
// and last tick enclose [min, max]. go-chart derives the axis range from them.
func stepTicks(min, max, step float64, format func(float64) string) []chart.Tick {
	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	// floating point division can land a hair past the boundary
	if start > min {
		start -= step
	}
	if end < max {
		end += step
	}
	count := int(math.Round((end - start) / step))
	if count < 1 {
		count = 1
	}
	ticks := make([]chart.Tick, 0, count+1)
	for i := 0; i <= count; i++ {
		v := start + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: format(v)})
	}
	return ticks
}

// niceTicks generates about n tick marks covering [min, max] using nice increments.
func niceTicks(min, max float64, n int, format func(float64) string) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	return stepTicks(min, max, niceStep(max-min, n), format)
}

// integerTicks labels the epoch/episode axis with whole numbers covering
// [min, max]. It returns nil when fewer than two ticks would result, leaving
// the axis to its explicit range.
func integerTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	lo, hi := math.Floor(min), math.Ceil(max)
	step := 1.0
	if hi-lo > float64(n) {
		step = math.Ceil(niceStep(hi-lo, n))
	}
	ticks := stepTicks(lo, hi, step, formatXTick)
	if len(ticks) < 2 {
		return nil
	}
	return ticks
}

func formatXTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
