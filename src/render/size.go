package render

// Size limits applied to configured chart dimensions.
const (
	minChartWidth  = 480
	maxChartWidth  = 4096
	minChartHeight = 280
	maxChartHeight = 4096
)

// ComputeChartDimensions applies width/height clamp rules used for charts. A
// non-positive height is derived from the width (60%).
func ComputeChartDimensions(rawW, rawH int) (int, int) {
	w := clamp(rawW, minChartWidth, maxChartWidth)
	h := rawH
	if h <= 0 {
		h = int(float32(w) * 0.6)
	}
	return w, clamp(h, minChartHeight, maxChartHeight)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
