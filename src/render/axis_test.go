package render

import (
	"testing"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

func TestNiceAxisBounds(t *testing.T) {
	cases := []struct {
		min, max float64
	}{
		{0.3, 0.9},
		{0, 100},
		{5, 5},
		{-2.5, 7.25},
	}
	for _, tc := range cases {
		a, b := niceAxisBounds(tc.min, tc.max)
		if !(a <= tc.min) || !(b >= tc.max) || !(b > a) {
			t.Fatalf("bounds [%v,%v] do not cover [%v,%v]", a, b, tc.min, tc.max)
		}
	}
	if a, b := niceAxisBounds(0.3, 0.9); a < 0.2 || b > 1 {
		t.Fatalf("bounds for [0.3,0.9] too loose: [%v,%v]", a, b)
	}
}

func TestNiceTicks_EncloseRangeAndIncrease(t *testing.T) {
	cases := []struct{ min, max float64 }{
		{0.25, 0.95},
		{0.29, 0.9},
		{-3.2, 41},
		{0.0001, 0.0009},
	}
	for _, tc := range cases {
		ticks := niceTicks(tc.min, tc.max, 6, formatTick)
		if len(ticks) < 2 {
			t.Fatalf("too few ticks for [%v,%v]: %v", tc.min, tc.max, ticks)
		}
		if ticks[0].Value > tc.min || ticks[len(ticks)-1].Value < tc.max {
			t.Fatalf("ticks %v..%v do not enclose [%v,%v]", ticks[0].Value, ticks[len(ticks)-1].Value, tc.min, tc.max)
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i].Value <= ticks[i-1].Value {
				t.Fatalf("ticks not increasing: %v", ticks)
			}
		}
	}
	if niceTicks(0, 1, 1, formatTick) != nil {
		t.Fatalf("n<2 should yield no ticks")
	}
}

func TestIntegerTicks(t *testing.T) {
	small := integerTicks(1, 3, 10)
	if len(small) != 3 || small[0].Label != "1" || small[2].Label != "3" {
		t.Fatalf("small range ticks: %v", small)
	}
	cases := []struct{ min, max float64 }{
		{1, 250},
		{1, 3.5},
		{1, 1.5},
		{0.5, 1.5},
		{6.5, 7.5},
	}
	for _, tc := range cases {
		ticks := integerTicks(tc.min, tc.max, 10)
		if len(ticks) < 2 {
			t.Fatalf("integerTicks(%v,%v) gave %d ticks", tc.min, tc.max, len(ticks))
		}
		if ticks[0].Value > tc.min || ticks[len(ticks)-1].Value < tc.max {
			t.Fatalf("integer ticks %v..%v do not enclose [%v,%v]", ticks[0].Value, ticks[len(ticks)-1].Value, tc.min, tc.max)
		}
		for _, tk := range ticks {
			if tk.Value != float64(int(tk.Value)) {
				t.Fatalf("non-integer tick %v", tk.Value)
			}
		}
	}
}

func TestBuild_TicksEncloseData(t *testing.T) {
	c := types.Chart{
		Title: "t", XLabel: "Epochs", YLabel: "Value", XColumn: "epoch",
		Series: []types.Series{{Role: types.RoleGenericLoss,
			Points: []types.Point{{X: 1, Y: 0.29}, {X: 2, Y: 0.5}, {X: 3.5, Y: 0.9}}}},
	}
	ch := Build(c, 800, 400)
	xt, yt := ch.XAxis.Ticks, ch.YAxis.Ticks
	if len(xt) < 2 || len(yt) < 2 {
		t.Fatalf("ticks: x=%v y=%v", xt, yt)
	}
	if xt[0].Value > 1 || xt[len(xt)-1].Value < 3.5 {
		t.Fatalf("x ticks %v..%v cut data 1..3.5", xt[0].Value, xt[len(xt)-1].Value)
	}
	if yt[0].Value > 0.29 || yt[len(yt)-1].Value < 0.9 {
		t.Fatalf("y ticks %v..%v cut data 0.29..0.9", yt[0].Value, yt[len(yt)-1].Value)
	}
}

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		w, h, wantW, wantH int
	}{
		{1000, 600, 1000, 600},
		{100, 50, minChartWidth, minChartHeight},
		{10000, 10000, maxChartWidth, maxChartHeight},
		{1000, 0, 1000, 600},
	}
	for _, tc := range cases {
		w, h := ComputeChartDimensions(tc.w, tc.h)
		if w != tc.wantW || h != tc.wantH {
			t.Fatalf("ComputeChartDimensions(%d,%d) = %d,%d want %d,%d", tc.w, tc.h, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestDataBounds(t *testing.T) {
	minX, maxX, minY, maxY := dataBounds([]types.Series{
		{Points: []types.Point{{X: 2, Y: 0.4}, {X: 5, Y: 0.1}}},
		{Points: []types.Point{{X: 1, Y: 0.9}}},
	})
	if minX != 1 || maxX != 5 || minY != 0.1 || maxY != 0.9 {
		t.Fatalf("bounds: %v %v %v %v", minX, maxX, minY, maxY)
	}
}
