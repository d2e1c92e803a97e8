// Package render draws a composed learning-curve chart to PNG and SVG with
// go-chart and to a standalone interactive HTML page with go-echarts.
package render

import (
	"bytes"
	"fmt"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// Options controls size and extras of a rendering run.
type Options struct {
	Width  int
	Height int
	Hints  bool   // stamp a notice on PNGs containing synthetic series
	RunID  string // recorded in HTML metadata
}

// roleColors keeps every role on a stable colour across charts and formats.
var roleColors = map[types.Role]string{
	types.RoleGenericAccuracy: "1f77b4",
	types.RoleTrainAccuracy:   "1f77b4",
	types.RoleValAccuracy:     "2ca02c",
	types.RoleGenericLoss:     "d62728",
	types.RoleTrainLoss:       "d62728",
	types.RoleValLoss:         "ff7f0e",
	types.RoleReward:          "9467bd",
	types.RoleAvgReward:       "8c564b",
}

// RoleHex returns the colour of role as a hex string without '#'.
func RoleHex(r types.Role) string {
	if hex, ok := roleColors[r]; ok {
		return hex
	}
	return "7f7f7f"
}

func roleColor(r types.Role) drawing.Color { return drawing.ColorFromHex(RoleHex(r)) }

// lineStyle draws the series as a line and shows a dot only at the annotated index.
func lineStyle(s types.Series, markIdx int) chart.Style {
	col := roleColor(s.Role)
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    5,
	}
	if s.Synthetic {
		st.StrokeDashArray = []float64{6, 4}
	}
	st.DotWidthProvider = func(_, _ chart.Range, index int, _, _ float64) float64 {
		if index == markIdx {
			return 5
		}
		return 0
	}
	st.DotColorProvider = func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
		if index == markIdx {
			return col
		}
		return drawing.ColorTransparent
	}
	return st
}

// AnnotationLabel is the text shown next to a marked extreme.
func AnnotationLabel(a types.Annotation, xColumn string) string {
	return fmt.Sprintf("%s %s %.4g (%s %s)", a.Role.Label(), a.Kind, a.Point.Y, xColumn, formatXTick(a.Point.X))
}

// Build converts the composed chart into a go-chart chart of the given size.
func Build(c types.Chart, width, height int) chart.Chart {
	width, height = ComputeChartDimensions(width, height)

	marks := map[types.Role]types.Annotation{}
	for _, a := range c.Annotations {
		marks[a.Role] = a
	}

	var series []chart.Series
	var labels []chart.Value2
	for _, s := range c.Series {
		markIdx := -1
		if a, ok := marks[s.Role]; ok {
			markIdx = a.Index
			labels = append(labels, chart.Value2{
				XValue: a.Point.X,
				YValue: a.Point.Y,
				Label:  AnnotationLabel(a, c.XColumn),
				Style:  chart.Style{StrokeColor: roleColor(s.Role), FontColor: roleColor(s.Role)},
			})
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name(),
			XValues: s.XValues(),
			YValues: s.YValues(),
			Style:   lineStyle(s, markIdx),
		})
	}
	if len(labels) > 0 {
		series = append(series, chart.AnnotationSeries{Annotations: labels})
	}

	minX, maxX, minY, maxY := dataBounds(c.Series)
	minX, maxX = xAxisBounds(minX, maxX)
	minY, maxY = niceAxisBounds(minY, maxY)

	ch := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  c.XLabel,
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
			Ticks: integerTicks(minX, maxX, 10),
		},
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
			Ticks: niceTicks(minY, maxY, 6, formatTick),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// PNG renders the chart as PNG bytes. With opts.Hints the names of synthetic
// series are stamped onto the image.
func PNG(c types.Chart, opts Options) ([]byte, error) {
	ch := Build(c, opts.Width, opts.Height)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, types.NewRenderError("png", err)
	}
	if !opts.Hints || !c.HasSynthetic() {
		return buf.Bytes(), nil
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, types.NewRenderError("png decode", err)
	}
	var out bytes.Buffer
	if err := png.Encode(&out, drawHint(img, SyntheticHint(c))); err != nil {
		return nil, types.NewRenderError("png encode", err)
	}
	return out.Bytes(), nil
}

// SVG renders the chart as an SVG document.
func SVG(c types.Chart, opts Options) ([]byte, error) {
	ch := Build(c, opts.Width, opts.Height)
	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, types.NewRenderError("svg", err)
	}
	return buf.Bytes(), nil
}
