package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// HTML renders the chart as a standalone interactive echarts page. The x-axis is
// numeric so series with different x coverage still share one axis.
func HTML(c types.Chart, o Options) ([]byte, error) {
	width, height := ComputeChartDimensions(o.Width, o.Height)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: c.Title,
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: subtitle(c),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: c.XLabel,
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: c.YLabel,
			Type: "value",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)

	marks := map[types.Role]types.Annotation{}
	for _, a := range c.Annotations {
		marks[a.Role] = a
	}
	for _, s := range c.Series {
		data := make([]opts.LineData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(false),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#" + RoleHex(s.Role)}),
		}
		if s.Synthetic {
			seriesOpts = append(seriesOpts, charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))
		}
		if a, ok := marks[s.Role]; ok {
			seriesOpts = append(seriesOpts, charts.WithMarkPointNameCoordItemOpts(opts.MarkPointNameCoordItem{
				Name:       string(a.Kind),
				Coordinate: []interface{}{a.Point.X, a.Point.Y},
				Value:      AnnotationLabel(a, c.XColumn),
			}))
		}
		line.AddSeries(s.Name(), data, seriesOpts...)
	}

	var buf strings.Builder
	if err := line.Render(&buf); err != nil {
		return nil, types.NewRenderError("html", err)
	}
	page := buf.String()
	if o.RunID != "" {
		meta := fmt.Sprintf("<meta name=\"learning-curves-run\" content=\"%s\">\n", html.EscapeString(o.RunID))
		page = strings.Replace(page, "</head>", meta+"</head>", 1)
	}
	return []byte(page), nil
}

func subtitle(c types.Chart) string {
	if hint := SyntheticHint(c); hint != "" {
		return hint
	}
	return fmt.Sprintf("x-axis: %s", c.XColumn)
}
