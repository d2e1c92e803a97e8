package analysis

import (
	"fmt"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/dataset"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// Axis labels are fixed regardless of which column drives the x-axis.
const (
	XAxisLabel = "Epochs"
	YAxisLabel = "Value"
)

// Result is the chart plus what was done to the dataset to obtain it.
type Result struct {
	Chart          types.Chart
	Classification Classification
	Normalized     []string // normalization steps that changed the dataset
	Synthesized    []string // columns generated as placeholders
	Selection      Selection
}

// Analyze runs normalize -> classify -> synthesize -> select -> build -> annotate
// on d (which is modified in place) and composes the chart titled title.
func Analyze(d *dataset.Dataset, title string) (*Result, error) {
	if d.Len() == 0 {
		return nil, fmt.Errorf("%w: dataset has no rows", types.ErrEmptySeries)
	}
	res := &Result{}
	res.Normalized = dataset.Normalize(d)
	res.Classification = Classify(d)
	res.Synthesized = Synthesize(d, res.Classification)

	sel, err := Select(d, res.Classification)
	if err != nil {
		return nil, err
	}
	res.Selection = sel

	synthetic := make(map[string]bool, len(res.Synthesized))
	for _, c := range res.Synthesized {
		synthetic[c] = true
	}
	series := BuildSeries(d, sel, synthetic)
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: every selected column is empty or non-numeric", types.ErrEmptySeries)
	}
	res.Chart = types.Chart{
		Title:       title,
		XLabel:      XAxisLabel,
		YLabel:      YAxisLabel,
		XColumn:     sel.XColumn,
		Series:      series,
		Annotations: Annotate(series),
	}
	return res, nil
}

// DemoChart builds the two placeholder curves for epochs 1..n without any input
// file. n must be positive.
func DemoChart(n int, title string) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: demo needs at least one epoch, got %d", types.ErrEmptySeries, n)
	}
	d := dataset.FromColumns([]string{dataset.ColEpoch}, map[string][]float64{
		dataset.ColEpoch: dataset.RowIndex(n),
	})
	return Analyze(d, title)
}
