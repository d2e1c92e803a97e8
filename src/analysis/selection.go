package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/dataset"
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// Pick is one selected (column, role) pair.
type Pick struct {
	Column string
	Role   types.Role
}

// Selection is the shared x-axis column and the ordered picks drawn against it.
type Selection struct {
	XColumn string
	Picks   []Pick
}

// Select chooses the x-axis and the series to plot. The dataset must already be
// normalized (epoch present). Reward-bearing datasets win over validation ones.
func Select(d *dataset.Dataset, c Classification) (Selection, error) {
	var sel Selection
	switch {
	case c.Reward:
		sel.XColumn = dataset.ColEpoch
		if d.Has(dataset.ColEpisode) {
			sel.XColumn = dataset.ColEpisode
		}
		sel.addIf(d, dataset.ColReward, types.RoleReward)
		sel.addIf(d, dataset.ColAvgReward, types.RoleAvgReward)
	case c.Validation:
		sel.XColumn = dataset.ColEpoch
		sel.addFirst(d, types.RoleTrainAccuracy, dataset.ColTrainAccuracy, dataset.ColAccuracy)
		sel.addFirst(d, types.RoleValAccuracy, dataset.ColValidationAccuracy, dataset.ColValAccuracy)
		sel.addFirst(d, types.RoleTrainLoss, dataset.ColTrainLoss, dataset.ColLoss)
		sel.addFirst(d, types.RoleValLoss, dataset.ColValidationLoss, dataset.ColValLoss)
	default:
		sel.XColumn = dataset.ColEpoch
		sel.addIf(d, dataset.ColAccuracy, types.RoleGenericAccuracy)
		sel.addIf(d, dataset.ColLoss, types.RoleGenericLoss)
	}
	if len(sel.Picks) == 0 {
		return sel, fmt.Errorf("%w: %s dataset has no usable metric columns", types.ErrEmptySeries, c.Kind())
	}
	return sel, nil
}

func (s *Selection) addIf(d *dataset.Dataset, col string, role types.Role) {
	if d.Has(col) {
		s.Picks = append(s.Picks, Pick{Column: col, Role: role})
	}
}

// addFirst picks the first present column among the preferred candidates.
func (s *Selection) addFirst(d *dataset.Dataset, role types.Role, candidates ...string) {
	for _, col := range candidates {
		if d.Has(col) {
			s.Picks = append(s.Picks, Pick{Column: col, Role: role})
			return
		}
	}
}

// BuildSeries materializes the picks. Points with a non-finite x or y are
// dropped, the rest are stably sorted by x, and picks left without points are
// skipped. synthetic names the columns that were generated.
func BuildSeries(d *dataset.Dataset, sel Selection, synthetic map[string]bool) []types.Series {
	xs, ok := d.Column(sel.XColumn)
	if !ok {
		return nil
	}
	var out []types.Series
	for _, p := range sel.Picks {
		ys, ok := d.Column(p.Column)
		if !ok {
			continue
		}
		pts := make([]types.Point, 0, len(ys))
		for i, y := range ys {
			if i >= len(xs) || !finite(xs[i]) || !finite(y) {
				continue
			}
			pts = append(pts, types.Point{X: xs[i], Y: y})
		}
		if len(pts) == 0 {
			continue
		}
		sort.SliceStable(pts, func(a, b int) bool { return pts[a].X < pts[b].X })
		out = append(out, types.Series{
			Role:      p.Role,
			XColumn:   sel.XColumn,
			YColumn:   p.Column,
			Points:    pts,
			Synthetic: synthetic[p.Column],
		})
	}
	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
