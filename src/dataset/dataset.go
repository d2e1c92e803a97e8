// Package dataset holds the tabular training metrics read from an input file and
// the column normalization applied before series selection.
package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Canonical and alias column names understood by the selector.
const (
	ColEpoch              = "epoch"
	ColEpochAlias         = "Epoch"
	ColEpisode            = "episode"
	ColAccuracy           = "accuracy"
	ColAccuracyAlias      = "Accuracy"
	ColTrainAccuracy      = "train_accuracy"
	ColValAccuracy        = "val_accuracy"
	ColValidationAccuracy = "validation_accuracy"
	ColLoss               = "loss"
	ColLossAlias          = "Loss"
	ColTrainLoss          = "train_loss"
	ColValLoss            = "val_loss"
	ColValidationLoss     = "validation_loss"
	ColReward             = "reward"
	ColAvgReward          = "avg_reward"
)

// Dataset is an ordered set of equally long numeric columns. Cells that do not
// parse as numbers are stored as NaN.
type Dataset struct {
	columns []string
	values  map[string][]float64
	rows    int
}

// New builds a Dataset from a header and string records. Short records are
// padded with NaN, extra cells are ignored, and a repeated header name keeps
// its first column.
func New(header []string, records [][]string) *Dataset {
	d := &Dataset{values: map[string][]float64{}, rows: len(records)}
	idx := make([]int, 0, len(header))
	for i, h := range header {
		name := cleanHeader(h)
		if name == "" {
			continue
		}
		if _, dup := d.values[name]; dup {
			continue
		}
		d.columns = append(d.columns, name)
		d.values[name] = make([]float64, len(records))
		idx = append(idx, i)
	}
	for r, rec := range records {
		for c, name := range d.columns {
			src := idx[c]
			if src < len(rec) {
				d.values[name][r] = ParseValue(rec[src])
			} else {
				d.values[name][r] = math.NaN()
			}
		}
	}
	return d
}

// FromColumns builds a Dataset from already numeric columns in the given order.
// All columns must have the same length; shorter ones are padded with NaN.
func FromColumns(order []string, cols map[string][]float64) *Dataset {
	d := &Dataset{values: map[string][]float64{}}
	for _, name := range order {
		if len(cols[name]) > d.rows {
			d.rows = len(cols[name])
		}
	}
	for _, name := range order {
		if _, dup := d.values[name]; dup {
			continue
		}
		vals := make([]float64, d.rows)
		src := cols[name]
		for i := range vals {
			if i < len(src) {
				vals[i] = src[i]
			} else {
				vals[i] = math.NaN()
			}
		}
		d.columns = append(d.columns, name)
		d.values[name] = vals
	}
	return d
}

// cleanHeader trims whitespace and a UTF-8 byte order mark left by spreadsheet exports.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

// ParseValue converts a cell to float64; empty or non-numeric cells become NaN.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Len is the number of data rows.
func (d *Dataset) Len() int { return d.rows }

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.columns))
	copy(out, d.columns)
	return out
}

// Has reports whether the column exists (case-sensitive).
func (d *Dataset) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// HasAny reports whether at least one of names exists.
func (d *Dataset) HasAny(names ...string) bool {
	for _, n := range names {
		if d.Has(n) {
			return true
		}
	}
	return false
}

// Column returns the values of a column.
func (d *Dataset) Column(name string) ([]float64, bool) {
	v, ok := d.values[name]
	return v, ok
}

// SetColumn adds or replaces a column. values must have Len() entries.
func (d *Dataset) SetColumn(name string, values []float64) {
	if _, ok := d.values[name]; !ok {
		d.columns = append(d.columns, name)
	}
	d.values[name] = values
}

// Rename moves column from to the name to. It is a no-op when from is absent
// or to already exists, and reports whether a rename happened.
func (d *Dataset) Rename(from, to string) bool {
	vals, ok := d.values[from]
	if !ok || d.Has(to) {
		return false
	}
	delete(d.values, from)
	d.values[to] = vals
	for i, c := range d.columns {
		if c == from {
			d.columns[i] = to
			break
		}
	}
	return true
}
