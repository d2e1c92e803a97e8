package dataset

import (
	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// Normalize applies the column renames in a fixed order and returns the steps
// that changed something (for logging). Every step is idempotent:
//
//  1. Epoch -> epoch
//  2. synthesize epoch as the 1-based row index when still missing
//  3. Loss -> loss, Accuracy -> accuracy
func Normalize(d *Dataset) []string {
	var applied []string
	if d.Rename(ColEpochAlias, ColEpoch) {
		applied = append(applied, "rename Epoch->epoch")
	}
	if !d.Has(ColEpoch) {
		d.SetColumn(ColEpoch, RowIndex(d.Len()))
		applied = append(applied, "synthesize epoch")
	}
	if d.Rename(ColLossAlias, ColLoss) {
		applied = append(applied, "rename Loss->loss")
	}
	if d.Rename(ColAccuracyAlias, ColAccuracy) {
		applied = append(applied, "rename Accuracy->accuracy")
	}
	return applied
}

// RowIndex returns 1..n as float64.
func RowIndex(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// requiredAliases lists the spellings that satisfy a required canonical column.
var requiredAliases = map[string][]string{
	ColEpoch:    {ColEpoch, ColEpochAlias},
	ColLoss:     {ColLoss, ColLossAlias},
	ColAccuracy: {ColAccuracy, ColAccuracyAlias},
}

// CheckRequired is the strict-mode gate, run on the raw dataset before
// Normalize. A required column is satisfied by its canonical name or a case
// alias; the first unsatisfied one is reported as a MissingColumnError.
func CheckRequired(d *Dataset, required []string) error {
	for _, col := range required {
		names, ok := requiredAliases[col]
		if !ok {
			names = []string{col}
		}
		if !d.HasAny(names...) {
			return &types.MissingColumnError{Column: col}
		}
	}
	return nil
}
