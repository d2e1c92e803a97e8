// Package analysis turns a normalized dataset into a composed chart: it
// classifies the dataset, synthesizes placeholder series, selects the series to
// plot and marks their extreme points.
package analysis

import (
	"math"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/dataset"
)

// Classification flags are independent; a dataset can be both.
type Classification struct {
	Reward     bool // reward or avg_reward present
	Validation bool // train_accuracy, validation_accuracy or val_accuracy present
}

// Classify inspects column presence only.
func Classify(d *dataset.Dataset) Classification {
	return Classification{
		Reward:     d.HasAny(dataset.ColReward, dataset.ColAvgReward),
		Validation: d.HasAny(dataset.ColTrainAccuracy, dataset.ColValidationAccuracy, dataset.ColValAccuracy),
	}
}

// Kind names the selection branch a classification leads to.
func (c Classification) Kind() string {
	switch {
	case c.Reward:
		return "reward"
	case c.Validation:
		return "validation"
	}
	return "generic"
}

// SyntheticLoss is the placeholder loss at 1-based step i.
func SyntheticLoss(i int) float64 {
	return 0.82 - 0.77*(1-math.Exp(-float64(i)/30))
}

// SyntheticAccuracy is the placeholder accuracy at 1-based step i.
func SyntheticAccuracy(i int) float64 {
	return 0.65 + 0.30*(1-math.Exp(-float64(i)/25))
}

// Curve evaluates f for i = 1..n.
func Curve(n int, f func(int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(i + 1)
	}
	return out
}

// Synthesize adds placeholder loss/accuracy columns to a non reward-bearing
// dataset when those exact columns are missing, and returns the names added.
// Reward-bearing datasets are never touched.
func Synthesize(d *dataset.Dataset, c Classification) []string {
	if c.Reward {
		return nil
	}
	var added []string
	if !d.Has(dataset.ColLoss) {
		d.SetColumn(dataset.ColLoss, Curve(d.Len(), SyntheticLoss))
		added = append(added, dataset.ColLoss)
	}
	if !d.Has(dataset.ColAccuracy) {
		d.SetColumn(dataset.ColAccuracy, Curve(d.Len(), SyntheticAccuracy))
		added = append(added, dataset.ColAccuracy)
	}
	return added
}
