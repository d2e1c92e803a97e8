// Package types holds the value types shared by the dataset, analysis and render
// packages: semantic roles, plotted series, annotations and the composed chart.
package types

import "strings"

// Role tags a series with its semantic meaning. The role name itself drives
// annotation: names containing "Loss" mark a minimum, names containing
// "Accuracy" or "Reward" mark a maximum.
type Role string

const (
	RoleTrainAccuracy   Role = "TrainAccuracy"
	RoleValAccuracy     Role = "ValAccuracy"
	RoleTrainLoss       Role = "TrainLoss"
	RoleValLoss         Role = "ValLoss"
	RoleReward          Role = "Reward"
	RoleAvgReward       Role = "AvgReward"
	RoleGenericAccuracy Role = "GenericAccuracy"
	RoleGenericLoss     Role = "GenericLoss"
)

// Label is the human readable legend text for a role.
func (r Role) Label() string {
	switch r {
	case RoleTrainAccuracy:
		return "Training Accuracy"
	case RoleValAccuracy:
		return "Validation Accuracy"
	case RoleTrainLoss:
		return "Training Loss"
	case RoleValLoss:
		return "Validation Loss"
	case RoleReward:
		return "Reward"
	case RoleAvgReward:
		return "Average Reward"
	case RoleGenericAccuracy:
		return "Accuracy"
	case RoleGenericLoss:
		return "Loss"
	}
	return string(r)
}

// IsLoss reports whether the role marks its minimum.
func (r Role) IsLoss() bool { return strings.Contains(string(r), "Loss") }

// IsGain reports whether the role marks its maximum (accuracy and reward families).
func (r Role) IsGain() bool {
	s := string(r)
	return strings.Contains(s, "Accuracy") || strings.Contains(s, "Reward")
}

// Point is one (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// Series is one plotted line derived from an (x column, y column) pair.
type Series struct {
	Role      Role
	XColumn   string
	YColumn   string
	Points    []Point
	Synthetic bool // generated placeholder, not read from the input
}

// Name is the legend label; synthetic series are suffixed so they are never mistaken for real data.
func (s Series) Name() string {
	if s.Synthetic {
		return s.Role.Label() + " (synthetic)"
	}
	return s.Role.Label()
}

// XValues returns the x coordinates in point order.
func (s Series) XValues() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}

// YValues returns the y coordinates in point order.
func (s Series) YValues() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

// AnnotationKind says which extreme an annotation marks.
type AnnotationKind string

const (
	AnnotateMin AnnotationKind = "min"
	AnnotateMax AnnotationKind = "max"
)

// Annotation marks the extreme point of one series.
type Annotation struct {
	Role  Role
	Kind  AnnotationKind
	Index int // index into Series.Points
	Point Point
}

// Chart is the composed output: ordered series, their annotations, a title and
// the fixed axis labels.
type Chart struct {
	Title       string
	XLabel      string
	YLabel      string
	XColumn     string
	Series      []Series
	Annotations []Annotation
}

// HasSynthetic reports whether any plotted series is a placeholder.
func (c Chart) HasSynthetic() bool {
	for _, s := range c.Series {
		if s.Synthetic {
			return true
		}
	}
	return false
}

// SyntheticNames lists the legend names of placeholder series.
func (c Chart) SyntheticNames() []string {
	var out []string
	for _, s := range c.Series {
		if s.Synthetic {
			out = append(out, s.Role.Label())
		}
	}
	return out
}
