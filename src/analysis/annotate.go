package analysis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

// Annotate marks the minimum of every loss-family series and the maximum of
// every accuracy- or reward-family series. Ties resolve to the first point,
// which after BuildSeries is the lowest x.
func Annotate(series []types.Series) []types.Annotation {
	var out []types.Annotation
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		ys := s.YValues()
		switch {
		case s.Role.IsLoss():
			i := floats.MinIdx(ys)
			out = append(out, types.Annotation{Role: s.Role, Kind: types.AnnotateMin, Index: i, Point: s.Points[i]})
		case s.Role.IsGain():
			i := floats.MaxIdx(ys)
			out = append(out, types.Annotation{Role: s.Role, Kind: types.AnnotateMax, Index: i, Point: s.Points[i]})
		}
	}
	return out
}

// AnnotationFor returns the annotation of role, if any.
func AnnotationFor(anns []types.Annotation, role types.Role) (types.Annotation, bool) {
	for _, a := range anns {
		if a.Role == role {
			return a, true
		}
	}
	return types.Annotation{}, false
}
