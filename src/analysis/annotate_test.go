package analysis

import (
	"testing"

	"github.com/Z2ZATL/Custom-Programming-Language-For-AI/src/types"
)

func TestAnnotate_AccuracyMaxLossMin(t *testing.T) {
	d := csvDataset(t, "epoch,accuracy,loss\n1,0.5,0.8\n2,0.6,0.6\n3,0.9,0.3\n")
	res, err := Analyze(d, "T")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	acc, ok := AnnotationFor(res.Chart.Annotations, types.RoleGenericAccuracy)
	if !ok || acc.Kind != types.AnnotateMax || acc.Point != (types.Point{X: 3, Y: 0.9}) {
		t.Fatalf("accuracy annotation: %+v (found=%v)", acc, ok)
	}
	loss, ok := AnnotationFor(res.Chart.Annotations, types.RoleGenericLoss)
	if !ok || loss.Kind != types.AnnotateMin || loss.Point != (types.Point{X: 3, Y: 0.3}) {
		t.Fatalf("loss annotation: %+v (found=%v)", loss, ok)
	}
}

func TestAnnotate_TieBreaksToLowestX(t *testing.T) {
	series := []types.Series{
		{Role: types.RoleValLoss, Points: []types.Point{{X: 1, Y: 0.5}, {X: 2, Y: 0.2}, {X: 3, Y: 0.2}}},
		{Role: types.RoleReward, Points: []types.Point{{X: 1, Y: 7}, {X: 2, Y: 3}, {X: 3, Y: 7}}},
		{Role: types.RoleAvgReward, Points: []types.Point{{X: 1, Y: 2}}},
	}
	anns := Annotate(series)
	if len(anns) != 3 {
		t.Fatalf("annotations: %+v", anns)
	}
	if anns[0].Kind != types.AnnotateMin || anns[0].Point.X != 2 {
		t.Fatalf("val loss min tie should pick x=2: %+v", anns[0])
	}
	if anns[1].Kind != types.AnnotateMax || anns[1].Point.X != 1 || anns[1].Index != 0 {
		t.Fatalf("reward max tie should pick x=1: %+v", anns[1])
	}
	if anns[2].Kind != types.AnnotateMax || anns[2].Point.Y != 2 {
		t.Fatalf("avg reward max: %+v", anns[2])
	}
}

func TestRoleFamilies(t *testing.T) {
	cases := []struct {
		role       types.Role
		loss, gain bool
	}{
		{types.RoleTrainAccuracy, false, true},
		{types.RoleValAccuracy, false, true},
		{types.RoleGenericAccuracy, false, true},
		{types.RoleTrainLoss, true, false},
		{types.RoleValLoss, true, false},
		{types.RoleGenericLoss, true, false},
		{types.RoleReward, false, true},
		{types.RoleAvgReward, false, true},
	}
	for _, tc := range cases {
		if tc.role.IsLoss() != tc.loss || tc.role.IsGain() != tc.gain {
			t.Fatalf("%s: loss=%v gain=%v", tc.role, tc.role.IsLoss(), tc.role.IsGain())
		}
	}
}
