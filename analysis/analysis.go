// Package analysis computes the per-degree interval error report that drives
// the radar/heatmap views and playback highlighting downstream.
package analysis

import (
	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/model"
)

// SkeletonWeightMin marks the constraints that dominantly shaped the solve.
const SkeletonWeightMin = 0.1

// Classify buckets a target interval into the coarse kinds the visualizations
// distinguish.
func Classify(idealCents float64) model.IntervalKind {
	switch {
	case idealCents >= 650 && idealCents <= 750:
		return model.KindP5
	case idealCents >= 350 && idealCents <= 420:
		return model.KindM3
	case idealCents >= 280 && idealCents <= 340:
		return model.Kindm3
	default:
		return model.KindM3
	}
}

// Analyze emits one IntervalError per (constraint, degree) pair: the realized
// interval at every transposition of the scale and its signed deviation from
// the ideal. The mapper sorts the scale so the tonic is degree 0; its rows
// carry keyTonic, the configured key degree, for downstream highlighting.
func Analyze(cs []model.Constraint, notes []float64, period float64, keyTonic int) []model.IntervalError {
	n := len(notes)
	res := make([]model.IntervalError, 0, len(cs)*n)
	for _, c := range cs {
		step := cents.NearestStep(c.IdealCents, n, period)
		kind := Classify(c.IdealCents)
		for i := 0; i < n; i++ {
			j := (i + step) % n
			actual := cents.WrapToCycle(notes[j]-notes[i], period)
			ie := model.IntervalError{
				I:           i,
				J:           j,
				Step:        step,
				Target:      model.RatioSpec{N: c.N, D: c.D, Label: c.Label},
				TargetCents: c.IdealCents,
				ActualCents: actual,
				ErrorCents:  cents.SignedWrapDiff(actual, c.IdealCents, period),
				Weight:      c.Weight,
				Kind:        kind,
				IsSkeleton:  c.Weight > SkeletonWeightMin,
				AnchorID:    c.AnchorID,
			}
			if i == 0 {
				t := keyTonic
				ie.KeyTonic = &t
			}
			res = append(res, ie)
		}
	}
	return res
}
