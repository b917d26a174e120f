// Package octave computes the continuous importance blend across a fixed set
// of reference intervals from three independent axes. Axis x emphasizes the
// 3-limit anchors, y the 5-limit, z the 7-limit, so a user can morph between
// prime limits without a discrete mode switch.
package octave

import (
	"github.com/adaptune/temper/model"
)

// DefaultAnchors is the built-in canonical anchor set, used when the
// configuration carries no custom targets.
func DefaultAnchors() []model.Anchor {
	return []model.Anchor{
		{ID: "p5", Ratio: model.RatioSpec{N: 3, D: 2, Label: "pure fifth"}, Axis: [3]float64{1, 0, 0}, Base: 0.5},
		{ID: "p4", Ratio: model.RatioSpec{N: 4, D: 3, Label: "pure fourth"}, Axis: [3]float64{1, 0, 0}, Base: 0.25},
		{ID: "maj3", Ratio: model.RatioSpec{N: 5, D: 4, Label: "just major third"}, Axis: [3]float64{0, 1, 0}, Base: 0},
		{ID: "min3", Ratio: model.RatioSpec{N: 6, D: 5, Label: "just minor third"}, Axis: [3]float64{0, 1, 0}, Base: 0},
		{ID: "h7", Ratio: model.RatioSpec{N: 7, D: 4, Label: "harmonic seventh"}, Axis: [3]float64{0, 0, 1}, Base: 0},
		{ID: "sep3", Ratio: model.RatioSpec{N: 7, D: 6, Label: "septimal minor third"}, Axis: [3]float64{0, 0, 1}, Base: 0},
	}
}

// Blend returns a non-negative importance per anchor id. Weights are not
// normalized here; the constraint builder renormalizes the full set.
func Blend(x, y, z float64, anchors []model.Anchor) map[string]float64 {
	res := make(map[string]float64, len(anchors))
	for _, a := range anchors {
		w := a.Base + a.Axis[0]*x + a.Axis[1]*y + a.Axis[2]*z
		if w < 0 {
			w = 0
		}
		res[a.ID] = w
	}
	return res
}
