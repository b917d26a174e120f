// Package constraint turns a solver configuration into the normalized,
// weighted constraint list the generator strategies consume.
package constraint

import (
	"math"

	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/octave"
)

// MaxGeneratorSteps bounds the chain-of-generators search: candidate step
// counts are drawn from [-31, 31] excluding 0.
const MaxGeneratorSteps = 31

// MatrixWeightMin is the threshold below which a target-weight entry is
// treated as absent.
const MatrixWeightMin = 0.001

// EstimateGeneratorSteps finds the signed generator step count k whose chain
// position wraps closest to targetCents, given a reference generator near the
// pure fifth. Candidates are tried in order of increasing |k| so ties resolve
// to the shorter chain.
func EstimateGeneratorSteps(targetCents, period, refGen float64) int {
	best := 1
	bestDist := math.Inf(1)
	for abs := 1; abs <= MaxGeneratorSteps; abs++ {
		for _, k := range [2]int{abs, -abs} {
			pos := cents.WrapToCycle(float64(k)*refGen, period)
			dist := math.Abs(cents.SignedWrapDiff(pos, targetCents, period))
			if dist < bestDist {
				bestDist = dist
				best = k
			}
		}
	}
	return best
}

// estimatePeriodComp is the number of whole-period wraps separating the raw
// chain position steps*refGen from the wrapped target cents.
func estimatePeriodComp(steps int, idealCents, period, refGen float64) int {
	return int(math.Round((float64(steps)*refGen - idealCents) / period))
}

// Build produces the normalized constraint set for one solve. Modes are
// mutually exclusive: octave-weighted wins over matrix-weighted wins over
// equal-weighted. An empty outcome is replaced by the pure-fifth fallback so
// the solver never runs with zero constraints.
func Build(input model.SolverInput, refGen float64) ([]model.Constraint, error) {
	period := input.CycleCents

	var res []model.Constraint
	var err error
	switch {
	case input.OctaWeighting.Enabled:
		res, err = buildOctaveWeighted(input, period, refGen)
	case hasMatrixWeights(input.TargetWeights):
		res, err = buildMatrixWeighted(input, period, refGen)
	default:
		res, err = buildEqualWeighted(input, period, refGen)
	}
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		res = []model.Constraint{fallbackFifth(period)}
	}

	return normalize(res), nil
}

func buildOctaveWeighted(input model.SolverInput, period, refGen float64) ([]model.Constraint, error) {
	anchors := input.OctaWeighting.Targets
	if len(anchors) == 0 {
		anchors = octave.DefaultAnchors()
	}
	weights := octave.Blend(input.OctaWeighting.X, input.OctaWeighting.Y, input.OctaWeighting.Z, anchors)

	var res []model.Constraint
	for _, a := range anchors {
		if err := a.Ratio.Validate(); err != nil {
			return nil, err
		}
		ideal := cents.WrapToCycle(cents.RatioToCents(a.Ratio.N, a.Ratio.D), period)
		steps := EstimateGeneratorSteps(ideal, period, refGen)
		if steps == 0 {
			continue
		}
		res = append(res, model.Constraint{
			Label:          a.Ratio.Label,
			N:              a.Ratio.N,
			D:              a.Ratio.D,
			Weight:         weights[a.ID],
			IdealCents:     ideal,
			GeneratorSteps: steps,
			PeriodComp:     estimatePeriodComp(steps, ideal, period, refGen),
			AnchorID:       a.ID,
		})
	}
	return res, nil
}

func buildMatrixWeighted(input model.SolverInput, period, refGen float64) ([]model.Constraint, error) {
	var res []model.Constraint
	for _, t := range input.Targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		w := input.TargetWeights[t.Key()]
		if w <= MatrixWeightMin {
			continue
		}
		c, ok := makeConstraint(t, w, period, refGen)
		if ok {
			res = append(res, c)
		}
	}
	return res, nil
}

func buildEqualWeighted(input model.SolverInput, period, refGen float64) ([]model.Constraint, error) {
	if len(input.Targets) == 0 {
		return nil, nil
	}
	w := 1 / float64(len(input.Targets))
	var res []model.Constraint
	for _, t := range input.Targets {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		c, ok := makeConstraint(t, w, period, refGen)
		if ok {
			res = append(res, c)
		}
	}
	return res, nil
}

func makeConstraint(t model.RatioSpec, weight, period, refGen float64) (model.Constraint, bool) {
	ideal := cents.WrapToCycle(cents.RatioToCents(t.N, t.D), period)
	steps := EstimateGeneratorSteps(ideal, period, refGen)
	if steps == 0 {
		return model.Constraint{}, false
	}
	return model.Constraint{
		Label:          t.Label,
		N:              t.N,
		D:              t.D,
		Weight:         weight,
		IdealCents:     ideal,
		GeneratorSteps: steps,
		PeriodComp:     estimatePeriodComp(steps, ideal, period, refGen),
	}, true
}

func fallbackFifth(period float64) model.Constraint {
	return model.Constraint{
		Label:          "pure fifth",
		N:              3,
		D:              2,
		Weight:         1,
		IdealCents:     cents.WrapToCycle(cents.RatioToCents(3, 2), period),
		GeneratorSteps: 1,
	}
}

func hasMatrixWeights(m model.TargetWeightMap) bool {
	for _, w := range m {
		if w > MatrixWeightMin {
			return true
		}
	}
	return false
}

func normalize(cs []model.Constraint) []model.Constraint {
	var total float64
	for _, c := range cs {
		total += c.Weight
	}
	if total == 0 {
		return cs
	}
	res := make([]model.Constraint, 0, len(cs))
	for _, c := range cs {
		c.Weight /= total
		res = append(res, c)
	}
	return res
}
