package solver

import (
	"github.com/adaptune/temper/model"
)

// Strategy identifies which generator optimization runs for a given
// configuration.
type Strategy int

const (
	// GoldenSection minimizes the wrapped loss by bracketed search. Used for
	// plain matrix- or equal-weighted constraints.
	GoldenSection Strategy = iota
	// Rank1ClosedForm is the weighted least-squares generator with the period
	// held rigid at the nominal cycle.
	Rank1ClosedForm
	// Rank2WLS jointly fits generator and period, allowing octave stretch.
	Rank2WLS
)

// GeneratorSolution is the output of any strategy. PeriodOptimized is only
// true for Rank2WLS, and the stretch fields are meaningful only then.
type GeneratorSolution struct {
	GeneratorCents       float64
	PeriodCents          float64
	PeriodOptimized      bool
	PeriodStretchCents   float64
	PeriodStretchWarning bool
}

// Select resolves the strategy once per solve from the configuration flags.
func Select(input model.SolverInput) Strategy {
	if !input.OctaWeighting.Enabled {
		return GoldenSection
	}
	if input.OctaveStiffness >= 1 {
		return Rank1ClosedForm
	}
	return Rank2WLS
}

// SolveGenerator dispatches to the selected strategy. All strategies are
// deterministic for identical input.
func SolveGenerator(s Strategy, cs []model.Constraint, period, stiffness, refGen float64) GeneratorSolution {
	switch s {
	case Rank2WLS:
		return solveRank2(cs, period, stiffness, refGen)
	case Rank1ClosedForm:
		return solveRank1(cs, period, refGen)
	default:
		return solveGolden(cs, period)
	}
}
