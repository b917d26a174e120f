// Package solver runs the adaptive temperament pipeline: constraints in,
// solved scale and interval report out. The whole pipeline is a pure function
// of its input; every call builds its own working state.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/adaptune/temper/analysis"
	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/constraint"
	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/scale"
)

func validate(input model.SolverInput) error {
	if input.ScaleSize < 1 {
		return errors.New("scaleSize must be at least 1")
	}
	if !(input.CycleCents > 0) || math.IsInf(input.CycleCents, 0) {
		return fmt.Errorf("cycleCents must be a positive finite number, got %v", input.CycleCents)
	}
	if input.OctaveStiffness < 0 || input.OctaveStiffness > 1 {
		return fmt.Errorf("octaveStiffness must be in [0,1], got %v", input.OctaveStiffness)
	}
	for _, t := range input.Targets {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Run solves the generator and period for the configuration, maps the chain
// onto the scale, and analyzes the realized intervals.
func Run(input model.SolverInput) (model.ModeAResult, error) {
	var res model.ModeAResult

	if err := validate(input); err != nil {
		return res, err
	}

	cs, err := constraint.Build(input, cents.PureFifth)
	if err != nil {
		return res, err
	}

	strat := Select(input)
	sol := SolveGenerator(strat, cs, input.CycleCents, input.OctaveStiffness, cents.PureFifth)

	notes, absolute := scale.Map(sol.GeneratorCents, sol.PeriodCents, input)
	for _, c := range notes {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return res, fmt.Errorf("solve produced non-finite cents value %v", c)
		}
	}

	tonic := ((input.KeySpecificity.Tonic % input.ScaleSize) + input.ScaleSize) % input.ScaleSize

	res.NotesCents = notes
	res.GeneratorCents = sol.GeneratorCents
	res.Intervals = analysis.Analyze(cs, notes, sol.PeriodCents, tonic)
	if sol.PeriodOptimized {
		p := sol.PeriodCents
		stretch := sol.PeriodStretchCents
		res.OptimizedPeriodCents = &p
		res.PeriodStretchCents = &stretch
		res.PeriodStretchWarning = sol.PeriodStretchWarning
		res.CentsAbsolute = absolute
	}
	return res, nil
}
