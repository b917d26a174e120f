package solver

import (
	"math"

	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/model"
)

// The wrapped loss is not quadratic in g, so the plain-weighted modes use a
// bracketed golden-section search instead of least squares. The bracket spans
// generators between a very flat and a very sharp fifth; every supported
// temperament's generator lives inside it.
const (
	BracketLow  = 0.575
	BracketHigh = 0.595
	Iterations  = 80
)

var invPhi = (math.Sqrt(5) - 1) / 2

func wrappedLoss(cs []model.Constraint, g, period float64) float64 {
	var sum float64
	for _, c := range cs {
		d := cents.SignedWrapDiff(g*float64(c.GeneratorSteps), c.IdealCents, period)
		sum += c.Weight * d * d
	}
	return sum
}

func solveGolden(cs []model.Constraint, period float64) GeneratorSolution {
	lo := BracketLow * period
	hi := BracketHigh * period

	a := hi - (hi-lo)*invPhi
	b := lo + (hi-lo)*invPhi
	fa := wrappedLoss(cs, a, period)
	fb := wrappedLoss(cs, b, period)

	for i := 0; i < Iterations; i++ {
		if fa < fb {
			hi = b
			b = a
			fb = fa
			a = hi - (hi-lo)*invPhi
			fa = wrappedLoss(cs, a, period)
		} else {
			lo = a
			a = b
			fa = fb
			b = lo + (hi-lo)*invPhi
			fb = wrappedLoss(cs, b, period)
		}
	}

	return GeneratorSolution{
		GeneratorCents: (lo + hi) / 2,
		PeriodCents:    period,
	}
}
