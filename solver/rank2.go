package solver

import (
	"math"

	"github.com/adaptune/temper/model"
)

// StretchWarnCents is the period stretch beyond which the result carries a
// warning for the caller to surface.
const StretchWarnCents = 10

// Each constraint contributes a row steps*g + periodSteps*P ~ ideal, where
// periodSteps counts the whole-period wraps separating the chain position
// from the wrapped target. Two prior rows disambiguate the system: a tiny
// ridge anchoring g at the reference fifth (the system is rank-deficient when
// constraints are collinear), and a period prior at the nominal cycle whose
// weight scales with octave stiffness, so stiffness near 0 frees the period
// and stiffness near 1 pins it.
func solveRank2(cs []model.Constraint, period, stiffness, refGen float64) GeneratorSolution {
	var a11, a12, a22, b1, b2, total float64
	for _, c := range cs {
		s := float64(c.GeneratorSteps)
		q := float64(-c.PeriodComp)
		w := c.Weight
		a11 += w * s * s
		a12 += w * s * q
		a22 += w * q * q
		b1 += w * s * c.IdealCents
		b2 += w * q * c.IdealCents
		total += w
	}

	ridgeG := 1e-6 * total
	ridgeP := stiffness*total + 1e-9
	a11 += ridgeG
	b1 += ridgeG * refGen
	a22 += ridgeP
	b2 += ridgeP * period

	g := refGen
	p := period
	det := a11*a22 - a12*a12
	if math.Abs(det) > 1e-12 {
		g = (b1*a22 - b2*a12) / det
		p = (a11*b2 - a12*b1) / det
	}

	stretch := p - period
	return GeneratorSolution{
		GeneratorCents:       g,
		PeriodCents:          p,
		PeriodOptimized:      true,
		PeriodStretchCents:   stretch,
		PeriodStretchWarning: math.Abs(stretch) > StretchWarnCents,
	}
}
