package solver

import (
	"github.com/adaptune/temper/model"
)

// With the period rigidly fixed each constraint reduces to a single unknown:
// minimize sum w*(steps*g - (ideal + comp*period))^2. The closed-form
// minimizer divides two weighted sums; a near-zero denominator leaves the
// generator at the reference fifth.
func solveRank1(cs []model.Constraint, period, refGen float64) GeneratorSolution {
	var num, den float64
	for _, c := range cs {
		s := float64(c.GeneratorSteps)
		adjusted := c.IdealCents + float64(c.PeriodComp)*period
		num += c.Weight * s * adjusted
		den += c.Weight * s * s
	}

	g := refGen
	if den > 1e-9 {
		g = num / den
	}

	return GeneratorSolution{
		GeneratorCents: g,
		PeriodCents:    period,
	}
}
