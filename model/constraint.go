package model

// Constraint is one weighted row of the optimization. Built fresh per solve.
type Constraint struct {
	Label          string
	N              int
	D              int
	Weight         float64
	IdealCents     float64
	GeneratorSteps int
	PeriodComp     int
	AnchorID       string
}
