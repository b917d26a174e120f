package constraint

import (
	"testing"

	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/model"
	"github.com/stretchr/testify/assert"
)

func TestEstimateGeneratorSteps(t *testing.T) {
	cases := []struct {
		n, d  int
		steps int
	}{
		{3, 2, 1},   // one fifth up
		{4, 3, -1},  // one fifth down
		{9, 8, 2},   // two fifths
		{27, 16, 3}, // three fifths
		{5, 4, -8},  // eight fourths land a schisma from the just third
	}
	for _, c := range cases {
		ideal := cents.WrapToCycle(cents.RatioToCents(c.n, c.d), 1200)
		got := EstimateGeneratorSteps(ideal, 1200, cents.PureFifth)
		assert.Equal(t, c.steps, got, "steps for %v/%v", c.n, c.d)
	}
}

func TestPeriodComp(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{
		ScaleSize:  12,
		CycleCents: 1200,
		Targets:    []model.RatioSpec{{N: 4, D: 3, Label: "fourth"}},
	}
	cs, err := Build(input, cents.PureFifth)
	assert.NoError(err)
	assert.Len(cs, 1)
	assert.Equal(-1, cs[0].GeneratorSteps)
	assert.Equal(-1, cs[0].PeriodComp)
}

func TestFallbackConstraintWhenNoTargets(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{ScaleSize: 12, CycleCents: 1200}
	cs, err := Build(input, cents.PureFifth)
	assert.NoError(err)
	assert.Len(cs, 1)
	assert.Equal(3, cs[0].N)
	assert.Equal(2, cs[0].D)
	assert.Equal(1, cs[0].GeneratorSteps)
	assert.InDelta(1, cs[0].Weight, 1e-9)
}

func TestEqualWeightedMode(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{
		ScaleSize:  12,
		CycleCents: 1200,
		Targets: []model.RatioSpec{
			{N: 3, D: 2, Label: "fifth"},
			{N: 5, D: 4, Label: "third"},
		},
	}
	cs, err := Build(input, cents.PureFifth)
	assert.NoError(err)
	assert.Len(cs, 2)
	assert.InDelta(0.5, cs[0].Weight, 1e-9)
	assert.InDelta(0.5, cs[1].Weight, 1e-9)
}

func TestMatrixWeightedModeDropsTinyWeights(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{
		ScaleSize:  12,
		CycleCents: 1200,
		Targets: []model.RatioSpec{
			{N: 3, D: 2, Label: "fifth"},
			{N: 5, D: 4, Label: "third"},
		},
		TargetWeights: model.TargetWeightMap{
			"3/2": 0.8,
			"5/4": 0.0005,
		},
	}
	cs, err := Build(input, cents.PureFifth)
	assert.NoError(err)
	assert.Len(cs, 1)
	assert.Equal(3, cs[0].N)
	assert.InDelta(1, cs[0].Weight, 1e-9)
}

func TestOctaveWeightedMode(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{
		ScaleSize:  12,
		CycleCents: 1200,
		OctaWeighting: model.OctaWeighting{
			Enabled: true,
			X:       1,
		},
	}
	cs, err := Build(input, cents.PureFifth)
	assert.NoError(err)
	assert.Len(cs, 6)

	var total float64
	byAnchor := make(map[string]model.Constraint)
	for _, c := range cs {
		total += c.Weight
		byAnchor[c.AnchorID] = c
	}
	assert.InDelta(1, total, 1e-9)

	// x=1 loads the 3-limit anchors: p5 gets 1.5, p4 gets 1.25 of 2.75
	assert.InDelta(1.5/2.75, byAnchor["p5"].Weight, 1e-9)
	assert.InDelta(1.25/2.75, byAnchor["p4"].Weight, 1e-9)
	assert.InDelta(0, byAnchor["h7"].Weight, 1e-9)
	assert.Equal(1, byAnchor["p5"].GeneratorSteps)
}

func TestInvalidRatioRejected(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{
		ScaleSize:  12,
		CycleCents: 1200,
		Targets:    []model.RatioSpec{{N: 0, D: 2, Label: "bad"}},
	}
	_, err := Build(input, cents.PureFifth)
	assert.Error(err)
}

func TestWeightsSumToOne(t *testing.T) {
	assert := assert.New(t)

	input := model.SolverInput{
		ScaleSize:  12,
		CycleCents: 1200,
		Targets: []model.RatioSpec{
			{N: 3, D: 2}, {N: 5, D: 4}, {N: 6, D: 5}, {N: 7, D: 4},
		},
		TargetWeights: model.TargetWeightMap{
			"3/2": 0.9, "5/4": 0.3, "6/5": 0.1, "7/4": 0.2,
		},
	}
	cs, err := Build(input, cents.PureFifth)
	assert.NoError(err)
	var total float64
	for _, c := range cs {
		total += c.Weight
		assert.NotEqual(0, c.GeneratorSteps)
	}
	assert.InDelta(1, total, 1e-9)
}
