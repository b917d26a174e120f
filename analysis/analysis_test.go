package analysis

import (
	"math"
	"testing"

	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/scale"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.KindP5, Classify(701.955))
	assert.Equal(model.KindP5, Classify(650))
	assert.Equal(model.KindM3, Classify(386.31))
	assert.Equal(model.Kindm3, Classify(315.64))
	assert.Equal(model.KindM3, Classify(500)) // out of every bucket
	assert.Equal(model.KindM3, Classify(100))
}

func pythagoreanNotes(t *testing.T) []float64 {
	t.Helper()
	input := model.SolverInput{ScaleSize: 12, CycleCents: 1200}
	notes, _ := scale.Map(cents.PureFifth, 1200, input)
	return notes
}

func TestDominantFifthHasOneWolf(t *testing.T) {
	assert := assert.New(t)

	notes := pythagoreanNotes(t)
	cs := []model.Constraint{{
		N: 3, D: 2, Label: "fifth",
		Weight:         1,
		IdealCents:     cents.PureFifth,
		GeneratorSteps: 1,
	}}
	intervals := Analyze(cs, notes, 1200, 0)
	assert.Len(intervals, 12)

	var clean int
	var meanAbs float64
	for _, ie := range intervals {
		assert.Equal(model.KindP5, ie.Kind)
		assert.Equal(7, ie.Step)
		assert.True(ie.IsSkeleton)
		meanAbs += math.Abs(ie.ErrorCents)
		if math.Abs(ie.ErrorCents) < 0.01 {
			clean += 1
		}
	}
	meanAbs /= 12

	// eleven pure fifths, one wolf a Pythagorean comma off
	assert.Equal(11, clean)
	assert.Less(meanAbs, 2.5)
}

func TestKeyTonicTagging(t *testing.T) {
	assert := assert.New(t)

	notes := pythagoreanNotes(t)
	cs := []model.Constraint{{
		N: 3, D: 2,
		Weight:         0.05,
		IdealCents:     cents.PureFifth,
		GeneratorSteps: 1,
		AnchorID:       "p5",
	}}
	intervals := Analyze(cs, notes, 1200, 3)

	for _, ie := range intervals {
		assert.False(ie.IsSkeleton)
		assert.Equal("p5", ie.AnchorID)
		if ie.I == 0 {
			assert.NotNil(ie.KeyTonic)
			assert.Equal(3, *ie.KeyTonic)
		} else {
			assert.Nil(ie.KeyTonic)
		}
	}
}

func TestRowsPerConstraintAndDegree(t *testing.T) {
	assert := assert.New(t)

	notes := pythagoreanNotes(t)
	cs := []model.Constraint{
		{N: 3, D: 2, Weight: 0.6, IdealCents: cents.PureFifth, GeneratorSteps: 1},
		{N: 5, D: 4, Weight: 0.4, IdealCents: cents.RatioToCents(5, 4), GeneratorSteps: -8},
	}
	intervals := Analyze(cs, notes, 1200, 0)
	assert.Len(intervals, 24)

	for _, ie := range intervals {
		assert.Equal((ie.I+ie.Step)%12, ie.J)
	}
}
