// Package scale walks the chain of generators, places the wolf interval, and
// assigns cents to each scale degree in ascending pitch order.
package scale

import (
	"sort"

	"github.com/adaptune/temper/cents"
	"github.com/adaptune/temper/model"
)

type degree struct {
	cents    float64
	absolute float64
}

// StartIndex is the chain position of the wolf interval. Manual placement
// converts the user-facing edge index (clamped into range); auto placement
// derives it from the key's flat count, each flat rotating the chain start
// one generator down.
func StartIndex(input model.SolverInput) int {
	n := input.ScaleSize
	if input.WolfPlacement == model.WolfManual {
		edge := input.WolfEdgeIndex
		if edge < 0 {
			edge = 0
		}
		if edge > n-1 {
			edge = n - 1
		}
		return (((n - 1 - edge) % n) + n) % n
	}
	return ((input.KeySpecificity.Flats % n) + n) % n
}

// Map assigns the solved generator chain to scale degrees. The returned cents
// are ascending with the tonic (degree 0) at zero; the absolute values keep
// the unwrapped chain position per degree, which determines octave placement
// when the period is stretched.
func Map(generator, period float64, input model.SolverInput) (notes []float64, absolute []float64) {
	n := input.ScaleSize
	stepSize := cents.NearestStep(generator, n, period)
	startIndex := StartIndex(input)
	tonic := ((input.KeySpecificity.Tonic % n) + n) % n

	degrees := make([]degree, n)
	for k := 0; k < n; k++ {
		genOffset := k - startIndex
		abs := float64(genOffset) * generator
		deg := (((tonic + genOffset*stepSize) % n) + n) % n
		degrees[deg] = degree{
			cents:    cents.WrapToCycle(abs, period),
			absolute: abs,
		}
	}

	// zero the tonic before sorting
	tonicCents := degrees[tonic].cents
	tonicAbs := degrees[tonic].absolute
	for i := range degrees {
		degrees[i].cents = cents.WrapToCycle(degrees[i].cents-tonicCents, period)
		degrees[i].absolute -= tonicAbs
	}

	sort.Slice(degrees, func(i, j int) bool {
		return degrees[i].cents < degrees[j].cents
	})

	// The tonic already sits at zero, but a degree can land on the wrap
	// boundary within float error, so normalize once more against the new
	// lowest degree.
	baseCents := degrees[0].cents
	baseAbs := degrees[0].absolute
	notes = make([]float64, n)
	absolute = make([]float64, n)
	for i, d := range degrees {
		notes[i] = cents.WrapToCycle(d.cents-baseCents, period)
		absolute[i] = d.absolute - baseAbs
	}
	return notes, absolute
}
