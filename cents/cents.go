package cents

import (
	"fmt"
	"math"
)

// PureFifth is the just 3/2 in cents (~701.955). It is the reference
// generator for step estimation and the rank-2 anchor; functions take it as a
// parameter so tests can substitute their own reference.
var PureFifth = RatioToCents(3, 2)

// RatioToCents converts a frequency ratio n/d to cents (1200 per octave).
func RatioToCents(n, d int) float64 {
	return 1200 * math.Log2(float64(n)/float64(d))
}

// WrapToCycle reduces cents into [0, period) using floored modulo, so the
// result is never negative.
func WrapToCycle(c, period float64) float64 {
	m := math.Mod(c, period)
	if m < 0 {
		m += period
	}
	return m
}

// SignedWrapDiff is the shortest signed distance from b to a around the
// cycle, in (-period/2, period/2].
func SignedWrapDiff(a, b, period float64) float64 {
	d := WrapToCycle(a-b, period)
	if d > period/2 {
		d -= period
	}
	return d
}

// NearestStep rounds c to the nearest whole scale-degree step out of n per
// period, clamped into [1, n-1].
func NearestStep(c float64, n int, period float64) int {
	step := int(math.Round(c / (period / float64(n))))
	if step < 1 {
		step = 1
	}
	if step > n-1 {
		step = n - 1
	}
	return step
}

var chromaticNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// DegreeName is a cosmetic label for a scale degree. Only 12-degree scales
// get letter names.
func DegreeName(degree, n int) string {
	if n == 12 {
		return chromaticNames[((degree%12)+12)%12]
	}
	return fmt.Sprintf("d%v", ((degree%n)+n)%n)
}
