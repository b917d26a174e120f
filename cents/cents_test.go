package cents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioToCents(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(701.955, RatioToCents(3, 2), 0.001)
	assert.InDelta(1200, RatioToCents(2, 1), 1e-9)
	assert.InDelta(386.3137, RatioToCents(5, 4), 0.001)
	assert.InDelta(-701.955, RatioToCents(2, 3), 0.001)
}

func TestWrapToCycleNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(100, WrapToCycle(1300, 1200), 1e-9)
	assert.InDelta(1100, WrapToCycle(-100, 1200), 1e-9)
	assert.InDelta(0, WrapToCycle(2400, 1200), 1e-9)
	assert.InDelta(0, WrapToCycle(0, 1200), 1e-9)
}

func TestSignedWrapDiff(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(-20, SignedWrapDiff(1190, 10, 1200), 1e-9)
	assert.InDelta(20, SignedWrapDiff(10, 1190, 1200), 1e-9)
	assert.InDelta(5, SignedWrapDiff(105, 100, 1200), 1e-9)

	// half the cycle lands on the positive side of the range
	assert.InDelta(600, SignedWrapDiff(0, 600, 1200), 1e-9)
}

func TestNearestStepClamps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, NearestStep(701.955, 12, 1200))
	assert.Equal(4, NearestStep(386.31, 12, 1200))
	assert.Equal(1, NearestStep(10, 12, 1200))
	assert.Equal(11, NearestStep(1195, 12, 1200))
}

func TestDegreeName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", DegreeName(0, 12))
	assert.Equal("G", DegreeName(7, 12))
	assert.Equal("C", DegreeName(12, 12))
	assert.Equal("d3", DegreeName(3, 19))
	assert.Equal("d18", DegreeName(-1, 19))
}
