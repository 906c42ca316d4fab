package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trufurrs/tagsim/pkg/geo"
)

// TestDistance_Symmetric tests that the estimate is independent of
// argument order.
func TestDistance_Symmetric(t *testing.T) {
	d1 := geo.Distance(12.860855, 77.659462, 12.860779, 77.659538)
	d2 := geo.Distance(12.860779, 77.659538, 12.860855, 77.659462)

	assert.Equal(t, d1, d2)
}

// TestDistance_SamePointIsZero tests that identical coordinates are zero
// meters apart.
func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Zero(t, geo.Distance(12.860855, 77.659462, 12.860855, 77.659462))
}

// TestDistance_KnownSeparation tests the flat-earth arithmetic against the
// reference pair used by the backend integration tests: 0.000076 degrees on
// each axis scales to 8.436 m and 7.42368 m, a hypotenuse of ~11.24 m.
func TestDistance_KnownSeparation(t *testing.T) {
	d := geo.Distance(12.860855, 77.659462, 12.860779, 77.659538)

	assert.InDelta(t, 11.24, d, 0.001)
}

// TestDistance_RoundedToTwoDecimals tests the 2-decimal rounding of the
// returned estimate.
func TestDistance_RoundedToTwoDecimals(t *testing.T) {
	// 0.0001 degrees of latitude alone scales to exactly 11.1 m.
	d := geo.Distance(12.8600, 77.6594, 12.8601, 77.6594)

	assert.InDelta(t, 11.1, d, 1e-9)
}
