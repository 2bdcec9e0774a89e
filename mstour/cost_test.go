package mstour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstour/mstour"
)

func TestTourDistance_ValidManualTours(t *testing.T) {
	assert.InDelta(t, 4.0, mstour.TourDistance(linked(1, 2, 3, 0)), epsTiny)
	assert.InDelta(t, 2+2*math.Sqrt2, mstour.TourDistance(linked(2, 3, 1, 0)), epsTiny)
}

func TestTourDistance_InvalidReturnsSentinel(t *testing.T) {
	// A premature 2-cycle: a partial sum would be positive, the sentinel must win.
	assert.Equal(t, mstour.InvalidDistance, mstour.TourDistance(linked(1, 0, 3, 2)))
	assert.Equal(t, mstour.InvalidDistance, mstour.TourDistance(linked(1, 2, mstour.NoLink, 0)))
	assert.Less(t, mstour.TourDistance(linked(1, 0, 3, 2)), 0.0)
}

func TestTourCost(t *testing.T) {
	m := unitSquare()
	c, err := mstour.TourCost(m, []int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, c, epsTiny)

	_, err = mstour.TourCost(m, []int{0})
	assert.ErrorIs(t, err, mstour.ErrInvalidTour)

	_, err = mstour.TourCost(m, []int{0, 5, 0})
	assert.ErrorIs(t, err, mstour.ErrInvalidTour)
}

func TestTreeWeight_IgnoresUnlinked(t *testing.T) {
	m := linked(mstour.NoLink, 0, mstour.NoLink, 2)
	assert.InDelta(t, 2.0, mstour.TreeWeight(m), epsTiny)
}
