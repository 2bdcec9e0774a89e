package mstour

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourDistance returns the total length of the tour encoded in the links of m,
// including the closing edge back to point 0. If the links do not form a
// valid tour it returns InvalidDistance and computes no partial sum.
//
// Complexity: O(n).
func TourDistance(m LinkMap) float64 {
	if !IsValidTour(m) {
		return InvalidDistance
	}

	var sum float64
	curr := root
	for i := 0; i < m.Count(); i++ {
		next := m.Link(curr)
		sum += m.Distance(curr, next)
		curr = next
	}

	return round1e9(sum)
}

// TourCost sums the edge lengths along a closed tour slice.
// The tour is not validated beyond index range checks.
//
// Complexity: O(len(tour)).
func TourCost(m LinkMap, tour []int) (float64, error) {
	n := m.Count()
	if len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		sum += m.Distance(u, v)
	}

	return round1e9(sum), nil
}

// checkDistances rejects maps whose pairwise distances are negative or NaN.
//
// Complexity: O(n²).
func checkDistances(m LinkMap) error {
	n := m.Count()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.Distance(i, j)
			if math.IsNaN(d) || d < 0 {
				return ErrBadDistance
			}
		}
	}

	return nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
