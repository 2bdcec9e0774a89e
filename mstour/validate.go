package mstour

// IsValidTour reports whether the links of m form a single cycle through all
// points: starting at point 0, n-1 steps land on n-1 distinct, previously
// unvisited points, and the n-th step returns to 0.
//
// It fails fast on a missing link, an out-of-range link, or a revisit.
// m is not modified.
//
// Complexity: O(n) time, O(n) space.
func IsValidTour(m LinkMap) bool {
	if m == nil {
		return false
	}
	n := m.Count()
	if n == 0 {
		return false
	}

	visited := make([]bool, n)
	curr := root
	for i := 0; i < n-1; i++ {
		next := m.Link(curr)
		if visited[curr] || next < 0 || next >= n {
			return false
		}
		visited[curr] = true
		curr = next
	}
	if visited[curr] {
		return false
	}

	return m.Link(curr) == root
}

// ValidateTour checks a closed tour slice over n points:
// len(tour) == n+1, tour[0] == tour[n] == 0, and every point in [0..n-1]
// appears exactly once in tour[0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != root || tour[n] != root {
		return ErrInvalidTour
	}

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// TourFromLinks walks a valid link cycle from point 0 and returns it as a
// closed tour slice of length n+1.
//
// Returns ErrInvalidTour if the links are not a single Hamiltonian cycle.
func TourFromLinks(m LinkMap) ([]int, error) {
	if !IsValidTour(m) {
		return nil, ErrInvalidTour
	}
	n := m.Count()
	tour := make([]int, n+1)
	curr := root
	for i := 0; i < n; i++ {
		tour[i] = curr
		curr = m.Link(curr)
	}
	tour[n] = root

	return tour, nil
}

// ApplyTour writes a closed tour slice into the links of m so that each
// tour[i] links to tour[i+1].
//
// Returns ErrInvalidTour if tour fails ValidateTour for m.Count() points;
// m is left untouched in that case.
func ApplyTour(m LinkMap, tour []int) error {
	n := m.Count()
	if err := ValidateTour(tour, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		m.SetLink(tour[i], tour[i+1])
	}

	return nil
}
