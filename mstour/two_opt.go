package mstour

// TwoOpt runs deterministic first-improvement 2-opt on a closed tour.
//
// For cut indices 1 ≤ i < k ≤ n-1 with a=T[i-1], b=T[i], c=T[k], d=T[k+1]:
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d)
//
// A move is accepted when Δ < −eps and reverses the segment T[i..k]; the scan
// then restarts. The start vertex stays at both ends of the tour.
// maxIters bounds the number of accepted moves (0 ⇒ until local optimum).
//
// The input tour is not modified. Returns the improved tour and its cost.
//
// Complexity: O(iter·n²) time, O(n) extra space.
func TwoOpt(m LinkMap, tour []int, maxIters int, eps float64) ([]int, float64, error) {
	n := m.Count()
	if err := ValidateTour(tour, n); err != nil {
		return nil, 0, err
	}
	if eps < 0 {
		eps = 0
	}

	cur := make([]int, n+1)
	copy(cur, tour)

	accepted := 0
	for n >= 4 {
		improved := false
		for i := 1; i <= n-2 && !improved; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]
				delta := m.Distance(a, c) + m.Distance(b, d) - m.Distance(a, b) - m.Distance(c, d)
				if delta < -eps {
					reverseSegment(cur, i, k)
					improved = true
					accepted++
					break
				}
			}
		}
		if !improved || (maxIters > 0 && accepted >= maxIters) {
			break
		}
	}

	cost, err := TourCost(m, cur)
	if err != nil {
		return nil, 0, err
	}

	return cur, cost, nil
}

// reverseSegment reverses tour[i..k] in place.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
