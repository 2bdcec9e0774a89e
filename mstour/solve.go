package mstour

// Solve validates m, builds the MST-based tour and returns it as a TSResult.
//
// Stages:
//  1. Reject nil or empty maps and negative/NaN distances.
//  2. BuildMST, capture the tree weight, then rewire the tree into a tour
//     exactly as BuildTour does.
//  3. Verify the link cycle with IsValidTour.
//  4. Optionally polish with TwoOpt and write the result back into m.
//
// On success the links of m hold the returned tour.
//
// Errors: ErrNilMap, ErrEmptyMap, ErrBadDistance, ErrInvalidTour.
func Solve(m LinkMap, opts ...Option) (TSResult, error) {
	if m == nil {
		return TSResult{}, ErrNilMap
	}
	if m.Count() == 0 {
		return TSResult{}, ErrEmptyMap
	}
	if err := checkDistances(m); err != nil {
		return TSResult{}, err
	}

	o := buildOptions(opts)

	BuildMST(m)
	treeWeight := TreeWeight(m)

	linkLeaves(m, o)

	tour, err := TourFromLinks(m)
	if err != nil {
		return TSResult{}, err
	}

	cost, err := TourCost(m, tour)
	if err != nil {
		return TSResult{}, err
	}

	if o.TwoOpt {
		tour, cost, err = TwoOpt(m, tour, o.TwoOptMaxIters, o.Eps)
		if err != nil {
			return TSResult{}, err
		}
		if err = ApplyTour(m, tour); err != nil {
			return TSResult{}, err
		}
	}

	return TSResult{Tour: tour, Cost: cost, TreeWeight: treeWeight}, nil
}
