package mstour

// BuildTour runs BuildMST on m and rewires the tree links into a single
// closed tour.
//
// Steps:
//  1. Collect the leaf set (points that are nobody's parent).
//  2. Remove the lowest leaf; it is the tour start and the first current point.
//  3. Repeat once per initial leaf:
//     walk forward from the current point, marking each point visited, until
//     a) the current point has no link, or
//     b) its link targets an already visited point (the link is erased first).
//     In both cases link it to the nearest remaining leaf, which becomes the
//     next current point; with no leaves left, link it back to the start.
//
// Every point lies on the tree path from some leaf to the root, and each walk
// stops before re-entering a visited point, so the result visits all n points
// exactly once.
//
// Complexity: O(n² log n) for the MST plus O(n·L) for L leaves.
func BuildTour(m LinkMap, opts ...Option) {
	if m.Count() == 0 {
		return
	}
	BuildMST(m)
	linkLeaves(m, buildOptions(opts))
}

// linkLeaves performs steps 1-3 of BuildTour on a map whose links already
// hold a spanning tree rooted at point 0.
func linkLeaves(m LinkMap, o Options) {
	n := m.Count()
	leaves := CollectLeaves(m)
	start, _ := leaves.First()
	leaves.Remove(start)
	jumps := leaves.Len() + 1

	visited := make([]bool, n)
	curr := start

	for it := 0; it < jumps; it++ {
		// Walk until a dead end or a link back into the visited region.
		for {
			visited[curr] = true
			next := m.Link(curr)
			if next == NoLink {
				break
			}
			if visited[next] {
				m.EraseLink(curr)
				break
			}
			curr = next
		}

		p := Progress{Iteration: it}
		if leaf, ok := leaves.TakeClosest(m, curr); ok {
			m.SetLink(curr, leaf)
			curr = leaf
			p.Attached = leaf
		} else {
			m.SetLink(curr, start)
			p.Attached, p.Closed = start, true
		}
		p.Remaining = leaves.Len()
		if o.OnProgress != nil {
			o.OnProgress(p)
		}
	}
}
