// Package mstour_test holds shared helpers for the mstour tests.
package mstour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstour/mstour"
	"github.com/katalvlaran/mstour/pointmap"
)

const (
	// epsTiny is the tolerance for exact geometric scenarios (costs are rounded to 1e-9).
	epsTiny = 1e-9

	// seedDet is the deterministic seed used for random point sets.
	seedDet = int64(42)
)

// unitSquare returns the corners of the unit square in tour order.
func unitSquare() *pointmap.Map {
	return pointmap.FromXY([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 1}, [2]float64{1, 0})
}

// collinear4 returns four points on the x axis spaced by 1.
func collinear4() *pointmap.Map {
	return pointmap.FromXY([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}, [2]float64{3, 0})
}

// requireTree asserts that the links of m form a spanning tree rooted at 0:
// the root has no link, every other point links in range, and following
// links from any point reaches the root in fewer than n steps.
func requireTree(t *testing.T, m mstour.LinkMap) {
	t.Helper()
	n := m.Count()
	require.Equal(t, mstour.NoLink, m.Link(0), "root must have no link")

	edges := 0
	for v := 1; v < n; v++ {
		p := m.Link(v)
		require.GreaterOrEqual(t, p, 0, "point %d has no parent", v)
		require.Less(t, p, n, "point %d parent out of range", v)
		edges++

		curr, steps := v, 0
		for curr != 0 {
			curr = m.Link(curr)
			steps++
			require.Less(t, steps, n, "point %d does not reach the root", v)
		}
	}
	require.Equal(t, n-1, edges)
}

// referenceMSTWeight is an O(n²) array-based Prim used as an oracle.
func referenceMSTWeight(m mstour.LinkMap) float64 {
	n := m.Count()
	inTree := make([]bool, n)
	best := make([]float64, n)
	for v := range best {
		best[v] = math.Inf(1)
	}
	best[0] = 0

	var total float64
	for it := 0; it < n; it++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if d := m.Distance(u, v); !inTree[v] && d < best[v] {
				best[v] = d
			}
		}
	}

	return total
}

// badMap is a LinkMap whose distances can be poisoned for error-path tests.
type badMap struct {
	n     int
	dist  float64
	links []int
}

func newBadMap(n int, dist float64) *badMap {
	links := make([]int, n)
	for i := range links {
		links[i] = mstour.NoLink
	}

	return &badMap{n: n, dist: dist, links: links}
}

func (b *badMap) Count() int { return b.n }
func (b *badMap) Distance(i, j int) float64 {
	if i == j {
		return 0
	}

	return b.dist
}
func (b *badMap) Link(i int) int   { return b.links[i] }
func (b *badMap) SetLink(i, j int) { b.links[i] = j }
func (b *badMap) EraseLink(i int)  { b.links[i] = mstour.NoLink }
