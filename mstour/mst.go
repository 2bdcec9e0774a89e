package mstour

import "container/heap"

// root is the fixed start point of Prim's algorithm and of every tour.
const root = 0

// BuildMST computes a minimum spanning tree over the complete Euclidean graph
// of m and records it in the link fields: every non-root point links to its
// parent, and root 0 is left with NoLink.
//
// Steps:
//  1. Erase the root link; mark root as included.
//  2. Push candidate edges root→v for every other point v.
//  3. Until n-1 points are linked:
//     a. Pop the lightest edge (u→v).
//     b. If v is already included, discard it; this pop does not count.
//     c. Otherwise SetLink(v, u), include v, and push v→w for every excluded w.
//
// Equal weights pop in insertion order, so the result is deterministic.
// For n ≤ 1 only the root link is erased.
//
// Complexity: O(n² log n) time, O(n²) memory for the heap in the worst case.
func BuildMST(m LinkMap) {
	n := m.Count()
	if n == 0 {
		return
	}
	m.EraseLink(root)
	if n == 1 {
		return
	}

	included := make([]bool, n)
	included[root] = true

	pq := &edgePQ{}
	heap.Init(pq)
	var seq uint64
	push := func(from, to int) {
		heap.Push(pq, edge{from: from, to: to, weight: m.Distance(from, to), seq: seq})
		seq++
	}

	for v := 0; v < n; v++ {
		if v != root {
			push(root, v)
		}
	}

	for linked := 0; linked < n-1 && pq.Len() > 0; {
		e := heap.Pop(pq).(edge)
		if included[e.to] {
			continue
		}
		m.SetLink(e.to, e.from)
		included[e.to] = true
		linked++

		for w := 0; w < n; w++ {
			if !included[w] {
				push(e.to, w)
			}
		}
	}
}

// TreeWeight returns the sum of Distance(v, Link(v)) over every point with a link.
// Called right after BuildMST it is the spanning tree weight.
//
// Complexity: O(n).
func TreeWeight(m LinkMap) float64 {
	var sum float64
	for v := 0; v < m.Count(); v++ {
		if p := m.Link(v); p != NoLink {
			sum += m.Distance(v, p)
		}
	}

	return round1e9(sum)
}

// edge is a transient candidate connection used only inside BuildMST.
type edge struct {
	from, to int
	weight   float64
	seq      uint64
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by weight,
// then by insertion sequence.
type edgePQ []edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(edge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
