package mstour

// LeafSet is a removable set of point indices with O(1) membership and removal.
//
// Members are kept in a dense slice; pos[v] holds v's slot or -1. Removal
// swaps the last member into the freed slot, so iteration order is not stable
// across removals. TakeClosest does not depend on that order: ties are broken
// by lowest index.
type LeafSet struct {
	items []int
	pos   []int
}

// NewLeafSet returns an empty set able to hold indices in [0..n-1].
func NewLeafSet(n int) *LeafSet {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}

	return &LeafSet{items: make([]int, 0, n), pos: pos}
}

// CollectLeaves returns the set of points that are no other point's link target.
// Run after BuildMST, this is the leaf set of the spanning tree.
//
// Complexity: O(n).
func CollectLeaves(m LinkMap) *LeafSet {
	n := m.Count()
	parent := make([]bool, n)
	for v := 0; v < n; v++ {
		if p := m.Link(v); p >= 0 && p < n {
			parent[p] = true
		}
	}

	s := NewLeafSet(n)
	for v := 0; v < n; v++ {
		if !parent[v] {
			s.Add(v)
		}
	}

	return s
}

// Len returns the number of members.
func (s *LeafSet) Len() int { return len(s.items) }

// Contains reports whether v is a member.
func (s *LeafSet) Contains(v int) bool {
	return v >= 0 && v < len(s.pos) && s.pos[v] >= 0
}

// Add inserts v. It reports false if v is out of range or already present.
func (s *LeafSet) Add(v int) bool {
	if v < 0 || v >= len(s.pos) || s.pos[v] >= 0 {
		return false
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)

	return true
}

// Remove deletes v. It reports false if v was not a member.
func (s *LeafSet) Remove(v int) bool {
	if !s.Contains(v) {
		return false
	}
	i := s.pos[v]
	last := len(s.items) - 1
	moved := s.items[last]
	s.items[i] = moved
	s.pos[moved] = i
	s.items = s.items[:last]
	s.pos[v] = -1

	return true
}

// First returns the smallest member, or (NoLink, false) if the set is empty.
//
// Complexity: O(len).
func (s *LeafSet) First() (int, bool) {
	if len(s.items) == 0 {
		return NoLink, false
	}
	best := s.items[0]
	for _, v := range s.items[1:] {
		if v < best {
			best = v
		}
	}

	return best, true
}

// Items returns a copy of the members in ascending order.
func (s *LeafSet) Items() []int {
	out := make([]int, 0, len(s.items))
	for v, p := range s.pos {
		if p >= 0 {
			out = append(out, v)
		}
	}

	return out
}

// TakeClosest removes and returns the member nearest to from, breaking ties
// by lowest index. On an empty set it returns (NoLink, false) and changes nothing.
//
// Complexity: O(len).
func (s *LeafSet) TakeClosest(m LinkMap, from int) (int, bool) {
	if len(s.items) == 0 {
		return NoLink, false
	}
	best := s.items[0]
	bestD := m.Distance(from, best)
	for _, v := range s.items[1:] {
		d := m.Distance(from, v)
		if d < bestD || (d == bestD && v < best) {
			best, bestD = v, d
		}
	}
	s.Remove(best)

	return best, true
}
