package pointmap

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/mstour/mstour"
)

// Map is a point set with per-point link fields.
type Map struct {
	points []r2.Vec
	links  []int
}

var _ mstour.LinkMap = (*Map)(nil)

// New returns a Map over a copy of points with every link unset.
func New(points []r2.Vec) *Map {
	m := &Map{
		points: append([]r2.Vec(nil), points...),
		links:  make([]int, len(points)),
	}
	m.ResetLinks()

	return m
}

// FromXY builds a Map from (x, y) pairs.
func FromXY(xy ...[2]float64) *Map {
	points := make([]r2.Vec, len(xy))
	for i, p := range xy {
		points[i] = r2.Vec{X: p[0], Y: p[1]}
	}

	return New(points)
}

// Count returns the number of points.
func (m *Map) Count() int { return len(m.points) }

// Distance returns the Euclidean distance between points i and j.
func (m *Map) Distance(i, j int) float64 {
	if i == j {
		return 0
	}

	return r2.Norm(r2.Sub(m.points[i], m.points[j]))
}

// Link returns the link of point i, or mstour.NoLink.
func (m *Map) Link(i int) int { return m.links[i] }

// SetLink sets the link of point i to j.
func (m *Map) SetLink(i, j int) { m.links[i] = j }

// EraseLink resets the link of point i.
func (m *Map) EraseLink(i int) { m.links[i] = mstour.NoLink }

// Point returns the coordinates of point i.
func (m *Map) Point(i int) r2.Vec { return m.points[i] }

// Points returns a copy of all coordinates.
func (m *Map) Points() []r2.Vec {
	return append([]r2.Vec(nil), m.points...)
}

// Links returns a copy of all link fields.
func (m *Map) Links() []int {
	return append([]int(nil), m.links...)
}

// ResetLinks erases every link.
func (m *Map) ResetLinks() {
	for i := range m.links {
		m.links[i] = mstour.NoLink
	}
}

// Bounds returns the axis-aligned bounding box of the points.
// For an empty map both corners are the zero vector.
func (m *Map) Bounds() (lo, hi r2.Vec) {
	if len(m.points) == 0 {
		return r2.Vec{}, r2.Vec{}
	}
	lo, hi = m.points[0], m.points[0]
	for _, p := range m.points[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}

	return lo, hi
}
