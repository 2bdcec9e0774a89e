package pointmap

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// Random returns n points drawn uniformly from [0,width)×[0,height).
// The same seed always yields the same points; seed 0 maps to a fixed default.
func Random(n int, seed int64, width, height float64) *Map {
	if n < 0 {
		n = 0
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	points := make([]r2.Vec, n)
	for i := range points {
		points[i] = r2.Vec{X: rng.Float64() * width, Y: rng.Float64() * height}
	}

	return New(points)
}
