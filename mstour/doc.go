// Package mstour builds approximate Euclidean Travelling Salesman tours
// from a Minimum Spanning Tree.
//
// The pipeline has three stages, all operating on a LinkMap:
//
//   - BuildMST — Prim's algorithm from point 0 over a min-heap of candidate
//     edges. Each non-root point's link is set to its tree parent.
//
//   - BuildTour — converts the tree into a Hamiltonian cycle. Leaves (points
//     that are nobody's parent) are collected into a LeafSet; starting from a
//     leaf, the walk follows parent links and, at every dead end or premature
//     return to a visited point, jumps to the nearest remaining leaf.
//
//   - IsValidTour / TourDistance — read-only passes that confirm the links
//     form one cycle through all N points and sum its Euclidean length.
//
// Solve chains the stages, optionally polishes the result with TwoOpt and
// returns a TSResult with the closed tour sequence and its cost.
//
// The link field is reused: it first encodes "tree parent", then "tour
// successor". Callers should not interpret links between BuildMST and
// BuildTour as a tour.
//
// Complexity:
//   - BuildMST:  O(n² log n) time, O(n²) heap memory in the worst case.
//   - BuildTour: O(n·L) time where L is the number of leaves.
//   - Validate/score: O(n).
//
// The package performs no logging and never panics on well-formed input;
// pipeline failures are reported with the sentinel errors in types.go.
package mstour
