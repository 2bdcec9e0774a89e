// Package pointmap is the in-memory point set that mstour operates on.
//
// A Map owns 2D coordinates (gonum r2.Vec) and one link field per point.
// It satisfies mstour.LinkMap: Distance is Euclidean, Link/SetLink/EraseLink
// read and write the link fields. Indices outside [0..Count()-1] are
// programmer errors and panic like slice indexing.
//
// Loaders:
//   - ReadText: one "x y" pair per line, optional leading count line.
//   - ReadYAML: a document with a top-level "points" list of {x, y}.
//   - Load:     picks a loader by file extension.
//
// Random generates reproducible uniform point sets for experiments and tests.
package pointmap
