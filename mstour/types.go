package mstour

import "errors"

// NoLink marks a point whose link has not been set.
const NoLink = -1

// InvalidDistance is returned by TourDistance when the links do not form a valid tour.
const InvalidDistance = -1.0

// ErrNilMap is returned when a nil LinkMap is passed to Solve.
var ErrNilMap = errors.New("mstour: nil point map")

// ErrEmptyMap is returned when the point map holds no points.
var ErrEmptyMap = errors.New("mstour: empty point map")

// ErrBadDistance indicates a negative or NaN pairwise distance.
var ErrBadDistance = errors.New("mstour: negative or NaN distance")

// ErrInvalidTour indicates that the links (or a tour slice) do not describe
// a single Hamiltonian cycle.
var ErrInvalidTour = errors.New("mstour: links do not form a single tour")

// LinkMap is the point-set collaborator the algorithms read from and write to.
//
// Points are addressed by index 0..Count()-1. Distance must be symmetric,
// non-negative and zero iff i == j. Link returns NoLink when unset.
type LinkMap interface {
	// Count returns the number of points.
	Count() int

	// Distance returns the Euclidean distance between points i and j.
	Distance(i, j int) float64

	// Link returns the current link of point i, or NoLink.
	Link(i int) int

	// SetLink sets the link of point i to j.
	SetLink(i, j int)

	// EraseLink resets the link of point i to NoLink.
	EraseLink(i int)
}

// TSResult holds the outcome of Solve.
type TSResult struct {
	// Tour is the sequence of point indices, starting and ending at 0.
	// For n points, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Cost is the total Euclidean length of the cycle.
	Cost float64

	// TreeWeight is the total weight of the spanning tree the tour was built from.
	TreeWeight float64
}

// Progress describes one completed outer iteration of BuildTour.
type Progress struct {
	// Iteration is the zero-based outer iteration number.
	Iteration int

	// Attached is the point the walk jumped to, or the tour start when the
	// cycle was closed.
	Attached int

	// Remaining is the number of leaves still waiting to be attached.
	Remaining int

	// Closed reports whether this iteration closed the cycle.
	Closed bool
}

// Options configures BuildTour and Solve.
type Options struct {
	// OnProgress, if non-nil, is called after every outer iteration of BuildTour.
	OnProgress func(Progress)

	// TwoOpt enables the 2-opt post-pass in Solve.
	TwoOpt bool

	// TwoOptMaxIters bounds accepted 2-opt moves; 0 means unlimited.
	TwoOptMaxIters int

	// Eps is the minimum improvement a 2-opt move must yield to be accepted.
	Eps float64
}

// Option configures Options.
type Option func(*Options)

// DefaultEps is the default 2-opt acceptance tolerance.
const DefaultEps = 1e-12

// DefaultOptions returns Options with the 2-opt pass disabled and no hook.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}

// WithProgress installs a hook invoked after each outer tour-construction iteration.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// WithTwoOpt enables the 2-opt post-pass with the given move limit (0 ⇒ unlimited).
func WithTwoOpt(maxIters int) Option {
	return func(o *Options) {
		o.TwoOpt = true
		o.TwoOptMaxIters = maxIters
	}
}

// WithEps overrides the 2-opt acceptance tolerance. Negative values are clamped to 0.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			eps = 0
		}
		o.Eps = eps
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
