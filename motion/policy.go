package motion

import "github.com/reuben-thomas/mapf/cost"

// CostCalculator reduces a trajectory to a scalar cost. Implementations must
// be non-negative and additive over concatenated trajectories for A* to
// remain correct.
type CostCalculator[W Timed, C cost.Cost[C]] interface {
	ComputeCost(t *Trajectory[W]) C
}

// Extrapolator produces the timed motion needed to move from a state W toward
// a target P. It may fail on degenerate input (NaN, non-finite values);
// callers treat a failure as "this transition is impossible" and move on
// rather than aborting the search.
type Extrapolator[W Timed, P any] interface {
	Extrapolate(from W, to P) ([]W, error)
}
