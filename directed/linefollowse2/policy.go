package linefollowse2

import (
	"github.com/pkg/errors"

	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/motion"
	"github.com/reuben-thomas/mapf/motion/se2"
)

// ErrNonPositiveSpeed is returned by NewEuclideanHeuristic when speed is not
// strictly positive.
var ErrNonPositiveSpeed = errors.New("linefollowse2: heuristic speed must be positive")

// Heuristic estimates the remaining cost from a Cartesian point toward a
// goal vertex. It is narrowed to the concrete state this expander searches
// over — a point in the plane rather than an opaque search state — since the
// heuristic never needs yaw to stay admissible for a line-follow robot.
type Heuristic interface {
	EstimateCost(from se2.Point, goalVertex int, g *se2Graph) (cost.Duration, bool)
}

// EuclideanHeuristic estimates remaining cost as straight-line distance to
// the goal vertex divided by a robot's cruising speed. It is admissible
// whenever no achievable path is shorter than the straight line, and
// consistent for the same reason a Euclidean heuristic is consistent for any
// graph embedded in the plane with edge lengths at least the Euclidean
// distance between endpoints.
type EuclideanHeuristic struct {
	speed float64
}

// NewEuclideanHeuristic constructs a heuristic dividing distance by speed.
func NewEuclideanHeuristic(speed float64) (*EuclideanHeuristic, error) {
	if speed <= 0 {
		return nil, ErrNonPositiveSpeed
	}
	return &EuclideanHeuristic{speed: speed}, nil
}

// EstimateCost implements Heuristic.
func (h *EuclideanHeuristic) EstimateCost(from se2.Point, goalVertex int, g *se2Graph) (cost.Duration, bool) {
	to, ok := g.VertexAt(goalVertex)
	if !ok {
		return 0, false
	}
	dist := (se2.Position{Translation: from}).DistanceTo(to)
	return cost.FromSeconds(dist / h.speed), true
}

// TimeCostCalculator reduces a trajectory to its elapsed wall-clock
// duration: the reference Cost instantiation's natural interpretation of
// "cost" for a timed motion.
type TimeCostCalculator struct{}

// ComputeCost implements motion.CostCalculator.
func (TimeCostCalculator) ComputeCost(t *motion.Trajectory[se2.Waypoint]) cost.Duration {
	return cost.Duration(t.Duration())
}
