// Package motion defines timed-motion primitives shared by every expander:
// a generic Trajectory of time-stamped states, and the CostCalculator and
// Extrapolator contracts an expander composes to turn trajectories into
// search nodes. The SE(2) specialization of these types lives in the se2
// subpackage.
package motion

import (
	"time"

	"github.com/pkg/errors"
)

// Timed is satisfied by any waypoint type that carries an absolute timestamp.
type Timed interface {
	Time() time.Time
}

// ErrTooFewWaypoints is returned by NewTrajectory when fewer than two
// waypoints are given.
var ErrTooFewWaypoints = errors.New("motion: trajectory needs at least two waypoints")

// ErrNonMonotonicTime is returned by NewTrajectory when waypoint times do not
// strictly increase.
var ErrNonMonotonicTime = errors.New("motion: trajectory waypoint times must be strictly increasing")

// Trajectory is a finite, strictly time-increasing sequence of at least two
// waypoints. Trajectories are immutable once constructed.
type Trajectory[W Timed] struct {
	waypoints []W
}

// NewTrajectory validates and wraps a waypoint sequence. It fails if there
// are fewer than two waypoints, or if their times are not strictly
// increasing.
func NewTrajectory[W Timed](waypoints []W) (*Trajectory[W], error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}
	for i := 1; i < len(waypoints); i++ {
		if !waypoints[i].Time().After(waypoints[i-1].Time()) {
			return nil, ErrNonMonotonicTime
		}
	}
	cp := make([]W, len(waypoints))
	copy(cp, waypoints)
	return &Trajectory[W]{waypoints: cp}, nil
}

// Waypoints returns the trajectory's waypoints in order. Callers must not
// mutate the returned slice.
func (t *Trajectory[W]) Waypoints() []W {
	return t.waypoints
}

// First returns the trajectory's first waypoint.
func (t *Trajectory[W]) First() W {
	return t.waypoints[0]
}

// Last returns the trajectory's final waypoint.
func (t *Trajectory[W]) Last() W {
	return t.waypoints[len(t.waypoints)-1]
}

// Duration returns the elapsed time between the first and last waypoint.
func (t *Trajectory[W]) Duration() time.Duration {
	return t.Last().Time().Sub(t.First().Time())
}

// ConcatDroppingSharedBoundary appends other's waypoints after the
// receiver's, dropping other's first waypoint. It is the tool for
// concatenating parent-chain segments, each of which begins with a repeat of
// the previous segment's final state; dropping the duplicate is what keeps
// the merged timeline strictly increasing per §3's trajectory invariant.
func (t *Trajectory[W]) ConcatDroppingSharedBoundary(other *Trajectory[W]) (*Trajectory[W], error) {
	combined := make([]W, 0, len(t.waypoints)+len(other.waypoints)-1)
	combined = append(combined, t.waypoints...)
	combined = append(combined, other.waypoints[1:]...)
	return NewTrajectory(combined)
}
