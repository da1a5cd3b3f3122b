package se2

import "time"

// Waypoint is a timed SE(2) pose: the opaque search state the line-follow
// expander and its extrapolator operate on. Waypoints are immutable.
type Waypoint struct {
	At       time.Time
	Position Position
}

// Time implements motion.Timed.
func (w Waypoint) Time() time.Time {
	return w.At
}

// NewWaypoint constructs a Waypoint at the given absolute time and pose.
func NewWaypoint(at time.Time, position Position) Waypoint {
	return Waypoint{At: at, Position: position}
}
