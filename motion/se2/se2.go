// Package se2 implements the SE(2) (planar rigid-body) motion primitives the
// line-follow expander is built on: a 2-D point, a wrapped yaw angle, a
// combined pose, and the timed Waypoint the rest of the engine treats as an
// opaque search state.
package se2

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2-D Cartesian location, reused directly from the geo library's
// r2 package rather than reinvented.
type Point = r2.Point

// Rotation is a planar orientation, stored as an angle in radians and
// normalized to (-π, π] by NewRotation.
type Rotation struct {
	angle float64
}

// NewRotation wraps an angle in radians into a Rotation normalized to
// (-π, π].
func NewRotation(radians float64) Rotation {
	return Rotation{angle: normalizeAngle(radians)}
}

// Angle returns the rotation's angle in radians, within (-π, π].
func (r Rotation) Angle() float64 {
	return r.angle
}

// Sub returns the signed angular difference r-other, normalized to (-π, π].
// Its absolute value is the yaw error used by the extrapolator and by
// orientation-goal satisfaction checks.
func (r Rotation) Sub(other Rotation) Rotation {
	return NewRotation(r.angle - other.angle)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Position is a full SE(2) pose: a translation and a yaw.
type Position struct {
	Translation Point
	Yaw         Rotation
}

// NewPosition constructs a Position from Cartesian coordinates and a yaw in
// radians.
func NewPosition(x, y, yawRadians float64) Position {
	return Position{Translation: Point{X: x, Y: y}, Yaw: NewRotation(yawRadians)}
}

// BearingTo returns the angle, in radians, of the straight line from p to to.
func (p Position) BearingTo(to Point) float64 {
	return math.Atan2(to.Y-p.Translation.Y, to.X-p.Translation.X)
}

// DistanceTo returns the Euclidean distance from p's translation to to.
func (p Position) DistanceTo(to Point) float64 {
	dx := to.X - p.Translation.X
	dy := to.Y - p.Translation.Y
	return math.Hypot(dx, dy)
}
