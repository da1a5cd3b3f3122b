package se2

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// DefaultRotationalThreshold is the yaw-error magnitude, in radians, below
// which a rotation is considered negligible and no in-place spin waypoint is
// emitted. It also suits an orientation goal's threshold when the goal wants
// "this yaw, exactly" rather than a wider window; no goal type applies it by
// default.
const DefaultRotationalThreshold = 1e-8

// ErrNonPositiveSpeed is returned by NewDifferentialDriveLineFollow when
// either speed argument is not strictly positive.
var ErrNonPositiveSpeed = errors.New("se2: translational and rotational speed must be positive")

// ErrDegenerateInput is returned by Extrapolate or RotateInPlace when a pose
// contains a non-finite (NaN or infinite) value.
var ErrDegenerateInput = errors.New("se2: degenerate (non-finite) pose")

// DifferentialDriveLineFollow is the reference motion primitive: a robot that
// reorients in place to face its destination, then drives straight toward
// it. Construction fails if either speed is non-positive.
type DifferentialDriveLineFollow struct {
	translationalSpeed float64
	rotationalSpeed    float64
}

// NewDifferentialDriveLineFollow constructs an extrapolator with the given
// speeds (meters/second and radians/second respectively).
func NewDifferentialDriveLineFollow(translationalSpeed, rotationalSpeed float64) (*DifferentialDriveLineFollow, error) {
	if translationalSpeed <= 0 || rotationalSpeed <= 0 {
		return nil, ErrNonPositiveSpeed
	}
	return &DifferentialDriveLineFollow{
		translationalSpeed: translationalSpeed,
		rotationalSpeed:    rotationalSpeed,
	}, nil
}

// TranslationalSpeed returns the configured straight-line speed.
func (e *DifferentialDriveLineFollow) TranslationalSpeed() float64 {
	return e.translationalSpeed
}

// RotationalSpeed returns the configured in-place spin speed.
func (e *DifferentialDriveLineFollow) RotationalSpeed() float64 {
	return e.rotationalSpeed
}

// Extrapolate produces the waypoints needed to drive in a straight line from
// from to to: an optional in-place rotation to face the bearing, followed by
// the translation itself. It returns an empty, non-error result when to
// coincides exactly with from's current translation, since the bearing to a
// coincident point is undefined and no motion is needed.
func (e *DifferentialDriveLineFollow) Extrapolate(from Waypoint, to Point) ([]Waypoint, error) {
	if !finitePoint(from.Position.Translation) || !finitePoint(to) || math.IsNaN(from.Position.Yaw.Angle()) {
		return nil, ErrDegenerateInput
	}
	dist := from.Position.DistanceTo(to)
	if dist == 0 {
		return nil, nil
	}
	bearing := NewRotation(from.Position.BearingTo(to))
	return e.lineFollow(from, to, bearing), nil
}

// RotateInPlace produces the single in-place spin waypoint (if any) needed to
// bring from's yaw to target, without translating. It is how the expander
// satisfies an orientation goal once it has already reached the goal vertex.
func (e *DifferentialDriveLineFollow) RotateInPlace(from Waypoint, target Rotation) ([]Waypoint, error) {
	if !finitePoint(from.Position.Translation) || math.IsNaN(from.Position.Yaw.Angle()) || math.IsNaN(target.Angle()) {
		return nil, ErrDegenerateInput
	}
	yawError := target.Sub(from.Position.Yaw).Angle()
	if math.Abs(yawError) <= DefaultRotationalThreshold {
		return nil, nil
	}
	at := from.At.Add(spinDuration(yawError, e.rotationalSpeed))
	return []Waypoint{NewWaypoint(at, Position{Translation: from.Position.Translation, Yaw: target})}, nil
}

// lineFollow assumes dist(from, to) > 0; the zero-distance case is handled by
// Extrapolate before this is called.
func (e *DifferentialDriveLineFollow) lineFollow(from Waypoint, to Point, bearing Rotation) []Waypoint {
	waypoints := make([]Waypoint, 0, 2)
	at := from.At

	yawError := bearing.Sub(from.Position.Yaw).Angle()
	if math.Abs(yawError) > DefaultRotationalThreshold {
		at = at.Add(spinDuration(yawError, e.rotationalSpeed))
		waypoints = append(waypoints, NewWaypoint(at, Position{Translation: from.Position.Translation, Yaw: bearing}))
	}

	dist := from.Position.DistanceTo(to)
	at = at.Add(travelDuration(dist, e.translationalSpeed))
	waypoints = append(waypoints, NewWaypoint(at, Position{Translation: to, Yaw: bearing}))

	return waypoints
}

func spinDuration(yawError, rotationalSpeed float64) time.Duration {
	return time.Duration(math.Abs(yawError) / rotationalSpeed * float64(time.Second))
}

func travelDuration(dist, translationalSpeed float64) time.Duration {
	return time.Duration(dist / translationalSpeed * float64(time.Second))
}

func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
