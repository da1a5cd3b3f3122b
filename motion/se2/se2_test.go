package se2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotationNormalizesToHalfOpenInterval(t *testing.T) {
	r := NewRotation(3 * math.Pi)
	require.InDelta(t, math.Pi, r.Angle(), 1e-9)

	r = NewRotation(math.Pi)
	require.InDelta(t, math.Pi, r.Angle(), 1e-9)

	r = NewRotation(0)
	require.InDelta(t, 0, r.Angle(), 1e-9)
}

func TestRotationSub(t *testing.T) {
	a := NewRotation(math.Pi / 2)
	b := NewRotation(0)
	require.InDelta(t, math.Pi/2, a.Sub(b).Angle(), 1e-9)
	require.InDelta(t, -math.Pi/2, b.Sub(a).Angle(), 1e-9)
}

func TestPositionBearingAndDistance(t *testing.T) {
	pos := NewPosition(0, 0, 0)
	require.InDelta(t, 0, pos.BearingTo(Point{X: 1, Y: 0}), 1e-9)
	require.InDelta(t, math.Pi/2, pos.BearingTo(Point{X: 0, Y: 1}), 1e-9)
	require.InDelta(t, 5.0, pos.DistanceTo(Point{X: 3, Y: 4}), 1e-9)
}
