// Package linefollowse2 specializes the generic planning engine to robots
// that traverse an undirected vertex graph by driving straight line segments
// between vertices and rotating in place at endpoints. It is the concrete
// Expander the rest of the engine (astar.Algorithm, planner.Planner) is
// parameterized over for this motion model.
package linefollowse2

import (
	"time"

	"github.com/reuben-thomas/mapf/motion/se2"
)

// Side distinguishes the two identities a Key can represent for the same
// vertex pair: the in-progress approach to a vertex (Beginning, currently
// unused by this expander but retained for symmetry with the original
// closed-set design) versus having finished the transition into it (Finish).
type Side int

const (
	Beginning Side = iota
	Finish
)

// Key identifies a node for closed-set dedup: having finished moving from
// FromVertex to ToVertex. Initial nodes and in-place rotation nodes carry no
// key and are therefore never closed.
type Key struct {
	FromVertex int
	ToVertex   int
	Side       Side
}

// Start describes where and how a search begins: at Vertex, facing
// Orientation, optionally from an off-graph Cartesian point that the agent
// must first drive to before normal graph expansion applies.
type Start struct {
	Vertex         int
	Orientation    se2.Rotation
	OffsetLocation *se2.Point
}

// toWaypoint converts the start into its initial SE(2) waypoint, at time
// zero. It fails (ok=false) if the start has no off-graph offset and its
// vertex is out of range for graph.
func (s Start) toWaypoint(g *se2Graph) (se2.Waypoint, bool) {
	if s.OffsetLocation != nil {
		return se2.NewWaypoint(time.Time{}, se2.Position{
			Translation: *s.OffsetLocation,
			Yaw:         s.Orientation,
		}), true
	}
	pos, ok := g.VertexAt(s.Vertex)
	if !ok {
		return se2.Waypoint{}, false
	}
	return se2.NewWaypoint(time.Time{}, se2.Position{
		Translation: pos,
		Yaw:         s.Orientation,
	}), true
}

// OrientationGoal asks that a node's final yaw land within Threshold radians
// of Target.
type OrientationGoal struct {
	Target    se2.Rotation
	Threshold float64
}

// Goal is satisfied at a vertex, optionally also requiring a final
// orientation.
type Goal struct {
	Vertex      int
	Orientation *OrientationGoal
}

// IsSatisfied implements expander.Goal[*Node].
func (g Goal) IsSatisfied(n *Node) bool {
	if g.Vertex != n.vertex {
		return false
	}
	if g.Orientation == nil {
		return true
	}
	deltaYaw := n.state.Position.Yaw.Sub(g.Orientation.Target).Angle()
	return absFloat(deltaYaw) <= g.Orientation.Threshold
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
