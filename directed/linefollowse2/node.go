package linefollowse2

import (
	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/motion"
	"github.com/reuben-thomas/mapf/motion/se2"
)

// Node is the search-frontier element this expander produces. It is
// immutable once constructed and shared by reference: many descendants and
// the frontier/closed set may hold the same *Node, and its parent chain forms
// a tree rooted at a start node (Parent returns ok=false there).
type Node struct {
	cost                  cost.Duration
	remainingCostEstimate cost.Duration
	totalCostEstimate     cost.Duration
	state                 se2.Waypoint
	vertex                int
	key                   *Key
	motionFromParent      *motion.Trajectory[se2.Waypoint]
	parent                *Node
	isStart               *Start
}

// Cost implements node.Node.
func (n *Node) Cost() cost.Duration { return n.cost }

// Parent implements node.Node.
func (n *Node) Parent() (*Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

// RemainingCostEstimate implements node.Informed.
func (n *Node) RemainingCostEstimate() cost.Duration { return n.remainingCostEstimate }

// TotalCostEstimate implements node.Informed.
func (n *Node) TotalCostEstimate() cost.Duration { return n.totalCostEstimate }

// Key implements node.PartialKeyed.
func (n *Node) Key() (Key, bool) {
	if n.key == nil {
		return Key{}, false
	}
	return *n.key, true
}

// State returns the node's SE(2) waypoint.
func (n *Node) State() se2.Waypoint { return n.state }

// Vertex returns the graph vertex index the node sits at.
func (n *Node) Vertex() int { return n.vertex }

// MotionFromParent returns the trajectory driven to reach this node from its
// parent, or nil for a start node.
func (n *Node) MotionFromParent() *motion.Trajectory[se2.Waypoint] { return n.motionFromParent }

// IsStart returns the start metadata for a start node, or nil otherwise.
func (n *Node) IsStart() *Start { return n.isStart }
