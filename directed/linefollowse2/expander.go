package linefollowse2

import (
	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/expander"
	"github.com/reuben-thomas/mapf/graph"
	"github.com/reuben-thomas/mapf/motion"
	"github.com/reuben-thomas/mapf/motion/se2"
)

// se2Graph is the vertex graph this expander drives over: an undirected
// graph whose vertices are SE(2) translations.
type se2Graph = graph.Graph[se2.Point]

// lineExtrapolator is the motion model this expander composes: straight-line
// travel between two points, plus the separate in-place spin used once a
// goal vertex has been reached but its orientation has not.
type lineExtrapolator interface {
	motion.Extrapolator[se2.Waypoint, se2.Point]
	RotateInPlace(from se2.Waypoint, target se2.Rotation) ([]se2.Waypoint, error)
}

// Expander is the concrete expander.Expander for robots that drive straight
// line segments between the vertices of a fixed graph, reorienting in place
// at each vertex and at the start and goal. It is the type the rest of the
// engine (astar.Algorithm, planner.Planner) is parameterized over for this
// motion model.
type Expander struct {
	graph        *se2Graph
	extrapolator lineExtrapolator
	costCalc     motion.CostCalculator[se2.Waypoint, cost.Duration]
	heuristic    Heuristic
}

// NewExpander constructs an Expander over a fixed graph, motion model, cost
// calculator and heuristic.
func NewExpander(g *se2Graph, extrapolator lineExtrapolator, costCalc motion.CostCalculator[se2.Waypoint, cost.Duration], heuristic Heuristic) *Expander {
	return &Expander{graph: g, extrapolator: extrapolator, costCalc: costCalc, heuristic: heuristic}
}

// Start implements expander.Expander. It produces a single initial node: at
// the start's off-graph offset location if it has one, or at the start's
// vertex if not. It produces zero nodes if the start has no offset and its
// vertex is out of range for the graph, or if the heuristic has no estimate
// from the start, signaling to the algorithm that the search cannot begin.
func (e *Expander) Start(start Start, goal *Goal) expander.Successors[*Node] {
	waypoint, ok := start.toWaypoint(e.graph)
	if !ok {
		return expander.NewSliceSuccessors[*Node](nil)
	}
	remaining, ok := e.estimateRemaining(waypoint.Position.Translation, goal)
	if !ok {
		return expander.NewSliceSuccessors[*Node](nil)
	}
	vertex := start.Vertex
	if start.OffsetLocation != nil {
		vertex = offGraphVertex
	}
	n := &Node{
		remainingCostEstimate: remaining,
		totalCostEstimate:     remaining,
		state:                 waypoint,
		vertex:                vertex,
		isStart:               &start,
	}
	return expander.NewSliceSuccessors([]*Node{n})
}

// offGraphVertex marks a node whose state has not yet reached any graph
// vertex: the single transient state an off-graph start occupies before its
// first expansion drives it onto the graph.
const offGraphVertex = -1

// Expand implements expander.Expander. From an off-graph start it produces
// the single transition onto the graph; from an on-graph node it produces
// one child per neighbor, plus (if the node already sits at an
// orientation-constrained goal vertex with the wrong yaw) an in-place spin
// child.
func (e *Expander) Expand(parent *Node, goal *Goal) expander.Successors[*Node] {
	var children []*Node

	if parent.vertex == offGraphVertex {
		if parent.isStart != nil {
			if child := e.expandTo(parent, parent.isStart.Vertex, goal); child != nil {
				children = append(children, child)
			}
		}
		return expander.NewSliceSuccessors(children)
	}

	for _, neighbor := range e.graph.Neighbors(parent.vertex) {
		if child := e.expandTo(parent, neighbor, goal); child != nil {
			children = append(children, child)
		}
	}

	if goal != nil && goal.Orientation != nil && goal.Vertex == parent.vertex {
		if child := e.expandRotate(parent, goal); child != nil {
			children = append(children, child)
		}
	}

	return expander.NewSliceSuccessors(children)
}

// expandTo drives parent's state in a straight line to toVertex. It returns
// nil if toVertex is out of range, the motion is degenerate, or the two
// states already coincide (nothing to drive).
func (e *Expander) expandTo(parent *Node, toVertex int, goal *Goal) *Node {
	toPos, ok := e.graph.VertexAt(toVertex)
	if !ok {
		return nil
	}
	waypoints, err := e.extrapolator.Extrapolate(parent.state, toPos)
	if err != nil || len(waypoints) == 0 {
		return nil
	}
	traj, err := motion.NewTrajectory(append([]se2.Waypoint{parent.state}, waypoints...))
	if err != nil {
		return nil
	}
	return e.buildChild(parent, traj, toVertex, &Key{FromVertex: parent.vertex, ToVertex: toVertex, Side: Finish}, goal)
}

// expandRotate spins parent in place to face an orientation goal's target
// yaw, without changing vertex. It returns nil if the extrapolator produces
// no spin waypoint (the yaw error is within the extrapolator's own negligible
// rotation threshold; the goal's Threshold is not consulted here).
func (e *Expander) expandRotate(parent *Node, goal *Goal) *Node {
	waypoints, err := e.extrapolator.RotateInPlace(parent.state, goal.Orientation.Target)
	if err != nil || len(waypoints) == 0 {
		return nil
	}
	traj, err := motion.NewTrajectory(append([]se2.Waypoint{parent.state}, waypoints...))
	if err != nil {
		return nil
	}
	return e.buildChild(parent, traj, parent.vertex, nil, goal)
}

// buildChild assembles a child node from the trajectory driven to reach it.
// It returns nil if the heuristic has no estimate from the resulting state,
// which per §4.5 means the candidate is skipped rather than given a false
// zero estimate. A nil key means the child is never closed-set
// deduplicated, which is correct for in-place rotations (repeatable without
// bound) and matters not at all for nodes that do carry one.
func (e *Expander) buildChild(parent *Node, traj *motion.Trajectory[se2.Waypoint], vertex int, key *Key, goal *Goal) *Node {
	final := traj.Last()
	remaining, ok := e.estimateRemaining(final.Position.Translation, goal)
	if !ok {
		return nil
	}
	segmentCost := e.costCalc.ComputeCost(traj)
	newCost := parent.cost.Add(segmentCost)
	return &Node{
		cost:                  newCost,
		remainingCostEstimate: remaining,
		totalCostEstimate:     newCost.Add(remaining),
		state:                 final,
		vertex:                vertex,
		key:                   key,
		motionFromParent:      traj,
		parent:                parent,
	}
}

// estimateRemaining reports the heuristic's estimate of cost remaining from
// from to goal's vertex. A nil goal (no termination condition at all) always
// estimates zero. ok=false means the heuristic has no estimate (e.g. an
// out-of-range goal vertex) and the caller must suppress the candidate node
// entirely, per §4.5, rather than treat the estimate as zero.
func (e *Expander) estimateRemaining(from se2.Point, goal *Goal) (cost.Duration, bool) {
	if goal == nil {
		return 0, true
	}
	return e.heuristic.EstimateCost(from, goal.Vertex, e.graph)
}

// Solution is the trajectory and total cost of a completed search.
type Solution struct {
	trajectory *motion.Trajectory[se2.Waypoint]
	cost       cost.Duration
}

// Cost implements expander.Solution.
func (s *Solution) Cost() cost.Duration { return s.cost }

// Trajectory returns the full timed motion from start to goal, or nil if the
// start already satisfied the goal and no motion was needed.
func (s *Solution) Trajectory() *motion.Trajectory[se2.Waypoint] { return s.trajectory }

// MakeSolution implements expander.Expander. It walks solutionNode's parent
// chain back to its start node and concatenates each segment's motion, in
// order, into a single trajectory. If solutionNode is itself a start node
// (the goal was already satisfied with no motion), the returned Solution
// carries no trajectory.
func (e *Expander) MakeSolution(solutionNode *Node) (*Solution, error) {
	var chain []*Node
	for n := solutionNode; n != nil; {
		chain = append(chain, n)
		parent, ok := n.Parent()
		if !ok {
			break
		}
		n = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	// A start node satisfying the goal outright (the agent started on its
	// goal) has no motionFromParent segment to concatenate: the solution is
	// valid with no trajectory, per §4.5/§6.
	if len(chain) < 2 {
		return &Solution{trajectory: nil, cost: solutionNode.Cost()}, nil
	}

	merged := chain[1].motionFromParent
	for i := 2; i < len(chain); i++ {
		var err error
		merged, err = merged.ConcatDroppingSharedBoundary(chain[i].motionFromParent)
		if err != nil {
			return nil, err
		}
	}

	return &Solution{trajectory: merged, cost: solutionNode.Cost()}, nil
}
