// Command mapfdemo runs a handful of line-follow SE(2) planning scenarios
// and prints their outcomes.
package main

import (
	"fmt"

	"github.com/reuben-thomas/mapf/astar"
	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/directed/linefollowse2"
	"github.com/reuben-thomas/mapf/graph"
	"github.com/reuben-thomas/mapf/motion/se2"
	"github.com/reuben-thomas/mapf/negotiate"
	"github.com/reuben-thomas/mapf/planner"
)

func main() {
	fmt.Println("=== mapf: line-follow SE(2) planning demo ===")

	fmt.Println("--- Straight line (single agent) ---")
	runStraightLine()

	fmt.Println("\n--- Negotiation scenario (independent per-agent planning) ---")
	runScenario()
}

func runStraightLine() {
	g := graph.New[se2.Point]()
	g.AddVertex(se2.Point{X: 0, Y: 0})
	g.AddVertex(se2.Point{X: 1, Y: 0})
	g.AddVertex(se2.Point{X: 2, Y: 0})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	extrapolator, err := se2.NewDifferentialDriveLineFollow(1.0, 3.14159265358979)
	if err != nil {
		fmt.Println("construction error:", err)
		return
	}
	heuristic, err := linefollowse2.NewEuclideanHeuristic(1.0)
	if err != nil {
		fmt.Println("construction error:", err)
		return
	}

	exp := linefollowse2.NewExpander(g, extrapolator, linefollowse2.TimeCostCalculator{}, heuristic)
	p := planner.New[*linefollowse2.Node, cost.Duration, linefollowse2.Key, linefollowse2.Start, linefollowse2.Goal, *linefollowse2.Solution](exp)

	start := linefollowse2.Start{Vertex: 0, Orientation: se2.NewRotation(0)}
	goal := linefollowse2.Goal{Vertex: 2}

	status, err := p.Plan(start, &goal, nil)
	if err != nil {
		fmt.Println("plan error:", err)
		return
	}
	if status.Kind != astar.Solved {
		fmt.Printf("unexpected status kind: %v\n", status.Kind)
		return
	}
	fmt.Printf("solved: cost=%.2fs, waypoints=%d\n",
		status.Solution.Cost().Seconds(), len(status.Solution.Trajectory().Waypoints()))
}

func runScenario() {
	scenario := &negotiate.Scenario{
		Agents: map[string]negotiate.AgentSpec{
			"alpha": {Start: [2]int64{0, 0}, Goal: [2]int64{3, 0}, Yaw: 0, Radius: 0.3, Speed: 1.0, Spin: 3.14159},
			"beta":  {Start: [2]int64{0, 3}, Goal: [2]int64{3, 3}, Yaw: 0, Radius: 0.3, Speed: 1.2, Spin: 3.14159},
		},
		Occupancy: map[string][]int64{
			"1": {1, 2},
		},
		CellSize: 1.0,
	}

	limit := 10000
	plans, err := negotiate.Negotiate(scenario, &limit)
	if err != nil {
		fmt.Println("negotiation failed:", err)
		return
	}
	for name, sol := range plans {
		fmt.Printf("%s: cost=%.2fs waypoints=%d\n", name, sol.Cost().Seconds(), len(sol.Trajectory().Waypoints()))
	}
}
