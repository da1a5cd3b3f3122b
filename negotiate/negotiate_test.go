package negotiate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNegotiateEmptyScenarioFails(t *testing.T) {
	_, err := Negotiate(&Scenario{}, nil)
	require.ErrorIs(t, err, ErrEmptyScenario)
}

func TestNegotiateSucceedsForIndependentAgents(t *testing.T) {
	scenario := &Scenario{
		CellSize: 1.0,
		Agents: map[string]AgentSpec{
			"alpha": {Start: [2]int64{0, 0}, Goal: [2]int64{4, 0}, Speed: 1, Spin: math.Pi},
			"bravo": {Start: [2]int64{0, 4}, Goal: [2]int64{4, 4}, Speed: 1, Spin: math.Pi},
		},
	}

	plans, err := Negotiate(scenario, nil)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	for name, plan := range plans {
		require.NotNil(t, plan, "agent %s", name)
		require.Greater(t, plan.Cost().Seconds(), 0.0)
		require.GreaterOrEqual(t, len(plan.Trajectory().Waypoints()), 2)
	}
}

func TestNegotiateRejectsOccupiedEndpoint(t *testing.T) {
	scenario := &Scenario{
		CellSize: 1.0,
		Agents: map[string]AgentSpec{
			"alpha": {Start: [2]int64{0, 0}, Goal: [2]int64{2, 0}, Speed: 1, Spin: math.Pi},
		},
		Occupancy: map[string][]int64{"0": {0}},
	}

	_, err := Negotiate(scenario, nil)
	var failure *PlanningFailed
	require.ErrorAs(t, err, &failure)
	require.ErrorIs(t, failure.Reasons["alpha"], ErrOccupiedEndpoint)
}

// TestNegotiateAggregatesPartialFailure builds a single-row grid where a
// blocked column strictly separates one agent's start from its goal while
// leaving a second, disjoint agent's path clear. It exercises
// PlanningFailed's NodesVisited/NameMap/Reasons bookkeeping in the presence
// of both an unreachable and a solvable agent in the same negotiation.
func TestNegotiateAggregatesPartialFailure(t *testing.T) {
	scenario := &Scenario{
		CellSize: 1.0,
		Agents: map[string]AgentSpec{
			"blocked": {Start: [2]int64{0, 0}, Goal: [2]int64{4, 0}, Speed: 1, Spin: math.Pi},
			"clear":   {Start: [2]int64{5, 0}, Goal: [2]int64{7, 0}, Speed: 1, Spin: math.Pi},
		},
		Occupancy: map[string][]int64{"0": {2}},
	}

	_, err := Negotiate(scenario, nil)
	var failure *PlanningFailed
	require.ErrorAs(t, err, &failure)

	require.ErrorIs(t, failure.Reasons["blocked"], ErrUnreachable)
	require.NotContains(t, failure.Reasons, "clear")

	require.Contains(t, failure.NodesVisited, "blocked")
	require.Contains(t, failure.NodesVisited, "clear")

	require.Len(t, failure.NameMap, 2)
	seen := make(map[string]bool)
	for _, name := range failure.NameMap {
		seen[name] = true
	}
	require.True(t, seen["blocked"])
	require.True(t, seen["clear"])
}

func TestScenarioCellOfFloorsTowardNegativeInfinity(t *testing.T) {
	s := &Scenario{CellSize: 2.0}
	require.Equal(t, Cell{Row: 0, Col: 0}, s.cellOf(0.5, 1.9))
	require.Equal(t, Cell{Row: -1, Col: -1}, s.cellOf(-0.5, -0.1))
	require.Equal(t, Cell{Row: 2, Col: 1}, s.cellOf(3.0, 4.0))
}

func TestScenarioOccupiedCellsCombinesMapAndObstacles(t *testing.T) {
	s := &Scenario{
		CellSize:  1.0,
		Occupancy: map[string][]int64{"3": {1, 2}},
		Obstacles: []Obstacle{{X: 5.5, Y: 0.5}},
	}
	occupied, err := s.occupiedCells()
	require.NoError(t, err)
	require.Contains(t, occupied, Cell{Row: 3, Col: 1})
	require.Contains(t, occupied, Cell{Row: 3, Col: 2})
	require.Contains(t, occupied, Cell{Row: 0, Col: 5})
	require.Len(t, occupied, 3)
}

func TestScenarioOccupiedCellsRejectsMalformedRowKey(t *testing.T) {
	s := &Scenario{CellSize: 1.0, Occupancy: map[string][]int64{"not-a-number": {0}}}
	_, err := s.occupiedCells()
	require.Error(t, err)
}
