// Package negotiate implements the thin collaborator the planning engine
// expects to sit above it: given a scenario of named agents, static
// obstacles and an occupancy grid, it runs one independent search per agent
// and reports the resulting trajectories. It deliberately does not perform
// inter-agent conflict resolution — that full negotiation façade is a
// separate component this package only stands in for at its call boundary.
package negotiate

import (
	"math"
)

// Cell is an integer occupancy-grid coordinate, (row, column).
type Cell struct {
	Row int64
	Col int64
}

// AgentSpec is one named agent's planning request within a Scenario.
type AgentSpec struct {
	Start [2]int64 `json:"start"`
	Goal  [2]int64 `json:"goal"`
	Yaw   float64  `json:"yaw"`
	Radius float64 `json:"radius"`
	Speed float64  `json:"speed"`
	Spin  float64  `json:"spin"`
}

// Obstacle is a static obstacle's continuous-space position; it is resolved
// to an occupied cell using the scenario's cell size.
type Obstacle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bound is one corner of an optional camera viewport.
type Bound [2]float64

// Scenario is the negotiation collaborator's wire format, preserved
// bit-for-bit for compatibility with existing callers: agents keyed by name,
// static obstacles, an occupancy map of row to occupied columns, a uniform
// cell size, and an optional camera viewport.
type Scenario struct {
	Agents       map[string]AgentSpec `json:"agents"`
	Obstacles    []Obstacle           `json:"obstacles"`
	Occupancy    map[string][]int64   `json:"occupancy"`
	CellSize     float64              `json:"cell_size"`
	CameraBounds *[2]Bound            `json:"camera_bounds,omitempty"`
}

// occupiedCells resolves the scenario's occupancy map and continuous-space
// obstacles into a single set of occupied cells.
func (s *Scenario) occupiedCells() (map[Cell]struct{}, error) {
	occupied := make(map[Cell]struct{})
	for rowKey, cols := range s.Occupancy {
		row, err := parseRowKey(rowKey)
		if err != nil {
			return nil, err
		}
		for _, col := range cols {
			occupied[Cell{Row: row, Col: col}] = struct{}{}
		}
	}
	for _, obstacle := range s.Obstacles {
		occupied[s.cellOf(obstacle.X, obstacle.Y)] = struct{}{}
	}
	return occupied, nil
}

// cellOf floors a continuous-space point to its cell coordinate, per §6:
// floor(x / cell_size), component-wise. Row tracks the Y axis and column the
// X axis, matching the occupancy map's row-major layout.
func (s *Scenario) cellOf(x, y float64) Cell {
	return Cell{Row: int64(math.Floor(y / s.CellSize)), Col: int64(math.Floor(x / s.CellSize))}
}

// centerOf returns the continuous-space center of a cell.
func (s *Scenario) centerOf(c Cell) (x, y float64) {
	return (float64(c.Col) + 0.5) * s.CellSize, (float64(c.Row) + 0.5) * s.CellSize
}
