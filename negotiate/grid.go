package negotiate

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/reuben-thomas/mapf/graph"
	"github.com/reuben-thomas/mapf/motion/se2"
)

// ErrEmptyScenario is returned when a scenario has no agents to plan for.
var ErrEmptyScenario = errors.New("negotiate: scenario has no agents")

// ErrOccupiedEndpoint is returned when an agent's start or goal cell is
// occupied.
var ErrOccupiedEndpoint = errors.New("negotiate: agent start or goal cell is occupied")

func parseRowKey(key string) (int64, error) {
	row, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "negotiate: invalid occupancy row key %q", key)
	}
	return row, nil
}

// grid is the vertex graph built from a scenario's occupancy, plus the index
// from cell to vertex that lets agent start/goal cells be looked up.
type grid struct {
	g       *graph.Graph[se2.Point]
	index   map[Cell]int
	bounds  [2]Cell // min, max inclusive
}

// buildGrid constructs a 4-connected graph over every free cell within the
// bounding box spanned by the scenario's agents, obstacles and occupancy
// entries. Occupied cells are excluded as vertices entirely, so a path
// through them is structurally impossible rather than merely discouraged.
func buildGrid(s *Scenario) (*grid, error) {
	occupied, err := s.occupiedCells()
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := boundingBox(s, occupied)

	gr := &grid{g: graph.New[se2.Point](), index: make(map[Cell]int)}
	gr.bounds = [2]Cell{{Row: minRow, Col: minCol}, {Row: maxRow, Col: maxCol}}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell := Cell{Row: row, Col: col}
			if _, blocked := occupied[cell]; blocked {
				continue
			}
			x, y := s.centerOf(cell)
			gr.index[cell] = gr.g.AddVertex(se2.Point{X: x, Y: y})
		}
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cell := Cell{Row: row, Col: col}
			from, ok := gr.index[cell]
			if !ok {
				continue
			}
			if to, ok := gr.index[Cell{Row: row, Col: col + 1}]; ok {
				gr.g.AddEdge(from, to)
			}
			if to, ok := gr.index[Cell{Row: row + 1, Col: col}]; ok {
				gr.g.AddEdge(from, to)
			}
		}
	}

	return gr, nil
}

// vertexOf looks up the graph vertex for a cell, failing if it is occupied
// or outside the scenario's bounds.
func (gr *grid) vertexOf(cell Cell) (int, bool) {
	v, ok := gr.index[cell]
	return v, ok
}

func boundingBox(s *Scenario, occupied map[Cell]struct{}) (minRow, maxRow, minCol, maxCol int64) {
	first := true
	extend := func(c Cell) {
		if first {
			minRow, maxRow, minCol, maxCol = c.Row, c.Row, c.Col, c.Col
			first = false
			return
		}
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	for c := range occupied {
		extend(c)
	}
	for _, agent := range s.Agents {
		extend(Cell{Row: agent.Start[1], Col: agent.Start[0]})
		extend(Cell{Row: agent.Goal[1], Col: agent.Goal[0]})
	}
	return
}
