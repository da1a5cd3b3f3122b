package negotiate

import (
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/reuben-thomas/mapf/astar"
	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/directed/linefollowse2"
	"github.com/reuben-thomas/mapf/motion/se2"
	"github.com/reuben-thomas/mapf/planner"
)

// Plans is the successful result of Negotiate: each agent's name mapped to
// its independently planned solution.
type Plans map[string]*linefollowse2.Solution

// PlanningFailed is returned when at least one agent's search did not reach
// Solved. It carries enough partial information for a caller to diagnose
// which agents failed and how much search effort was spent, per §4.8's
// "node counter ... named agents" hooks: NodesVisited is each attempted
// agent's closed-node count at the point its search stopped, and NameMap
// recovers the deterministic processing order (an index an implementer's
// logging or UI may use to correlate an agent name with its position in a
// batch) back to the agent name.
type PlanningFailed struct {
	NodesVisited map[string]int
	NameMap      map[int]string
	Reasons      map[string]error
}

// Error implements error.
func (e *PlanningFailed) Error() string {
	return "negotiate: one or more agents failed to reach a solution"
}

var logger = zap.NewNop()

// SetLogger overrides the package logger used for diagnostic output during
// Negotiate. Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Negotiate runs one independent search per agent in scenario, each bounded
// by the same optional node limit. It is the thin collaborator's entry
// point: it does not detect or resolve inter-agent conflicts, only plans
// each agent's own trajectory against the shared static environment.
func Negotiate(scenario *Scenario, nodeLimit *int) (Plans, error) {
	correlationID := uuid.New()
	log := logger.With(zap.String("negotiation_id", correlationID.String()))

	if len(scenario.Agents) == 0 {
		return nil, ErrEmptyScenario
	}

	gr, err := buildGrid(scenario)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(scenario.Agents))
	for name := range scenario.Agents {
		names = append(names, name)
	}
	sort.Strings(names)

	plans := make(Plans, len(names))
	nodesVisited := make(map[string]int, len(names))
	nameMap := make(map[int]string, len(names))
	reasons := make(map[string]error)
	failed := false

	for i, name := range names {
		nameMap[i] = name
		agent := scenario.Agents[name]
		log.Debug("planning agent", zap.String("agent", name), zap.Int("order", i))

		sol, visited, err := planAgent(gr, agent, nodeLimit)
		nodesVisited[name] = visited
		if err != nil {
			failed = true
			reasons[name] = err
			log.Warn("agent planning failed", zap.String("agent", name), zap.Error(err))
			continue
		}
		plans[name] = sol
	}

	if failed {
		return nil, &PlanningFailed{NodesVisited: nodesVisited, NameMap: nameMap, Reasons: reasons}
	}
	return plans, nil
}

// ErrUnreachable is recorded as an agent's failure reason when its search
// terminates Impossible.
var ErrUnreachable = errors.New("negotiate: no path exists for agent")

// ErrBudgetExhausted is recorded as an agent's failure reason when its
// search terminates Incomplete (the node limit was reached before a
// solution or impossibility was determined).
var ErrBudgetExhausted = errors.New("negotiate: node limit reached before a solution was found")

func planAgent(gr *grid, agent AgentSpec, nodeLimit *int) (*linefollowse2.Solution, int, error) {
	startCell := Cell{Row: agent.Start[1], Col: agent.Start[0]}
	goalCell := Cell{Row: agent.Goal[1], Col: agent.Goal[0]}

	startVertex, ok := gr.vertexOf(startCell)
	if !ok {
		return nil, 0, ErrOccupiedEndpoint
	}
	goalVertex, ok := gr.vertexOf(goalCell)
	if !ok {
		return nil, 0, ErrOccupiedEndpoint
	}

	extrapolator, err := se2.NewDifferentialDriveLineFollow(agent.Speed, agent.Spin)
	if err != nil {
		return nil, 0, err
	}
	heuristic, err := linefollowse2.NewEuclideanHeuristic(agent.Speed)
	if err != nil {
		return nil, 0, err
	}

	exp := linefollowse2.NewExpander(gr.g, extrapolator, linefollowse2.TimeCostCalculator{}, heuristic)
	p := planner.New[*linefollowse2.Node, cost.Duration, linefollowse2.Key, linefollowse2.Start, linefollowse2.Goal, *linefollowse2.Solution](exp)

	start := linefollowse2.Start{Vertex: startVertex, Orientation: se2.NewRotation(agent.Yaw)}
	goal := linefollowse2.Goal{Vertex: goalVertex}

	progress, err := p.Start(start, &goal)
	if err != nil {
		return nil, 0, err
	}
	status, err := progress.Solve(nodeLimit)
	if err != nil {
		return nil, progress.NodesExpanded(), err
	}

	switch status.Kind {
	case astar.Solved:
		return status.Solution, progress.NodesExpanded(), nil
	case astar.Impossible:
		return nil, progress.NodesExpanded(), ErrUnreachable
	default:
		return nil, progress.NodesExpanded(), ErrBudgetExhausted
	}
}
