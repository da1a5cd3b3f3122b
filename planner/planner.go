// Package planner wraps astar.Algorithm with the convenience layer most
// callers want: a single Plan call that initializes and solves a search in
// one step, plus a Progress handle for callers that want to impose a node
// budget and resume later.
package planner

import (
	"github.com/reuben-thomas/mapf/astar"
	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/expander"
)

// Planner drives a single search to completion, or incrementally via
// Progress, over a fixed Expander.
type Planner[N astar.Expandable[N, C, K], C cost.Cost[C], K comparable, St any, G expander.Goal[N], Sol expander.Solution[C]] struct {
	exp expander.Expander[N, St, G, Sol]
}

// New constructs a Planner over the given expander.
func New[N astar.Expandable[N, C, K], C cost.Cost[C], K comparable, St any, G expander.Goal[N], Sol expander.Solution[C]](
	exp expander.Expander[N, St, G, Sol],
) *Planner[N, C, K, St, G, Sol] {
	return &Planner[N, C, K, St, G, Sol]{exp: exp}
}

// Progress is a resumable search in flight: the algorithm instance plus a
// cursor into how far Solve has driven it. Construct one with Start and
// drive it with Solve; a node budget that runs out leaves Progress ready for
// another Solve call.
type Progress[N astar.Expandable[N, C, K], C cost.Cost[C], K comparable, St any, G expander.Goal[N], Sol expander.Solution[C]] struct {
	algo *astar.Algorithm[N, C, K, St, G, Sol]
}

// Start initializes a new Progress from a start state and optional goal. It
// fails if the expander produces no initial node for the given start.
func (p *Planner[N, C, K, St, G, Sol]) Start(start St, goal *G) (*Progress[N, C, K, St, G, Sol], error) {
	algo := astar.New[N, C, K, St, G, Sol](p.exp)
	if err := algo.Initialize(start, goal); err != nil {
		return nil, err
	}
	return &Progress[N, C, K, St, G, Sol]{algo: algo}, nil
}

// Plan runs a search to completion (or until limit steps elapse, if limit is
// non-nil) in one call.
func (p *Planner[N, C, K, St, G, Sol]) Plan(start St, goal *G, limit *int) (astar.Status[Sol], error) {
	progress, err := p.Start(start, goal)
	if err != nil {
		return astar.Status[Sol]{}, err
	}
	return progress.Solve(limit)
}

// Solve drives the underlying search, as astar.Algorithm.Solve does.
func (pr *Progress[N, C, K, St, G, Sol]) Solve(limit *int) (astar.Status[Sol], error) {
	return pr.algo.Solve(limit)
}

// Step advances the search by a single node, as astar.Algorithm.Step does.
func (pr *Progress[N, C, K, St, G, Sol]) Step() (astar.Status[Sol], error) {
	return pr.algo.Step()
}

// NodesExpanded reports the number of distinct nodes closed so far.
func (pr *Progress[N, C, K, St, G, Sol]) NodesExpanded() int {
	return pr.algo.NodesExpanded()
}

// FrontierLen reports the number of nodes currently open.
func (pr *Progress[N, C, K, St, G, Sol]) FrontierLen() int {
	return pr.algo.FrontierLen()
}
