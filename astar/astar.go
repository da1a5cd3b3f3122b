// Package astar implements a generic, best-first A* search: a priority
// frontier ordered by total cost estimate, a pop-expand-push loop, and
// solution extraction delegated to the caller's Expander. The algorithm is
// generic over node type, cost type, closed-set key type, start type, goal
// type and solution type, so it can drive any Expander that satisfies the
// node and expander contracts.
package astar

import (
	"container/heap"

	"github.com/reuben-thomas/mapf/closedset"
	"github.com/reuben-thomas/mapf/cost"
	"github.com/reuben-thomas/mapf/expander"
	"github.com/reuben-thomas/mapf/node"
)

// Expandable bounds the node type an Algorithm can work with: it must carry
// an informed cost estimate (for frontier ordering) and a partial key (for
// closed-set dedup).
type Expandable[N any, C cost.Cost[C], K comparable] interface {
	node.Informed[N, C]
	node.PartialKeyed[K]
}

// StatusKind enumerates the terminal and non-terminal outcomes of a step.
type StatusKind int

const (
	// Incomplete means the search has not yet terminated; the frontier and
	// closed set remain live for a later step.
	Incomplete StatusKind = iota
	// Solved means a goal-satisfying node was popped; Solution holds the
	// reconstructed result.
	Solved
	// Impossible means the frontier was exhausted before the goal was
	// satisfied; no solution exists reachable from the given start.
	Impossible
)

// Status is the outcome of a Step or Solve call.
type Status[Sol any] struct {
	Kind     StatusKind
	Solution Sol
}

// entry is one frontier element: the node plus the insertion sequence used to
// break ties deterministically (FIFO among equal total cost estimates).
type entry[N any, C cost.Cost[C]] struct {
	n     N
	total C
	seq   uint64
	index int
}

type frontier[N any, C cost.Cost[C]] []*entry[N, C]

func (f frontier[N, C]) Len() int { return len(f) }

func (f frontier[N, C]) Less(i, j int) bool {
	if f[i].total.Less(f[j].total) {
		return true
	}
	if f[j].total.Less(f[i].total) {
		return false
	}
	return f[i].seq < f[j].seq
}

func (f frontier[N, C]) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier[N, C]) Push(x any) {
	e := x.(*entry[N, C])
	e.index = len(*f)
	*f = append(*f, e)
}

func (f *frontier[N, C]) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return e
}

// Algorithm is a single-query, single-threaded A* search instance. It owns
// its frontier and closed set exclusively; the expander and goal it searches
// over are read-only shared collaborators that may be reused by other
// concurrently-running Algorithm instances on other threads.
type Algorithm[N Expandable[N, C, K], C cost.Cost[C], K comparable, St any, G expander.Goal[N], Sol expander.Solution[C]] struct {
	exp    expander.Expander[N, St, G, Sol]
	goal   *G
	front  frontier[N, C]
	closed *closedset.Set[K, N]
	seq    uint64
}

// New constructs an Algorithm over the given expander.
func New[N Expandable[N, C, K], C cost.Cost[C], K comparable, St any, G expander.Goal[N], Sol expander.Solution[C]](
	exp expander.Expander[N, St, G, Sol],
) *Algorithm[N, C, K, St, G, Sol] {
	return &Algorithm[N, C, K, St, G, Sol]{
		exp: exp,
		closed: closedset.New[K, N](func(candidate, existing N) bool {
			return candidate.Cost().Less(existing.Cost())
		}),
	}
}

// Initialize seeds the frontier from a start, bound to an optional goal. It
// returns an error if the expander produces no initial node at all, which
// signals that the start is unreachable (e.g. an out-of-range vertex) or that
// the heuristic has no estimate from it.
func (a *Algorithm[N, C, K, St, G, Sol]) Initialize(start St, goal *G) error {
	a.goal = goal
	produced := false
	init := a.exp.Start(start, goal)
	for {
		n, ok := init.Next()
		if !ok {
			break
		}
		a.push(n)
		produced = true
	}
	if !produced {
		return ErrPlanInit
	}
	return nil
}

func (a *Algorithm[N, C, K, St, G, Sol]) push(n N) {
	heap.Push(&a.front, &entry[N, C]{n: n, total: n.TotalCostEstimate(), seq: a.seq})
	a.seq++
}

// Step pops the lowest total-cost-estimate node from the frontier and
// advances the search by exactly one node: it checks the goal, attempts a
// closed-set insert, and pushes the node's successors.
func (a *Algorithm[N, C, K, St, G, Sol]) Step() (Status[Sol], error) {
	var zero Status[Sol]
	if a.front.Len() == 0 {
		return Status[Sol]{Kind: Impossible}, nil
	}
	e := heap.Pop(&a.front).(*entry[N, C])
	n := e.n

	if a.goal != nil && (*a.goal).IsSatisfied(n) {
		sol, err := a.exp.MakeSolution(n)
		if err != nil {
			return zero, err
		}
		return Status[Sol]{Kind: Solved, Solution: sol}, nil
	}

	if key, ok := n.Key(); ok {
		if a.closed.CheckAndInsert(key, n) == closedset.Rejected {
			return Status[Sol]{Kind: Incomplete}, nil
		}
	}

	succ := a.exp.Expand(n, a.goal)
	for {
		child, ok := succ.Next()
		if !ok {
			break
		}
		a.push(child)
	}

	return Status[Sol]{Kind: Incomplete}, nil
}

// Solve drives Step until a terminal status is reached, or until limit steps
// have elapsed if limit is non-nil. When the limit is hit first, Solve
// returns Incomplete with the frontier and closed set preserved, so a later
// call (with a larger or nil limit) resumes the same search.
func (a *Algorithm[N, C, K, St, G, Sol]) Solve(limit *int) (Status[Sol], error) {
	steps := 0
	for {
		if limit != nil && steps >= *limit {
			return Status[Sol]{Kind: Incomplete}, nil
		}
		status, err := a.Step()
		if err != nil {
			return Status[Sol]{}, err
		}
		if status.Kind != Incomplete {
			return status, nil
		}
		steps++
	}
}

// NodesExpanded returns the number of distinct keys the closed set has
// accepted so far, a proxy for search effort.
func (a *Algorithm[N, C, K, St, G, Sol]) NodesExpanded() int {
	return a.closed.Len()
}

// FrontierLen returns the number of nodes currently open.
func (a *Algorithm[N, C, K, St, G, Sol]) FrontierLen() int {
	return a.front.Len()
}
