// Package expander defines the contract between a search algorithm and the
// domain-specific model of how states transition: what nodes a start
// produces, what children a node produces, and how a goal is recognized.
package expander

// Goal determines whether a node N satisfies a search's termination
// condition. Concrete goal types (e.g. a target vertex with an optional
// orientation window) implement this for the node type their expander
// produces.
type Goal[N any] interface {
	IsSatisfied(n N) bool
}

// Solution is the cost-bearing result of a completed search.
type Solution[C any] interface {
	Cost() C
}

// Successors is a lazy, pull-based stream of candidate nodes. It is driven
// one node at a time by the algorithm; per-successor failures (e.g. a
// degenerate motion extrapolation) are absorbed internally and simply do not
// appear in the stream, rather than being surfaced as errors.
type Successors[N any] interface {
	// Next returns the next candidate node, or ok=false once the stream is
	// exhausted.
	Next() (n N, ok bool)
}

// Expander is the domain model an Algorithm searches over: Start produces the
// zero or more nodes a search begins from, Expand produces the children of an
// already-visited node, and MakeSolution reconstructs a Solution from a node
// that satisfied the Goal.
type Expander[N any, St any, G any, Sol any] interface {
	Start(start St, goal *G) Successors[N]
	Expand(parent N, goal *G) Successors[N]
	MakeSolution(solutionNode N) (Sol, error)
}

// SliceSuccessors adapts a precomputed slice of candidates into the
// pull-based Successors contract. Expanders that compute all of a node's
// children up front (the common case, since branching factors here are
// small) use it rather than hand-writing a generator.
type SliceSuccessors[N any] struct {
	items []N
	i     int
}

// NewSliceSuccessors wraps items for pull-based iteration in order.
func NewSliceSuccessors[N any](items []N) *SliceSuccessors[N] {
	return &SliceSuccessors[N]{items: items}
}

// Next implements Successors.
func (s *SliceSuccessors[N]) Next() (n N, ok bool) {
	if s.i >= len(s.items) {
		return n, false
	}
	n = s.items[s.i]
	s.i++
	return n, true
}
