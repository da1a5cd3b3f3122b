// Package node defines the search-frontier element contract shared by every
// expander and algorithm in the engine. A Node is immutable once constructed:
// descendants and the frontier/closed set hold shared references to it, and
// its parent chain forms a tree that terminates at a node with no parent.
package node

import "github.com/reuben-thomas/mapf/cost"

// Node is a frontier element of type N carrying a cost of type C. N appears
// as its own type parameter so that Parent can return a concrete, typed
// reference to the node's predecessor rather than an opaque interface.
type Node[N any, C cost.Cost[C]] interface {
	// Cost returns the accumulated cost from the search's start to this node.
	Cost() C
	// Parent returns the node this one was expanded from, or ok=false if this
	// is a start node.
	Parent() (parent N, ok bool)
}

// Informed is a Node augmented with a heuristic estimate of the cost
// remaining to a goal. TotalCostEstimate must always equal
// Cost().Add(RemainingCostEstimate()); implementations are expected to cache
// this rather than recompute it, since it is read on every frontier pop.
type Informed[N any, C cost.Cost[C]] interface {
	Node[N, C]
	// RemainingCostEstimate is the heuristic's lower bound on the cost still
	// needed to reach a goal from this node.
	RemainingCostEstimate() C
	// TotalCostEstimate orders the search frontier.
	TotalCostEstimate() C
}

// PartialKeyed identifies the subset of nodes whose identity participates in
// closed-set deduplication. Nodes that return ok=false are never closed and
// can be revisited without bound (initial nodes and in-place rotations).
type PartialKeyed[K comparable] interface {
	Key() (key K, ok bool)
}
