package astar

import "github.com/pkg/errors"

// ErrPlanInit is returned by Initialize when the expander produces no initial
// node for the given start: the start is unreachable (e.g. an out-of-range
// vertex with no off-graph offset) or the heuristic has no estimate from it.
var ErrPlanInit = errors.New("astar: no initial node produced for start")
