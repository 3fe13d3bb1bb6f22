// Package cost supplies the step-cost and heuristic models that tell the
// search engine whether it runs as Dijkstra (Uniform) or A* (Manhattan).
//
// Both models charge 1 per orthogonal step. Uniform estimates 0 remaining
// cost; Manhattan estimates |Δrow| + |Δcol|, which never exceeds the true
// step count on a 4-connected unit grid, so A* stays optimal.
package cost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownModel is returned by Lookup for an unrecognized model name.
var ErrUnknownModel = errors.New("cost: unknown model")

// Model prices moves between adjacent cells and estimates remaining cost.
// Implementations must return non-negative values; Heuristic must not
// overestimate the true remaining cost or the returned paths lose optimality.
type Model interface {
	// EdgeCost is the price of stepping from a to the adjacent cell b.
	EdgeCost(a, b grid.Coord) int64
	// Heuristic estimates the cost from a to goal.
	Heuristic(a, goal grid.Coord) int64
	// Name identifies the model in logs and results.
	Name() string
}

// Uniform is the Dijkstra model: unit steps, zero heuristic.
type Uniform struct{}

// EdgeCost returns 1.
func (Uniform) EdgeCost(_, _ grid.Coord) int64 { return 1 }

// Heuristic returns 0.
func (Uniform) Heuristic(_, _ grid.Coord) int64 { return 0 }

// Name returns "dijkstra".
func (Uniform) Name() string { return "dijkstra" }

// Manhattan is the A* model: unit steps, Manhattan-distance heuristic.
type Manhattan struct{}

// EdgeCost returns 1.
func (Manhattan) EdgeCost(_, _ grid.Coord) int64 { return 1 }

// Heuristic returns |a.Row-goal.Row| + |a.Col-goal.Col|.
func (Manhattan) Heuristic(a, goal grid.Coord) int64 {
	return int64(abs(a.Row-goal.Row) + abs(a.Col-goal.Col))
}

// Name returns "astar".
func (Manhattan) Name() string { return "astar" }

// Lookup resolves a model by name, case-insensitively:
// "dijkstra" or "uniform" → Uniform; "astar", "a*" or "manhattan" → Manhattan.
func Lookup(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra", "uniform":
		return Uniform{}, nil
	case "astar", "a*", "manhattan":
		return Manhattan{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
