package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// inf marks a cell whose cost from start is not yet known.
const inf = math.MaxInt64

// Run searches g for a cheapest path from start to end under model.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. model must be non-nil (ErrNilModel).
//  3. Options must be valid (ErrOptionViolation).
//  4. start and end must be in bounds, distinct, and hold the Start and End
//     roles (ErrInvalidEndpoints).
//
// The search reads neighbor caches, not roles: g.RefreshAllNeighbors must
// have run after the last Barrier edit. The grid must not be edited while
// Run is executing.
//
// Outcomes: a Succeeded result carries the path; Exhausted and Cancelled are
// returned with a nil error.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows², each cell pushed at most 4 times.
//   - Space: O(N).
func Run(g *grid.Grid, start, end grid.Coord, model cost.Model, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if model == nil {
		return Result{}, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if err := validateEndpoints(g, start, end); err != nil {
		return Result{}, err
	}

	r := newRunner(g, start, end, model, cfg)
	r.init()
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.result(), nil
}

// Dijkstra runs Run with the cost.Uniform model.
func Dijkstra(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	return Run(g, start, end, cost.Uniform{}, opts...)
}

// AStar runs Run with the cost.Manhattan model.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	return Run(g, start, end, cost.Manhattan{}, opts...)
}

func validateEndpoints(g *grid.Grid, start, end grid.Coord) error {
	sc, err := g.CellAt(start.Row, start.Col)
	if err != nil {
		return fmt.Errorf("%w: start %v: %v", ErrInvalidEndpoints, start, err)
	}
	ec, err := g.CellAt(end.Row, end.Col)
	if err != nil {
		return fmt.Errorf("%w: end %v: %v", ErrInvalidEndpoints, end, err)
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidEndpoints, start)
	}
	if sc.Role() != grid.Start {
		return fmt.Errorf("%w: start %v has role %s", ErrInvalidEndpoints, start, sc.Role())
	}
	if ec.Role() != grid.End {
		return fmt.Errorf("%w: end %v has role %s", ErrInvalidEndpoints, end, ec.Role())
	}

	return nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *grid.Grid
	model    cost.Model
	opts     Options
	start    int
	end      int
	endPos   grid.Coord
	gScore   []int64 // best known cost from start
	fScore   []int64 // gScore + heuristic; equals gScore under Uniform
	cameFrom []int   // predecessor index, -1 if none
	closed   []bool  // finalized cells
	open     *frontier.Frontier
	state    Status
	expanded int
	pushed   int
}

func newRunner(g *grid.Grid, start, end grid.Coord, model cost.Model, opts Options) *runner {
	n := g.Len()
	return &runner{
		g:        g,
		model:    model,
		opts:     opts,
		start:    g.Index(start),
		end:      g.Index(end),
		endPos:   end,
		gScore:   make([]int64, n),
		fScore:   make([]int64, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		open:     frontier.New(n),
		state:    Initialized,
	}
}

// init sets every score to +∞ and pushes the start cell.
func (r *runner) init() {
	for i := range r.gScore {
		r.gScore[i] = inf
		r.fScore[i] = inf
		r.cameFrom[i] = -1
	}
	if r.opts.MarkPath {
		r.g.ClearPath()
	} else {
		r.g.ClearMarks()
	}

	startPos := r.g.Coordinate(r.start)
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.model.Heuristic(startPos, r.endPos)
	r.push(r.start)

	r.opts.Logger.Debug("search started",
		"algorithm", r.model.Name(),
		"start", startPos.String(),
		"end", r.endPos.String(),
		"cells", r.g.Len())
	r.state = Running
}

// process is the main loop. It stops when the end cell is popped, the
// frontier empties, the expansion cap is reached, or cancellation fires.
func (r *runner) process() error {
	for r.open.Len() > 0 {
		if r.cancelled() {
			r.finish(Cancelled)
			return nil
		}

		cur, err := r.open.PopMin()
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		// Stale duplicate of an already finalized cell.
		if r.closed[cur] {
			continue
		}
		if cur == r.end {
			return r.succeed()
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			break
		}

		r.closed[cur] = true
		r.expanded++
		if cur != r.start {
			r.g.SetMark(cur, grid.MarkClosed)
		}
		r.opts.OnClose(r.g.Coordinate(cur))

		r.relax(cur)
		r.opts.OnStep(r.g)
	}
	r.finish(Exhausted)

	return nil
}

// relax tries to improve every non-finalized neighbor of cur. Only a
// strictly cheaper cost replaces a known one, so among equal-cost routes
// the first discovered is kept.
func (r *runner) relax(cur int) {
	curPos := r.g.Coordinate(cur)
	for _, n := range r.g.Neighbors(cur) {
		if r.closed[n] {
			continue
		}
		nPos := r.g.Coordinate(n)
		tentative := r.gScore[cur] + r.model.EdgeCost(curPos, nPos)
		if tentative >= r.gScore[n] {
			continue
		}
		r.cameFrom[n] = cur
		r.gScore[n] = tentative
		r.fScore[n] = tentative + r.model.Heuristic(nPos, r.endPos)

		fresh := !r.open.Contains(n)
		// Older entries for n stay behind and are skipped once n is closed.
		r.push(n)
		if fresh && n != r.end {
			r.g.SetMark(n, grid.MarkOpen)
			r.opts.OnOpen(nPos)
		}
	}
}

func (r *runner) push(idx int) {
	r.open.Push(r.fScore[idx], idx)
	r.pushed++
}

func (r *runner) cancelled() bool {
	select {
	case <-r.opts.Ctx.Done():
		return true
	default:
	}
	return r.opts.Cancel()
}

func (r *runner) succeed() error {
	r.finish(Succeeded)
	if r.opts.MarkPath {
		if err := r.g.MarkPath(r.path()); err != nil {
			return fmt.Errorf("search: marking path: %w", err)
		}
		r.opts.OnStep(r.g)
	}

	return nil
}

func (r *runner) finish(s Status) {
	r.state = s
	r.opts.Logger.Debug("search finished",
		"algorithm", r.model.Name(),
		"status", s.String(),
		"expanded", r.expanded,
		"pushed", r.pushed)
}

func (r *runner) path() []grid.Coord {
	idx := Reconstruct(r.cameFrom, r.end)
	if idx == nil {
		return nil
	}
	path := make([]grid.Coord, len(idx))
	for i, v := range idx {
		path[i] = r.g.Coordinate(v)
	}

	return path
}

func (r *runner) result() Result {
	res := Result{
		Status:    r.state,
		Algorithm: r.model.Name(),
		Expanded:  r.expanded,
		Pushed:    r.pushed,
	}
	if r.state == Succeeded {
		res.Path = r.path()
		res.Cost = r.gScore[r.end]
	}

	return res
}
