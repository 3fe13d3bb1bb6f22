package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilModel indicates that a nil cost.Model was passed to Run.
	ErrNilModel = errors.New("search: cost model is nil")

	// ErrInvalidEndpoints indicates that start and end are out of bounds,
	// identical, or do not hold the Start and End roles respectively.
	ErrInvalidEndpoints = errors.New("search: invalid endpoints")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Status is the state of a search. Run always returns a terminal status:
// Succeeded, Exhausted, or Cancelled.
type Status int

const (
	// Initialized is the state before the main loop starts.
	Initialized Status = iota
	// Running is the state while the frontier is being expanded.
	Running
	// Succeeded means the end cell was popped and a path reconstructed.
	Succeeded
	// Exhausted means the frontier emptied (or the expansion cap was hit)
	// without reaching the end cell. It is a normal outcome, not an error.
	Exhausted
	// Cancelled means the context or cancel poll stopped the search.
	Cancelled
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one search.
//
//   - Path:     start..end inclusive when Status == Succeeded, nil otherwise.
//   - Cost:     total edge cost of Path (edge count under unit costs).
//   - Expanded: number of cells finalized.
//   - Pushed:   number of frontier pushes, stale duplicates included.
type Result struct {
	Status    Status
	Algorithm string
	Path      []grid.Coord
	Cost      int64
	Expanded  int
	Pushed    int
}

// Found reports whether the search produced a path.
func (r Result) Found() bool { return r.Status == Succeeded }

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx is checked once per loop iteration; when done, the search stops
	// with Status Cancelled.
	Ctx context.Context

	// Cancel is polled once per loop iteration; returning true stops the
	// search with Status Cancelled.
	Cancel func() bool

	// OnOpen is called when a cell without stored frontier entries is pushed.
	OnOpen func(c grid.Coord)

	// OnClose is called when a cell is finalized.
	OnClose func(c grid.Coord)

	// OnStep is the rendering callback: it runs after each expansion and
	// once more after the path is marked. Its effects are not consulted.
	OnStep func(g *grid.Grid)

	// MarkPath, when true, sets OnPath on the cells of a found path
	// (endpoints excluded) and clears previous path cells before searching.
	MarkPath bool

	// MaxExpansions, if > 0, ends the search as Exhausted once that many
	// cells have been finalized without reaching the end.
	MaxExpansions int

	// Logger receives Debug records for run start and finish.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background() and no cancel poll
//   - no-op hooks
//   - path marking enabled
//   - no expansion cap
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Cancel:   func() bool { return false },
		OnOpen:   func(grid.Coord) {},
		OnClose:  func(grid.Coord) {},
		OnStep:   func(*grid.Grid) {},
		MarkPath: true,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCancel registers a cancellation poll, checked once per iteration.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cancel = fn
		}
	}
}

// WithOnOpen registers a callback for cells entering the frontier.
func WithOnOpen(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithOnClose registers a callback for finalized cells.
func WithOnClose(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}

// WithOnStep registers the rendering callback.
func WithOnStep(fn func(g *grid.Grid)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithPathMarking enables or disables writing OnPath roles for found paths.
func WithPathMarking(enabled bool) Option {
	return func(o *Options) {
		o.MarkPath = enabled
	}
}

// WithMaxExpansions caps the number of finalized cells.
//
//	n > 0:  stop as Exhausted after n expansions
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the structured logger used for Debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
