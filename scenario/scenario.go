// Package scenario loads search scenarios from YAML files: the grid size,
// the endpoints, the barriers, and the algorithm to run.
//
// A scenario either lists coordinates:
//
//	rows: 5
//	width: 500
//	algorithm: astar
//	start: [0, 0]
//	end: [4, 4]
//	barriers:
//	  - [0, 2]
//	  - [1, 2]
//
// or draws the grid with the ASCII layout understood by grid.Parse:
//
//	algorithm: dijkstra
//	layout: |
//	  S.#..
//	  ..#..
//	  ..#.E
//	  ..#..
//	  .....
//
// An optional `random: {density: 0.2, seed: 7}` block scatters extra
// barriers after the listed ones.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
)

// DefaultCellSize is the pixel size of a cell when a scenario omits width.
const DefaultCellSize = 10

// DefaultAlgorithm is used when a scenario omits algorithm.
const DefaultAlgorithm = "astar"

// ErrInvalidScenario wraps every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Point is a [row, col] pair.
type Point [2]int

// Coord converts the point to a grid coordinate.
func (p Point) Coord() grid.Coord { return grid.Coord{Row: p[0], Col: p[1]} }

// Random configures ScatterBarriers.
type Random struct {
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name      string  `yaml:"name,omitempty"`
	Rows      int     `yaml:"rows,omitempty"`
	Width     int     `yaml:"width,omitempty"`
	Algorithm string  `yaml:"algorithm,omitempty"`
	Start     *Point  `yaml:"start,omitempty"`
	End       *Point  `yaml:"end,omitempty"`
	Barriers  []Point `yaml:"barriers,omitempty"`
	Layout    string  `yaml:"layout,omitempty"`
	Random    *Random `yaml:"random,omitempty"`
}

// Setup is a scenario turned into ready-to-search values. Neighbor caches
// of Grid are already refreshed.
type Setup struct {
	Grid  *grid.Grid
	Start grid.Coord
	End   grid.Coord
	Model cost.Model
}

// LoadFile reads and validates the scenario stored at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML scenario from r and validates it. Unknown fields are
// rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks field combinations without building a grid:
//   - layout excludes rows, start, end, and barriers;
//   - without layout, rows > 0 and both start and end are required;
//   - width, when set, must be a positive multiple of the row count;
//   - the algorithm must be known to cost.Lookup;
//   - random density must lie in [0,1].
func (s *Scenario) Validate() error {
	if s.Layout != "" {
		if s.Rows != 0 || s.Start != nil || s.End != nil || len(s.Barriers) > 0 {
			return fmt.Errorf("%w: layout cannot be combined with rows, start, end, or barriers", ErrInvalidScenario)
		}
	} else {
		if s.Rows <= 0 {
			return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidScenario, s.Rows)
		}
		if s.Start == nil || s.End == nil {
			return fmt.Errorf("%w: start and end are required without a layout", ErrInvalidScenario)
		}
		if s.Width != 0 && (s.Width < s.Rows || s.Width%s.Rows != 0) {
			return fmt.Errorf("%w: width %d is not a multiple of rows %d", ErrInvalidScenario, s.Width, s.Rows)
		}
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: width must not be negative", ErrInvalidScenario)
	}
	if _, err := cost.Lookup(s.algorithm()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.Random != nil && (s.Random.Density < 0 || s.Random.Density > 1) {
		return fmt.Errorf("%w: random density %.4f not in [0,1]", ErrInvalidScenario, s.Random.Density)
	}

	return nil
}

// Build creates the grid, places endpoints and barriers, scatters random
// barriers, and refreshes neighbor caches.
func (s *Scenario) Build() (*Setup, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	model, _ := cost.Lookup(s.algorithm())

	g, err := s.buildGrid()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.Random != nil {
		if _, err = grid.ScatterBarriers(g, s.Random.Density, grid.NewRand(s.Random.Seed)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
	}
	g.RefreshAllNeighbors()

	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("%w: no start cell", ErrInvalidScenario)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("%w: no end cell", ErrInvalidScenario)
	}

	return &Setup{Grid: g, Start: start, End: end, Model: model}, nil
}

func (s *Scenario) buildGrid() (*grid.Grid, error) {
	if s.Layout != "" {
		g, err := grid.Parse(s.Layout, DefaultCellSize)
		if err != nil {
			return nil, err
		}
		n := g.Rows()
		if s.Width == 0 || s.Width == n*DefaultCellSize {
			return g, nil
		}
		if s.Width < n || s.Width%n != 0 {
			return nil, fmt.Errorf("%w: width %d is not a multiple of rows %d", grid.ErrInvalidDimension, s.Width, n)
		}
		return grid.Parse(s.Layout, s.Width/n)
	}

	width := s.Width
	if width == 0 {
		width = s.Rows * DefaultCellSize
	}
	g, err := grid.Build(s.Rows, width)
	if err != nil {
		return nil, err
	}
	if *s.Start == *s.End {
		return nil, fmt.Errorf("start and end are both %v", s.Start.Coord())
	}
	if err = g.SetRole(s.Start[0], s.Start[1], grid.Start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err = g.SetRole(s.End[0], s.End[1], grid.End); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	for _, b := range s.Barriers {
		if b == *s.Start || b == *s.End {
			return nil, fmt.Errorf("barrier %v overlaps an endpoint", b.Coord())
		}
		if err = g.SetRole(b[0], b[1], grid.Barrier); err != nil {
			return nil, fmt.Errorf("barrier: %w", err)
		}
	}

	return g, nil
}

func (s *Scenario) algorithm() string {
	if s.Algorithm == "" {
		return DefaultAlgorithm
	}
	return s.Algorithm
}
