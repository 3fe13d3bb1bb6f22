package grid

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used by NewRand when callers pass seed == 0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for ScatterBarriers.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; do not share the result.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// ScatterBarriers turns each Empty cell into a Barrier with probability
// density, visiting cells in row-major order so that a fixed rng yields a
// fixed layout. Start, End, and OnPath cells are never touched.
// Returns the number of barriers placed.
//
// If rng is nil, NewRand(0) is used. Neighbor caches are not refreshed.
//
// Errors: ErrInvalidDensity if density is outside [0,1].
// Complexity: O(rows²).
func ScatterBarriers(g *Grid, density float64, rng *rand.Rand) (int, error) {
	if density < 0 || density > 1 {
		return 0, fmt.Errorf("%w: %.4f", ErrInvalidDensity, density)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	placed := 0
	for i := range g.cells {
		if g.cells[i].role != Empty {
			continue
		}
		if rng.Float64() < density {
			g.cells[i].role = Barrier
			placed++
		}
	}

	return placed, nil
}
