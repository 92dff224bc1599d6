// Package maze defines core types, options, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/lvlmaze.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrTooSmall indicates the normalized dimensions admit no cell position
	// (no odd/odd coordinate exists), so there is nothing to carve.
	ErrTooSmall = errors.New("maze: grid too small to carve")
	// ErrNoStartCell indicates the bounded start-cell resampling loop ran out
	// of attempts: reservation bias left the grid without a carvable start.
	ErrNoStartCell = errors.New("maze: no carvable start cell")
)

// State is the value held by a single grid position during and after
// generation.
type State uint8

const (
	// Wall is the terminal "blocked" state. Freshly allocated grids hold
	// only Wall; it is the State zero value.
	Wall State = iota
	// Passage is the terminal "open" state produced by carving.
	Passage
	// Reserved is a transient carving-resistant state used to bias the
	// carver away from low-fill regions. It never appears in a grid
	// returned by Generate.
	Reserved
)

// Cell identifies a grid position by its (X, Y) coordinates.
type Cell struct {
	X, Y int
}

// DefaultWidth is the width used when the requested one is not positive.
// The default height is the (possibly defaulted) width.
const DefaultWidth = 32

// Option customizes the behavior of Generate by mutating a genConfig
// instance before the pipeline runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// genConfig holds the tunable generation parameters. Numeric fields are
// clamped or defaulted during normalization rather than rejected.
type genConfig struct {
	// wrap selects toroidal topology: coordinates wrap modulo the
	// normalized width/height, making opposite edges adjacent.
	wrap bool

	// imperfect is the loop-injection fraction in [0,1]; 0 keeps the maze
	// a perfect spanning tree.
	imperfect float64

	// fill governs the reservation probability res = 1−clamp(fill*0.9+0.1, 0, 1).
	// Higher fill ⇒ lower reservation ⇒ denser maze.
	fill float64

	// rng drives every random draw; nil means "seed from the clock".
	rng *rand.Rand
}

// defaultGenConfig returns a genConfig with:
//   - bounded (non-wrapping) topology
//   - no imperfection (perfect maze)
//   - full fill (no reservation)
//   - clock-seeded RNG resolved at Generate time
func defaultGenConfig() genConfig {
	return genConfig{
		wrap:      false,
		imperfect: 0,
		fill:      1,
		rng:       nil,
	}
}

// WithWrap returns an Option that embeds the maze on a torus. Dimensions
// are then normalized to even values so every cell position keeps a wall
// on each side across the seam.
func WithWrap() Option {
	return func(c *genConfig) {
		c.wrap = true
	}
}

// WithImperfection returns an Option setting the post-carve loop-injection
// fraction. Values outside [0,1] are clamped during normalization.
func WithImperfection(frac float64) Option {
	return func(c *genConfig) {
		c.imperfect = frac
	}
}

// WithFill returns an Option setting the fill fraction that steers region
// reservation. Lower values produce thinner, stringier layouts.
func WithFill(frac float64) Option {
	return func(c *genConfig) {
		c.fill = frac
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		// Seeded source → reproducible carving and injection draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for generation.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("maze: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}
