package maze

import (
	"math/rand"
	"time"
)

// Reservation probability is derived from the fill fraction as
// res = 1 − clamp(fill*fillScale + fillOffset, 0, 1), so even a fill of 0
// leaves a small carvable share instead of a fully reserved grid.
const (
	fillScale  = 0.9
	fillOffset = 0.1
)

// Generate procedurally carves a width×height maze and returns the
// finished grid, whose positions hold exactly two states (Wall, Passage).
//
// Control flows linearly through the stages: dimension normalization →
// allocation → region reservation → depth-first carving → loop
// injection → island repair → reservation clearing. Width defaults to
// DefaultWidth and height to width when not positive; all fractions are
// clamped. The only failure modes are the degenerate configurations
// behind ErrTooSmall and ErrNoStartCell.
//
// Complexity: O(W×H) time, O(W×H) memory.
func Generate(width, height int, opts ...Option) (*Grid, error) {
	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	width, height = normalizeDims(width, height, cfg.wrap)
	imperfect := clamp(cfg.imperfect, 0, 1)
	res := 1 - clamp(cfg.fill*fillScale+fillOffset, 0, 1)

	g := NewGrid(width, height, cfg.wrap)
	if res > 0 {
		reserve(g, cfg.rng, res)
	}
	if err := carve(g, cfg.rng); err != nil {
		return nil, err
	}
	if imperfect > 0 {
		injectLoops(g, cfg.rng, imperfect)
	}
	reconnectIslands(g, cfg.rng)
	if res > 0 {
		clearReserved(g)
	}

	return g, nil
}

// normalizeDims applies dimension defaults and the parity required by the
// topology: even when wrapping, odd otherwise. Corrections always round up
// so the requested area is never shrunk.
func normalizeDims(width, height int, wrap bool) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = width
	}
	if wrap {
		width += width % 2
		height += height % 2
	} else {
		width += 1 - width%2
		height += 1 - height%2
	}

	return width, height
}

// reserve marks each odd/odd cell position Reserved with independent
// probability res, biasing the carver away from fully filling the space
// without hard-coding dead zones.
func reserve(g *Grid, rng *rand.Rand, res float64) {
	for y := 1; y < g.Height; y += 2 {
		for x := 1; x < g.Width; x += 2 {
			if rng.Float64() < res {
				g.Cells[y][x] = Reserved
			}
		}
	}
}

// clearReserved resets every cell the carver never reached back to Wall,
// guaranteeing the returned grid holds only terminal states.
func clearReserved(g *Grid) {
	for y := range g.Cells {
		for x, s := range g.Cells[y] {
			if s == Reserved {
				g.Cells[y][x] = Wall
			}
		}
	}
}

// clamp restricts v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
