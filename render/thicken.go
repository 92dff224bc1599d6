package render

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Thicken scales a carved grid into variable-width halls and walls:
// every cell (odd-indexed) row and column is replicated hallWidth times,
// every wall (even-indexed) row and column wallWidth times, preserving
// cell states. Thicken(g, 1, 1) is an exact copy.
//
// The output keeps the source topology flag but loses the odd/odd parity
// semantics, so it must not be fed back into parity-dependent stages.
//
// Complexity: O(W'×H') time and memory for the scaled dimensions.
func Thicken(g *maze.Grid, hallWidth, wallWidth int) (*maze.Grid, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if hallWidth < 1 || wallWidth < 1 {
		return nil, fmt.Errorf("render: Thicken(hall=%d, wall=%d): %w",
			hallWidth, wallWidth, ErrBadScale)
	}

	reps := func(i int) int {
		if i%2 == 1 {
			return hallWidth
		}

		return wallWidth
	}

	outW, outH := 0, 0
	for x := 0; x < g.Width; x++ {
		outW += reps(x)
	}
	for y := 0; y < g.Height; y++ {
		outH += reps(y)
	}

	out := maze.NewGrid(outW, outH, g.Wrap)
	oy := 0
	for y := 0; y < g.Height; y++ {
		for ry := 0; ry < reps(y); ry++ {
			ox := 0
			for x := 0; x < g.Width; x++ {
				for rx := 0; rx < reps(x); rx++ {
					out.Cells[oy][ox] = g.Cells[y][x]
					ox++
				}
			}
			oy++
		}
	}

	return out, nil
}
