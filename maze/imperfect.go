package maze

import (
	"math"
	"math/rand"
)

// injectionDivisor scales the iteration count of each injection pass:
// count = ceil(imperfect × W × H / injectionDivisor).
const injectionDivisor = 3

// injectLoops removes additional walls to introduce cycles into the
// otherwise tree-shaped maze. Two passes of count iterations alternate
// horizontal and vertical wall targets; the outer ring stays solid on
// bounded grids. A wall falls only when at least one of its direct
// neighbors is already open — the connectivity guard that rules out
// orphan openings while still joining two carved regions into a loop.
//
// Complexity: O(imperfect×W×H) time, O(1) extra memory.
func injectLoops(g *Grid, rng *rand.Rand, imperfect float64) {
	count := int(math.Ceil(imperfect * float64(g.Width*g.Height) / injectionDivisor))
	boundary := 1
	if g.Wrap {
		boundary = 0
	}

	for pass := 0; pass < 2; pass++ {
		horizontal := pass == 0
		for i := 0; i < count; i++ {
			var (
				x, y     int
				okX, okY bool
			)
			if horizontal {
				// Horizontal wall segment: odd x, even y.
				x, okX = randOddCoord(rng, g.Width)
				y, okY = randEvenCoord(rng, g.Height, boundary)
			} else {
				// Vertical wall segment: even x, odd y.
				x, okX = randEvenCoord(rng, g.Width, boundary)
				y, okY = randOddCoord(rng, g.Height)
			}
			if !okX || !okY {
				// Axis too narrow to host interior walls of this orientation.
				break
			}
			if hasOpenNeighbor(g, x, y) {
				g.set(x, y, Passage)
			}
		}
	}
}

// reconnectIslands repairs fully-open 2×2 regions: when all four direct
// neighbors of an even/even junction are Passage, one of them — chosen
// uniformly at random — is restored to Wall. A single, non-iterated
// sweep; a repair that happens to spawn a fresh island elsewhere is left
// as is.
//
// Complexity: O(W×H) time, O(1) extra memory.
func reconnectIslands(g *Grid, rng *rand.Rand) {
	for y := 0; y < g.Height; y += 2 {
		for x := 0; x < g.Width; x += 2 {
			open := 0
			for _, d := range cardinal {
				if g.At(x+d[0], y+d[1]) == Passage {
					open++
				}
			}
			if open == len(cardinal) {
				d := cardinal[rng.Intn(len(cardinal))]
				g.set(x+d[0], y+d[1], Wall)
			}
		}
	}
}

// hasOpenNeighbor reports whether any distance-1 neighbor of (x, y) is
// Passage, honoring wrap-around adjacency via Grid.At.
func hasOpenNeighbor(g *Grid, x, y int) bool {
	for _, d := range cardinal {
		if g.At(x+d[0], y+d[1]) == Passage {
			return true
		}
	}

	return false
}

// randOddCoord returns a uniformly random odd coordinate in [0, n).
// ok is false when no odd coordinate exists.
func randOddCoord(rng *rand.Rand, n int) (v int, ok bool) {
	if n/2 < 1 {
		return 0, false
	}

	return 2*rng.Intn(n/2) + 1, true
}

// randEvenCoord returns a uniformly random even coordinate in [0, n),
// excluding the outer boundary ring when boundary is 1 (bounded grids).
// ok is false when no admissible coordinate exists.
func randEvenCoord(rng *rand.Rand, n, boundary int) (v int, ok bool) {
	if boundary == 0 {
		if n/2 < 1 {
			return 0, false
		}

		return 2 * rng.Intn(n/2), true
	}
	// Interior even coordinates of a bounded (odd-sized) axis: 2, 4, …, n-3.
	k := (n - 3) / 2
	if k < 1 {
		return 0, false
	}

	return 2 * (rng.Intn(k) + 1), true
}
