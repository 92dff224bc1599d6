package maze

import "math/rand"

// carveDirs holds the four distance-2 direction vectors used to jump
// between cell positions while skipping the intervening wall.
var carveDirs = [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// frontier is a candidate cell position plus the direction vector it was
// reached from. Entries are owned solely by the carving stack and are
// discarded once popped and processed.
type frontier struct {
	x, y   int
	dx, dy int
}

// carve performs iterative randomized depth-first carving over g using an
// explicit stack — never true recursion, so stack depth stays bounded for
// arbitrary maze sizes. On return every reachable cell position is
// Passage, joined into a spanning tree of the cell lattice; cells blocked
// by reservation stay Reserved for clearReserved to finalize.
//
// Complexity: O(W×H) time, O(W×H) memory for the frontier stack.
func carve(g *Grid, rng *rand.Rand) error {
	sx, sy, err := startCell(g, rng)
	if err != nil {
		return err
	}

	// While positive, Reserved cells still count as unexplored, which
	// guarantees a minimum-length initial corridor before reservation bias
	// takes effect and keeps the walk from dead-ending beside the start.
	ignoreReserved := g.Width
	if g.Height > ignoreReserved {
		ignoreReserved = g.Height
	}
	unexplored := func(s State) bool {
		return s == Wall || (s == Reserved && ignoreReserved > 0)
	}

	stack := []frontier{{x: sx, y: sy}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !unexplored(g.At(f.x, f.y)) {
			// Exhausted branch: popping without pushing is what makes the
			// stack walk equivalent to backtracking depth-first search.
			continue
		}
		g.set(f.x, f.y, Passage)
		ignoreReserved--

		// Open the wall between this cell and the one it was reached from,
		// joining the new cell into the carved tree. The start entry has a
		// zero direction and re-opens itself, which is harmless.
		g.set(f.x-f.dx/2, f.y-f.dy/2, Passage)

		dirs := carveDirs
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})
		for _, d := range dirs {
			nx, ny := f.x+d[0], f.y+d[1]
			if g.Wrap {
				nx, ny = mod(nx, g.Width), mod(ny, g.Height)
			} else if !g.InBounds(nx, ny) {
				continue
			}
			if unexplored(g.At(nx, ny)) {
				stack = append(stack, frontier{x: nx, y: ny, dx: d[0], dy: d[1]})
			}
		}
	}

	return nil
}

// startCell selects the carving start: the cell position nearest the grid
// center, falling back to uniform resampling when that position is not
// Wall (e.g. already reserved). Resampling is bounded by Width×Height
// attempts so a grid with no carvable cell surfaces ErrNoStartCell
// instead of spinning forever.
func startCell(g *Grid, rng *rand.Rand) (int, int, error) {
	if g.Width/2 < 1 || g.Height/2 < 1 {
		return 0, 0, ErrTooSmall
	}
	x, y := (g.Width/2)|1, (g.Height/2)|1
	for attempts := g.Width * g.Height; g.At(x, y) != Wall; attempts-- {
		if attempts <= 0 {
			return 0, 0, ErrNoStartCell
		}
		x = 2*rng.Intn(g.Width/2) + 1
		y = 2*rng.Intn(g.Height/2) + 1
	}

	return x, y, nil
}
