package solve

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// cardinal holds the four unit direction offsets (N, E, S, W).
var cardinal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// ShortestPath returns the fewest-step sequence of Passage cells from
// start to goal under 4-connectivity, both endpoints inclusive. On
// toroidal grids the search crosses the seam and endpoints are reduced
// modulo the dimensions; on bounded grids out-of-range endpoints are
// rejected with ErrOutOfBounds.
//
// The walk is a plain breadth-first search with parent links, so the
// returned path is one of the true shortest paths (ties broken by the
// fixed N/E/S/W probe order — deterministic for a fixed grid).
//
// Complexity: O(W×H×4) time, O(W×H) memory.
func ShortestPath(g *maze.Grid, start, goal maze.Cell) ([]maze.Cell, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	var err error
	if start, err = normalize(g, start); err != nil {
		return nil, fmt.Errorf("start %+v: %w", start, err)
	}
	if goal, err = normalize(g, goal); err != nil {
		return nil, fmt.Errorf("goal %+v: %w", goal, err)
	}
	if g.Cells[start.Y][start.X] != maze.Passage {
		return nil, fmt.Errorf("start %+v: %w", start, ErrBlocked)
	}
	if g.Cells[goal.Y][goal.X] != maze.Passage {
		return nil, fmt.Errorf("goal %+v: %w", goal, ErrBlocked)
	}

	total := g.Width * g.Height
	visited := make([]bool, total)
	parent := make([]int, total)
	for i := range parent {
		parent[i] = -1
	}

	s, t := g.Index(start.X, start.Y), g.Index(goal.X, goal.Y)
	queue := []int{s}
	visited[s] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == t {
			return reconstruct(g, parent, s, t), nil
		}
		ux, uy := g.Coordinate(u)
		for _, d := range cardinal {
			vx, vy := ux+d[0], uy+d[1]
			if g.Wrap {
				vx, vy = wrapCoord(vx, g.Width), wrapCoord(vy, g.Height)
			} else if !g.InBounds(vx, vy) {
				continue
			}
			if g.Cells[vy][vx] != maze.Passage {
				continue
			}
			v := g.Index(vx, vy)
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	return nil, ErrNoPath
}

// reconstruct follows parent links from t back to s and returns the path
// in start→goal order.
func reconstruct(g *maze.Grid, parent []int, s, t int) []maze.Cell {
	var rev []int
	for u := t; u != -1; u = parent[u] {
		rev = append(rev, u)
		if u == s {
			break
		}
	}
	path := make([]maze.Cell, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		x, y := g.Coordinate(rev[i])
		path = append(path, maze.Cell{X: x, Y: y})
	}

	return path
}

// normalize maps an endpoint onto the grid: modulo reduction on toroidal
// grids, bounds check on bounded ones.
func normalize(g *maze.Grid, c maze.Cell) (maze.Cell, error) {
	if g.Wrap {
		return maze.Cell{X: wrapCoord(c.X, g.Width), Y: wrapCoord(c.Y, g.Height)}, nil
	}
	if !g.InBounds(c.X, c.Y) {
		return c, ErrOutOfBounds
	}

	return c, nil
}

// wrapCoord reduces v modulo n with a non-negative result.
func wrapCoord(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
