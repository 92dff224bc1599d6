package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/maze"
)

//----------------------------------------------------------------------------//
// NewGrid and accessor tests
//----------------------------------------------------------------------------//

// TestNewGrid verifies dimensions and the all-Wall initial state.
func TestNewGrid(t *testing.T) {
	g := maze.NewGrid(4, 3, false)
	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("NewGrid dims = %d×%d; want 4×3", g.Width, g.Height)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != maze.Wall {
				t.Errorf("Cells[%d][%d] = %v; want Wall", y, x, g.Cells[y][x])
			}
		}
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g := maze.NewGrid(3, 2, false)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestAt_Bounded verifies that out-of-range reads behave as solid rock.
func TestAt_Bounded(t *testing.T) {
	g := maze.NewGrid(3, 3, false)
	g.Cells[1][1] = maze.Passage

	if got := g.At(1, 1); got != maze.Passage {
		t.Errorf("At(1,1) = %v; want Passage", got)
	}
	outside := [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}}
	for _, xy := range outside {
		if got := g.At(xy[0], xy[1]); got != maze.Wall {
			t.Errorf("At(%d,%d) = %v; want Wall (exterior)", xy[0], xy[1], got)
		}
	}
}

// TestAt_Wrap verifies modulo reduction on toroidal grids.
func TestAt_Wrap(t *testing.T) {
	g := maze.NewGrid(4, 4, true)
	g.Cells[0][0] = maze.Passage

	cases := [][2]int{{0, 0}, {4, 0}, {0, 4}, {-4, -4}, {8, -8}}
	for _, xy := range cases {
		if got := g.At(xy[0], xy[1]); got != maze.Passage {
			t.Errorf("At(%d,%d) = %v; want Passage via wrap", xy[0], xy[1], got)
		}
	}
	if got := g.At(-1, 0); got != maze.Wall {
		t.Errorf("At(-1,0) = %v; want Wall at (3,0)", got)
	}
}

// TestIndexCoordinate checks the row-major index round trip.
func TestIndexCoordinate(t *testing.T) {
	g := maze.NewGrid(5, 4, false)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			gx, gy := g.Coordinate(idx)
			if gx != x || gy != y {
				t.Fatalf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// PassageComponents tests
//----------------------------------------------------------------------------//

// TestPassageComponents_Bounded verifies that separate open regions are
// reported as distinct components on a bounded grid.
func TestPassageComponents_Bounded(t *testing.T) {
	g := maze.NewGrid(5, 3, false)
	g.Cells[1][0] = maze.Passage
	g.Cells[1][1] = maze.Passage
	g.Cells[1][3] = maze.Passage
	g.Cells[1][4] = maze.Passage

	comps := g.PassageComponents()
	if len(comps) != 2 {
		t.Fatalf("components = %d; want 2", len(comps))
	}
	if len(comps[0]) != 2 || len(comps[1]) != 2 {
		t.Errorf("component sizes = %d, %d; want 2, 2", len(comps[0]), len(comps[1]))
	}
}

// TestPassageComponents_WrapSeam verifies that wrap-around adjacency joins
// regions across the grid seam.
func TestPassageComponents_WrapSeam(t *testing.T) {
	g := maze.NewGrid(6, 2, true)
	g.Cells[0][0] = maze.Passage
	g.Cells[0][5] = maze.Passage

	comps := g.PassageComponents()
	if len(comps) != 1 {
		t.Fatalf("components = %d; want 1 (seam-adjacent)", len(comps))
	}

	// The same layout on a bounded grid stays split.
	g.Wrap = false
	if got := len(g.PassageComponents()); got != 2 {
		t.Errorf("bounded components = %d; want 2", got)
	}
}
