package maze

// cardinal holds the four unit direction offsets (N, E, S, W) used for
// distance-1 adjacency checks.
var cardinal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a two-dimensional field of cell states indexed by (x, y) with
// x in [0, Width) and y in [0, Height). It is created once, mutated in
// place by the generation stages, and finalized before being returned —
// single owner, single writer.
type Grid struct {
	// Width and Height are the normalized dimensions.
	Width, Height int
	// Wrap records the topology: true for a torus (coordinate arithmetic
	// is modulo Width/Height), false for a bounded rectangle.
	Wrap bool
	// Cells holds the state of every position, indexed Cells[y][x].
	Cells [][]State
}

// NewGrid allocates a width×height grid with every position set to Wall
// (the State zero value). No side effects beyond allocation.
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int, wrap bool) *Grid {
	cells := make([][]State, height)
	for y := range cells {
		cells[y] = make([]State, width)
	}

	return &Grid{Width: width, Height: height, Wrap: wrap, Cells: cells}
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the state at (x, y). On wrapping grids the coordinates are
// reduced modulo Width/Height; on bounded grids out-of-range positions
// read as Wall, so the exterior behaves as solid rock.
// Complexity: O(1).
func (g *Grid) At(x, y int) State {
	if g.Wrap {
		x, y = mod(x, g.Width), mod(y, g.Height)
	} else if !g.InBounds(x, y) {
		return Wall
	}

	return g.Cells[y][x]
}

// set writes state s at (x, y), wrapping coordinates on toroidal grids.
// Out-of-range writes on bounded grids are dropped.
func (g *Grid) set(x, y int, s State) {
	if g.Wrap {
		x, y = mod(x, g.Width), mod(y, g.Height)
	} else if !g.InBounds(x, y) {
		return
	}
	g.Cells[y][x] = s
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// mod reduces v modulo n with a non-negative result.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
