package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
)

func TestThicken_Errors(t *testing.T) {
	g := maze.NewGrid(3, 3, false)

	_, err := render.Thicken(nil, 1, 1)
	assert.ErrorIs(t, err, render.ErrGridNil)

	for _, hw := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = render.Thicken(g, hw[0], hw[1])
		assert.ErrorIs(t, err, render.ErrBadScale, "hall=%d wall=%d", hw[0], hw[1])
	}
}

// TestThicken_Identity: unit widths copy the grid exactly, and the copy
// is deep — mutating it leaves the source untouched.
func TestThicken_Identity(t *testing.T) {
	g := maze.NewGrid(5, 3, false)
	g.Cells[1][1] = maze.Passage

	out, err := render.Thicken(g, 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, g.Width, out.Width)
	assert.Equal(t, g.Height, out.Height)
	assert.Equal(t, g.Cells, out.Cells)

	out.Cells[1][1] = maze.Wall
	assert.Equal(t, maze.Passage, g.Cells[1][1], "Thicken must deep-copy")
}

// TestThicken_Scales checks dimension arithmetic and state replication
// for hall width 2, wall width 1 on a 3×3 grid.
func TestThicken_Scales(t *testing.T) {
	g := maze.NewGrid(3, 3, false)
	g.Cells[1][1] = maze.Passage

	out, err := render.Thicken(g, 2, 1)
	assert.NoError(t, err)
	// Columns: wall(1) + hall(2) + wall(1); rows likewise.
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 4, out.Height)

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			want := maze.Wall
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = maze.Passage
			}
			assert.Equal(t, want, out.Cells[y][x], "cell (%d,%d)", x, y)
		}
	}
}

// TestText_GlyphMapping: one glyph per state, one line per row.
func TestText_GlyphMapping(t *testing.T) {
	g := maze.NewGrid(3, 1, false)
	g.Cells[0][1] = maze.Passage
	g.Cells[0][2] = maze.Reserved

	got := render.Text(g)
	want := string(render.GlyphWall) + string(render.GlyphPassage) + string(render.GlyphOther) + "\n"
	assert.Equal(t, want, got)
}

func TestText_NilGrid(t *testing.T) {
	assert.Equal(t, "", render.Text(nil))
}

// TestText_ThickenedShape renders a generated maze through a unit
// thickening and checks the contract: exactly height lines of exactly
// width glyphs, identical to rendering the source directly.
func TestText_ThickenedShape(t *testing.T) {
	g, err := maze.Generate(7, 5, maze.WithSeed(11))
	assert.NoError(t, err)

	flat, err := render.Thicken(g, 1, 1)
	assert.NoError(t, err)
	text := render.Text(flat)
	assert.Equal(t, render.Text(g), text)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Len(t, lines, g.Height)
	for i, line := range lines {
		assert.Len(t, []rune(line), g.Width, "line %d glyph count", i)
	}
}
