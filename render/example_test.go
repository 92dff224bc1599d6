// File: render/example_test.go
package render_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/render"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Text
////////////////////////////////////////////////////////////////////////////////

// ExampleText renders a hand-built 5×3 grid with one open corridor.
func ExampleText() {
	g := maze.NewGrid(5, 3, false)
	for x := 1; x <= 3; x++ {
		g.Cells[1][x] = maze.Passage
	}

	fmt.Print(render.Text(g))

	// Output:
	// █████
	// █   █
	// █████
}

////////////////////////////////////////////////////////////////////////////////
// Example: Thicken
////////////////////////////////////////////////////////////////////////////////

// ExampleThicken doubles hall width while keeping single-cell walls: the
// lone open cell of a 3×3 grid becomes a 2×2 room.
func ExampleThicken() {
	g := maze.NewGrid(3, 3, false)
	g.Cells[1][1] = maze.Passage

	room, err := render.Thicken(g, 2, 1)
	if err != nil {
		fmt.Println("thicken:", err)
		return
	}

	fmt.Print(render.Text(room))

	// Output:
	// ████
	// █  █
	// █  █
	// ████
}
