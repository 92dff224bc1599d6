package render

import "errors"

// Sentinel errors for render transforms.
var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to Thicken.
	ErrGridNil = errors.New("render: grid is nil")
	// ErrBadScale indicates a hall or wall width below 1.
	ErrBadScale = errors.New("render: hall and wall widths must be at least 1")
)

// Glyphs used by Text, one per cell state.
const (
	// GlyphWall marks a blocked cell.
	GlyphWall = '█'
	// GlyphPassage marks an open cell.
	GlyphPassage = ' '
	// GlyphOther marks any non-terminal state, such as a transient
	// reservation in a grid captured mid-generation.
	GlyphOther = '░'
)
