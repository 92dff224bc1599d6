package render

import (
	"strings"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Text renders g as printable text: one line per row, one glyph per cell.
// Wall maps to GlyphWall, Passage to GlyphPassage, and any other value to
// GlyphOther. A nil grid renders as the empty string.
//
// Complexity: O(W×H) time, O(W×H) memory for the output buffer.
func Text(g *maze.Grid) string {
	if g == nil {
		return ""
	}

	var b strings.Builder
	// Wall glyphs are 3 bytes in UTF-8; reserve the worst case up front.
	b.Grow((g.Width*3 + 1) * g.Height)
	for _, row := range g.Cells {
		for _, s := range row {
			switch s {
			case maze.Wall:
				b.WriteRune(GlyphWall)
			case maze.Passage:
				b.WriteRune(GlyphPassage)
			default:
				b.WriteRune(GlyphOther)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
