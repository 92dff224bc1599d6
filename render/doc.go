// Package render provides pure, stateless transforms downstream of maze
// generation: Thicken scales a carved grid into variable-width halls and
// walls, and Text converts any grid into a printable glyph
// representation.
//
// Neither transform performs carving logic; both consume a finished
// *maze.Grid and leave it untouched.
//
// What:
//
//   - Thicken(g, hallWidth, wallWidth): replicates each cell row/column
//     hallWidth times and each wall row/column wallWidth times,
//     preserving cell states. The output loses the odd/odd parity
//     semantics of the source.
//   - Text(g): one line per row, one glyph per cell — GlyphWall for
//     Wall, GlyphPassage for Passage, GlyphOther for anything else (a
//     defensive default for annotated or mid-generation grids).
//
// Complexity:
//
//   - Thicken: O(W'×H') time and memory, where W'/H' are the scaled dims.
//   - Text:    O(W×H) time, O(W×H) memory for the output buffer.
//
// Errors:
//
//   - ErrGridNil:  the grid is nil.
//   - ErrBadScale: a hall or wall width below 1.
package render
