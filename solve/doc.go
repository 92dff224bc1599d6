// Package solve provides breadth-first shortest-path search over a
// generated maze.Grid, returning the fewest-step sequence of passage
// cells between two endpoints.
//
// What:
//
//   - ShortestPath walks Passage cells under 4-connectivity, honoring
//     wrap-around adjacency on toroidal grids, and reconstructs the path
//     from parent links.
//
// Why:
//
//   - Game AI: route actors through generated levels.
//   - Validation: prove two regions of a maze are connected (or not).
//
// Complexity:
//
//   - Time:   O(W×H×4) in the worst case.
//   - Memory: O(W×H) for visited flags and parent links.
//
// Errors:
//
//   - ErrGridNil:     the grid is nil.
//   - ErrOutOfBounds: an endpoint lies outside a bounded grid.
//   - ErrBlocked:     an endpoint is not a Passage cell.
//   - ErrNoPath:      the endpoints sit in different open regions.
package solve
