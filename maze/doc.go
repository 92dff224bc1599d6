// Package maze procedurally generates 2D mazes: grids of binary cell
// states (Wall / Passage) connected as a spanning structure, optionally
// embedded on a wrap-around (toroidal) topology, with tunable sparseness
// and tunable loop density.
//
// What:
//
//   - Generate runs the full pipeline: dimension normalization, grid
//     allocation, region reservation, randomized depth-first carving with
//     an explicit frontier stack, post-carve loop injection, single-cell
//     island repair, and reservation clearing.
//   - Grid wraps the resulting width×height field with parity-aware
//     accessors; PassageComponents identifies connected open regions.
//
// Why:
//
//   - Game levels: deterministic, seed-replayable dungeon layouts.
//   - Simulations: parametrized corridor networks on bounded or toroidal
//     grids.
//   - Teaching: a compact, inspectable spanning-tree carver.
//
// Parity model:
//
//   - Positions with both coordinates odd are "cell" positions (candidate
//     passage centers); all other positions are walls unless carved open.
//     The carver therefore jumps by 2 and opens the intervening wall.
//   - Dimensions are rounded up to even when wrapping, odd otherwise, so
//     every cell position keeps a well-defined wall on each side.
//
// Complexity:
//
//   - Generate:          O(W×H) time, O(W×H) memory (grid + frontier stack).
//   - PassageComponents: O(W×H×4) time, O(W×H) memory.
//
// Options:
//
//   - WithWrap():           embed the maze on a torus.
//   - WithImperfection(f):  loop-injection fraction in [0,1]; clamped.
//   - WithFill(f):          fill fraction steering reservation; default 1.
//   - WithSeed(seed):       deterministic RNG for reproducible mazes.
//   - WithRand(r):          caller-supplied RNG.
//
// Errors:
//
//   - ErrTooSmall:    normalized dimensions admit no cell position.
//   - ErrNoStartCell: bounded start resampling found no carvable cell.
//
// All numeric inputs are clamped or defaulted, never rejected; the two
// sentinel errors above are the only failure modes.
package maze
