// Package lvlmaze is your in-memory playground for carving, braiding,
// and printing 2D mazes — deterministic, parametrized, repeatable.
//
// 🚀 What is lvlmaze?
//
//	A small, dependency-free library that brings together:
//		• Generation: randomized depth-first carving over a parity grid
//		• Topology: bounded rectangles or wrap-around (toroidal) grids
//		• Sparseness: fill-driven region reservation for stringier layouts
//		• Imperfection: post-carve loop injection with a connectivity guard
//		• Solving: wrap-aware BFS shortest paths through carved passages
//		• Rendering: hall/wall thickening and glyph-per-cell text output
//
// ✨ Why choose lvlmaze?
//
//   - Deterministic – inject a seed (or a *rand.Rand) and replay any maze
//   - Beginner-friendly – one entry point, clear functional options
//   - Pure Go – no cgo, no hidden deps
//   - Honest invariants – final grids hold exactly two cell states
//
// Everything is organized under three subpackages:
//
//	maze/   — Grid type, Generate pipeline (normalize → allocate →
//	          reserve → carve → braid → repair → finalize)
//	solve/  — BFS shortest-path solver over a generated Grid
//	render/ — Thicken (variable hall/wall widths) and Text (glyphs)
//
// Quick ASCII example:
//
//	███████
//	█   █ █
//	█ █ █ █
//	█ █   █
//	███████
//
//	a 7×5 maze rendered by render.Text — '█' is wall, ' ' is passage.
//
// Dive into the package docs for options, invariants, and edge cases.
//
//	go get github.com/katalvlaran/lvlmaze
package lvlmaze
