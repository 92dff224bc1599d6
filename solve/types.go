package solve

import "errors"

// Sentinel errors for maze solving.
var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to ShortestPath.
	ErrGridNil = errors.New("solve: grid is nil")
	// ErrOutOfBounds indicates an endpoint outside a bounded grid.
	// Toroidal grids reduce endpoints modulo the dimensions instead.
	ErrOutOfBounds = errors.New("solve: endpoint out of bounds")
	// ErrBlocked indicates an endpoint that is not a Passage cell.
	ErrBlocked = errors.New("solve: endpoint is not a passage")
	// ErrNoPath indicates the endpoints lie in disconnected open regions.
	ErrNoPath = errors.New("solve: no path between endpoints")
)
