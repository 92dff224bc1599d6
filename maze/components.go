package maze

// PassageComponents finds all contiguous regions of Passage cells under
// 4-connectivity, honoring wrap-around adjacency on toroidal grids.
// Returns a slice of components; each component is a slice of row-major
// cell indices in discovery order.
//
// To convert an index back to (x, y), use Coordinate(idx).
//
// Time:   O(W×H×4).
// Memory: O(W×H) for visited flags and output.
func (g *Grid) PassageComponents() [][]int {
	total := g.Width * g.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != Passage {
				continue
			}
			i0 := g.Index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect the component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := g.Coordinate(u)
				for _, d := range cardinal {
					vx, vy := ux+d[0], uy+d[1]
					if g.Wrap {
						vx, vy = mod(vx, g.Width), mod(vy, g.Height)
					} else if !g.InBounds(vx, vy) {
						continue
					}
					if g.Cells[vy][vx] != Passage {
						continue
					}
					vi := g.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
