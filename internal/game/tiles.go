// path: internal/game/tiles.go
package game

import "github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"

// Window bounds the rendered lattice extent along every mapped view axis.
type Window struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultWindow covers the classical board span.
func DefaultWindow() Window { return Window{Min: -(boardSpan - 1), Max: 0} }

func (w Window) span() int {
	if w.Max < w.Min {
		return 0
	}
	return w.Max - w.Min + 1
}

// VisibleTiles projects the lattice onto the current view mapping: one tile
// per cell of the window across the mapped axes, with every unmapped
// dimension pinned to its slice value. Pinning affects only what is
// rendered; piece coordinates are untouched.
func (g *Game) VisibleTiles(w Window) []TileState {
	span := w.span()
	if span == 0 || len(g.viewAxes) == 0 {
		return nil
	}

	base := shared.Origin(g.dims)
	mapped := make(map[int]bool, len(g.viewAxes))
	for _, a := range g.viewAxes {
		mapped[a] = true
	}
	for d := 0; d < g.dims; d++ {
		if !mapped[d] {
			base[d] = g.sliceValue(d)
		}
	}

	count := 1
	for range g.viewAxes {
		count *= span
	}
	tiles := make([]TileState, 0, count)

	pos := make([]int, len(g.viewAxes))
	for i := range pos {
		pos[i] = w.Min
	}
	for {
		coord := base.Clone()
		for i, a := range g.viewAxes {
			coord[a] = pos[i]
		}
		tiles = append(tiles, TileState{
			Coord:  coord,
			Key:    coord.Key(),
			Origin: isOrigin(coord),
			Parity: checkerParity(coord),
		})

		i := 0
		for ; i < len(pos); i++ {
			if pos[i] < w.Max {
				pos[i]++
				break
			}
			pos[i] = w.Min
		}
		if i == len(pos) {
			return tiles
		}
	}
}

func isOrigin(c shared.Coord) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}

// checkerParity alternates over the full coordinate, not just the rendered
// axes, so a tile keeps its color when the view rotates.
func checkerParity(c shared.Coord) bool {
	sum := 0
	for _, v := range c {
		sum += v
	}
	return sum&1 == 0
}
