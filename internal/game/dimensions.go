// path: internal/game/dimensions.go
package game

import (
	"fmt"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// Dimensions returns the active dimension count.
func (g *Game) Dimensions() int { return g.dims }

// AddDimension activates one more dimension, re-deriving every piece's
// coordinate by zero-padding the new slot. Rejected at the six-dimension
// ceiling. No pieces are created; hyperpieces enter play only through a
// reset at a higher dimension count.
func (g *Game) AddDimension() error {
	if g.dims >= shared.MaxDimensions {
		return ErrDimensionCeiling
	}
	g.Deselect()
	g.dims++

	migrated := make(map[string]*Piece, len(g.occupied))
	for _, pc := range g.occupied {
		pc.Coord = pc.Coord.WithDims(g.dims)
		migrated[pc.Coord.Key()] = pc
	}
	g.occupied = migrated
	g.slices[g.dims-1] = 0
	g.lastNote = fmt.Sprintf("Dimension %d activated", g.dims-1)
	return nil
}

// RemoveDimension deactivates dimension d. Dimensions 0-2 are permanent and
// the count never drops below three. A piece with a nonzero component in d
// is clamped to the 0-slice; if its clamped cell is already occupied the
// piece leaves play, and every piece lost that way is returned so the
// presentation layer can report it.
func (g *Game) RemoveDimension(d int) ([]PieceState, error) {
	if g.dims <= shared.MinDimensions {
		return nil, ErrDimensionFloor
	}
	if d < shared.MinDimensions {
		return nil, ErrDimensionLocked
	}
	if d >= g.dims {
		return nil, ErrUnknownDimension
	}
	g.Deselect()

	pieces := g.piecesByID()
	g.dims--
	migrated := make(map[string]*Piece, len(pieces))
	var lost []PieceState

	// Truncate every coordinate exactly once, recording which pieces sat off
	// the 0-slice before any mutation. Pieces already on the 0-slice keep
	// their cell; clamped pieces claim theirs afterwards, in ID order, and
	// yield to any survivor.
	var clamped []*Piece
	for _, pc := range pieces {
		offSlice := pc.Coord[d] != 0
		pc.Coord = pc.Coord.Without(d)
		if offSlice {
			clamped = append(clamped, pc)
			continue
		}
		migrated[pc.Coord.Key()] = pc
	}
	for _, pc := range clamped {
		if _, taken := migrated[pc.Coord.Key()]; taken {
			lost = append(lost, pieceState(pc))
			continue
		}
		migrated[pc.Coord.Key()] = pc
	}
	g.occupied = migrated

	g.remapViewAfterRemoval(d)
	if len(lost) > 0 {
		g.lastNote = fmt.Sprintf("Dimension %d removed, %d piece(s) lost in the collapse", d, len(lost))
	} else {
		g.lastNote = fmt.Sprintf("Dimension %d removed", d)
	}
	return lost, nil
}

// remapViewAfterRemoval drops d from the view mapping and slice table and
// shifts every higher dimension index down one slot.
func (g *Game) remapViewAfterRemoval(d int) {
	axes := g.viewAxes[:0]
	for _, a := range g.viewAxes {
		switch {
		case a == d:
			continue
		case a > d:
			axes = append(axes, a-1)
		default:
			axes = append(axes, a)
		}
	}
	g.viewAxes = axes

	slices := make(map[int]int, len(g.slices))
	for dim, v := range g.slices {
		switch {
		case dim == d:
			continue
		case dim > d:
			slices[dim-1] = v
		default:
			slices[dim] = v
		}
	}
	g.slices = slices

	g.fillViewAxes()
}

// fillViewAxes tops the mapping back up to its required size with the lowest
// unmapped dimensions.
func (g *Game) fillViewAxes() {
	want := 3
	if g.viewMode == shared.View2D {
		want = 2
	}
	if want > g.dims {
		want = g.dims
	}
	mapped := make(map[int]bool, len(g.viewAxes))
	for _, a := range g.viewAxes {
		mapped[a] = true
	}
	for d := 0; d < g.dims && len(g.viewAxes) < want; d++ {
		if !mapped[d] {
			g.viewAxes = append(g.viewAxes, d)
			mapped[d] = true
			delete(g.slices, d)
		}
	}
	if len(g.viewAxes) > want {
		for _, a := range g.viewAxes[want:] {
			if _, ok := g.slices[a]; !ok {
				g.slices[a] = 0
			}
		}
		g.viewAxes = g.viewAxes[:want]
	}
}

// SetViewMode switches between the 2-axis and 3-axis render mappings. Slice
// mode renders three axes; it differs only in how unmapped dimensions are
// presented.
func (g *Game) SetViewMode(mode shared.ViewMode) {
	if mode == g.viewMode {
		return
	}
	g.Deselect()
	g.viewMode = mode
	g.fillViewAxes()
	g.lastNote = fmt.Sprintf("View mode %s", mode)
}

// SetViewAxis maps dimension dim onto render axis slot. Mapping a dimension
// that already occupies another slot swaps the two.
func (g *Game) SetViewAxis(slot, dim int) error {
	if slot < 0 || slot >= len(g.viewAxes) {
		return ErrInvalidViewSlot
	}
	if dim < 0 || dim >= g.dims {
		return ErrUnknownDimension
	}
	g.Deselect()
	prev := g.viewAxes[slot]
	if prev == dim {
		return nil
	}
	for i, a := range g.viewAxes {
		if a == dim {
			g.viewAxes[i] = prev
			g.viewAxes[slot] = dim
			g.lastNote = fmt.Sprintf("Axes %d and %d swapped", slot, i)
			return nil
		}
	}
	g.viewAxes[slot] = dim
	delete(g.slices, dim)
	if _, ok := g.slices[prev]; !ok {
		g.slices[prev] = 0
	}
	g.lastNote = fmt.Sprintf("Axis %d now renders dimension %d", slot, dim)
	return nil
}

// SetSlice pins the rendered cross-section of an unmapped dimension. Pieces
// never move; only which lattice slice is drawn changes.
func (g *Game) SetSlice(dim, value int) error {
	if dim < 0 || dim >= g.dims {
		return ErrUnknownDimension
	}
	for _, a := range g.viewAxes {
		if a == dim {
			return ErrSlicedViewAxis
		}
	}
	g.slices[dim] = value
	return nil
}

// ViewAxes returns a copy of the current axis mapping.
func (g *Game) ViewAxes() []int {
	out := make([]int, len(g.viewAxes))
	copy(out, g.viewAxes)
	return out
}

func (g *Game) sliceValue(dim int) int { return g.slices[dim] }

func (g *Game) slicesCopy() map[int]int {
	out := make(map[int]int, len(g.slices))
	for k, v := range g.slices {
		out[k] = v
	}
	return out
}
