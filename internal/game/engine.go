// path: internal/game/engine.go
package game

import (
	"fmt"
	"sort"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// NewGame creates a game at the requested dimension count with the standard
// setup. Dimension count outside 3-6 is a configuration error.
func NewGame(opts Options) (*Game, error) {
	if opts.Dimensions < shared.MinDimensions || opts.Dimensions > shared.MaxDimensions {
		return nil, fmt.Errorf("dimension count %d outside %d-%d", opts.Dimensions, shared.MinDimensions, shared.MaxDimensions)
	}
	g := &Game{
		dims:           opts.Dimensions,
		fatigue:        opts.Fatigue,
		restrictToView: opts.RestrictToView,
	}
	g.reset()
	return g, nil
}

// Reset restarts the game at the current dimension count, keeping the
// fatigue and view-restriction settings.
func (g *Game) Reset() { g.reset() }

func (g *Game) reset() {
	g.turn = shared.White
	g.captured = [2][]CapturedPiece{}
	g.score = 0
	g.moves = 0
	g.selected = nil
	g.validMoves = nil
	g.viewMode = shared.View3D
	g.viewAxes = []int{0, 1, 2}
	g.slices = make(map[int]int)
	for d := 3; d < g.dims; d++ {
		g.slices[d] = 0
	}
	g.setupBoard()
	g.lastNote = "New game"
}

// Turn returns the color to move.
func (g *Game) Turn() shared.Color { return g.turn }

// Score returns the cumulative move-complexity total.
func (g *Game) Score() float64 { return g.score }

// FatigueEnabled reports whether dimensional fatigue is applied.
func (g *Game) FatigueEnabled() bool { return g.fatigue }

// SetFatigue toggles dimensional fatigue and invalidates any cached moves.
func (g *Game) SetFatigue(on bool) {
	if g.fatigue != on {
		g.Deselect()
		g.fatigue = on
	}
}

// CapturedPieces lists the pieces captured by color, in capture order.
func (g *Game) CapturedPieces(c shared.Color) []CapturedPiece {
	src := g.captured[c.Index()]
	out := make([]CapturedPiece, len(src))
	copy(out, src)
	return out
}

// Highlights lists the cached valid destinations of the selected piece.
// Empty when nothing is selected.
func (g *Game) Highlights() []HighlightState {
	if g.selected == nil {
		return nil
	}
	out := make([]HighlightState, 0, len(g.validMoves))
	for key, isCapture := range g.validMoves {
		coord, ok := shared.ParseKey(key)
		if !ok {
			continue
		}
		out = append(out, HighlightState{Coord: coord, Key: key, IsCapture: isCapture})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func pieceState(pc *Piece) PieceState {
	return PieceState{
		ID:        pc.ID,
		Color:     pc.Color,
		ColorName: pc.Color.String(),
		Type:      pc.Type,
		TypeName:  pc.Type.String(),
		Coord:     pc.Coord.Clone(),
		Key:       pc.Coord.Key(),
	}
}

// State returns the full serializable snapshot for the presentation layer.
func (g *Game) State() BoardState {
	state := BoardState{
		Dimensions:     g.dims,
		Turn:           g.turn,
		TurnName:       g.turn.String(),
		Pieces:         make([]PieceState, 0, len(g.occupied)),
		Captured:       make(map[string][]CapturedPiece, 2),
		Score:          g.score,
		Moves:          g.moves,
		Fatigue:        g.fatigue,
		RestrictToView: g.restrictToView,
		ViewMode:       g.viewMode.String(),
		ViewAxes:       g.ViewAxes(),
		Slices:         g.slicesCopy(),
		Highlights:     g.Highlights(),
		LastNote:       g.lastNote,
	}
	for _, pc := range g.piecesByID() {
		state.Pieces = append(state.Pieces, pieceState(pc))
	}
	for _, c := range []shared.Color{shared.White, shared.Black} {
		state.Captured[c.String()] = g.CapturedPieces(c)
	}
	if g.selected != nil {
		sel := pieceState(g.selected)
		state.Selected = &sel
	}
	return state
}
