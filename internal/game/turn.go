// path: internal/game/turn.go
package game

import (
	"fmt"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// The turn machine has two states: idle (no selection) and selected (a piece
// of the side to move is selected and its valid-move set is cached). Every
// operation is total; invalid input is a no-op, never an error.

// Select picks up the piece at coord for the side to move. It reports false
// and leaves state untouched when the square is empty or holds an opponent
// piece. On success the valid-move set is computed and cached; a destination
// is only ever honored against the cache from the most recent Select.
func (g *Game) Select(coord shared.Coord) bool {
	coord.MustArity(g.dims)
	pc := g.occupied[coord.Key()]
	if pc == nil || pc.Color != g.turn {
		return false
	}

	moves := g.GenerateMoves(pc)
	cache := make(map[string]bool, len(moves))
	for _, dest := range moves {
		victim := g.occupied[dest.Key()]
		cache[dest.Key()] = victim != nil && victim.Color != pc.Color
	}

	g.selected = pc
	g.validMoves = cache
	return true
}

// Deselect clears the selection and cached moves unconditionally.
func (g *Game) Deselect() {
	g.selected = nil
	g.validMoves = nil
}

// Target commits a move of the selected piece to coord if coord is in the
// cached valid-move set; otherwise it only deselects. The returned bool
// reports whether a move was committed.
func (g *Game) Target(coord shared.Coord) (MoveResult, bool) {
	coord.MustArity(g.dims)
	pc := g.selected
	if pc == nil {
		return MoveResult{}, false
	}
	key := coord.Key()
	isCapture, valid := g.validMoves[key]
	if !valid {
		g.Deselect()
		return MoveResult{}, false
	}

	from := pc.Coord.Clone()
	var capturedRec *CapturedPiece
	if isCapture {
		victim := g.occupied[key]
		rec := CapturedPiece{
			Type:      victim.Type,
			TypeName:  victim.Type.String(),
			Color:     victim.Color,
			ColorName: victim.Color.String(),
		}
		g.removePiece(victim)
		g.captured[pc.Color.Index()] = append(g.captured[pc.Color.Index()], rec)
		capturedRec = &rec
	}

	g.relocatePiece(pc, coord)

	delta := g.moveComplexity(pc.Type, from, coord, isCapture)
	g.score += delta
	g.moves++
	g.turn = g.turn.Opposite()
	g.Deselect()

	if capturedRec != nil {
		g.lastNote = fmt.Sprintf("%s %s %s takes %s on %s", pc.Color, pc.Type, from, capturedRec.TypeName, coord)
	} else {
		g.lastNote = fmt.Sprintf("%s %s %s to %s", pc.Color, pc.Type, from, coord)
	}

	return MoveResult{
		From:     from,
		To:       coord.Clone(),
		Piece:    pieceState(pc),
		Captured: capturedRec,
		Delta:    delta,
		Turn:     g.turn,
	}, true
}

// ClickOutcome names what a pick event resolved to.
type ClickOutcome uint8

const (
	ClickIgnored ClickOutcome = iota
	ClickSelected
	ClickDeselected
	ClickMoved
)

func (o ClickOutcome) String() string {
	switch o {
	case ClickIgnored:
		return "ignored"
	case ClickSelected:
		return "selected"
	case ClickDeselected:
		return "deselected"
	case ClickMoved:
		return "moved"
	default:
		return "?"
	}
}

// Click resolves a raw pick from the presentation layer. With a selection
// live, the pick is tried as a destination first; a miss falls through to
// re-selection, so clicking another friendly piece switches the selection.
func (g *Game) Click(coord shared.Coord) (ClickOutcome, MoveResult) {
	coord.MustArity(g.dims)
	hadSelection := g.selected != nil
	if hadSelection {
		if res, moved := g.Target(coord); moved {
			return ClickMoved, res
		}
		// The miss already deselected; fall through to re-selection.
	}
	if g.Select(coord) {
		return ClickSelected, MoveResult{}
	}
	if hadSelection {
		return ClickDeselected, MoveResult{}
	}
	return ClickIgnored, MoveResult{}
}
