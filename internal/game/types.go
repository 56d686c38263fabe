// path: internal/game/types.go
// Package game implements the n-dimensional chess engine: board state, move
// generation, the turn/capture state machine, and the dimension/view
// controller. The presentation layer holds a single *Game and drives it
// through the exported API; nothing here renders.
package game

import (
	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// Board layout constants. Files run along dimension 0, ranks along dimension
// 1; both span 0..-7 so the origin is always a corner of the classical board.
// White moves toward negative ranks, black toward zero.
const (
	fileDim = 0
	rankDim = 1

	boardSpan = 8
	baseRange = 7

	whiteBackRank = 0
	blackBackRank = -(boardSpan - 1)
	whitePawnRank = whiteBackRank - 1
	blackPawnRank = blackBackRank + 1
)

func forwardDir(c shared.Color) int {
	if c == shared.White {
		return -1
	}
	return 1
}

func pawnStartRank(c shared.Color) int {
	if c == shared.White {
		return whitePawnRank
	}
	return blackPawnRank
}

// Piece is one piece on the lattice. The occupancy map owns every live
// Piece; serialized snapshots are disposable copies.
type Piece struct {
	ID    int
	Color shared.Color
	Type  shared.PieceType
	Coord shared.Coord
}

// CapturedPiece is the record appended to the capturing color's list.
type CapturedPiece struct {
	Type      shared.PieceType `json:"type"`
	TypeName  string           `json:"typeName"`
	Color     shared.Color     `json:"color"`
	ColorName string           `json:"colorName"`
}

// Options configures a new game.
type Options struct {
	Dimensions     int
	Fatigue        bool
	RestrictToView bool
}

// Game is the single mutable aggregate holding all engine state.
type Game struct {
	dims     int
	occupied map[string]*Piece
	turn     shared.Color
	captured [2][]CapturedPiece
	score    float64
	moves    int
	lastNote string

	fatigue        bool
	restrictToView bool

	viewMode shared.ViewMode
	viewAxes []int
	slices   map[int]int

	selected   *Piece
	validMoves map[string]bool // destination key -> is capture

	nextPieceID int
}

// PieceState is a serializable representation of a Piece.
type PieceState struct {
	ID        int              `json:"id"`
	Color     shared.Color     `json:"color"`
	ColorName string           `json:"colorName"`
	Type      shared.PieceType `json:"type"`
	TypeName  string           `json:"typeName"`
	Coord     shared.Coord     `json:"coord"`
	Key       string           `json:"key"`
}

// HighlightState marks one valid destination of the selected piece.
type HighlightState struct {
	Coord     shared.Coord `json:"coord"`
	Key       string       `json:"key"`
	IsCapture bool         `json:"isCapture"`
}

// TileState is one lattice cell projected for rendering.
type TileState struct {
	Coord  shared.Coord `json:"coord"`
	Key    string       `json:"key"`
	Origin bool         `json:"isOrigin"`
	Parity bool         `json:"checkerParity"`
}

// BoardState is the full serializable snapshot consumed by the presentation
// layer.
type BoardState struct {
	Dimensions     int                        `json:"dimensions"`
	Turn           shared.Color               `json:"turn"`
	TurnName       string                     `json:"turnName"`
	Pieces         []PieceState               `json:"pieces"`
	Captured       map[string][]CapturedPiece `json:"captured"`
	Score          float64                    `json:"complexityScore"`
	Moves          int                        `json:"movesPlayed"`
	Fatigue        bool                       `json:"fatigueEnabled"`
	RestrictToView bool                       `json:"restrictToView"`
	ViewMode       string                     `json:"viewMode"`
	ViewAxes       []int                      `json:"viewAxes"`
	Slices         map[int]int                `json:"slices"`
	Selected       *PieceState                `json:"selected,omitempty"`
	Highlights     []HighlightState           `json:"highlights"`
	LastNote       string                     `json:"lastNote"`
}

// MoveResult reports one committed move back to the caller.
type MoveResult struct {
	From     shared.Coord   `json:"from"`
	To       shared.Coord   `json:"to"`
	Piece    PieceState     `json:"piece"`
	Captured *CapturedPiece `json:"captured,omitempty"`
	Delta    float64        `json:"complexityDelta"`
	Turn     shared.Color   `json:"turn"`
}
