// path: internal/game/board.go
package game

import (
	"sort"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// PieceAt returns the piece occupying coord, or nil. Arity must match the
// active dimension count.
func (g *Game) PieceAt(coord shared.Coord) *Piece {
	coord.MustArity(g.dims)
	return g.occupied[coord.Key()]
}

func (g *Game) placePiece(color shared.Color, pt shared.PieceType, coord shared.Coord) *Piece {
	coord.MustArity(g.dims)
	id := g.nextPieceID
	g.nextPieceID++
	pc := &Piece{
		ID:    id,
		Color: color,
		Type:  pt,
		Coord: coord.Clone(),
	}
	g.occupied[coord.Key()] = pc
	return pc
}

func (g *Game) removePiece(pc *Piece) {
	delete(g.occupied, pc.Coord.Key())
}

// relocatePiece moves pc to dest, which must be empty.
func (g *Game) relocatePiece(pc *Piece, dest shared.Coord) {
	delete(g.occupied, pc.Coord.Key())
	pc.Coord = dest.Clone()
	g.occupied[pc.Coord.Key()] = pc
}

// at builds a coordinate of the current arity with dims 0 and 1 set; all
// higher components are zero.
func (g *Game) at(file, rank int) shared.Coord {
	c := shared.Origin(g.dims)
	c[fileDim] = file
	c[rankDim] = rank
	return c
}

// setupBoard lays out the standard back-rank/pawn arrangement on dimensions
// 0 and 1. When more than three dimensions are active, each side also gets
// one of each hyperpiece offset into the highest dimension.
func (g *Game) setupBoard() {
	g.occupied = make(map[string]*Piece, 4*boardSpan)
	g.nextPieceID = 1

	order := []shared.PieceType{
		shared.Rook, shared.Knight, shared.Bishop, shared.Queen,
		shared.King, shared.Bishop, shared.Knight, shared.Rook,
	}
	setup := func(color shared.Color, backRank, pawnRank int) {
		for file, pt := range order {
			g.placePiece(color, pt, g.at(-file, backRank))
		}
		for file := 0; file < boardSpan; file++ {
			g.placePiece(color, shared.Pawn, g.at(-file, pawnRank))
		}
	}
	setup(shared.White, whiteBackRank, whitePawnRank)
	setup(shared.Black, blackBackRank, blackPawnRank)

	if g.dims > shared.MinDimensions {
		hyper := []shared.PieceType{shared.HyperRook, shared.HyperBishop, shared.HyperKnight}
		top := g.dims - 1
		for i, pt := range hyper {
			wc := g.at(-(2 + i), whiteBackRank)
			wc[top] = -1
			g.placePiece(shared.White, pt, wc)

			bc := g.at(-(2 + i), blackBackRank)
			bc[top] = -1
			g.placePiece(shared.Black, pt, bc)
		}
	}
}

// piecesByID returns the live pieces sorted by ID for deterministic
// iteration; the occupancy map itself has no order.
func (g *Game) piecesByID() []*Piece {
	out := make([]*Piece, 0, len(g.occupied))
	for _, pc := range g.occupied {
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *Game) pieceCount() int { return len(g.occupied) }
