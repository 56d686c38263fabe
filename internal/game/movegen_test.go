// path: internal/game/movegen_test.go
package game

import (
	"testing"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

func newTestGame(t *testing.T, dims int, fatigue bool) *Game {
	t.Helper()
	g, err := NewGame(Options{Dimensions: dims, Fatigue: fatigue})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func clearBoard(g *Game) {
	for _, pc := range g.piecesByID() {
		g.removePiece(pc)
	}
}

// farCorner is an empty region well away from the initial setup, so open
// board generator counts are exact.
func farCorner(dims int) shared.Coord {
	c := shared.Origin(dims)
	for i := range c {
		c[i] = 40
	}
	return c
}

func moveSet(moves []shared.Coord) map[string]bool {
	out := make(map[string]bool, len(moves))
	for _, m := range moves {
		out[m.Key()] = true
	}
	return out
}

func TestRookOpenBoardCandidateCount(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	rook := g.placePiece(shared.White, shared.Rook, farCorner(3))

	moves := g.GenerateMoves(rook)
	// 3 dimensions x 2 directions x range 7.
	if got, want := len(moves), 42; got != want {
		t.Fatalf("rook candidates = %d, want %d", got, want)
	}
}

func TestKnightOpenBoardCandidateCount(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	knight := g.placePiece(shared.White, shared.Knight, farCorner(3))

	moves := g.GenerateMoves(knight)
	// The L-move is generalized over every ordered dimension pair: 6 pairs
	// x 4 sign combinations at three dimensions.
	if got, want := len(moves), 24; got != want {
		t.Fatalf("knight candidates = %d, want %d", got, want)
	}
}

func TestKingOpenBoardCandidateCount(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	king := g.placePiece(shared.White, shared.King, farCorner(3))

	moves := g.GenerateMoves(king)
	if got, want := len(moves), 26; got != want { // 3^3 - 1
		t.Fatalf("king candidates = %d, want %d", got, want)
	}
}

func TestGeneratorsNeverReturnFriendlySquares(t *testing.T) {
	for _, dims := range []int{3, 4, 5, 6} {
		g := newTestGame(t, dims, true)
		for _, pc := range g.piecesByID() {
			for _, dest := range g.GenerateMoves(pc) {
				if occ := g.PieceAt(dest); occ != nil && occ.Color == pc.Color {
					t.Fatalf("dims=%d: %s %s at %s may move onto friendly %s at %s",
						dims, pc.Color, pc.Type, pc.Coord, occ.Type, dest)
				}
			}
		}
	}
}

func TestSliderStopsAtBlocker(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	origin := farCorner(3)
	rook := g.placePiece(shared.White, shared.Rook, origin)

	friendBlock := g.offset(origin, 0, 2)
	g.placePiece(shared.White, shared.Pawn, friendBlock)
	enemyBlock := g.offset(origin, 1, 3)
	g.placePiece(shared.Black, shared.Pawn, enemyBlock)

	moves := moveSet(g.GenerateMoves(rook))

	if !moves[g.offset(origin, 0, 1).Key()] {
		t.Fatalf("square before friendly blocker missing")
	}
	if moves[friendBlock.Key()] {
		t.Fatalf("friendly blocker square returned")
	}
	if moves[g.offset(origin, 0, 3).Key()] {
		t.Fatalf("square beyond friendly blocker returned")
	}

	if !moves[enemyBlock.Key()] {
		t.Fatalf("enemy blocker square should be capturable")
	}
	if moves[g.offset(origin, 1, 4).Key()] {
		t.Fatalf("square beyond enemy blocker returned")
	}
}

func TestPawnMoves(t *testing.T) {
	g := newTestGame(t, 3, false)

	pawn := g.PieceAt(g.at(-3, whitePawnRank))
	if pawn == nil || pawn.Type != shared.Pawn {
		t.Fatalf("expected white pawn on start rank")
	}
	moves := moveSet(g.GenerateMoves(pawn))
	single := g.at(-3, whitePawnRank-1)
	double := g.at(-3, whitePawnRank-2)
	if !moves[single.Key()] || !moves[double.Key()] {
		t.Fatalf("expected single and double step, got %v", moves)
	}
	if len(moves) != 2 {
		t.Fatalf("pawn with no captures should have 2 moves, got %d", len(moves))
	}

	// A diagonal capture combines the file shift with the forward step.
	enemy := g.at(-2, whitePawnRank-1)
	g.placePiece(shared.Black, shared.Knight, enemy)
	moves = moveSet(g.GenerateMoves(pawn))
	if !moves[enemy.Key()] {
		t.Fatalf("expected diagonal capture at %s", enemy)
	}

	// Blocked straight ahead: no forward moves, capture still available.
	g.placePiece(shared.Black, shared.Rook, single)
	moves = moveSet(g.GenerateMoves(pawn))
	if moves[single.Key()] || moves[double.Key()] {
		t.Fatalf("blocked pawn may not step forward")
	}
	if !moves[enemy.Key()] {
		t.Fatalf("blocked pawn keeps its diagonal capture")
	}
}

func TestBlackPawnMovesTowardWhite(t *testing.T) {
	g := newTestGame(t, 3, false)
	pawn := g.PieceAt(g.at(0, blackPawnRank))
	if pawn == nil || pawn.Color != shared.Black {
		t.Fatalf("expected black pawn")
	}
	moves := moveSet(g.GenerateMoves(pawn))
	if !moves[g.at(0, blackPawnRank+1).Key()] {
		t.Fatalf("black pawn must advance toward rank 0")
	}
}

func TestRookFatigueShortensHigherDimensions(t *testing.T) {
	g := newTestGame(t, 5, true)
	clearBoard(g)
	rook := g.placePiece(shared.White, shared.Rook, farCorner(5))
	moves := moveSet(g.GenerateMoves(rook))

	origin := rook.Coord
	// Dimension 2 keeps the full range.
	if !moves[g.offset(origin, 2, 7).Key()] {
		t.Fatalf("dimension 2 should reach range 7")
	}
	// Dimension 3 is halved to 3, dimension 4 to 1.
	if !moves[g.offset(origin, 3, 3).Key()] || moves[g.offset(origin, 3, 4).Key()] {
		t.Fatalf("dimension 3 range should be exactly 3")
	}
	if !moves[g.offset(origin, 4, 1).Key()] || moves[g.offset(origin, 4, 2).Key()] {
		t.Fatalf("dimension 4 range should be exactly 1")
	}
}

func TestHyperRookThreeDimensionFatigueRange(t *testing.T) {
	g := newTestGame(t, 3, true)
	clearBoard(g)
	hr := g.placePiece(shared.White, shared.HyperRook, farCorner(3))
	moves := moveSet(g.GenerateMoves(hr))

	origin := hr.Coord
	// Three dimensions at once: range = max(7 - 2^(3-2), 2) = 5.
	if !moves[g.offset(origin, 0, 5, 1, 5, 2, 5).Key()] {
		t.Fatalf("triple-dimension slide should reach magnitude 5")
	}
	if moves[g.offset(origin, 0, 6, 1, 6, 2, 6).Key()] {
		t.Fatalf("triple-dimension slide must stop at magnitude 5")
	}
	// A single-dimension rook slide keeps range 7 in the low dimensions.
	if !moves[g.offset(origin, 0, 7).Key()] {
		t.Fatalf("single-dimension slide should keep range 7")
	}
}

func TestHyperRookTransportJumpsBlockers(t *testing.T) {
	g := newTestGame(t, 4, false)
	clearBoard(g)
	origin := farCorner(4)
	hr := g.placePiece(shared.White, shared.HyperRook, origin)
	// A friendly piece one step up dimension 3 blocks the slide but not the
	// transport jump past it.
	g.placePiece(shared.White, shared.Pawn, g.offset(origin, 3, 1))

	moves := moveSet(g.GenerateMoves(hr))
	if moves[g.offset(origin, 3, 1).Key()] {
		t.Fatalf("friendly square returned")
	}
	if !moves[g.offset(origin, 3, 2).Key()] || !moves[g.offset(origin, 3, 3).Key()] {
		t.Fatalf("transport should hop the blocker to +2 and +3")
	}
	if moves[g.offset(origin, 3, 4).Key()] {
		t.Fatalf("transport reaches at most 3 cells")
	}
}

func TestHyperBishopTripleDiagonal(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	hb := g.placePiece(shared.Black, shared.HyperBishop, farCorner(3))
	moves := moveSet(g.GenerateMoves(hb))

	origin := hb.Coord
	// Without fatigue a 3-dimension diagonal has range 7 - (3-2) = 6.
	if !moves[g.offset(origin, 0, 6, 1, 6, 2, 6).Key()] {
		t.Fatalf("triple diagonal should reach magnitude 6")
	}
	if moves[g.offset(origin, 0, 7, 1, 7, 2, 7).Key()] {
		t.Fatalf("triple diagonal must stop at magnitude 6")
	}
	// Mixed signs are part of the same subset scan.
	if !moves[g.offset(origin, 0, -2, 1, 2, 2, -2).Key()] {
		t.Fatalf("sign patterns should all be generated")
	}
}

func TestHyperKnightTeleportPatterns(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	hk := g.placePiece(shared.White, shared.HyperKnight, farCorner(3))
	moves := moveSet(g.GenerateMoves(hk))

	origin := hk.Coord
	cases := []shared.Coord{
		g.offset(origin, 0, 2, 1, 1),          // classical L
		g.offset(origin, 0, 3, 1, 1, 2, -1),   // (3,1,1)
		g.offset(origin, 0, -2, 1, 2, 2, 1),   // (2,2,1)
		g.offset(origin, 2, 3, 0, -1, 1, 1),   // (3,1,1), 3 along dimension 2
	}
	for _, dest := range cases {
		if !moves[dest.Key()] {
			t.Fatalf("expected hyperknight destination %s", dest)
		}
	}
	if moves[g.offset(origin, 0, 3, 1, 3).Key()] {
		t.Fatalf("(3,3) is not a hyperknight pattern")
	}
}

func TestHyperKnightIgnoresPath(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	origin := farCorner(3)
	hk := g.placePiece(shared.White, shared.HyperKnight, origin)
	// Wall off the adjacent squares; a jumper does not care.
	for _, d := range []int{0, 1, 2} {
		for _, s := range []int{1, -1} {
			g.placePiece(shared.White, shared.Pawn, g.offset(origin, d, s))
		}
	}
	moves := moveSet(g.GenerateMoves(hk))
	if !moves[g.offset(origin, 0, 2, 1, 1).Key()] {
		t.Fatalf("jump destination should ignore blocked path")
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	q := g.placePiece(shared.White, shared.Queen, farCorner(3))
	moves := moveSet(g.GenerateMoves(q))

	origin := q.Coord
	if !moves[g.offset(origin, 1, -7).Key()] {
		t.Fatalf("queen should have rook slides")
	}
	if !moves[g.offset(origin, 0, 4, 2, 4).Key()] {
		t.Fatalf("queen should have bishop diagonals")
	}
	// 42 rook squares + 12 diagonals x 7 range.
	if got, want := len(moves), 42+84; got != want {
		t.Fatalf("queen candidates = %d, want %d", got, want)
	}
}

func TestRestrictToViewLimitsSliding(t *testing.T) {
	g, err := NewGame(Options{Dimensions: 3, RestrictToView: true})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	clearBoard(g)
	rook := g.placePiece(shared.White, shared.Rook, farCorner(3))

	// Full 3D view: all three dimensions slide.
	moves := moveSet(g.GenerateMoves(rook))
	if !moves[g.offset(rook.Coord, 2, 1).Key()] {
		t.Fatalf("3d view should allow dimension 2 slides")
	}

	g.SetViewMode(shared.View2D)
	moves = moveSet(g.GenerateMoves(rook))
	if moves[g.offset(rook.Coord, 2, 1).Key()] {
		t.Fatalf("restricted 2d view must confine slides to the mapped axes")
	}
	if !moves[g.offset(rook.Coord, 0, 1).Key()] || !moves[g.offset(rook.Coord, 1, 1).Key()] {
		t.Fatalf("mapped axes should still slide")
	}
}
