// path: internal/game/turn_test.go
package game

import (
	"math"
	"testing"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

func mustSelect(t *testing.T, g *Game, coord shared.Coord) {
	t.Helper()
	if !g.Select(coord) {
		t.Fatalf("select %s failed", coord)
	}
}

func mustMove(t *testing.T, g *Game, from, to shared.Coord) MoveResult {
	t.Helper()
	mustSelect(t, g, from)
	res, moved := g.Target(to)
	if !moved {
		t.Fatalf("move %s -> %s rejected", from, to)
	}
	return res
}

func TestTurnAlternation(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	wr := g.placePiece(shared.White, shared.Rook, shared.Coord{20, 20, 20})
	br := g.placePiece(shared.Black, shared.Rook, shared.Coord{40, 40, 40})
	g.turn = shared.White

	coords := [][2]shared.Coord{
		{wr.Coord.Clone(), shared.Coord{21, 20, 20}},
		{br.Coord.Clone(), shared.Coord{41, 40, 40}},
		{{21, 20, 20}, {20, 20, 20}},
		{{41, 40, 40}, {40, 40, 40}},
	}
	for n, pair := range coords {
		if want := shared.Color(n % 2); g.Turn() != want {
			t.Fatalf("before move %d: turn = %s, want %s", n, g.Turn(), want)
		}
		mustMove(t, g, pair[0], pair[1])
	}
	if g.Turn() != shared.White {
		t.Fatalf("after 4 moves turn should be white again")
	}
}

func TestCaptureRoundTrip(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	rook := g.placePiece(shared.White, shared.Rook, shared.Coord{20, 20, 20})
	victim := shared.Coord{20, 24, 20}
	g.placePiece(shared.Black, shared.Pawn, victim)
	g.turn = shared.White

	before := g.pieceCount()
	res := mustMove(t, g, rook.Coord.Clone(), victim)

	if g.pieceCount() != before-1 {
		t.Fatalf("piece count = %d, want %d", g.pieceCount(), before-1)
	}
	if occ := g.PieceAt(victim); occ == nil || occ.Type != shared.Rook {
		t.Fatalf("capturing rook should occupy %s", victim)
	}
	taken := g.CapturedPieces(shared.White)
	if len(taken) != 1 || taken[0].Type != shared.Pawn {
		t.Fatalf("captured list = %+v, want one black pawn", taken)
	}
	if len(g.CapturedPieces(shared.Black)) != 0 {
		t.Fatalf("black captured nothing")
	}
	if res.Captured == nil || res.Captured.Type != shared.Pawn {
		t.Fatalf("result should carry the capture record")
	}
}

func TestSelectRules(t *testing.T) {
	g := newTestGame(t, 3, false)

	if g.Select(g.at(-3, -4)) {
		t.Fatalf("selecting an empty square must fail")
	}
	if g.Select(g.at(0, blackBackRank)) {
		t.Fatalf("selecting an opponent piece must fail")
	}
	if g.selected != nil {
		t.Fatalf("failed selects must not change state")
	}
	mustSelect(t, g, g.at(0, whitePawnRank))
	if g.selected == nil || len(g.validMoves) == 0 {
		t.Fatalf("select should cache the valid-move set")
	}
	g.Deselect()
	if g.selected != nil || g.validMoves != nil {
		t.Fatalf("deselect should clear cache")
	}
}

func TestTargetOutsideValidMovesDeselects(t *testing.T) {
	g := newTestGame(t, 3, false)
	from := g.at(0, whitePawnRank)
	mustSelect(t, g, from)

	if _, moved := g.Target(g.at(-5, -4)); moved {
		t.Fatalf("destination outside the cached set must not commit")
	}
	if g.selected != nil {
		t.Fatalf("miss should deselect")
	}
	if g.Turn() != shared.White {
		t.Fatalf("miss must not switch the turn")
	}
	if pc := g.PieceAt(from); pc == nil || pc.Type != shared.Pawn {
		t.Fatalf("piece must not move on a miss")
	}
}

func TestPawnForwardScenario(t *testing.T) {
	// White pawn at (0,0,-1) advances with direction -1 to (0,-1,-1); the
	// vacated square then has nothing selectable.
	g := newTestGame(t, 3, false)
	clearBoard(g)
	start := shared.Coord{0, 0, -1}
	g.placePiece(shared.White, shared.Pawn, start)
	g.turn = shared.White

	dest := shared.Coord{0, -1, -1}
	mustMove(t, g, start, dest)

	if pc := g.PieceAt(dest); pc == nil || pc.Type != shared.Pawn {
		t.Fatalf("pawn should sit at %s", dest)
	}
	if g.PieceAt(start) != nil {
		t.Fatalf("source square should be empty")
	}
	if g.Turn() != shared.Black {
		t.Fatalf("turn should have passed to black")
	}
	if g.Select(start) {
		t.Fatalf("selecting the vacated square must fail")
	}
}

func TestClickResolution(t *testing.T) {
	g := newTestGame(t, 3, false)
	pawnSq := g.at(0, whitePawnRank)

	if outcome, _ := g.Click(g.at(-4, -4)); outcome != ClickIgnored {
		t.Fatalf("empty square with no selection = %s, want ignored", outcome)
	}
	if outcome, _ := g.Click(pawnSq); outcome != ClickSelected {
		t.Fatalf("clicking own piece should select")
	}
	// Clicking another friendly piece switches the selection.
	if outcome, _ := g.Click(g.at(-1, whitePawnRank)); outcome != ClickSelected {
		t.Fatalf("clicking another friendly piece should re-select")
	}
	dest := g.at(-1, whitePawnRank-1)
	outcome, res := g.Click(dest)
	if outcome != ClickMoved {
		t.Fatalf("clicking a valid destination should move, got %s", outcome)
	}
	if !res.To.Equal(dest) {
		t.Fatalf("move result to = %s, want %s", res.To, dest)
	}
}

func TestComplexityScoreAccumulates(t *testing.T) {
	g := newTestGame(t, 4, false)
	clearBoard(g)
	hr := g.placePiece(shared.White, shared.HyperRook, shared.Coord{20, 20, 20, 0})
	g.turn = shared.White

	// Delta (1,1,0,1): 3 components changed, one of them a higher dimension.
	dest := shared.Coord{21, 21, 20, 1}
	res := mustMove(t, g, hr.Coord.Clone(), dest)

	want := 7.0 + 0.5*math.Sqrt(3) + 5*3 + 10*1.5 + 2*3
	want = math.Round(want*10) / 10
	if res.Delta != want {
		t.Fatalf("complexity delta = %v, want %v", res.Delta, want)
	}
	if g.Score() != want {
		t.Fatalf("running score = %v, want %v", g.Score(), want)
	}
}

func TestComplexityFatigueMultiplier(t *testing.T) {
	g := newTestGame(t, 5, true)
	clearBoard(g)
	hr := g.placePiece(shared.White, shared.HyperRook, shared.Coord{20, 20, 20, 0, 0})
	g.turn = shared.White

	// Delta (0,0,0,1,1): two higher dimensions used, so the fatigue
	// multiplier applies on top of the exponential bonus.
	dest := shared.Coord{20, 20, 20, 1, 1}
	res := mustMove(t, g, hr.Coord.Clone(), dest)

	base := 7.0 + 0.5*math.Sqrt(2) + 5*2 + 10*math.Pow(1.5, 2) + 2*1
	want := math.Round(base*(1+0.2*2)*10) / 10
	if res.Delta != want {
		t.Fatalf("complexity delta = %v, want %v", res.Delta, want)
	}
}

func TestCaptureBonusCountsOnce(t *testing.T) {
	g := newTestGame(t, 3, false)
	clearBoard(g)
	rook := g.placePiece(shared.White, shared.Rook, shared.Coord{20, 20, 20})
	g.placePiece(shared.Black, shared.Pawn, shared.Coord{20, 23, 20})
	g.turn = shared.White

	res := mustMove(t, g, rook.Coord.Clone(), shared.Coord{20, 23, 20})
	want := math.Round((4.0+2+0.5*3+5*1)*10) / 10
	if res.Delta != want {
		t.Fatalf("capture move delta = %v, want %v", res.Delta, want)
	}
}
