// path: internal/game/movegen.go
package game

import "github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"

// generatorFunc produces every legal destination for one piece type. Each
// generator is resolved once through the fixed table below; piece behavior is
// never dispatched on names or strings.
type generatorFunc func(*Game, *Piece, *moveList)

var generators = map[shared.PieceType]generatorFunc{
	shared.Pawn:        (*Game).pawnMoves,
	shared.Knight:      (*Game).knightMoves,
	shared.Bishop:      (*Game).bishopMoves,
	shared.Rook:        (*Game).rookMoves,
	shared.Queen:       (*Game).queenMoves,
	shared.King:        (*Game).kingMoves,
	shared.HyperRook:   (*Game).hyperRookMoves,
	shared.HyperBishop: (*Game).hyperBishopMoves,
	shared.HyperKnight: (*Game).hyperKnightMoves,
}

// moveList collects destinations, deduplicating by coordinate key. The hyper
// generators overlap their classical parts (a one-axis hyperrook slide is
// also a rook slide), so dedup happens here rather than in each generator.
type moveList struct {
	seen map[string]struct{}
	out  []shared.Coord
}

func newMoveList() *moveList {
	return &moveList{seen: make(map[string]struct{})}
}

func (ml *moveList) add(c shared.Coord) {
	key := c.Key()
	if _, dup := ml.seen[key]; dup {
		return
	}
	ml.seen[key] = struct{}{}
	ml.out = append(ml.out, c)
}

// GenerateMoves returns every legal destination for pc under the current
// dimension set, occupancy, and fatigue setting. Destinations occupied by a
// friendly piece are never returned; for sliding types an enemy destination
// terminates its ray.
func (g *Game) GenerateMoves(pc *Piece) []shared.Coord {
	if pc == nil {
		return nil
	}
	gen, ok := generators[pc.Type]
	if !ok {
		return nil
	}
	ml := newMoveList()
	gen(g, pc, ml)
	return ml.out
}

// scan walks from pc along delta one step at a time, up to rng steps,
// stopping at the first occupied square (kept if enemy).
func (g *Game) scan(pc *Piece, delta shared.Coord, rng int, ml *moveList) {
	cur := pc.Coord.Clone()
	for step := 0; step < rng; step++ {
		for i := range cur {
			cur[i] += delta[i]
		}
		occ := g.occupied[cur.Key()]
		if occ == nil {
			ml.add(cur.Clone())
			continue
		}
		if occ.Color != pc.Color {
			ml.add(cur.Clone())
		}
		return
	}
}

// jump adds dest if it is empty or holds an enemy piece. No path check.
func (g *Game) jump(pc *Piece, dest shared.Coord, ml *moveList) {
	occ := g.occupied[dest.Key()]
	if occ == nil || occ.Color != pc.Color {
		ml.add(dest)
	}
}

func (g *Game) offset(from shared.Coord, deltas ...int) shared.Coord {
	out := from.Clone()
	for i := 0; i+1 < len(deltas); i += 2 {
		out[deltas[i]] += deltas[i+1]
	}
	return out
}

// slidingDims lists the dimensions a rook or bishop may slide along. In the
// restricted 2D view mode, with the restriction flag on, slides are confined
// to the dimensions currently mapped to render axes.
func (g *Game) slidingDims() []int {
	if g.restrictToView && len(g.viewAxes) < 3 {
		dims := make([]int, len(g.viewAxes))
		copy(dims, g.viewAxes)
		return dims
	}
	dims := make([]int, g.dims)
	for i := range dims {
		dims[i] = i
	}
	return dims
}

func (g *Game) pawnMoves(pc *Piece, ml *moveList) {
	dir := forwardDir(pc.Color)

	forward := g.offset(pc.Coord, rankDim, dir)
	if g.occupied[forward.Key()] == nil {
		ml.add(forward)
		if pc.Coord[rankDim] == pawnStartRank(pc.Color) {
			double := g.offset(pc.Coord, rankDim, 2*dir)
			if g.occupied[double.Key()] == nil {
				ml.add(double)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		dest := g.offset(pc.Coord, fileDim, df, rankDim, dir)
		if victim := g.occupied[dest.Key()]; victim != nil && victim.Color != pc.Color {
			ml.add(dest)
		}
	}
}

// knightMoves generalizes the L-move over every ordered pair of active
// dimensions: 2 along the first, 1 along the second, all four sign combos.
// At three dimensions this yields 24 candidates from an open square.
func (g *Game) knightMoves(pc *Piece, ml *moveList) {
	for d1 := 0; d1 < g.dims; d1++ {
		for d2 := 0; d2 < g.dims; d2++ {
			if d1 == d2 {
				continue
			}
			for _, s1 := range []int{2, -2} {
				for _, s2 := range []int{1, -1} {
					g.jump(pc, g.offset(pc.Coord, d1, s1, d2, s2), ml)
				}
			}
		}
	}
}

func (g *Game) rookMoves(pc *Piece, ml *moveList) {
	for _, d := range g.slidingDims() {
		rng := g.slideRange(d)
		for _, sign := range []int{1, -1} {
			delta := shared.Origin(g.dims)
			delta[d] = sign
			g.scan(pc, delta, rng, ml)
		}
	}
}

func (g *Game) bishopMoves(pc *Piece, ml *moveList) {
	dims := g.slidingDims()
	for i := 0; i < len(dims); i++ {
		for j := i + 1; j < len(dims); j++ {
			d1, d2 := dims[i], dims[j]
			rng := g.diagonalRange(d1, d2)
			for _, s1 := range []int{1, -1} {
				for _, s2 := range []int{1, -1} {
					delta := shared.Origin(g.dims)
					delta[d1] = s1
					delta[d2] = s2
					g.scan(pc, delta, rng, ml)
				}
			}
		}
	}
}

func (g *Game) queenMoves(pc *Piece, ml *moveList) {
	g.rookMoves(pc, ml)
	g.bishopMoves(pc, ml)
}

// kingMoves covers the full Chebyshev-distance-1 neighborhood: every nonzero
// delta vector with components in {-1,0,1}, enumerated with an odometer.
func (g *Game) kingMoves(pc *Piece, ml *moveList) {
	delta := shared.Origin(g.dims)
	for i := range delta {
		delta[i] = -1
	}
	for {
		zero := true
		for _, v := range delta {
			if v != 0 {
				zero = false
				break
			}
		}
		if !zero {
			dest := pc.Coord.Clone()
			for i := range dest {
				dest[i] += delta[i]
			}
			g.jump(pc, dest, ml)
		}

		i := 0
		for ; i < g.dims; i++ {
			if delta[i] < 1 {
				delta[i]++
				break
			}
			delta[i] = -1
		}
		if i == g.dims {
			return
		}
	}
}
