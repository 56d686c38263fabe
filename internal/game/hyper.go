// path: internal/game/hyper.go
package game

import (
	"math/bits"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// Hyperpiece generators. Multi-dimension moves enumerate subsets of the
// active dimensions as bitmasks (at most 63 non-empty subsets at six
// dimensions), so the fatigue range is a pure function of the popcount.

// maskDims expands a bitmask into the dimension indices it selects.
func maskDims(mask int, buf []int) []int {
	buf = buf[:0]
	for mask != 0 {
		d := bits.TrailingZeros(uint(mask))
		buf = append(buf, d)
		mask &= mask - 1
	}
	return buf
}

// scanSubset slides pc along every sign pattern over the chosen dimensions,
// stepping all of them by the same magnitude.
func (g *Game) scanSubset(pc *Piece, dims []int, rng int, ml *moveList) {
	patterns := 1 << len(dims)
	for p := 0; p < patterns; p++ {
		delta := shared.Origin(g.dims)
		for i, d := range dims {
			if p&(1<<i) != 0 {
				delta[d] = -1
			} else {
				delta[d] = 1
			}
		}
		g.scan(pc, delta, rng, ml)
	}
}

// hyperRookMoves: classical rook slides, every >=2-dimension simultaneous
// slide, and the dimensional transport jump along a single higher dimension.
func (g *Game) hyperRookMoves(pc *Piece, ml *moveList) {
	g.rookMoves(pc, ml)

	var buf [shared.MaxDimensions]int
	for mask := 1; mask < 1<<g.dims; mask++ {
		k := bits.OnesCount(uint(mask))
		if k < 2 {
			continue
		}
		dims := maskDims(mask, buf[:0])
		g.scanSubset(pc, dims, g.hyperRange(k), ml)
	}

	// Dimensional transport: a pure shift of up to 3 cells along one higher
	// dimension, landing-square check only.
	for d := 3; d < g.dims; d++ {
		for _, sign := range []int{1, -1} {
			for step := 1; step <= 3; step++ {
				g.jump(pc, g.offset(pc.Coord, d, sign*step), ml)
			}
		}
	}
}

// hyperBishopMoves: classical bishop diagonals plus every >=3-dimension
// simultaneous diagonal, all sign patterns, same fatigue law as hyperrook.
func (g *Game) hyperBishopMoves(pc *Piece, ml *moveList) {
	g.bishopMoves(pc, ml)

	var buf [shared.MaxDimensions]int
	for mask := 1; mask < 1<<g.dims; mask++ {
		k := bits.OnesCount(uint(mask))
		if k < 3 {
			continue
		}
		dims := maskDims(mask, buf[:0])
		g.scanSubset(pc, dims, g.hyperRange(k), ml)
	}
}

// hyperKnightMoves: the generalized knight plus two teleport patterns,
// (3,1,1) and (2,2,1) over dimension triples. All are landing-square-only.
func (g *Game) hyperKnightMoves(pc *Piece, ml *moveList) {
	g.knightMoves(pc, ml)

	signs := []int{1, -1}
	for a := 0; a < g.dims; a++ {
		for b := 0; b < g.dims; b++ {
			if b == a {
				continue
			}
			for c := b + 1; c < g.dims; c++ {
				if c == a {
					continue
				}
				// 3 along a, 1 along each of b and c.
				for _, sa := range signs {
					for _, sb := range signs {
						for _, sc := range signs {
							g.jump(pc, g.offset(pc.Coord, a, 3*sa, b, sb, c, sc), ml)
						}
					}
				}
			}
		}
	}

	for a := 0; a < g.dims; a++ {
		for b := a + 1; b < g.dims; b++ {
			for c := 0; c < g.dims; c++ {
				if c == a || c == b {
					continue
				}
				// 2 along each of a and b, 1 along c.
				for _, sa := range signs {
					for _, sb := range signs {
						for _, sc := range signs {
							g.jump(pc, g.offset(pc.Coord, a, 2*sa, b, 2*sb, c, sc), ml)
						}
					}
				}
			}
		}
	}
}
