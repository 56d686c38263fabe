// path: internal/game/score.go
package game

import (
	"math"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/shared"
)

// Per-type base weights for complexity scoring. Hyperpieces outrank every
// classical type.
var pieceWeights = map[shared.PieceType]float64{
	shared.Pawn:        1,
	shared.Knight:      2,
	shared.Bishop:      3,
	shared.Rook:        4,
	shared.Queen:       5,
	shared.King:        4,
	shared.HyperRook:   7,
	shared.HyperBishop: 8,
	shared.HyperKnight: 9,
}

const (
	captureBonus      = 2.0
	distanceWeight    = 0.5
	dimTouchedWeight  = 5.0
	higherDimWeight   = 10.0
	higherDimGrowth   = 1.5
	pairBonusWeight   = 2.0
	pairBonusCap      = 10
	fatigueMultiplier = 0.2
)

// moveComplexity scores one committed move. Deterministic: the same move on
// the same settings always yields the same value, rounded to one decimal.
func (g *Game) moveComplexity(pt shared.PieceType, from, to shared.Coord, captured bool) float64 {
	delta := from.Delta(to)

	changed := 0
	higher := 0
	for i, v := range delta {
		if v == 0 {
			continue
		}
		changed++
		if i >= 3 {
			higher++
		}
	}

	total := pieceWeights[pt]
	if captured {
		total += captureBonus
	}
	total += distanceWeight * delta.Norm()
	total += dimTouchedWeight * float64(changed)
	if higher > 0 {
		total += higherDimWeight * math.Pow(higherDimGrowth, float64(higher))
	}

	pairs := changed * (changed - 1) / 2
	if pairs > pairBonusCap {
		pairs = pairBonusCap
	}
	total += pairBonusWeight * float64(pairs)

	if g.fatigue && higher > 1 {
		total *= 1 + fatigueMultiplier*float64(higher)
	}

	return math.Round(total*10) / 10
}
