// path: internal/game/fatigue.go
package game

// Dimensional fatigue shortens slide ranges as moves reach into higher
// dimensions. Two laws apply: a per-dimension law for single-axis slides and
// an exponential per-move law keyed on how many dimensions a hyperpiece
// steps at once.

// slideRange returns the single-axis range for a slide along dimension d.
// Dimensions 0-2 are never fatigued; each dimension past 3 halves the range.
func (g *Game) slideRange(d int) int {
	if !g.fatigue || d < 3 {
		return baseRange
	}
	r := baseRange >> (d - 2)
	if r < 1 {
		r = 1
	}
	return r
}

// diagonalRange returns the range for a two-dimension diagonal slide. The
// reduction is mild: fatigue trims the range only when the pair reaches a
// higher dimension, and never halves it.
func (g *Game) diagonalRange(d1, d2 int) int {
	if g.fatigue && (d1 >= 3 || d2 >= 3) {
		return baseRange - 2
	}
	return baseRange
}

// hyperRange returns the range for a slide stepping k dimensions at once.
// With fatigue the penalty is exponential in k; without it, linear.
func (g *Game) hyperRange(k int) int {
	if g.fatigue {
		r := baseRange - (1 << (k - 2))
		if r < 2 {
			r = 2
		}
		return r
	}
	r := baseRange - (k - 2)
	if r < 3 {
		r = 3
	}
	return r
}
