// path: internal/shared/coord.go
package shared

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord is a point on the integer lattice, one component per active
// dimension. Length is the arity contract: every coordinate in a game shares
// the same dimension count, and handing a generator or the board a tuple of
// the wrong length is a programming error, not a recoverable condition.
type Coord []int

const keySeparator = ","

// Key returns the canonical string form of the coordinate, components joined
// by commas. It is injective over tuples of equal length and is the sole
// identity used for occupancy lookups.
func (c Coord) Key() string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteString(keySeparator)
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// ParseKey inverts Key. It accepts any arity; callers validate length.
func ParseKey(s string) (Coord, bool) {
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, keySeparator)
	out := make(Coord, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// WithDims re-derives the coordinate for a new dimension count, padding added
// slots with 0 or truncating removed ones.
func (c Coord) WithDims(newD int) Coord {
	out := make(Coord, newD)
	copy(out, c)
	return out
}

// Without removes the component at index d, shifting higher components down.
func (c Coord) Without(d int) Coord {
	out := make(Coord, 0, len(c)-1)
	out = append(out, c[:d]...)
	out = append(out, c[d+1:]...)
	return out
}

// Delta returns to-from componentwise. Panics on arity mismatch.
func (c Coord) Delta(to Coord) Coord {
	c.MustArity(len(to))
	out := make(Coord, len(c))
	for i := range c {
		out[i] = to[i] - c[i]
	}
	return out
}

// Norm is the Euclidean length of the coordinate treated as a vector.
func (c Coord) Norm() float64 {
	sum := 0.0
	for _, v := range c {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// MustArity panics unless the coordinate has exactly d components.
func (c Coord) MustArity(d int) {
	if len(c) != d {
		panic(fmt.Sprintf("coordinate arity %d, want %d", len(c), d))
	}
}

func (c Coord) String() string { return "(" + c.Key() + ")" }

// Origin returns the all-zero coordinate of arity d.
func Origin(d int) Coord { return make(Coord, d) }
