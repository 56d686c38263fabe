// path: internal/shared/types.go
package shared

import "fmt"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	default:
		return 0, false
	}
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	HyperRook
	HyperBishop
	HyperKnight
)

// AllPieceTypes lists every type in declaration order.
var AllPieceTypes = []PieceType{
	Pawn, Knight, Bishop, Rook, Queen, King, HyperRook, HyperBishop, HyperKnight,
}

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	case HyperRook:
		return "hyperrook"
	case HyperBishop:
		return "hyperbishop"
	case HyperKnight:
		return "hyperknight"
	default:
		return fmt.Sprintf("piece(%d)", p)
	}
}

// Hyper reports whether the type is one of the hyperpiece generalizations.
func (p PieceType) Hyper() bool {
	return p == HyperRook || p == HyperBishop || p == HyperKnight
}

// Sliding reports whether the type scans through squares and stops at the
// first occupied one. Jumping types check the landing square only.
func (p PieceType) Sliding() bool {
	switch p {
	case Bishop, Rook, Queen, HyperRook, HyperBishop:
		return true
	default:
		return false
	}
}

func ParsePieceType(s string) (PieceType, bool) {
	for _, pt := range AllPieceTypes {
		if pt.String() == s {
			return pt, true
		}
	}
	return 0, false
}

// Dimension count limits for the playable lattice.
const (
	MinDimensions = 3
	MaxDimensions = 6
)

// ViewMode selects how many render axes the presentation layer maps.
type ViewMode uint8

const (
	View3D ViewMode = iota
	View2D
	ViewSlice
)

func (m ViewMode) String() string {
	switch m {
	case View3D:
		return "3d"
	case View2D:
		return "2d"
	case ViewSlice:
		return "slice"
	default:
		return "?"
	}
}

func ParseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "3d":
		return View3D, true
	case "2d":
		return View2D, true
	case "slice":
		return ViewSlice, true
	default:
		return 0, false
	}
}
