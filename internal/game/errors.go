// path: internal/game/errors.go
package game

import "errors"

var (
	ErrDimensionFloor   = errors.New("cannot drop below 3 dimensions")
	ErrDimensionCeiling = errors.New("cannot exceed 6 dimensions")
	ErrDimensionLocked  = errors.New("dimensions 0-2 cannot be removed")
	ErrUnknownDimension = errors.New("dimension index out of range")
	ErrInvalidViewSlot  = errors.New("view axis slot out of range")
	ErrSlicedViewAxis   = errors.New("dimension is mapped to a view axis")
)
