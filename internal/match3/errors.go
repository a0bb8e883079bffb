package match3

import "errors"

// Caller contract violations. These are returned, wrapped with the offending
// coordinates, rather than silently ignored.
var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrCellOccupied = errors.New("cell is occupied")
	ErrCellEmpty    = errors.New("cell is empty")
	ErrTokenPlaced  = errors.New("token already placed elsewhere")
	ErrNotAdjacent  = errors.New("cells are not adjacent")
	ErrTokenBusy    = errors.New("token is in transit")
	ErrBusy         = errors.New("controller is resolving")
	ErrUnknownType  = errors.New("type not in palette")
)

// ErrFillExhausted reports that no palette type could be placed at a cell
// without forming a match. The cell is filled anyway.
var ErrFillExhausted = errors.New("palette exhausted without a non-matching type")
