package game

import "errors"

// Rule violations are caller contract violations: every input is
// deterministic and reproducible, so none of these warrant a retry.
var (
	// ErrIllegalMove is returned when a placement violates the contact rules.
	ErrIllegalMove = errors.New("illegal move")
	// ErrPieceUnavailable is returned when the acting color no longer holds
	// the piece.
	ErrPieceUnavailable = errors.New("piece not in player's remaining set")
	// ErrOutOfBounds is returned when a placement cell falls outside the
	// board.
	ErrOutOfBounds = errors.New("placement out of bounds")
	// ErrCellOccupied is returned when a placement cell is already owned.
	ErrCellOccupied = errors.New("placement cell occupied")
	// ErrTerminalState is returned when moves are enumerated or applied
	// after the game has ended.
	ErrTerminalState = errors.New("operation on terminal state")
)
