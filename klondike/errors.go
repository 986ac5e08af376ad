package klondike

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned, wrapped in a *MoveError, whenever a move
	// is rejected. The board is left unchanged.
	ErrInvalidMove = errors.New("invalid move")

	// ErrLoad is returned, wrapped in a *LoadError, when a snapshot cannot
	// be turned into a board.
	ErrLoad = errors.New("could not load game")
)

// MoveError describes a rejected move
type MoveError struct {
	Op     string // operation, e.g. "tableau to foundation"
	Pile   string // pile the move was rejected on, e.g. "column 3"
	Reason string
}

func (e *MoveError) Error() string {
	if e.Pile == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Pile, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

func invalidMove(op, pile, reason string) error {
	return &MoveError{Op: op, Pile: pile, Reason: reason}
}

// LoadError describes a snapshot that could not be loaded
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrLoad, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %v", ErrLoad, e.Reason, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLoad}
	}
	return []error{ErrLoad, e.Err}
}

func columnName(col int) string {
	return fmt.Sprintf("column %d", col+1)
}

func foundationName(s Suit) string {
	return "foundation " + s.String()
}
