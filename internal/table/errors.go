package table

import "errors"

// Rule violations and resource errors returned by Table methods. They are
// always recoverable: a failed call never mutates the table.
var (
	ErrTableFull         = errors.New("table: no vacant seat")
	ErrHandInProgress    = errors.New("table: hand already in progress")
	ErrNotEnoughSeated   = errors.New("table: fewer than two eligible seats")
	ErrHandNotOpen       = errors.New("table: no hand is open")
	ErrNotYourTurn       = errors.New("table: not this seat's turn")
	ErrStaleHand         = errors.New("table: action references a stale hand")
	ErrUnknownAction     = errors.New("table: unknown action kind")
	ErrCannotCheck       = errors.New("table: cannot check, a bet is outstanding")
	ErrRaiseTooSmall     = errors.New("table: raise below minimum")
	ErrRaiseExceedsStack = errors.New("table: cannot cover call, must call all-in instead")
	ErrSeatNotFound      = errors.New("table: user has no seat")
)
