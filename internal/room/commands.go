package room

import "github.com/lox/holdem-rooms/internal/table"

// subscribeCmd registers a session's outbound channel.
type subscribeCmd struct {
	userID string
	ch     chan []byte
}

// JoinCmd seats userID. BuyIn, if positive, overrides the room's
// configured starting stack — the legacy join path's explicit buy-in;
// zero means use the room's configured StartingStack.
type JoinCmd struct {
	UserID string
	BuyIn  int
}

// LeaveCmd vacates or sits out userID's seat.
type LeaveCmd struct {
	UserID string
}

// ReadyCmd toggles userID's readiness.
type ReadyCmd struct {
	UserID string
	Ready  bool
}

// RebuyCmd requests topping userID's stack back up between hands.
type RebuyCmd struct {
	UserID string
}

// ActionCmd forwards a betting action to the table.
type ActionCmd struct {
	UserID string
	HandID string
	Kind   table.ActionKind
	Amount int
}

// UnsubscribeCmd drops a session's outbound channel, e.g. on disconnect.
type UnsubscribeCmd struct {
	UserID string
}
