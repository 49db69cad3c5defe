package table

import "github.com/lox/holdem-rooms/internal/deck"

// Street is a betting round.
type Street int

const (
	StreetNone Street = iota
	StreetPreflop
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
)

func (s Street) String() string {
	switch s {
	case StreetNone:
		return "none"
	case StreetPreflop:
		return "preflop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// ActionKind is a legal player action.
type ActionKind int

const (
	ActionFold ActionKind = iota
	ActionCheck
	ActionCall
	ActionRaise
)

func (a ActionKind) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	default:
		return "unknown"
	}
}

// ParseActionKind parses the wire string form of an action.
func ParseActionKind(s string) (ActionKind, bool) {
	switch s {
	case "fold":
		return ActionFold, true
	case "check":
		return ActionCheck, true
	case "call":
		return ActionCall, true
	case "raise":
		return ActionRaise, true
	default:
		return 0, false
	}
}

// Outcome is the result of applying an action to the table.
type Outcome int

const (
	Continue Outcome = iota
	NextStreetOutcome
	HandEnded
)

// Seat is one fixed position at the table.
type Seat struct {
	UserID       string
	Stack        int
	Hole         [2]deck.Card
	HoleDealt    bool
	SittingOut   bool
	HasFolded    bool
	IsAllIn      bool
	ActedInRound bool
	RoundContrib int
	TotalContrib int
}

// Occupied reports whether a user sits in this seat.
func (s *Seat) Occupied() bool { return s.UserID != "" }

// Eligible reports whether the seat is occupied and not sitting out — the
// set of seats dealt into a new hand.
func (s *Seat) Eligible() bool { return s.Occupied() && !s.SittingOut }

// Alive reports whether the seat still has a stake in the current hand:
// seated, not sitting out, not folded, with chips committed this hand.
func (s *Seat) Alive() bool {
	return s.Occupied() && !s.SittingOut && !s.HasFolded && s.TotalContrib > 0
}

// ActsThisStreet reports whether the seat can still take an action on the
// open street: seated, dealt into this hand, not folded, not all-in, not
// sitting out. A seat taken mid-hand has no hole cards and never acts.
func (s *Seat) ActsThisStreet() bool {
	return s.Occupied() && s.HoleDealt && !s.SittingOut && !s.HasFolded && !s.IsAllIn
}

// ActionResult describes the effect of applying one action.
type ActionResult struct {
	Outcome  Outcome
	Payouts  map[int]int // seat index -> chips won, only set on HandEnded
	WinnerIx int         // set on HandEnded: the lone remaining seat, or -1 if none remains
}
