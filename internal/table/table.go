// Package table implements the per-room Hold'em hand state machine: deal,
// blinds, action application, street transitions, side pots, and payout.
// A Table owns no I/O and no timers; it is driven synchronously by its
// single caller (the room actor) and every operation either fully applies
// or returns an error leaving state untouched.
package table

import (
	"github.com/lox/holdem-rooms/internal/deck"
	"github.com/lox/holdem-rooms/internal/evaluator"
	"github.com/lox/holdem-rooms/internal/gameid"
)

// Table is the fixed-size seat array and hand state for one room.
type Table struct {
	ID         string
	MaxSeats   int
	Seats      []Seat
	DealerIdx  int
	ToActIdx   int
	Board      []deck.Card
	SmallBlind int
	BigBlind   int
	Pot        int
	RoundBet   int
	Street     Street
	HandID     string

	deck *deck.Deck
}

// New creates an empty table with maxSeats vacant seats.
func New(id string, maxSeats, smallBlind, bigBlind int) *Table {
	return &Table{
		ID:         id,
		MaxSeats:   maxSeats,
		Seats:      make([]Seat, maxSeats),
		DealerIdx:  -1,
		ToActIdx:   -1,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Street:     StreetNone,
	}
}

// Sit places user in the lowest-indexed vacant seat. If the user already
// occupies a seat, Sit changes nothing and returns that seat's index
// without error, whether or not a hand is open; occupying a fresh seat is
// always allowed when the table has room.
func (t *Table) Sit(userID string, stack int) (int, error) {
	for i := range t.Seats {
		if t.Seats[i].UserID == userID {
			return i, nil
		}
	}
	for i := range t.Seats {
		if !t.Seats[i].Occupied() {
			t.Seats[i] = Seat{UserID: userID, Stack: stack}
			return i, nil
		}
	}
	return -1, ErrTableFull
}

// Vacate frees a seat. Callers must only do this when no hand is open;
// mid-hand departures should call SetSittingOut instead.
func (t *Table) Vacate(userID string) {
	for i := range t.Seats {
		if t.Seats[i].UserID == userID {
			t.Seats[i] = Seat{}
			return
		}
	}
}

// SetSittingOut marks a seat sitting out or returns it to active play.
func (t *Table) SetSittingOut(userID string, sittingOut bool) {
	for i := range t.Seats {
		if t.Seats[i].UserID == userID {
			t.Seats[i].SittingOut = sittingOut
			return
		}
	}
}

// TopUpStack sets userID's stack to target if it is currently lower,
// returning false if the user has no seat.
func (t *Table) TopUpStack(userID string, target int) bool {
	idx := t.SeatIndex(userID)
	if idx < 0 {
		return false
	}
	if t.Seats[idx].Stack < target {
		t.Seats[idx].Stack = target
	}
	return true
}

// SeatIndex returns the seat index for a user, or -1 if not seated.
func (t *Table) SeatIndex(userID string) int {
	for i := range t.Seats {
		if t.Seats[i].UserID == userID {
			return i
		}
	}
	return -1
}

// EligibleCount returns the number of occupied, non-sitting-out seats.
func (t *Table) EligibleCount() int {
	n := 0
	for i := range t.Seats {
		if t.Seats[i].Eligible() {
			n++
		}
	}
	return n
}

// nextFrom walks clockwise from (idx+1) and returns the first seat index
// satisfying pred, or -1 if none does.
func (t *Table) nextFrom(idx int, pred func(*Seat) bool) int {
	n := len(t.Seats)
	for step := 1; step <= n; step++ {
		i := (idx + step) % n
		if pred(&t.Seats[i]) {
			return i
		}
	}
	return -1
}

// StartHand deals a new hand. It requires street == none and at least two
// eligible seats.
func (t *Table) StartHand(dck *deck.Deck) error {
	if t.Street != StreetNone {
		return ErrHandInProgress
	}
	if t.EligibleCount() < 2 {
		return ErrNotEnoughSeated
	}

	for i := range t.Seats {
		s := &t.Seats[i]
		s.Hole = [2]deck.Card{}
		s.HoleDealt = false
		s.HasFolded = false
		s.IsAllIn = false
		s.ActedInRound = false
		s.RoundContrib = 0
		s.TotalContrib = 0
	}
	t.Board = nil
	t.Pot = 0
	t.RoundBet = 0
	t.HandID = gameid.Generate()
	t.deck = dck

	if t.DealerIdx == -1 || !t.Seats[t.DealerIdx].Eligible() {
		t.DealerIdx = t.nextFrom(-1, (*Seat).Eligible)
	}

	// Two passes over occupied, non-sitting-out seats starting from the
	// seat after the dealer, one card per seat per pass.
	order := t.eligibleOrderFrom(t.DealerIdx)
	for pass := 0; pass < 2; pass++ {
		for _, idx := range order {
			card, ok := t.deck.Deal()
			if !ok {
				return ErrNotEnoughSeated
			}
			t.Seats[idx].Hole[pass] = card
			t.Seats[idx].HoleDealt = true
		}
	}

	t.Street = StreetPreflop

	sbIdx := t.nextFrom(t.DealerIdx, (*Seat).Eligible)
	bbIdx := t.nextFrom(sbIdx, (*Seat).Eligible)
	t.postBlind(sbIdx, t.SmallBlind)
	t.postBlind(bbIdx, t.BigBlind)
	t.RoundBet = t.Seats[bbIdx].RoundContrib

	t.ToActIdx = t.nextFrom(bbIdx, (*Seat).ActsThisStreet)
	return nil
}

// eligibleOrderFrom returns eligible seat indices in clockwise order
// starting after from.
func (t *Table) eligibleOrderFrom(from int) []int {
	var order []int
	idx := from
	for {
		idx = t.nextFrom(idx, (*Seat).Eligible)
		if idx < 0 || (len(order) > 0 && idx == order[0]) {
			break
		}
		order = append(order, idx)
	}
	return order
}

func (t *Table) postBlind(idx, amount int) {
	s := &t.Seats[idx]
	paid := amount
	if paid > s.Stack {
		paid = s.Stack
	}
	s.Stack -= paid
	s.RoundContrib += paid
	s.TotalContrib += paid
	t.Pot += paid
	if s.Stack == 0 {
		s.IsAllIn = true
	}
}

// ApplyAction applies a client action for userID. handID, if non-empty,
// must match the table's current HandID.
func (t *Table) ApplyAction(userID, handID string, kind ActionKind, amount int) (ActionResult, error) {
	if t.Street == StreetNone || t.Street == StreetShowdown {
		return ActionResult{}, ErrHandNotOpen
	}
	if handID != "" && handID != t.HandID {
		return ActionResult{}, ErrStaleHand
	}
	if t.ToActIdx < 0 || t.Seats[t.ToActIdx].UserID != userID {
		return ActionResult{}, ErrNotYourTurn
	}

	idx := t.ToActIdx
	s := &t.Seats[idx]
	toCall := t.RoundBet - s.RoundContrib

	switch kind {
	case ActionFold:
		s.HasFolded = true
		s.ActedInRound = true
	case ActionCheck:
		if toCall != 0 {
			return ActionResult{}, ErrCannotCheck
		}
		s.ActedInRound = true
	case ActionCall:
		paid := toCall
		if paid > s.Stack {
			paid = s.Stack
		}
		s.Stack -= paid
		s.RoundContrib += paid
		s.TotalContrib += paid
		t.Pot += paid
		if s.Stack == 0 {
			s.IsAllIn = true
		}
		s.ActedInRound = true
	case ActionRaise:
		if amount < t.BigBlind {
			return ActionResult{}, ErrRaiseTooSmall
		}
		if toCall >= s.Stack {
			return ActionResult{}, ErrRaiseExceedsStack
		}
		paid := toCall + amount
		if paid > s.Stack {
			paid = s.Stack
		}
		s.Stack -= paid
		s.RoundContrib += paid
		s.TotalContrib += paid
		t.Pot += paid
		if s.Stack == 0 {
			s.IsAllIn = true
		}
		t.RoundBet = s.RoundContrib
		s.ActedInRound = true
		for i := range t.Seats {
			if i == idx {
				continue
			}
			other := &t.Seats[i]
			if !other.HasFolded && !other.IsAllIn && other.Occupied() {
				other.ActedInRound = false
			}
		}
	default:
		return ActionResult{}, ErrUnknownAction
	}

	return t.afterAction(), nil
}

func (t *Table) afterAction() ActionResult {
	alive := t.aliveSeats()
	if len(alive) <= 1 {
		res := ActionResult{Outcome: HandEnded, WinnerIx: -1}
		if len(alive) == 1 {
			winner := alive[0]
			t.Seats[winner].Stack += t.Pot
			res.WinnerIx = winner
			res.Payouts = map[int]int{winner: t.Pot}
		}
		t.endHand()
		return res
	}

	if t.bettingClosed() {
		return ActionResult{Outcome: NextStreetOutcome}
	}

	t.ToActIdx = t.nextFrom(t.ToActIdx, (*Seat).ActsThisStreet)
	return ActionResult{Outcome: Continue}
}

// bettingClosed reports whether every seat still able to act this street
// has matched RoundBet and has acted since it last changed.
func (t *Table) bettingClosed() bool {
	for i := range t.Seats {
		s := &t.Seats[i]
		if !s.ActsThisStreet() {
			continue
		}
		if s.RoundContrib != t.RoundBet || !s.ActedInRound {
			return false
		}
	}
	return true
}

func (t *Table) aliveSeats() []int {
	var out []int
	for i := range t.Seats {
		if t.Seats[i].Alive() {
			out = append(out, i)
		}
	}
	return out
}

// NextStreet deals the next street's community cards and resets per-round
// betting state.
func (t *Table) NextStreet() error {
	switch t.Street {
	case StreetPreflop:
		t.Board = append(t.Board, t.deck.DealN(3)...)
		t.Street = StreetFlop
	case StreetFlop:
		t.Board = append(t.Board, t.deck.DealN(1)...)
		t.Street = StreetTurn
	case StreetTurn:
		t.Board = append(t.Board, t.deck.DealN(1)...)
		t.Street = StreetRiver
	case StreetRiver:
		t.Street = StreetShowdown
	default:
		return ErrHandNotOpen
	}

	for i := range t.Seats {
		s := &t.Seats[i]
		s.RoundContrib = 0
		s.ActedInRound = false
	}
	t.RoundBet = 0

	if t.Street == StreetShowdown {
		t.ToActIdx = -1
		return nil
	}
	t.ToActIdx = t.nextFrom(t.DealerIdx, (*Seat).ActsThisStreet)
	return nil
}

// BettingOpenThisStreet reports whether any seat can still act on the
// current street; when false the room should keep calling NextStreet (or
// ShowdownAndPayout) without waiting on client input.
func (t *Table) BettingOpenThisStreet() bool {
	for i := range t.Seats {
		if t.Seats[i].ActsThisStreet() {
			return true
		}
	}
	return false
}

// ShowdownAndPayout resolves side pots, evaluates hands, distributes
// chips, and resets the table for the next hand.
func (t *Table) ShowdownAndPayout() map[int]int {
	payouts := make(map[int]int)
	layers := BuildSidePots(t.Seats)

	ranks := make(map[int]evaluator.HandRank)
	rankOf := func(i int) evaluator.HandRank {
		if r, ok := ranks[i]; ok {
			return r
		}
		cards := append([]deck.Card{t.Seats[i].Hole[0], t.Seats[i].Hole[1]}, t.Board...)
		r := evaluator.Evaluate7(cards)
		ranks[i] = r
		return r
	}

	for _, layer := range layers {
		if len(layer.EligibleSeats) == 0 || layer.Amount == 0 {
			continue
		}
		var winners []int
		var best evaluator.HandRank
		for n, i := range layer.EligibleSeats {
			r := rankOf(i)
			if n == 0 || r.Compare(best) > 0 {
				best = r
				winners = []int{i}
			} else if r.Compare(best) == 0 {
				winners = append(winners, i)
			}
		}
		share := layer.Amount / len(winners)
		remainder := layer.Amount % len(winners)
		for _, w := range winners {
			payouts[w] += share
		}
		for k := 0; k < remainder; k++ {
			payouts[winners[k]]++
		}
	}

	for seatIdx, amount := range payouts {
		t.Seats[seatIdx].Stack += amount
	}

	t.endHand()
	return payouts
}

// endHand clears per-hand table state and advances the dealer to the next
// occupied seat.
func (t *Table) endHand() {
	t.Board = nil
	t.Pot = 0
	t.RoundBet = 0
	t.HandID = ""
	t.Street = StreetNone
	t.ToActIdx = -1
	t.deck = nil
	for i := range t.Seats {
		s := &t.Seats[i]
		s.RoundContrib = 0
		s.TotalContrib = 0
		s.ActedInRound = false
	}
	t.DealerIdx = t.nextFrom(t.DealerIdx, (*Seat).Occupied)
}
