package room

import (
	"time"

	"github.com/lox/holdem-rooms/internal/deck"
	"github.com/lox/holdem-rooms/internal/protocol"
	"github.com/lox/holdem-rooms/internal/table"
)

func (r *Room) onTick() {
	now := r.clock.Now()

	if !r.roomEndAt.IsZero() && !now.Before(r.roomEndAt) {
		r.broadcast(protocol.RoomClosed{Type: protocol.TypeRoomClosed, TableID: r.id})
		close(r.closed)
		return
	}

	if r.tbl.Street != table.StreetNone && !now.Before(r.actionDeadline) {
		r.autoAction()
	}

	if r.tbl.Street == table.StreetNone {
		r.tickCountdown(now)
	}
}

// autoAction performs the deadline-driven auto-action for the current
// actor: prefer check, fall back to fold if illegal.
func (r *Room) autoAction() {
	idx := r.tbl.ToActIdx
	if idx < 0 {
		return
	}
	userID := r.tbl.Seats[idx].UserID
	handID := r.tbl.HandID

	res, err := r.tbl.ApplyAction(userID, handID, table.ActionCheck, 0)
	kind := table.ActionCheck
	if err != nil {
		res, err = r.tbl.ApplyAction(userID, handID, table.ActionFold, 0)
		kind = table.ActionFold
		if err != nil {
			r.logger.Error().Err(err).Msg("auto-action failed")
			return
		}
	}
	r.logger.Debug().Str("user_id", userID).Str("action", kind.String()).Msg("auto-action applied")

	r.advance(res)
	r.setActionDeadline()
	r.broadcastSnapshot()
}

// tickCountdown manages the pre-hand ready countdown. Any leave, un-ready,
// or drop below two ready players cancels it; once it elapses a new hand
// starts if the room is not closed.
func (r *Room) tickCountdown(now time.Time) {
	if !r.allEligibleReady() {
		r.countdownEnd = time.Time{}
		return
	}

	if r.countdownEnd.IsZero() {
		r.countdownEnd = now.Add(countdownWindow)
	}

	remaining := r.countdownEnd.Sub(now)
	if remaining > 0 {
		r.broadcast(protocol.GameStartCountdown{Type: protocol.TypeGameStartCountdown, TableID: r.id, MsLeft: remaining.Milliseconds()})
		return
	}

	r.countdownEnd = time.Time{}
	if err := r.tbl.StartHand(deck.NewDeck()); err != nil {
		r.logger.Error().Err(err).Msg("start hand failed")
		return
	}
	if !r.tbl.BettingOpenThisStreet() {
		r.advance(table.ActionResult{Outcome: table.NextStreetOutcome})
	} else {
		r.setActionDeadline()
	}
	r.broadcastSnapshot()
}

// allEligibleReady reports whether at least two occupied, non-sitting-out
// seats exist and every one of them is marked ready.
func (r *Room) allEligibleReady() bool {
	n := 0
	for _, s := range r.tbl.Seats {
		if !s.Eligible() {
			continue
		}
		n++
		if !r.readyStatus[s.UserID] {
			return false
		}
	}
	return n >= 2
}

func (r *Room) setActionDeadline() {
	r.actionDeadline = r.clock.Now().Add(time.Duration(r.cfg.ActionTimeMs) * time.Millisecond)
}
