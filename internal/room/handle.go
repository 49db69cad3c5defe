package room

import (
	"time"

	"github.com/lox/holdem-rooms/internal/protocol"
	"github.com/lox/holdem-rooms/internal/table"
)

func (r *Room) handle(cmd any) {
	switch c := cmd.(type) {
	case subscribeCmd:
		r.subscribers[c.userID] = c.ch
		r.sendSnapshotTo(c.userID)

	case JoinCmd:
		stack := r.cfg.StartingStack
		if c.BuyIn > 0 {
			stack = c.BuyIn
		}
		if _, err := r.tbl.Sit(c.UserID, stack); err != nil {
			r.sendError(c.UserID, err.Error())
			return
		}
		r.rebuysLeft[c.UserID] = r.cfg.RebuyHands
		r.readyStatus[c.UserID] = false
		r.broadcast(protocol.PlayerJoined{Type: protocol.TypePlayerJoined, TableID: r.id})
		r.broadcastSnapshot()

	case LeaveCmd:
		if r.tbl.Street == table.StreetNone {
			r.tbl.Vacate(c.UserID)
			delete(r.readyStatus, c.UserID)
		} else {
			r.tbl.SetSittingOut(c.UserID, true)
		}
		r.countdownEnd = time.Time{}
		r.broadcast(protocol.PlayerLeft{Type: protocol.TypePlayerLeft, TableID: r.id, ClientMsgID: c.UserID})
		r.broadcastSnapshot()

	case ReadyCmd:
		r.readyStatus[c.UserID] = c.Ready
		r.broadcast(protocol.PlayerReady{Type: protocol.TypePlayerReady, TableID: r.id, ClientMsgID: c.UserID, Ready: c.Ready})
		r.broadcastSnapshot()

	case RebuyCmd:
		r.handleRebuy(c.UserID)

	case ActionCmd:
		r.handleAction(c.UserID, c.HandID, c.Kind, c.Amount)

	case UnsubscribeCmd:
		delete(r.subscribers, c.UserID)
	}
}

func (r *Room) handleRebuy(userID string) {
	if r.tbl.Street != table.StreetNone {
		r.sendError(userID, "rebuy: only allowed between hands")
		return
	}
	idx := r.tbl.SeatIndex(userID)
	if idx < 0 {
		r.sendError(userID, "rebuy: not seated")
		return
	}
	if r.rebuysLeft[userID] <= 0 {
		r.sendError(userID, "rebuy: no rebuys left")
		return
	}
	if r.tbl.Seats[idx].Stack >= r.cfg.StartingStack {
		r.sendError(userID, "rebuy: stack not below starting stack")
		return
	}
	r.tbl.TopUpStack(userID, r.cfg.StartingStack)
	r.rebuysLeft[userID]--
	r.broadcastSnapshot()
}

// handleAction forwards an action to the table and drives street/showdown
// progression to its conclusion, broadcasting along the way.
func (r *Room) handleAction(userID, handID string, kind table.ActionKind, amount int) {
	ackHandID := r.tbl.HandID
	res, err := r.tbl.ApplyAction(userID, handID, kind, amount)
	if err != nil {
		r.sendError(userID, err.Error())
		return
	}

	r.sendTo(userID, protocol.ActionAck{Type: protocol.TypeActionAck, TableID: r.id, HandID: ackHandID, Action: kind.String()})

	r.advance(res)
	r.broadcastSnapshot()
}

// advance drives the table through NextStreet / showdown transitions
// until either a street is open for action again or the hand has ended.
func (r *Room) advance(res table.ActionResult) {
	for res.Outcome == table.NextStreetOutcome {
		if err := r.tbl.NextStreet(); err != nil {
			r.logger.Error().Err(err).Msg("next street failed")
			return
		}
		if r.tbl.Street == table.StreetShowdown {
			r.tbl.ShowdownAndPayout()
			r.setActionDeadline()
			return
		}
		if r.tbl.BettingOpenThisStreet() {
			r.setActionDeadline()
			return
		}
		res = table.ActionResult{Outcome: table.NextStreetOutcome}
	}
	if res.Outcome == table.HandEnded {
		return
	}
	r.setActionDeadline()
}
