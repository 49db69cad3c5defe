package room

import (
	"github.com/lox/holdem-rooms/internal/protocol"
	"github.com/lox/holdem-rooms/internal/table"
)

// sendRaw delivers already-encoded bytes to one subscriber. A send that
// would block because the subscriber's buffer is full silently drops the
// subscriber — this is the "a send that fails silently removes that
// subscriber" broadcast policy.
func (r *Room) sendRaw(userID string, data []byte) {
	ch, ok := r.subscribers[userID]
	if !ok {
		return
	}
	select {
	case ch <- data:
	default:
		delete(r.subscribers, userID)
	}
}

func (r *Room) sendTo(userID string, event any) {
	data, err := protocol.Encode(event)
	if err != nil {
		r.logger.Error().Err(err).Msg("encode event failed")
		return
	}
	r.sendRaw(userID, data)
}

func (r *Room) sendError(userID, message string) {
	r.sendTo(userID, protocol.Error{Type: protocol.TypeError, Message: message})
}

// broadcast sends the same event to every subscriber. Ordering to any one
// subscriber reflects actor command order since this always runs inside
// the single actor goroutine.
func (r *Room) broadcast(event any) {
	data, err := protocol.Encode(event)
	if err != nil {
		r.logger.Error().Err(err).Msg("encode event failed")
		return
	}
	for userID := range r.subscribers {
		r.sendRaw(userID, data)
	}
}

func (r *Room) msLeft() int64 {
	if r.tbl.Street == table.StreetNone {
		return 0
	}
	if d := r.actionDeadline.Sub(r.clock.Now()); d > 0 {
		return d.Milliseconds()
	}
	return 0
}

func (r *Room) readyStatusCopy() map[string]bool {
	ready := make(map[string]bool, len(r.readyStatus))
	for k, v := range r.readyStatus {
		ready[k] = v
	}
	return ready
}

// broadcastSnapshot builds one shared public snapshot and unicasts a
// per-subscriber redacted copy to each — the fix required for hole-card
// disclosure: nobody sees another seat's hole cards.
func (r *Room) broadcastSnapshot() {
	base := r.tbl.BuildSnapshot()
	ready := r.readyStatusCopy()
	msLeft := r.msLeft()

	for userID := range r.subscribers {
		r.sendTo(userID, protocol.TableSnapshot{
			Type:     protocol.TypeTableSnapshot,
			Table:    base.For(userID),
			Ready:    ready,
			ToActUID: base.ToActUID,
			MsLeft:   msLeft,
		})
	}
}

func (r *Room) sendSnapshotTo(userID string) {
	base := r.tbl.BuildSnapshot()
	r.sendTo(userID, protocol.TableSnapshot{
		Type:     protocol.TypeTableSnapshot,
		Table:    base.For(userID),
		Ready:    r.readyStatusCopy(),
		ToActUID: base.ToActUID,
		MsLeft:   r.msLeft(),
	})
}
