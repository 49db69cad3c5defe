package table

import "github.com/lox/holdem-rooms/internal/deck"

// SeatView is the wire-safe rendering of one seat. After Snapshot.For,
// Hole is populated only for the viewer's own seat; other seats' hole
// cards are cleared, at showdown as at any other time.
type SeatView struct {
	UserID       string      `json:"user_id,omitempty"`
	Stack        int         `json:"stack"`
	Hole         []deck.Card `json:"hole,omitempty"`
	SittingOut   bool        `json:"sitting_out,omitempty"`
	HasFolded    bool        `json:"has_folded,omitempty"`
	IsAllIn      bool        `json:"is_allin,omitempty"`
	RoundContrib int         `json:"round_contrib"`
	TotalContrib int         `json:"total_contrib"`
}

// Snapshot is the full, undisclosed rendering of table state — every
// seat's hole cards are present. Callers MUST redact it per-subscriber
// (see Snapshot.For) before sending it to a client; sending Snapshot
// directly leaks other seats' hole cards.
type Snapshot struct {
	TableID    string      `json:"table_id"`
	Street     string      `json:"street"`
	Board      []deck.Card `json:"board"`
	Pot        int         `json:"pot"`
	RoundBet   int         `json:"round_bet"`
	DealerIdx  int         `json:"dealer_idx"`
	ToActIdx   int         `json:"to_act_idx"`
	ToActUID   string      `json:"to_act_uid,omitempty"`
	Seats      []SeatView  `json:"seats"`
}

// BuildSnapshot renders the table's current state, hole cards included.
func (t *Table) BuildSnapshot() Snapshot {
	seats := make([]SeatView, len(t.Seats))
	for i, s := range t.Seats {
		v := SeatView{
			UserID:       s.UserID,
			Stack:        s.Stack,
			SittingOut:   s.SittingOut,
			HasFolded:    s.HasFolded,
			IsAllIn:      s.IsAllIn,
			RoundContrib: s.RoundContrib,
			TotalContrib: s.TotalContrib,
		}
		if s.HoleDealt {
			v.Hole = []deck.Card{s.Hole[0], s.Hole[1]}
		}
		seats[i] = v
	}
	toActUID := ""
	if t.ToActIdx >= 0 {
		toActUID = t.Seats[t.ToActIdx].UserID
	}
	return Snapshot{
		TableID:   t.ID,
		Street:    t.Street.String(),
		Board:     append([]deck.Card(nil), t.Board...),
		Pot:       t.Pot,
		RoundBet:  t.RoundBet,
		DealerIdx: t.DealerIdx,
		ToActIdx:  t.ToActIdx,
		ToActUID:  toActUID,
		Seats:     seats,
	}
}

// For returns a copy of the snapshot with every seat's hole cards redacted
// except viewerUserID's own seat. This is the fix required by the
// disclosure rule: broadcast one shared public view, unicast each
// subscriber's own cards.
func (snap Snapshot) For(viewerUserID string) Snapshot {
	out := snap
	out.Seats = make([]SeatView, len(snap.Seats))
	copy(out.Seats, snap.Seats)
	for i := range out.Seats {
		if out.Seats[i].UserID != viewerUserID || viewerUserID == "" {
			out.Seats[i].Hole = nil
		}
	}
	return out
}
