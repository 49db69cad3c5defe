// Package protocol defines the JSON-shaped, type-discriminated messages
// exchanged between a client session and the server over a single
// bidirectional text-frame WebSocket channel.
package protocol

import "github.com/lox/holdem-rooms/internal/table"

// Client -> server message type discriminants.
const (
	TypeCreateRoom = "create_room"
	TypeJoinRoom   = "join_room"
	TypeLeaveRoom  = "leave_room"
	TypeReady      = "ready"
	TypeRebuy      = "rebuy"
	TypeAction     = "action"
	TypeJoin       = "join" // legacy alias for join_room with an explicit buy_in
)

// Server -> client event type discriminants.
const (
	TypeWelcome            = "welcome"
	TypeRoomCreated        = "room_created"
	TypeRoomClosed         = "room_closed"
	TypePlayerJoined       = "player_joined"
	TypePlayerLeft         = "player_left"
	TypePlayerReady        = "player_ready"
	TypeGameStartCountdown = "game_start_countdown"
	TypeActionAck          = "action_ack"
	TypeTableSnapshot      = "table_snapshot"
	TypeError              = "error"
)

// RoomConfig carries the per-room settings a create_room command supplies
// or that seed a default legacy room. All fields are non-negative; a zero
// RoomDurationSec means no time limit.
type RoomConfig struct {
	SmallBlind      int `json:"small_blind"`
	BigBlind        int `json:"big_blind"`
	StartingStack   int `json:"starting_stack"`
	RebuyHands      int `json:"rebuy_hands"`
	RoomDurationSec int `json:"room_duration_sec"`
	ActionTimeMs    int `json:"action_time_ms"`
}

// Envelope is the minimal shape every inbound frame must satisfy so the
// router can discriminate on Type before unmarshaling the rest.
type Envelope struct {
	Type string `json:"type"`
}

// CreateRoom is sent to allocate a new room, optionally with a
// caller-chosen table id.
type CreateRoom struct {
	Type        string      `json:"type"`
	TableID     string      `json:"table_id,omitempty"`
	Config      *RoomConfig `json:"config,omitempty"`
	ClientMsgID string      `json:"client_msg_id,omitempty"`
}

// JoinRoom seats the sender in an existing room.
type JoinRoom struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	ClientMsgID string `json:"client_msg_id,omitempty"`
}

// Join is the legacy join_room variant carrying an explicit buy-in.
type Join struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	BuyIn       int    `json:"buy_in"`
	ClientMsgID string `json:"client_msg_id,omitempty"`
}

// LeaveRoom vacates or sits out the sender's seat.
type LeaveRoom struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	ClientMsgID string `json:"client_msg_id,omitempty"`
}

// Ready toggles the sender's readiness to start the next hand.
type Ready struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	Ready       bool   `json:"ready"`
	ClientMsgID string `json:"client_msg_id,omitempty"`
}

// Rebuy requests topping the sender's stack back up between hands.
type Rebuy struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	ClientMsgID string `json:"client_msg_id,omitempty"`
}

// Action applies a betting action for the sender's seat in the named hand.
type Action struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	HandID      string `json:"hand_id"`
	Action      string `json:"action"`
	Amount      int    `json:"amount,omitempty"`
	ClientMsgID string `json:"client_msg_id,omitempty"`
}

// ActionKind parses the wire action string, or reports ok=false.
func (a Action) ActionKind() (table.ActionKind, bool) {
	return table.ParseActionKind(a.Action)
}

// Welcome is sent once when a session connects.
type Welcome struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

// RoomCreated acknowledges a create_room.
type RoomCreated struct {
	Type    string `json:"type"`
	TableID string `json:"table_id"`
}

// RoomClosed announces room expiry or explicit closure.
type RoomClosed struct {
	Type    string `json:"type"`
	TableID string `json:"table_id"`
}

// PlayerJoined announces a new seat occupant.
type PlayerJoined struct {
	Type    string `json:"type"`
	TableID string `json:"table_id"`
}

// PlayerLeft announces a seat vacated or sat out.
type PlayerLeft struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	ClientMsgID string `json:"client_msg_id"`
}

// PlayerReady announces a readiness change.
type PlayerReady struct {
	Type        string `json:"type"`
	TableID     string `json:"table_id"`
	ClientMsgID string `json:"client_msg_id"`
	Ready       bool   `json:"ready"`
}

// GameStartCountdown reports milliseconds left before a hand auto-starts.
type GameStartCountdown struct {
	Type    string `json:"type"`
	TableID string `json:"table_id"`
	MsLeft  int64  `json:"ms_left"`
}

// ActionAck confirms a processed action.
type ActionAck struct {
	Type    string `json:"type"`
	TableID string `json:"table_id"`
	HandID  string `json:"hand_id"`
	Action  string `json:"action"`
}

// TableSnapshot carries the full, per-subscriber-redacted table state.
type TableSnapshot struct {
	Type     string          `json:"type"`
	Table    table.Snapshot  `json:"table"`
	Ready    map[string]bool `json:"ready"`
	ToActUID string          `json:"to_act_uid,omitempty"`
	MsLeft   int64           `json:"ms_left"`
}

// Error reports a parse error, rule violation, or resource error to the
// originating session only.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
