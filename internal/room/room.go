// Package room implements the Room Actor: a single-threaded agent that
// owns one Table, serializes every mutation through a message inbox, and
// fans table_snapshot / event frames out to subscribed client sessions.
// No lock guards the table — sequential inbox processing is the only
// synchronization this package needs.
package room

import (
	"context"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-rooms/internal/protocol"
	"github.com/lox/holdem-rooms/internal/table"
)

const (
	tickInterval    = 200 * time.Millisecond
	countdownWindow = 2 * time.Second
	maxInboxBacklog = 256
)

// Config mirrors protocol.RoomConfig with the zero values a fresh room
// starts from.
type Config struct {
	SmallBlind      int
	BigBlind        int
	StartingStack   int
	RebuyHands      int
	RoomDurationSec int
	ActionTimeMs    int
}

// FromProtocol converts a wire RoomConfig into a Config.
func FromProtocol(c protocol.RoomConfig) Config {
	return Config{
		SmallBlind:      c.SmallBlind,
		BigBlind:        c.BigBlind,
		StartingStack:   c.StartingStack,
		RebuyHands:      c.RebuyHands,
		RoomDurationSec: c.RoomDurationSec,
		ActionTimeMs:    c.ActionTimeMs,
	}
}

// Room is the actor: exactly one goroutine (Run) ever touches tbl.
type Room struct {
	id     string
	cfg    Config
	tbl    *table.Table
	clock  quartz.Clock
	logger zerolog.Logger

	subscribers map[string]chan []byte
	rebuysLeft  map[string]int
	readyStatus map[string]bool

	actionDeadline time.Time
	countdownEnd   time.Time
	roomEndAt      time.Time

	inbox  chan any
	closed chan struct{}
}

// New constructs a room actor. maxSeats bounds the table's fixed seat
// array. Pass quartz.NewReal() in production; tests inject quartz.NewMock.
func New(id string, maxSeats int, cfg Config, clock quartz.Clock, logger zerolog.Logger) *Room {
	r := &Room{
		id:          id,
		cfg:         cfg,
		tbl:         table.New(id, maxSeats, cfg.SmallBlind, cfg.BigBlind),
		clock:       clock,
		logger:      logger.With().Str("component", "room").Str("room_id", id).Logger(),
		subscribers: make(map[string]chan []byte),
		rebuysLeft:  make(map[string]int),
		readyStatus: make(map[string]bool),
		inbox:       make(chan any, maxInboxBacklog),
		closed:      make(chan struct{}),
	}
	if cfg.RoomDurationSec > 0 {
		r.roomEndAt = clock.Now().Add(time.Duration(cfg.RoomDurationSec) * time.Second)
	}
	return r
}

// ID returns the room's table id.
func (r *Room) ID() string { return r.id }

// Closed reports whether the room has ceased hand progression.
func (r *Room) Closed() <-chan struct{} { return r.closed }

// Run drives the actor's inbox and tick loop until ctx is cancelled or the
// room expires.
func (r *Room) Run(ctx context.Context) {
	ticker := r.clock.NewTicker(tickInterval)
	defer ticker.Stop()
	r.logger.Info().Msg("room actor started")
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-r.inbox:
			r.handle(cmd)
		case <-ticker.C:
			r.onTick()
		}
		select {
		case <-r.closed:
			return
		default:
		}
	}
}

// Send enqueues a command for the actor to process. The inbox holds up to
// maxInboxBacklog commands; once it is full, Send blocks until the actor
// takes one.
func (r *Room) Send(cmd any) { r.inbox <- cmd }

// Subscribe registers userID's outbound channel and returns it.
func (r *Room) Subscribe(userID string) <-chan []byte {
	ch := make(chan []byte, 32)
	r.inbox <- subscribeCmd{userID: userID, ch: ch}
	return ch
}
