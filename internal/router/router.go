// Package router implements the Session Router: it demultiplexes inbound
// client frames into commands, locates or spawns the room actor a command
// names, subscribes the originating session's outbound channel, and
// forwards the command. The only cross-room shared mutable state is the
// id-to-actor map guarded by Router.mu; once a command reaches a room
// actor, that actor is the sole mutator of its table.
package router

import (
	"context"
	"errors"
	"sync"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/lox/holdem-rooms/internal/gameid"
	"github.com/lox/holdem-rooms/internal/room"
)

// ErrRoomExists is returned by CreateRoom when the caller-supplied table
// id is already in use.
var ErrRoomExists = errors.New("router: room already exists")

// DefaultMaxSeats bounds the seat array of an auto-created (legacy) room.
const DefaultMaxSeats = 9

// Router owns the id-to-actor map and spawns room actor goroutines. It
// carries no table state itself — every mutation happens inside the
// spawned Room's own goroutine.
type Router struct {
	ctx           context.Context
	defaultConfig room.Config
	maxSeats      int
	clock         quartz.Clock
	logger        zerolog.Logger

	mu    sync.Mutex
	rooms map[string]*room.Room

	spawn singleflight.Group
}

// New constructs a Router. ctx bounds the lifetime of every room goroutine
// it spawns; cancelling it shuts every room down. defaultConfig seeds
// rooms auto-created for a command that names an unknown table id.
func New(ctx context.Context, defaultConfig room.Config, clock quartz.Clock, logger zerolog.Logger) *Router {
	return &Router{
		ctx:           ctx,
		defaultConfig: defaultConfig,
		maxSeats:      DefaultMaxSeats,
		clock:         clock,
		logger:        logger.With().Str("component", "router").Logger(),
		rooms:         make(map[string]*room.Room),
	}
}

// Lookup returns the room actor for tableID, if one is running.
func (rt *Router) Lookup(tableID string) (*room.Room, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rm, ok := rt.rooms[tableID]
	return rm, ok
}

// CreateRoom allocates a fresh room actor for an explicit create_room
// command. tableID is used as given if non-empty and free, or a freshly
// generated id otherwise; ErrRoomExists is returned for a caller-supplied
// id already in use.
func (rt *Router) CreateRoom(tableID string, cfg room.Config) (*room.Room, error) {
	if tableID == "" {
		tableID = rt.freshID()
	} else if _, exists := rt.Lookup(tableID); exists {
		return nil, ErrRoomExists
	}
	return rt.getOrSpawn(tableID, cfg), nil
}

// GetOrCreate locates tableID's actor, auto-creating one with the
// router's default config if it doesn't exist — the "reference behavior
// auto-creates for legacy join" path spec.md §4.5 leaves as an
// implementer's choice.
func (rt *Router) GetOrCreate(tableID string) *room.Room {
	return rt.getOrSpawn(tableID, rt.defaultConfig)
}

func (rt *Router) freshID() string {
	for {
		id := gameid.GenerateRoomID()
		if _, exists := rt.Lookup(id); !exists {
			return id
		}
	}
}

// getOrSpawn is the single choke point that can create a room. A
// singleflight group keyed on tableID ensures two concurrent first
// touches of an unseen id spawn exactly one actor, not two racing to
// register-then-insert into rt.rooms.
func (rt *Router) getOrSpawn(tableID string, cfg room.Config) *room.Room {
	if rm, ok := rt.Lookup(tableID); ok {
		return rm
	}

	v, _, _ := rt.spawn.Do(tableID, func() (any, error) {
		if rm, ok := rt.Lookup(tableID); ok {
			return rm, nil
		}
		rm := room.New(tableID, rt.maxSeats, cfg, rt.clock, rt.logger)
		rt.mu.Lock()
		rt.rooms[tableID] = rm
		rt.mu.Unlock()

		go func() {
			rm.Run(rt.ctx)
			rt.mu.Lock()
			delete(rt.rooms, tableID)
			rt.mu.Unlock()
			rt.logger.Info().Str("table_id", tableID).Msg("room actor exited")
		}()

		return rm, nil
	})
	return v.(*room.Room)
}
