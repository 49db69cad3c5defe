package router

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lox/holdem-rooms/internal/protocol"
	"github.com/lox/holdem-rooms/internal/room"
)

// Session demultiplexes one client's inbound frames into room commands and
// fans every subscribed room's outbound events back into a single send
// channel the transport layer drains. It holds no table state; everything
// it forwards downstream comes from protocol.DecodeClient and everything
// it forwards upstream is a room's already-encoded event bytes.
type Session struct {
	id     string
	router *Router
	send   chan<- []byte
	logger zerolog.Logger

	mu         sync.Mutex
	subscribed map[string]context.CancelFunc // table id -> stop forwarding
}

// NewSession registers a new client session. send is the transport's
// outbound channel; the session writes encoded event frames to it and
// never closes it (the transport owns that).
func (rt *Router) NewSession(id string, send chan<- []byte) *Session {
	return &Session{
		id:         id,
		router:     rt,
		send:       send,
		logger:     rt.logger.With().Str("component", "session").Str("session_id", id).Logger(),
		subscribed: make(map[string]context.CancelFunc),
	}
}

// Close stops forwarding from every room this session subscribed to and
// tells each actor to drop its outbound channel. Call this when the
// underlying transport connection ends.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tableID, cancel := range s.subscribed {
		cancel()
		if rm, ok := s.router.Lookup(tableID); ok {
			rm.Send(room.UnsubscribeCmd{UserID: s.id})
		}
	}
	s.subscribed = make(map[string]context.CancelFunc)
}

// HandleFrame parses one inbound text frame and routes it. A parse error
// is reported only to this session.
func (s *Session) HandleFrame(raw []byte) {
	msg, err := protocol.DecodeClient(raw)
	if err != nil {
		s.sendError(err.Error())
		return
	}

	switch m := msg.(type) {
	case protocol.CreateRoom:
		s.handleCreateRoom(m)
	case protocol.JoinRoom:
		s.ensureSubscribed(m.TableID, m.ClientMsgID)
		s.roomFor(m.TableID).Send(room.JoinCmd{UserID: m.ClientMsgID})
	case protocol.Join:
		s.ensureSubscribed(m.TableID, m.ClientMsgID)
		s.roomFor(m.TableID).Send(room.JoinCmd{UserID: m.ClientMsgID, BuyIn: m.BuyIn})
	case protocol.LeaveRoom:
		s.ensureSubscribed(m.TableID, m.ClientMsgID)
		s.roomFor(m.TableID).Send(room.LeaveCmd{UserID: m.ClientMsgID})
	case protocol.Ready:
		s.ensureSubscribed(m.TableID, m.ClientMsgID)
		s.roomFor(m.TableID).Send(room.ReadyCmd{UserID: m.ClientMsgID, Ready: m.Ready})
	case protocol.Rebuy:
		s.ensureSubscribed(m.TableID, m.ClientMsgID)
		s.roomFor(m.TableID).Send(room.RebuyCmd{UserID: m.ClientMsgID})
	case protocol.Action:
		s.handleAction(m)
	default:
		s.sendError("router: unhandled message")
	}
}

func (s *Session) handleCreateRoom(m protocol.CreateRoom) {
	cfg := s.router.defaultConfig
	if m.Config != nil {
		cfg = room.FromProtocol(*m.Config)
	}
	rm, err := s.router.CreateRoom(m.TableID, cfg)
	if err != nil {
		s.sendError(err.Error())
		return
	}
	userID := m.ClientMsgID
	if userID == "" {
		userID = s.id
	}
	s.ensureSubscribed(rm.ID(), userID)
	s.sendRaw(protocol.RoomCreated{Type: protocol.TypeRoomCreated, TableID: rm.ID()})
}

func (s *Session) handleAction(m protocol.Action) {
	kind, ok := m.ActionKind()
	if !ok {
		s.sendError("router: unknown action " + m.Action)
		return
	}
	s.ensureSubscribed(m.TableID, m.ClientMsgID)
	s.roomFor(m.TableID).Send(room.ActionCmd{
		UserID: m.ClientMsgID,
		HandID: m.HandID,
		Kind:   kind,
		Amount: m.Amount,
	})
}

// roomFor looks up or auto-creates tableID's actor.
func (s *Session) roomFor(tableID string) *room.Room {
	return s.router.GetOrCreate(tableID)
}

// ensureSubscribed subscribes userID's outbound channel to tableID's
// actor exactly once per session; later commands for the same table
// reuse the existing forwarding goroutine.
func (s *Session) ensureSubscribed(tableID, userID string) {
	s.mu.Lock()
	_, already := s.subscribed[tableID]
	s.mu.Unlock()
	if already {
		return
	}
	rm := s.roomFor(tableID)
	s.forward(rm, userID)
}

// forward subscribes userID to rm and copies every event it emits onto
// this session's outbound channel until ctx is cancelled by Close. The
// room never closes the channel, so an actor exit or an eviction alone
// does not end the forwarding goroutine.
func (s *Session) forward(rm *room.Room, userID string) {
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.subscribed[rm.ID()] = cancel
	s.mu.Unlock()

	out := rm.Subscribe(userID)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case data, ok := <-out:
				if !ok {
					return
				}
				select {
				case s.send <- data:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

func (s *Session) sendRaw(event any) {
	data, err := protocol.Encode(event)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode event failed")
		return
	}
	select {
	case s.send <- data:
	default:
		s.logger.Warn().Msg("session send buffer full, dropping frame")
	}
}

func (s *Session) sendError(message string) {
	s.sendRaw(protocol.Error{Type: protocol.TypeError, Message: message})
}
