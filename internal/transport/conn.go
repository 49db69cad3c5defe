// Package transport is the thin WebSocket glue between a net/http server
// and the session router: one bidirectional text-frame channel per
// connection, a read pump that forwards frames into a router.Session, and
// a write pump that drains the session's outbound channel onto the wire.
// Everything above this layer — commands, rooms, the evaluator — knows
// nothing about HTTP or WebSocket framing.
package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-rooms/internal/protocol"
	"github.com/lox/holdem-rooms/internal/router"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBuffer     = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Conn wraps one upgraded WebSocket connection and the router.Session
// demultiplexing its frames.
type Conn struct {
	ws      *websocket.Conn
	session *router.Session
	send    chan []byte
	logger  zerolog.Logger
}

// Serve upgrades r into a WebSocket connection, registers a new session
// with rt keyed by sessionID, sends a welcome frame, and blocks running
// the read/write pumps until the connection closes.
func Serve(rt *router.Router, sessionID string, logger zerolog.Logger, w http.ResponseWriter, r *http.Request) error {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &Conn{
		ws:     ws,
		send:   make(chan []byte, sendBuffer),
		logger: logger.With().Str("component", "transport").Str("session_id", sessionID).Logger(),
	}
	c.session = rt.NewSession(sessionID, c.send)

	go c.writePump()
	c.sendWelcome()
	c.readPump() // blocks until the client disconnects
	c.session.Close()
	return nil
}

func (c *Conn) sendWelcome() {
	data, err := protocol.Encode(protocol.Welcome{Type: protocol.TypeWelcome, Msg: "welcome"})
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// readPump reads frames off the wire and hands each to the session. It
// owns closing the connection on any read error or client disconnect.
func (c *Conn) readPump() {
	defer func() { _ = c.ws.Close() }()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug().Err(err).Msg("read error")
			}
			return
		}
		c.session.HandleFrame(data)
	}
}

// writePump drains the session's outbound channel onto the wire and
// periodically pings to keep the connection's read deadline alive.
func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Debug().Err(err).Msg("write error")
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
