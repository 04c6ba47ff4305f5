package ws

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// writeWait bounds how long a single frame write may stall before the
	// connection is considered dead.
	writeWait = 10 * time.Second

	// sendBufferSize is the per-connection outbound queue. A client that
	// cannot drain this many frames is disconnected instead of being
	// allowed to stall fan-out to other users.
	sendBufferSize = 16
)

// Client is the server-side handle to one open WebSocket, tagged with the
// authenticated user ID. The hub owns it between Register and Unregister.
type Client struct {
	userID string
	conn   *websocket.Conn
	hub    *Hub

	send chan []byte
	ping chan struct{}
	done chan struct{}

	// alive is set to true by the pong handler and to false by the hub's
	// liveness tick. Nothing else writes it.
	alive     atomic.Bool
	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	c := &Client{
		userID: userID,
		conn:   conn,
		hub:    hub,
		send:   make(chan []byte, sendBufferSize),
		ping:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	c.alive.Store(true)

	conn.SetPongHandler(func(string) error {
		c.alive.Store(true)
		return nil
	})

	return c
}

// UserID returns the ID of the user that owns this connection.
func (c *Client) UserID() string {
	return c.userID
}

// Serve pumps the connection until it closes, then unregisters it.
// It blocks, so the connection handler calls it as the last step.
func (c *Client) Serve() {
	go c.writePump()
	c.readPump()
}

// readPump drains inbound frames so that control messages (pong, close) are
// processed. Any read error ends the connection's registered lifetime.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.close()
	}()

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump is the only goroutine writing to the connection, so frames from
// concurrent fan-outs are never interleaved.
func (c *Client) writePump() {
	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Str("user_id", c.userID).Err(err).Msg("websocket write failed")
				c.close()
				return
			}
		case <-c.ping:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// enqueue hands a serialized frame to the write pump without blocking.
// It reports false when the connection is closed or the outbound buffer
// is saturated.
func (c *Client) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// requestPing asks the write pump to emit a ping frame. A tick that finds the
// previous ping still queued simply leaves it there.
func (c *Client) requestPing() {
	select {
	case c.ping <- struct{}{}:
	default:
	}
}

// close tears the transport down. The read pump then observes the closed
// connection and runs the unregister path exactly once.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}
