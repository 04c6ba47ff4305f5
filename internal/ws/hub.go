package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultPingInterval = 30 * time.Second

// Hub is the registry of live connections, keyed by user ID. A user may hold
// several connections at once (multiple tabs or devices). All access to the
// index goes through the hub's mutex; callers only ever see snapshots.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*Client]struct{}

	pingInterval time.Duration
}

func NewHub(pingInterval time.Duration) *Hub {
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}

	return &Hub{
		clients:      make(map[string]map[*Client]struct{}),
		pingInterval: pingInterval,
	}
}

// Register adds the client under its user's connection set. Registering the
// same client twice is a no-op.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	total := len(set)
	h.mu.Unlock()

	log.Info().Str("user_id", c.userID).Int("connections", total).Msg("websocket client registered")
}

// Unregister removes the client from its user's set and drops the set when it
// becomes empty. Unregistering an unknown client is a no-op.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok = set[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(set, c)
	remaining := len(set)
	if remaining == 0 {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()

	log.Info().Str("user_id", c.userID).Int("connections", remaining).Msg("websocket client unregistered")
}

// ConnectionsFor returns a snapshot of the user's currently registered
// connections, empty if none.
func (h *Hub) ConnectionsFor(userID string) []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.clients[userID]
	snapshot := make([]*Client, 0, len(set))
	for c := range set {
		snapshot = append(snapshot, c)
	}
	return snapshot
}

// AllConnections returns a snapshot of every registered connection.
func (h *Hub) AllConnections() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := make([]*Client, 0)
	for _, set := range h.clients {
		for c := range set {
			snapshot = append(snapshot, c)
		}
	}
	return snapshot
}

// SendToUser serializes the event once and delivers it to each of the user's
// connections. A connection that cannot accept the frame is closed; delivery
// to the remaining connections continues.
func (h *Hub) SendToUser(userID string, event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to marshal event")
		return
	}

	h.deliver(h.ConnectionsFor(userID), msg)
}

// Broadcast delivers the event to every registered connection of every user.
func (h *Hub) Broadcast(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to marshal event")
		return
	}

	h.deliver(h.AllConnections(), msg)
}

func (h *Hub) deliver(clients []*Client, msg []byte) {
	for _, c := range clients {
		if !c.enqueue(msg) {
			log.Warn().Str("user_id", c.userID).Msg("disconnecting slow websocket client")
			c.close()
		}
	}
}

// Run drives the liveness monitor until the context is canceled, then
// force-closes every remaining connection so each one unregisters before the
// process exits.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.checkLiveness()
		case <-ctx.Done():
			for _, c := range h.AllConnections() {
				c.close()
			}
			return
		}
	}
}

// checkLiveness closes every connection whose pong has not arrived since the
// previous tick, and probes the rest. A half-open socket therefore survives
// at most one full interval.
func (h *Hub) checkLiveness() {
	for _, c := range h.AllConnections() {
		if !c.alive.Load() {
			log.Info().Str("user_id", c.userID).Msg("closing unresponsive websocket client")
			c.close()
			continue
		}
		c.alive.Store(false)
		c.requestPing()
	}
}
