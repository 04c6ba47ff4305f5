package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHub sets up a Hub behind a test HTTP server that authenticates the user
// from a query parameter and upgrades the connection. Returns the hub and a
// dial function to connect clients.
func testHub(t *testing.T) (*Hub, func(userID string) *gws.Conn) {
	t.Helper()

	hub := NewHub(time.Hour) // ticks are driven manually in tests

	upgrader := gws.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		client := NewClient(hub, conn, r.URL.Query().Get("user"))
		hub.Register(client)
		go client.Serve()
	}))
	t.Cleanup(server.Close)

	dial := func(userID string) *gws.Conn {
		t.Helper()
		url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user=" + userID
		conn, _, err := gws.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		return conn
	}

	return hub, dial
}

// waitForConnCount polls until the hub holds the expected number of
// connections for a user.
func waitForConnCount(hub *Hub, userID string, expected int) bool {
	for range 100 {
		if len(hub.ConnectionsFor(userID)) == expected {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func readEvent(t *testing.T, conn *gws.Conn) Event {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(msg, &event))
	return event
}

func assertNoEvent(t *testing.T, conn *gws.Conn) {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "timeout"), "expected read timeout, got: %v", err)
}

func TestHub_RegisterIsIdempotent(t *testing.T) {
	hub, dial := testHub(t)

	dial("user-a")
	require.True(t, waitForConnCount(hub, "user-a", 1))

	client := hub.ConnectionsFor("user-a")[0]
	hub.Register(client)

	assert.Len(t, hub.ConnectionsFor("user-a"), 1)
}

func TestHub_SendToUserTargetsOnlyThatUser(t *testing.T) {
	hub, dial := testHub(t)

	connA1 := dial("user-a")
	connA2 := dial("user-a")
	connB := dial("user-b")
	require.True(t, waitForConnCount(hub, "user-a", 2))
	require.True(t, waitForConnCount(hub, "user-b", 1))

	hub.SendToUser("user-a", Event{
		Type:    EventTypeAuctionUpdate,
		Payload: AuctionUpdatePayload{AuctionID: "auction-1", Status: "sold"},
	})

	// Both of user A's connections receive the event
	for _, conn := range []*gws.Conn{connA1, connA2} {
		event := readEvent(t, conn)
		assert.Equal(t, EventTypeAuctionUpdate, event.Type)

		payload := event.Payload.(map[string]interface{})
		assert.Equal(t, "auction-1", payload["auction_id"])
		assert.Equal(t, "sold", payload["status"])
	}

	// User B receives nothing
	assertNoEvent(t, connB)
}

func TestHub_BroadcastReachesEveryConnection(t *testing.T) {
	hub, dial := testHub(t)

	connA := dial("user-a")
	connB := dial("user-b")
	require.True(t, waitForConnCount(hub, "user-a", 1))
	require.True(t, waitForConnCount(hub, "user-b", 1))

	hub.Broadcast(Event{Type: EventTypeAuctionUpdate, Payload: AuctionUpdatePayload{AuctionID: "auction-2"}})

	for _, conn := range []*gws.Conn{connA, connB} {
		event := readEvent(t, conn)
		assert.Equal(t, EventTypeAuctionUpdate, event.Type)
	}
}

func TestHub_UnregisterRemovesEmptyUserEntry(t *testing.T) {
	hub, dial := testHub(t)

	connA1 := dial("user-a")
	connA2 := dial("user-a")
	require.True(t, waitForConnCount(hub, "user-a", 2))

	connA1.Close()
	require.True(t, waitForConnCount(hub, "user-a", 1))

	connA2.Close()
	require.True(t, waitForConnCount(hub, "user-a", 0))

	// No dangling entry survives for the user
	assert.Empty(t, hub.AllConnections())
	hub.mu.Lock()
	_, exists := hub.clients["user-a"]
	hub.mu.Unlock()
	assert.False(t, exists)
}

func TestHub_BroadcastSurvivesDeadConnection(t *testing.T) {
	hub, dial := testHub(t)

	dial("user-a")
	connB := dial("user-b")
	require.True(t, waitForConnCount(hub, "user-a", 1))
	require.True(t, waitForConnCount(hub, "user-b", 1))

	// Kill user A's transport underneath the hub so the next write fails.
	hub.ConnectionsFor("user-a")[0].conn.Close()

	hub.Broadcast(Event{Type: EventTypeAuctionUpdate, Payload: AuctionUpdatePayload{AuctionID: "auction-3"}})

	// Delivery to the healthy connection still completes.
	event := readEvent(t, connB)
	assert.Equal(t, EventTypeAuctionUpdate, event.Type)

	// The dead connection is eventually reaped from the registry.
	require.True(t, waitForConnCount(hub, "user-a", 0))
}

func TestHub_SilentClientClosedAfterSecondTick(t *testing.T) {
	hub, dial := testHub(t)

	conn := dial("user-a")
	require.True(t, waitForConnCount(hub, "user-a", 1))

	// Suppress the automatic pong so the client looks half-open, but keep
	// reading so close frames are still processed.
	conn.SetPingHandler(func(string) error { return nil })
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	// First tick probes the client but must not close it.
	hub.checkLiveness()
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, hub.ConnectionsFor("user-a"), 1)

	// Second tick finds no pong arrived and force-closes it.
	hub.checkLiveness()
	require.True(t, waitForConnCount(hub, "user-a", 0))

	select {
	case <-readErr:
	case <-time.After(time.Second):
		t.Fatal("client connection was not closed")
	}
}

func TestHub_PongKeepsClientAlive(t *testing.T) {
	hub, dial := testHub(t)

	conn := dial("user-a")
	require.True(t, waitForConnCount(hub, "user-a", 1))

	// The default ping handler answers with a pong; it runs during reads.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for range 3 {
		hub.checkLiveness()
		// Leave room for the ping/pong round trip before the next tick.
		time.Sleep(100 * time.Millisecond)
		require.Len(t, hub.ConnectionsFor("user-a"), 1)
	}
}

func TestHub_ShutdownForceClosesEverything(t *testing.T) {
	hub, dial := testHub(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	dial("user-a")
	dial("user-b")
	require.True(t, waitForConnCount(hub, "user-a", 1))
	require.True(t, waitForConnCount(hub, "user-b", 1))

	cancel()
	<-done

	require.True(t, waitForConnCount(hub, "user-a", 0))
	require.True(t, waitForConnCount(hub, "user-b", 0))
	assert.Empty(t, hub.AllConnections())
}

func TestClient_EnqueueAfterCloseFails(t *testing.T) {
	hub, dial := testHub(t)

	dial("user-a")
	require.True(t, waitForConnCount(hub, "user-a", 1))

	client := hub.ConnectionsFor("user-a")[0]
	client.close()

	assert.False(t, client.enqueue([]byte("{}")))
}
