package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/courtwatch/court-auction-BE/internal/util"
	"github.com/courtwatch/court-auction-BE/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config := &util.Config{
		TokenSecretKey: strings.Repeat("s", 32),
		AllowedOrigins: []string{"http://localhost:3000"},
		PingInterval:   time.Hour,
	}

	server, err := NewServer(nil, ws.NewHub(config.PingInterval), nil, config)
	require.NoError(t, err)

	ts := httptest.NewServer(server.router)
	t.Cleanup(ts.Close)

	return server, ts
}

func wsURL(ts *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/ws" + query
}

func waitForConnCount(hub *ws.Hub, userID string, expected int) bool {
	for range 100 {
		if len(hub.ConnectionsFor(userID)) == expected {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestServeWS_MissingTokenRejected(t *testing.T) {
	_, ts := newTestServer(t)

	conn, _, err := gws.DefaultDialer.Dial(wsURL(ts, ""), nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, gws.IsCloseError(err, gws.ClosePolicyViolation), "expected close 1008, got: %v", err)
}

func TestServeWS_InvalidTokenRejected(t *testing.T) {
	server, ts := newTestServer(t)

	conn, _, err := gws.DefaultDialer.Dial(wsURL(ts, "?token=garbage"), nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, gws.IsCloseError(err, gws.ClosePolicyViolation), "expected close 1008, got: %v", err)

	// A rejected connection never reaches the registry.
	assert.Empty(t, server.hub.AllConnections())
}

func TestServeWS_AuthenticatedLifecycle(t *testing.T) {
	server, ts := newTestServer(t)

	userID := uuid.NewString()
	accessToken, _, err := server.tokenMaker.CreateToken(userID, time.Minute)
	require.NoError(t, err)

	conn, _, err := gws.DefaultDialer.Dial(wsURL(ts, "?token="+accessToken), nil)
	require.NoError(t, err)

	// Registered under the authenticated user
	require.True(t, waitForConnCount(server.hub, userID, 1))

	// Targeted delivery reaches the connection
	server.hub.SendToUser(userID, ws.Event{Type: ws.EventTypeAuctionUpdate})
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), ws.EventTypeAuctionUpdate)

	// Closing unregisters exactly this connection
	conn.Close()
	require.True(t, waitForConnCount(server.hub, userID, 0))
	assert.Empty(t, server.hub.AllConnections())
}
