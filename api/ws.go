package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/courtwatch/court-auction-BE/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const closeGracePeriod = time.Second

// serveWS upgrades the request to a WebSocket and walks the connection
// through its lifecycle: authenticate, register, serve, unregister on close.
// An invalid credential is rejected with close code 1008 before the
// connection ever reaches the hub.
func (server *Server) serveWS(ctx *gin.Context) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(server.config.AllowedOrigins, origin)
		},
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	accessToken := ctx.Query("token")
	if accessToken == "" {
		rejectConn(conn, "Authentication required")
		return
	}

	payload, err := server.tokenMaker.VerifyToken(accessToken)
	if err != nil {
		rejectConn(conn, "Invalid token")
		return
	}

	client := ws.NewClient(server.hub, conn, payload.Subject)
	server.hub.Register(client)
	client.Serve()
}

// rejectConn closes the still-unregistered connection with a policy
// violation close frame so browser clients can tell auth failures from
// transport errors.
func rejectConn(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
	conn.Close()
}
