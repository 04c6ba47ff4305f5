package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtwatch/court-auction-BE/internal/crawler"
	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/courtwatch/court-auction-BE/internal/token"
	"github.com/courtwatch/court-auction-BE/internal/util"
	"github.com/courtwatch/court-auction-BE/internal/ws"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	dbStore    db.Store
	tokenMaker token.Maker
	config     *util.Config
	hub        *ws.Hub
	crawler    *crawler.Crawler
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, hub *ws.Hub, auctionCrawler *crawler.Crawler, config *util.Config) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	server := &Server{
		dbStore:    store,
		tokenMaker: tokenMaker,
		config:     config,
		hub:        hub,
		crawler:    auctionCrawler,
	}

	server.setupRouter()
	server.httpServer = &http.Server{Handler: server.router}
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", server.healthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")

	v1.POST("/auth/register", server.createUser)
	v1.POST("/auth/login", server.loginUser)

	v1.POST("/tokens/renew-access", server.renewAccessToken)
	v1.POST("/tokens/verify", server.verifyAccessToken)

	// Public auction browsing
	auctionGroup := v1.Group("/auctions")
	{
		auctionGroup.GET("", server.listAuctions)
		auctionGroup.GET(":auctionID", server.getAuctionDetails)
	}

	// Watchlist of the authenticated user
	watchlistGroup := v1.Group("/users/me/watchlist", authMiddleware(server.tokenMaker))
	{
		watchlistGroup.GET("", server.listWatchlist)
		watchlistGroup.POST("", server.addWatchlistItem)
		watchlistGroup.DELETE(":auctionID", server.removeWatchlistItem)
	}

	// Push channel; the bearer token travels as a query parameter because
	// browser WebSocket clients cannot set headers.
	v1.GET("/ws", server.serveWS)

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address. It blocks until the
// server stops; after Shutdown it returns http.ErrServerClosed.
func (server *Server) Start(address string) error {
	server.httpServer.Addr = address
	return server.httpServer.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight requests
// to finish. Hijacked connections (WebSockets) are left to the hub, which
// force-closes them when its own context is canceled.
func (server *Server) Shutdown(ctx context.Context) error {
	return server.httpServer.Shutdown(ctx)
}
