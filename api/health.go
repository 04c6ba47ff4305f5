package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type healthResponse struct {
	Status      string     `json:"status"`
	LastCrawlAt *time.Time `json:"last_crawl_at,omitempty"`
}

// healthCheck reports whether the database is reachable and when the most
// recent crawl finished.
func (server *Server) healthCheck(ctx *gin.Context) {
	if err := server.dbStore.Ping(ctx); err != nil {
		log.Err(err).Msg("health check failed to ping db")
		ctx.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	resp := healthResponse{Status: "ok"}
	if server.crawler != nil {
		if lastRun, err := server.crawler.LastRun(ctx); err == nil && !lastRun.IsZero() {
			resp.LastCrawlAt = &lastRun
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
