package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type watchlistEntry struct {
	db.WatchlistItem
	Auction db.Auction        `json:"auction"`
	Images  []db.AuctionImage `json:"images"`
}

// @Summary		List the user's watchlist
// @Description	Retrieves every watched auction of the authenticated user, joined with auction data and images.
// @Tags			watchlist
// @Produce		json
// @Security		accessToken
// @Success		200	{array}	watchlistEntry	"Watchlist entries"
// @Router			/users/me/watchlist [get]
func (server *Server) listWatchlist(ctx *gin.Context) {
	userID, err := uuid.Parse(authPayload(ctx).Subject)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	items, err := server.dbStore.ListWatchlistItems(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to list watchlist items")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	entries := make([]watchlistEntry, 0, len(items))
	for _, item := range items {
		auction, err := server.dbStore.GetAuctionByID(ctx, item.AuctionID)
		if err != nil {
			log.Err(err).Str("auction_id", item.AuctionID.String()).Msg("failed to load watched auction")
			ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}

		images, err := server.dbStore.ListAuctionImages(ctx, item.AuctionID)
		if err != nil {
			log.Err(err).Str("auction_id", item.AuctionID.String()).Msg("failed to load auction images")
			ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}

		entries = append(entries, watchlistEntry{
			WatchlistItem: item,
			Auction:       auction,
			Images:        images,
		})
	}

	ctx.JSON(http.StatusOK, entries)
}

type addWatchlistItemRequest struct {
	AuctionID string `json:"auction_id" binding:"required,uuid"`
}

// @Summary		Watch an auction
// @Description	Adds an auction to the authenticated user's watchlist.
// @Tags			watchlist
// @Accept			json
// @Produce		json
// @Security		accessToken
// @Param			request	body		addWatchlistItemRequest	true	"Auction to watch"
// @Success		200		{object}	db.WatchlistItem		"Created watchlist item"
// @Failure		404		{object}	map[string]string		"Auction does not exist"
// @Failure		409		{object}	map[string]string		"Auction already watched"
// @Router			/users/me/watchlist [post]
func (server *Server) addWatchlistItem(ctx *gin.Context) {
	userID, err := uuid.Parse(authPayload(ctx).Subject)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	req := new(addWatchlistItemRequest)
	if err = ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	auctionID, err := uuid.Parse(req.AuctionID)
	if err != nil {
		err = fmt.Errorf("invalid auction ID: %w", err)
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// The auction must exist before it can be watched.
	if _, err = server.dbStore.GetAuctionByID(ctx, auctionID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrAuctionNotFound))
			return
		}

		log.Err(err).Msg("failed to check auction existence")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if _, err = server.dbStore.GetWatchlistItem(ctx, userID, auctionID); err == nil {
		ctx.JSON(http.StatusConflict, errorResponse(ErrAlreadyWatching))
		return
	} else if !errors.Is(err, db.ErrRecordNotFound) {
		log.Err(err).Msg("failed to check watchlist item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	item, err := server.dbStore.AddWatchlistItem(ctx, db.AddWatchlistItemParams{
		UserID:    userID,
		AuctionID: auctionID,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode && constraintName == db.UniqueWatchlistConstraint {
			ctx.JSON(http.StatusConflict, errorResponse(ErrAlreadyWatching))
			return
		}

		log.Err(err).Msg("failed to add watchlist item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// @Summary		Unwatch an auction
// @Description	Removes an auction from the authenticated user's watchlist.
// @Tags			watchlist
// @Produce		json
// @Security		accessToken
// @Param			auctionID	path		string				true	"ID of the auction"
// @Success		200			{object}	map[string]bool		"Removal confirmation"
// @Failure		400			{object}	map[string]string	"Invalid auction ID"
// @Router			/users/me/watchlist/{auctionID} [delete]
func (server *Server) removeWatchlistItem(ctx *gin.Context) {
	userID, err := uuid.Parse(authPayload(ctx).Subject)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	auctionID, err := uuid.Parse(ctx.Param("auctionID"))
	if err != nil {
		err = fmt.Errorf("invalid auction ID: %w", err)
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err = server.dbStore.DeleteWatchlistItem(ctx, userID, auctionID); err != nil {
		log.Err(err).Msg("failed to remove watchlist item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
