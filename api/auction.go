package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// @Summary		List auctions
// @Description	Retrieves auctions, optionally filtered by text query, court, type and price range.
// @Tags			auctions
// @Produce		json
// @Param			query		query	string		false	"Text search over location and case number"
// @Param			court		query	string		false	"Filter by court"
// @Param			type		query	string		false	"Filter by property type"
// @Param			minPrice	query	integer		false	"Minimum bid lower bound"
// @Param			maxPrice	query	integer		false	"Minimum bid upper bound"
// @Success		200			{array}	db.Auction	"List of auctions"
// @Router			/auctions [get]
func (server *Server) listAuctions(ctx *gin.Context) {
	minPrice, err := parsePriceParam(ctx, "minPrice")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	maxPrice, err := parsePriceParam(ctx, "maxPrice")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListAuctionsParams{
		Query:    ctx.Query("query"),
		Court:    ctx.Query("court"),
		Type:     ctx.Query("type"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	auctions, err := server.dbStore.ListAuctions(ctx, arg)
	if err != nil {
		log.Err(err).Msg("failed to list auctions")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, auctions)
}

type auctionDetailsResponse struct {
	db.Auction
	Images  []db.AuctionImage  `json:"images"`
	Details []db.AuctionDetail `json:"details"`
}

// @Summary		Get auction details
// @Description	Retrieves one auction with its images and detail rows.
// @Tags			auctions
// @Produce		json
// @Param			auctionID	path		string					true	"ID of the auction"
// @Success		200			{object}	auctionDetailsResponse	"Auction details"
// @Failure		404			{object}	map[string]string		"Auction does not exist"
// @Router			/auctions/{auctionID} [get]
func (server *Server) getAuctionDetails(ctx *gin.Context) {
	auctionID, err := uuid.Parse(ctx.Param("auctionID"))
	if err != nil {
		err = fmt.Errorf("invalid auction ID: %w", err)
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	auction, err := server.dbStore.GetAuctionByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrAuctionNotFound))
			return
		}

		log.Err(err).Msg("failed to get auction details")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	images, err := server.dbStore.ListAuctionImages(ctx, auctionID)
	if err != nil {
		log.Err(err).Msg("failed to list auction images")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	details, err := server.dbStore.ListAuctionDetails(ctx, auctionID)
	if err != nil {
		log.Err(err).Msg("failed to list auction details")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, auctionDetailsResponse{
		Auction: auction,
		Images:  images,
		Details: details,
	})
}

func parsePriceParam(ctx *gin.Context, name string) (int64, error) {
	value := ctx.Query(name)
	if value == "" {
		return 0, nil
	}

	price, err := strconv.ParseInt(value, 10, 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("invalid %s: %s", name, value)
	}
	return price, nil
}
