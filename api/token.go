package api

import (
	"errors"
	"net/http"
	"time"

	db "github.com/courtwatch/court-auction-BE/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type renewAccessTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type renewAccessTokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
}

// @Summary		Renew an access token
// @Description	Issues a new access token from a valid refresh token.
// @Tags			tokens
// @Accept			json
// @Produce		json
// @Param			request	body		renewAccessTokenRequest		true	"Refresh token"
// @Success		200		{object}	renewAccessTokenResponse	"New access token"
// @Failure		401		{object}	map[string]string			"Refresh token invalid or expired"
// @Router			/tokens/renew-access [post]
func (server *Server) renewAccessToken(ctx *gin.Context) {
	req := new(renewAccessTokenRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	refreshToken, err := server.dbStore.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, errorResponse(ErrRefreshTokenNotFound))
			return
		}

		log.Err(err).Msg("failed to get refresh token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		ctx.JSON(http.StatusUnauthorized, errorResponse(ErrRefreshTokenExpired))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(refreshToken.UserID.String(), server.config.AccessTokenDuration)
	if err != nil {
		log.Err(err).Msg("failed to create access token")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp := renewAccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
	}
	ctx.JSON(http.StatusOK, resp)
}

type verifyAccessTokenRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// @Summary		Verify an access token
// @Description	Checks the access token and returns the user it belongs to.
// @Tags			tokens
// @Accept			json
// @Produce		json
// @Param			request	body		verifyAccessTokenRequest	true	"Access token"
// @Success		200		{object}	db.User						"Token owner"
// @Failure		401		{object}	map[string]string			"Token invalid"
// @Router			/tokens/verify [post]
func (server *Server) verifyAccessToken(ctx *gin.Context) {
	req := new(verifyAccessTokenRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	claims, err := server.tokenMaker.VerifyToken(req.AccessToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	user, err := server.dbStore.GetUserByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
