package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInternalServer       = errors.New("internal server error")
	ErrAuctionNotFound      = errors.New("auction does not exist")
	ErrAlreadyWatching      = errors.New("auction is already in the watchlist")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
	ErrRefreshTokenNotFound = errors.New("refresh token is invalid")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
