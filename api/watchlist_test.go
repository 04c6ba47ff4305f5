package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAddWatchlistItem_InvalidAuctionID(t *testing.T) {
	server, ts := newTestServer(t)

	accessToken, _, err := server.tokenMaker.CreateToken(uuid.NewString(), time.Minute)
	require.NoError(t, err)

	body := strings.NewReader(`{"auction_id":"not-a-uuid"}`)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/users/me/watchlist", body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// A malformed ID is a client error, never a panic or a store call.
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
