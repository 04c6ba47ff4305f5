package api

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	_ "github.com/courtwatch/court-auction-BE/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ShutdownUnblocksStart(t *testing.T) {
	server, _ := newTestServer(t)

	startErr := make(chan error, 1)
	go func() {
		startErr <- server.Start("127.0.0.1:0")
	}()

	// Give the listener a moment to come up; Shutdown before ListenAndServe
	// is also safe, the server then refuses to start.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(ctx))

	select {
	case err := <-startErr:
		require.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestServer_ServesSwaggerDocs(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Court Auction API")
	assert.Contains(t, string(body), "/users/me/watchlist")
}
