package crawler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestCrawler_LastRun(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := &Crawler{redisClient: client}

	// No crawl recorded yet: a missing key is not an error.
	lastRun, err := c.LastRun(context.Background())
	require.NoError(t, err)
	require.True(t, lastRun.IsZero())

	recorded := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, client.Set(context.Background(), lastRunKey, recorded.Format(time.RFC3339), 0).Err())

	lastRun, err = c.LastRun(context.Background())
	require.NoError(t, err)
	require.True(t, lastRun.Equal(recorded))
}
