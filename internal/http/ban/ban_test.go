package ban

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLog(t *testing.T, l Log) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, target := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		require.NoError(t, l.Record(ctx, Event{Target: target, Route: "/cart", Strikes: 5, Time: base.Add(time.Duration(i) * time.Minute)}))
	}

	got, err := l.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "10.0.0.3", got[0].Target)
	assert.Equal(t, "10.0.0.2", got[1].Target)

	none, err := l.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryLog(t *testing.T) {
	testLog(t, NewMemoryLog())
}

func TestMemoryLog_Bounded(t *testing.T) {
	l := NewMemoryLog()
	for range MaxEntries + 10 {
		require.NoError(t, l.Record(context.Background(), Event{Target: "x"}))
	}
	got, err := l.Recent(context.Background(), MaxEntries*2)
	require.NoError(t, err)
	assert.Len(t, got, MaxEntries)
}

func TestRedisLog(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		rdb.Del(context.Background(), LogKey)
		rdb.Close()
	})
	rdb.Del(context.Background(), LogKey)

	testLog(t, NewRedisLog(rdb))
}
