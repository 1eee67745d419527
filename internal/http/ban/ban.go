// Package ban records clients the rate limiter has temporarily banned.
package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LogKey is the Redis list holding ban events, newest last.
const LogKey = "ratelimit:banlog"

// MaxEntries bounds how many events a log keeps.
const MaxEntries = 1000

type Event struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Until   time.Time `json:"until"`
	Time    time.Time `json:"time"`
}

type Log interface {
	Record(ctx context.Context, e Event) error
	// Recent returns up to n events, newest first.
	Recent(ctx context.Context, n int) ([]Event, error)
}

type MemoryLog struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Record(_ context.Context, e Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, e)
	if len(l.events) > MaxEntries {
		l.events = slices.Delete(l.events, 0, len(l.events)-MaxEntries)
	}
	return nil
}

func (l *MemoryLog) Recent(_ context.Context, n int) ([]Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []Event{}
	for i := len(l.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.events[i])
	}
	return out, nil
}

type RedisLog struct {
	rdb *redis.Client
}

func NewRedisLog(rdb *redis.Client) *RedisLog {
	return &RedisLog{rdb: rdb}
}

func (l *RedisLog) Record(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	pipe := l.rdb.TxPipeline()
	pipe.RPush(ctx, LogKey, data)
	pipe.LTrim(ctx, LogKey, -MaxEntries, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record ban: %w", err)
	}
	return nil
}

func (l *RedisLog) Recent(ctx context.Context, n int) ([]Event, error) {
	if n <= 0 {
		return []Event{}, nil
	}
	items, err := l.rdb.LRange(ctx, LogKey, int64(-n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ban log: %w", err)
	}

	out := make([]Event, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var e Event
		if err := json.Unmarshal([]byte(items[i]), &e); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}
