// Package storage implements durable slots: named keys that each hold one
// JSON-encoded value, overwritten whole on every save.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CartKey     = "ecomm-cart"
	WishlistKey = "ecomm-wishlist"
	UserKey     = "ecomm-user"
)

// ErrSlotNotFound is returned by Load when the key has never been written or was deleted.
var ErrSlotNotFound = errors.New("slot not found")

// Slots is a string-keyed store of raw values.
type Slots interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the slot at key into v. It reports false, leaving v untouched,
// when the slot is absent or does not decode; both mean "empty".
func LoadJSON(ctx context.Context, s Slots, key string, v any) (bool, error) {
	raw, err := s.Load(ctx, key)
	if errors.Is(err, ErrSlotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func SaveJSON(ctx context.Context, s Slots, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	return s.Save(ctx, key, raw)
}

type namespaced struct {
	prefix string
	next   Slots
}

// Namespace prefixes every key with prefix before handing it to s.
func Namespace(s Slots, prefix string) Slots {
	return &namespaced{prefix: prefix, next: s}
}

func (n *namespaced) Load(ctx context.Context, key string) ([]byte, error) {
	return n.next.Load(ctx, n.prefix+key)
}

func (n *namespaced) Save(ctx context.Context, key string, value []byte) error {
	return n.next.Save(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.next.Delete(ctx, n.prefix+key)
}

// SessionPrefix is the key prefix for one visitor's slots.
func SessionPrefix(sessionID string) string {
	return "session/" + sessionID + "/"
}
