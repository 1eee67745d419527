package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlots(t *testing.T, s Slots) {
	t.Helper()
	ctx := context.Background()
	key := "test/" + uuid.NewString()

	_, err := s.Load(ctx, key)
	require.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, s.Save(ctx, key, []byte(`[1,2]`)))
	got, err := s.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(got))

	require.NoError(t, s.Save(ctx, key, []byte(`[3]`)))
	got, err = s.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[3]`, string(got))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Load(ctx, key)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, key))
}

func TestMemoryStore(t *testing.T) {
	testSlots(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "slots"))
	require.NoError(t, err)
	testSlots(t, fs)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	testSlots(t, s)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb, err := ConnectRedis(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	testSlots(t, NewRedisStore(rdb, "storefront-test:", 0))
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	database, err := db.Connect(url)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.Migrate(context.Background(), database))

	testSlots(t, NewPostgresStore(database))
}

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	a := Namespace(mem, SessionPrefix("a"))
	b := Namespace(mem, SessionPrefix("b"))

	require.NoError(t, a.Save(ctx, CartKey, []byte(`"a"`)))
	require.NoError(t, b.Save(ctx, CartKey, []byte(`"b"`)))

	got, err := a.Load(ctx, CartKey)
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(got))
	assert.Equal(t, []string{"session/a/ecomm-cart", "session/b/ecomm-cart"}, mem.Keys())

	require.NoError(t, a.Delete(ctx, CartKey))
	assert.Equal(t, []string{"session/b/ecomm-cart"}, mem.Keys())
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()

	var v []int
	ok, err := LoadJSON(ctx, mem, "absent", &v)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mem.Save(ctx, "bad", []byte(`{not json`)))
	ok, err = LoadJSON(ctx, mem, "bad", &v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	require.NoError(t, SaveJSON(ctx, mem, "good", []int{4, 5}))
	ok, err = LoadJSON(ctx, mem, "good", &v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{4, 5}, v)
}
