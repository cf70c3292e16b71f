package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func exerciseStore(t *testing.T, s Store[record]) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "a", record{Name: "A", Price: 1.5}))
	require.NoError(t, s.Put(ctx, "b", record{Name: "B", Price: 2}))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, record{Name: "A", Price: 1.5}, got)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, Seed(ctx, s, map[string]record{
		"a": {Name: "overwritten?"},
		"c": {Name: "C"},
	}))

	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	got, err = s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "C", got.Name)

	require.NoError(t, s.Delete(ctx, "c"))
	_, err = s.Get(ctx, "c")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	exerciseStore(t, NewMemoryStore[record]())
}

func TestMemoryStoreConcurrentWriters(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore[record]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Put(ctx, fmt.Sprintf("k%d", i), record{Price: float64(i)})
			_, _ = s.List(ctx)
		}(i)
	}
	wg.Wait()

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore[record]()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "a", record{Name: "A"}))

	all, err := s.List(ctx)
	require.NoError(t, err)
	delete(all, "a")

	_, err = s.Get(ctx, "a")
	assert.NoError(t, err)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TUTORIALS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TUTORIALS_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	prefix := "test-" + uuid.NewString()
	s := NewRedisStore[record](client, prefix, "records")
	t.Cleanup(func() { client.Del(context.Background(), prefix+":records") })

	exerciseStore(t, s)
}

func TestRedisStoreWrapsErrors(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore[record](client, "test", "records")

	_, err := s.Get(context.Background(), "a")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "failed to read test:records/a")

	err = s.Put(context.Background(), "a", record{Name: "a"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write test:records/a")

	var traced interface{ StackTrace() errors.StackTrace }
	assert.True(t, errors.As(err, &traced))
}
