package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fizzbuzz/pkg/clientip"
	"github.com/dmitrymomot/fizzbuzz/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *clock) {
	t.Helper()

	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0), ratelimiter.WithClock(c.Now))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store, c
}

var smallConfig = ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second}

func TestNewBucket(t *testing.T) {
	t.Parallel()

	_, err := ratelimiter.NewBucket(nil, smallConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrNilStore)

	store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucketAllow(t *testing.T) {
	t.Parallel()

	b, _, c := newBucket(t, smallConfig)
	ctx := context.Background()

	for i := 2; i >= 0; i-- {
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
		assert.Zero(t, res.RetryAfter())
	}

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	// A denial does not consume; one refill allows exactly one more.
	c.Advance(time.Second)
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)

	t.Run("keys are independent", func(t *testing.T) {
		res, err := b.Allow(ctx, "other")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("refill caps at capacity", func(t *testing.T) {
		c.Advance(time.Hour)
		res, err := b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})
}

func TestBucketAllowN(t *testing.T) {
	t.Parallel()

	b, _, _ := newBucket(t, smallConfig)
	ctx := context.Background()

	_, err := b.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	res, err := b.AllowN(ctx, "k", 4)
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	res, err = b.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucketReset(t *testing.T) {
	t.Parallel()

	b, store, _ := newBucket(t, smallConfig)
	ctx := context.Background()

	_, err := b.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	require.NoError(t, b.Reset(ctx, "k"))
	assert.Equal(t, 0, store.Len())

	res, err := b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)
}

func TestMemoryStoreSweep(t *testing.T) {
	t.Parallel()

	b, store, c := newBucket(t, smallConfig)
	ctx := context.Background()

	_, err := b.Allow(ctx, "old")
	require.NoError(t, err)
	c.Advance(2 * time.Hour)
	_, err = b.Allow(ctx, "new")
	require.NoError(t, err)

	store.Sweep()
	assert.Equal(t, 1, store.Len())

	store.Close()
	store.Close()
}

func TestMemoryStoreConcurrent(t *testing.T) {
	t.Parallel()

	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 50, RefillRate: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := b.Allow(ctx, "k")
			if err == nil && res.Allowed() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	request := func(h http.Handler, ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/validate", nil)
		r.RemoteAddr = ip + ":1000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	t.Run("limits per client", func(t *testing.T) {
		t.Parallel()

		b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		h := clientip.Middleware("")(ratelimiter.Middleware(b)(ok))

		rec := request(h, "192.0.2.1")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		rec = request(h, "192.0.2.1")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		assert.Equal(t, http.StatusNoContent, request(h, "192.0.2.2").Code)
	})

	t.Run("custom responder and key", func(t *testing.T) {
		t.Parallel()

		b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		var denied *ratelimiter.Result
		h := ratelimiter.Middleware(b,
			ratelimiter.WithKeyFunc(func(*http.Request) string { return "all" }),
			ratelimiter.WithErrorResponder(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result, err error) {
				denied = res
				w.WriteHeader(http.StatusTeapot)
			}),
		)(ok)

		request(h, "192.0.2.1")
		rec := request(h, "192.0.2.2")
		assert.Equal(t, http.StatusTeapot, rec.Code)
		require.NotNil(t, denied)
		assert.False(t, denied.Allowed())
	})

	t.Run("empty key passes", func(t *testing.T) {
		t.Parallel()

		b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		h := ratelimiter.Middleware(b, ratelimiter.WithKeyFunc(func(*http.Request) string { return "" }))(ok)
		for range 3 {
			assert.Equal(t, http.StatusNoContent, request(h, "192.0.2.1").Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		b, err := ratelimiter.NewBucket(failingStore{}, smallConfig)
		require.NoError(t, err)
		rec := request(ratelimiter.Middleware(b)(ok), "192.0.2.1")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("down")
}

func (failingStore) Reset(context.Context, string) error { return nil }
