package introspection

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache_SingleFetch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	schema := &Schema{QueryType: &NamedTypeRef{Name: strPtr("query_root")}}
	cache := NewCache(func(ctx context.Context) (*Schema, error) {
		calls.Add(1)
		return schema, nil
	}, nil)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	require.Same(t, first, second)
	require.Equal(t, int32(1), calls.Load())
}

func TestCache_RetryAfterFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	fetchErr := errors.New("endpoint unreachable")
	schema := &Schema{}
	cache := NewCache(func(ctx context.Context) (*Schema, error) {
		if calls.Add(1) == 1 {
			return nil, fetchErr
		}
		return schema, nil
	}, nil)

	_, err := cache.Get(context.Background())
	require.ErrorIs(t, err, fetchErr)

	// The failure must not leave a half-populated cache behind.
	got, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.Same(t, schema, got)
	require.Equal(t, int32(2), calls.Load())
}

func TestCache_ConcurrentCallersCoalesce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	schema := &Schema{}
	cache := NewCache(func(ctx context.Context) (*Schema, error) {
		calls.Add(1)
		<-release
		return schema, nil
	}, nil)

	const workers = 8
	results := make([]*Schema, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.Get(context.Background())
		}(i)
	}

	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Same(t, schema, results[i])
	}
	require.Equal(t, int32(1), calls.Load())
}

func TestCache_WaiterHonorsContext(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	cache := NewCache(func(ctx context.Context) (*Schema, error) {
		close(started)
		<-release
		return &Schema{}, nil
	}, nil)

	go func() {
		_, _ = cache.Get(context.Background())
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cache.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)

	close(release)
}
