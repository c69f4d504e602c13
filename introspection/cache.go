package introspection

import (
	"context"
	"log/slog"
	"sync"
)

// FetchFunc performs one introspection round-trip against the backend.
type FetchFunc func(ctx context.Context) (*Schema, error)

// Cache holds the process-lifetime introspected schema. The schema is
// fetched at most once; a failed fetch leaves the cache empty so the next
// caller retries. Concurrent callers arriving during a fetch wait for its
// result instead of issuing their own round-trip.
type Cache struct {
	fetch  FetchFunc
	logger *slog.Logger

	mu       sync.Mutex
	schema   *Schema
	inflight *fetchResult
}

// fetchResult carries the outcome of one fetch to every caller that was
// waiting on it. Waiters read it only after done is closed.
type fetchResult struct {
	done   chan struct{}
	schema *Schema
	err    error
}

func NewCache(fetch FetchFunc, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		fetch:  fetch,
		logger: logger,
	}
}

// Get returns the cached schema, fetching it on first use. The lock is
// never held across the network call; callers that arrive during a fetch
// block on that fetch's completion instead of starting their own.
func (c *Cache) Get(ctx context.Context) (*Schema, error) {
	c.mu.Lock()
	if c.schema != nil {
		schema := c.schema
		c.mu.Unlock()

		return schema, nil
	}

	if c.inflight != nil {
		inflight := c.inflight
		c.mu.Unlock()

		select {
		case <-inflight.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		return inflight.schema, inflight.err
	}

	result := &fetchResult{done: make(chan struct{})}
	c.inflight = result
	c.mu.Unlock()

	c.logger.Debug("fetching schema via introspection")
	result.schema, result.err = c.fetch(ctx)

	c.mu.Lock()
	if result.err != nil {
		// Leave the cache empty so a later call retries cleanly.
		c.schema = nil
		c.logger.Warn("introspection fetch failed", "error", result.err)
	} else {
		c.schema = result.schema
		c.logger.Debug("schema cached", "types", len(result.schema.Types))
	}
	c.inflight = nil
	c.mu.Unlock()
	close(result.done)

	return result.schema, result.err
}
