// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/prospector/internal/cache"
	"github.com/tomtom215/prospector/internal/metrics"
)

// ResultCache answers repeated requests from memory and collapses
// identical concurrent requests into one run. The engine is deterministic
// for a fixed configuration, so a cached result equals a fresh one.
//
// Each caller waits under its own context. A shared run keeps going while
// at least one caller is still waiting for it and is cancelled once all of
// them have left. Returned results are shared between callers and must not
// be modified. Failed runs are not cached; callers that joined a failed run
// receive the same error.
type ResultCache struct {
	next  Segmenter
	lru   *cache.LRU[*Result]
	group singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
	nextID  uint64
}

// flight is the shared run for one request key.
type flight struct {
	id      uint64
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewResultCache wraps next with a cache sized by cfg. When cfg.Size is
// zero the returned Segmenter is next itself.
func NewResultCache(next Segmenter, cfg CacheConfig) Segmenter {
	if cfg.Size <= 0 {
		return next
	}
	return &ResultCache{
		next:    next,
		lru:     cache.NewLRU[*Result](cfg.Size, cfg.TTL),
		flights: make(map[string]*flight),
	}
}

// Segment returns a cached result for req or runs next.
func (c *ResultCache) Segment(ctx context.Context, req Request) (*Result, error) {
	key, err := requestKey(req)
	if err != nil {
		return c.next.Segment(ctx, req)
	}

	if r, ok := c.lru.Get(key); ok {
		metrics.RecordCacheLookup("hit", c.lru.Len())
		return r, nil
	}

	f := c.join(ctx, key)
	defer c.leave(key, f)

	ch := c.group.DoChan(fmt.Sprintf("%s/%d", key, f.id), func() (interface{}, error) {
		defer c.finish(key, f)
		r, err := c.next.Segment(f.ctx, req)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, r)
		return r, nil
	})

	select {
	case res := <-ch:
		outcome := "miss"
		if res.Shared {
			outcome = "shared"
		}
		metrics.RecordCacheLookup(outcome, c.lru.Len())
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Result), nil
	case <-ctx.Done():
		metrics.RecordCacheLookup("abandoned", c.lru.Len())
		return nil, fmt.Errorf("%w: %w", ErrBusy, ctx.Err())
	}
}

// join registers the caller with the live flight for key, starting a new
// one when none exists or the previous one has been abandoned.
func (c *ResultCache) join(ctx context.Context, key string) *flight {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.flights[key]
	if f == nil || f.ctx.Err() != nil {
		c.nextID++
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{id: c.nextID, ctx: fctx, cancel: cancel}
		c.flights[key] = f
	}
	f.waiters++
	return f
}

// leave drops the caller from f and cancels the run when nobody waits.
func (c *ResultCache) leave(key string, f *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f.waiters--
	if f.waiters == 0 {
		f.cancel()
		if c.flights[key] == f {
			delete(c.flights, key)
		}
	}
}

// finish retires f once its run has returned.
func (c *ResultCache) finish(key string, f *flight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.flights[key] == f {
		delete(c.flights, key)
	}
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}

// requestKey hashes the request's canonical JSON encoding.
func requestKey(req Request) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode request key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
