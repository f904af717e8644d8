// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package segment

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/prospector/internal/metrics"
)

// Segmenter runs one segmentation call.
type Segmenter interface {
	Segment(ctx context.Context, req Request) (*Result, error)
}

// Pool bounds the number of segmentation runs executing at once. Callers
// wait for a slot until their context is done; once started, a run always
// completes.
type Pool struct {
	next Segmenter
	sem  *semaphore.Weighted
}

// NewPool wraps next so that at most size runs execute concurrently.
func NewPool(next Segmenter, size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		next: next,
		sem:  semaphore.NewWeighted(int64(size)),
	}
}

// Segment waits for a free slot and runs the wrapped segmenter.
func (p *Pool) Segment(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		metrics.RecordPoolWait(time.Since(start), false)
		return nil, fmt.Errorf("%w: %w", ErrBusy, err)
	}
	metrics.RecordPoolWait(time.Since(start), true)

	metrics.TrackPoolInFlight(true)
	defer func() {
		metrics.TrackPoolInFlight(false)
		p.sem.Release(1)
	}()

	// The run itself ignores cancellation so no partial result escapes.
	return p.next.Segment(context.WithoutCancel(ctx), req)
}
