// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

/*
Package cache provides a thread-safe generic LRU cache with TTL support.

The segmentation service uses it to keep recent results: the engine is
deterministic for a fixed seed, so an identical request can be answered
from memory without another clustering run.

# Usage Example

	c := cache.NewLRU[*segment.Result](256, 10*time.Minute)
	c.Add(key, result)
	if r, ok := c.Get(key); ok {
	    // Use cached result
	}

# Thread Safety

All methods are safe for concurrent use. Get updates recency, so it takes
the write lock.
*/
package cache
