// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

// Package algorithms implements the clustering strategies used by the
// segmentation engine.
//
// Each strategy implements the Clusterer interface and operates on a
// standardized row-major gonum matrix (one row per record):
//
//   - KMeans: k-means++ seeding with Lloyd refinement and seeded restarts
//   - DBSCAN: density clustering backed by a k-d tree for radius queries
//   - Hierarchical: Ward-linkage agglomeration via the nearest-neighbor chain
//
// # Determinism
//
// All strategies are deterministic for identical input. KMeans draws from a
// math/rand source seeded from its configuration; DBSCAN and Hierarchical
// involve no randomness. Labels are renumbered by first appearance in input
// order so that repeated runs produce identical assignments.
//
// # Complexity
//
// KMeans is O(n*k*d) per iteration. DBSCAN issues one radius query per
// point against the k-d tree. Hierarchical keeps a condensed n*(n-1)/2
// distance matrix and runs in O(n^2) time, which limits it to moderate batch
// sizes.
//
// # Thread Safety
//
// Clusterers hold only immutable configuration; Cluster may be called
// concurrently on independent inputs.
package algorithms
