// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

// Package logging provides the zerolog-based structured logger used across
// Prospector.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once at startup with Init
//   - JSON output for production and console output for development
//   - Request and correlation IDs carried in context.Context
//   - An slog.Handler adapter so the suture supervisor logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logger := logging.WithComponent("api")
//	logger.Info().Int("port", 8080).Msg("listening")
//
//	// Per request
//	ctx = logging.ContextWithNewRequestID(ctx)
//	logging.Ctx(ctx).Info().Msg("segmentation requested")
//
// # Configuration
//
// The config package maps these environment variables onto Config:
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
//
// # Thread Safety
//
// The global logger is guarded by a read-write mutex, so Init may be called
// while other goroutines log.
package logging
