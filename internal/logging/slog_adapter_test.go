// Prospector - Prospect Segmentation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/prospector

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelInfo, "info"},
		{slog.LevelWarn, "warn"},
		{slog.LevelError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := NewSlogLogger(zerolog.New(&buf))
			logger.Log(context.Background(), tt.level, "event")

			entry := decodeLine(t, &buf)
			if entry["level"] != tt.want {
				t.Errorf("level = %v, want %s", entry["level"], tt.want)
			}
		})
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSlogLogger(zerolog.New(&buf)).
		With("supervisor", "root").
		WithGroup("svc")

	logger.Error("service failed",
		"name", "http-server",
		"restarts", 3,
		"healthy", false,
		"backoff", 2*time.Second,
		slog.Group("err", "msg", "boom"),
	)

	entry := decodeLine(t, &buf)
	want := map[string]any{
		"message":      "service failed",
		"supervisor":   "root",
		"svc.name":     "http-server",
		"svc.restarts": float64(3),
		"svc.healthy":  false,
		"svc.err.msg":  "boom",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["svc.backoff"]; !ok {
		t.Error("duration attribute missing")
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled on a warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled on a warn logger")
	}
}

func TestSlogHandler_EmptyGroupIsNoop(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.Nop())
	if got := h.WithGroup(""); got != h {
		t.Error("WithGroup(\"\") returned a new handler")
	}
	if !strings.Contains(slogToZerologLevel(slog.LevelDebug-4).String(), "trace") {
		t.Error("levels below debug should map to trace")
	}
}
