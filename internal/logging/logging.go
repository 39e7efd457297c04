// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package logging configures the structured logger of the observerguard command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the log output format.
type Format uint8

const (
	// Text writes logfmt style records.
	Text Format = iota
	// JSON writes one JSON object per record.
	JSON
)

// ErrUnknownFormat is returned for unknown log format names.
var ErrUnknownFormat = errors.New("unknown log format")

// ParseFormat parses a format name (text, json).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return Text, nil

	case "json":
		return JSON, nil

	default:
		return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case JSON:
		handler = slog.NewJSONHandler(w, opts)

	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel parses a level name (debug, info, warn, error).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}
