// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps the in-memory log of completed operations for
// the current session. The log is bounded: new entries go to the front
// and the oldest fall off past the capacity. Nothing survives the
// process; export is the only way to persist it.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the entry cap used when no limit is configured.
const DefaultCapacity = 500

// =============================================================================
// ENTRIES
// =============================================================================

// Entry records one completed operation. Fields carries the
// tool-specific key/value pairs (from/to units, input, output, ...).
type Entry struct {
	Tool   string
	At     time.Time
	Fields map[string]string
}

// Flatten merges the fixed and tool-specific fields into one flat map,
// the shape both exporters serialize.
func (e Entry) Flatten() map[string]string {
	m := make(map[string]string, len(e.Fields)+2)
	for k, v := range e.Fields {
		m[k] = v
	}
	m["tool"] = e.Tool
	m["at"] = e.At.Format(time.RFC3339)
	return m
}

// =============================================================================
// SESSION LOG
// =============================================================================

// Log is the bounded, newest-first session log. Safe for concurrent use,
// though the TUI only ever appends from its single update loop.
type Log struct {
	mu        sync.Mutex
	sessionID string
	capacity  int
	entries   []Entry
}

// NewLog creates an empty log with the given capacity. Non-positive
// capacities fall back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		sessionID: uuid.NewString(),
		capacity:  capacity,
	}
}

// SessionID returns the identifier assigned to this session.
func (l *Log) SessionID() string {
	return l.sessionID
}

// Capacity returns the maximum number of retained entries.
func (l *Log) Capacity() int {
	return l.capacity
}

// Add records a completed operation at the front of the log, evicting
// the oldest entry once the capacity is reached. The fields map is
// copied; callers may reuse theirs.
func (l *Log) Add(tool string, fields map[string]string) {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	e := Entry{Tool: tool, At: time.Now(), Fields: cp}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = e
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries returns a snapshot copy, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear discards all entries. The session ID is unchanged.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
