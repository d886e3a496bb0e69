// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"sync/atomic"
)

// ErrNoSettings is returned by an empty Snapshot
var ErrNoSettings = errors.New("no settings loaded")

// Snapshot holds the last valid settings for concurrent readers
type Snapshot struct {
	current atomic.Pointer[Settings]
}

// NewSnapshot returns a snapshot seeded with s
func NewSnapshot(s *Settings) *Snapshot {
	snap := &Snapshot{}
	snap.Store(s)
	return snap
}

// Store replaces the current settings. A nil value is ignored.
func (s *Snapshot) Store(next *Settings) {
	if next == nil {
		return
	}
	copied := *next
	s.current.Store(&copied)
}

// Current returns a private copy of the current settings
func (s *Snapshot) Current() (*Settings, error) {
	cur := s.current.Load()
	if cur == nil {
		return nil, ErrNoSettings
	}
	copied := *cur
	return &copied, nil
}
