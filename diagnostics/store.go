// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package diagnostics

import (
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of reports a [Store] retains unless configured otherwise.
const DefaultCapacity = 100

// Store is a capacity-bounded, append-only log of [Report] values.
// When full, appending evicts the oldest report.
//
// A Store is safe for concurrent use. Create one per integration with [New] and pass it to the
// hooks that should report into it.
type Store struct {
	mu sync.Mutex

	// ring holds up to capacity reports, the oldest at head.
	ring  []Report
	head  int
	count int

	seq uint64
	now func() time.Time

	subscribers map[uint64]func(Report)
	nextSub     uint64
}

// Option configures a [Store].
type Option func(*Store)

// WithCapacity sets the maximum number of retained reports. Values below one are ignored.
func WithCapacity(capacity int) Option {
	return func(s *Store) {
		if capacity > 0 {
			s.ring = make([]Report, capacity)
		}
	}
}

// WithClock sets the time source for reports appended without a time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an empty [Store].
func New(opts ...Option) *Store {
	s := &Store{
		ring:        make([]Report, DefaultCapacity),
		now:         time.Now,
		subscribers: make(map[uint64]func(Report)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewID generates a unique hook identifier with the given prefix.
func NewID(prefix string) string {
	if prefix == "" {
		prefix = "effect"
	}

	return prefix + "-" + uuid.NewString()
}

// Capacity returns the maximum number of retained reports.
func (s *Store) Capacity() int { return len(s.ring) }

// Append adds r to the store, evicting the oldest report when full, and returns the stored
// report with sequence number and time assigned.
func (s *Store) Append(r Report) Report {
	s.mu.Lock()

	s.seq++
	r.Seq = s.seq

	if r.Time.IsZero() {
		r.Time = s.now()
	}

	capacity := len(s.ring)
	if s.count < capacity {
		s.ring[(s.head+s.count)%capacity] = r
		s.count++
	} else {
		s.ring[s.head] = r
		s.head = (s.head + 1) % capacity
	}

	subscribers := make([]func(Report), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}

	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(r)
	}

	return r
}

// Len returns the number of retained reports.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.count
}

// Reports returns all retained reports, oldest first.
func (s *Store) Reports() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Collect(s.all(func(Report) bool { return true }))
}

// ByID returns the retained reports of the hook id, oldest first.
func (s *Store) ByID(id string) []Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Collect(s.all(func(r Report) bool { return r.ID == id }))
}

// IDs returns the identifiers of all hooks with retained reports, sorted.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for r := range s.all(func(Report) bool { return true }) {
		ids = append(ids, r.ID)
	}

	slices.Sort(ids)

	return slices.Compact(ids)
}

// Clear removes all reports. Sequence numbers keep increasing.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.ring)
	s.head, s.count = 0, 0
}

// ClearID removes the reports of the hook id and returns how many were removed.
func (s *Store) ClearID(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := slices.Collect(s.all(func(r Report) bool { return r.ID != id }))
	removed := s.count - len(kept)

	clear(s.ring)
	copy(s.ring, kept)
	s.head, s.count = 0, len(kept)

	return removed
}

// Subscribe registers fn to be called with every report appended after this call.
// fn runs on the appending goroutine and must not block. The returned function cancels the
// subscription.
func (s *Store) Subscribe(fn func(Report)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	key := s.nextSub
	s.subscribers[key] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.subscribers, key)
	}
}

// all yields the retained reports matching keep, oldest first. Must be called with s.mu held.
func (s *Store) all(keep func(Report) bool) iter.Seq[Report] {
	return func(yield func(Report) bool) {
		capacity := len(s.ring)
		for i := range s.count {
			r := s.ring[(s.head+i)%capacity]
			if !keep(r) {
				continue
			}

			if !yield(r) {
				return
			}
		}
	}
}
