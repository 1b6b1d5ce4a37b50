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

package effect

import "sync"

// Scheduler defers effect runs until the host has committed a render.
type Scheduler interface {
	Schedule(run func())
}

// Queue is a [Scheduler] collecting runs until [Queue.Flush].
// The zero value is ready to use and safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

var _ Scheduler = (*Queue)(nil)

// Schedule appends run to the queue.
func (q *Queue) Schedule(run func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, run)
}

// Len returns the number of pending runs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}

// Flush executes pending runs in scheduling order until the queue is empty and returns the
// number of runs executed. Runs scheduled by a run are executed in the same flush.
func (q *Queue) Flush() int {
	n := 0

	for {
		q.mu.Lock()
		pending := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(pending) == 0 {
			return n
		}

		for _, run := range pending {
			run()
		}

		n += len(pending)
	}
}
