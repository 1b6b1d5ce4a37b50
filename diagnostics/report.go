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
	"log/slog"
	"time"

	"fillmore-labs.com/effectdeps/deps"
)

// Skip reasons recorded in [Report.Skipped].
const (
	SkipFirstRender = "first-render"
	SkipUnchanged   = "unchanged"
	SkipDisposed    = "disposed"
)

// Report describes one render of an effect hook.
type Report struct {
	// ID identifies the hook.
	ID string `json:"id"`
	// Seq is assigned by the [Store] and increases with every appended report.
	Seq uint64 `json:"seq"`
	// Time is the time of the render, set by the [Store] when zero.
	Time time.Time `json:"time"`
	// Render counts the renders of the hook, starting at 1.
	Render int `json:"render"`
	// Mode is the hook's scheduling mode.
	Mode string `json:"mode"`
	// Strategy is the comparison strategy name.
	Strategy string `json:"strategy"`
	// Changed tells whether the dependencies changed.
	Changed bool `json:"changed"`
	// Scheduled tells whether the effect was scheduled to run.
	Scheduled bool `json:"scheduled"`
	// Skipped is the reason the effect was not scheduled.
	Skipped string `json:"skipped,omitempty"`
	// Deps are the formatted dependencies of this render.
	Deps []string `json:"deps"`
	// Previous are the formatted dependencies of the last render.
	Previous []string `json:"previous,omitempty"`

	Primitives int      `json:"primitives"`
	Structured int      `json:"structured"`
	Functions  int      `json:"functions"`
	Advisories []string `json:"advisories,omitempty"`
}

// Categorized sets the categorization fields of the report from r.
func (r *Report) Categorized(c deps.Report) {
	r.Primitives = len(c.Primitives)
	r.Structured = len(c.Structured)
	r.Functions = len(c.Functions)
	r.Advisories = c.Advisories
}

// LogValue implements [slog.LogValuer].
func (r Report) LogValue() slog.Value {
	as := []slog.Attr{
		slog.String("id", r.ID),
		slog.Int("render", r.Render),
		slog.Bool("changed", r.Changed),
		slog.Bool("scheduled", r.Scheduled),
	}

	if r.Skipped != "" {
		as = append(as, slog.String("skipped", r.Skipped))
	}

	if len(r.Advisories) > 0 {
		as = append(as, slog.Any("advisories", r.Advisories))
	}

	return slog.GroupValue(as...)
}
