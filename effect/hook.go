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

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/effectdeps/deps"
	"fillmore-labs.com/effectdeps/diagnostics"
)

// Cleanup is returned by an effect to release what the effect acquired.
// It runs before the effect runs again and when the hook is disposed.
type Cleanup func()

// Func is an effect. It may return a nil [Cleanup].
type Func func(ctx context.Context) Cleanup

// config is the resolved configuration of a [Hook].
type config struct {
	id              string
	mode            Mode
	strategy        deps.Strategy
	skipFirstRender bool
	debug           bool

	store     *diagnostics.Store
	logger    *slog.Logger
	scheduler Scheduler
	metrics   *Metrics
	tracer    trace.Tracer
}

// Hook runs an effect when its dependencies change. Create one hook per call site with [New]
// and call [Hook.Render] on every render of the host component.
//
// A Hook is safe for concurrent use, though renders of one component are usually sequential.
type Hook struct {
	config

	mu       sync.Mutex
	prev     deps.Sequence
	renders  int
	cleanup  Cleanup
	disposed bool
}

// New creates a [Hook] configured by opts.
//
// Defaults: run after commit ([ModeEffect]) on a private [Queue], [deps.Identity] comparison,
// no debug reports and a generated identifier.
func New(opts ...Option) *Hook {
	h := &Hook{
		config: config{
			mode:     ModeEffect,
			strategy: deps.Identity,
			logger:   slog.Default(),
		},
	}

	Options(opts).apply(&h.config)

	if h.id == "" {
		h.id = diagnostics.NewID("effect")
	}

	if h.scheduler == nil {
		h.scheduler = &Queue{}
	}

	return h
}

// ID returns the identifier the hook reports under.
func (h *Hook) ID() string { return h.id }

// Mode returns the hook's scheduling mode.
func (h *Hook) Mode() Mode { return h.mode }

// Scheduler returns the [Scheduler] running [ModeEffect] effects.
func (h *Hook) Scheduler() Scheduler { return h.scheduler }

// Renders returns the number of renders seen so far.
func (h *Hook) Renders() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.renders
}

// Render records one render of the host component with dependencies seq and schedules fn
// if they changed since the last run, as decided by [deps.DetectChange].
//
// A nil seq runs fn on every render, an empty seq only on the first one. With
// [WithSkipFirstRender], the first render only takes the dependency snapshot.
// In [ModeLayout], fn runs before Render returns; otherwise it is handed to the [Scheduler].
//
// Render reports whether fn was scheduled.
func (h *Hook) Render(ctx context.Context, fn Func, seq deps.Sequence) bool {
	h.mu.Lock()

	if h.disposed {
		render, prev := h.renders, h.prev
		h.mu.Unlock()

		if h.debug {
			h.report(ctx, render, false, diagnostics.SkipDisposed, prev, seq)
		}

		return false
	}

	h.renders++
	render, prev := h.renders, h.prev

	changed := deps.DetectChange(prev, seq, h.strategy)
	if changed {
		h.prev = seq.Clone()
	}

	h.mu.Unlock()

	var skipped string

	switch {
	case render == 1 && h.skipFirstRender:
		skipped = diagnostics.SkipFirstRender

	case !changed:
		skipped = diagnostics.SkipUnchanged
	}

	h.metrics.render(h.id)

	if h.debug {
		h.report(ctx, render, changed, skipped, prev, seq)
	}

	if skipped != "" {
		h.metrics.skip(h.id, skipped)

		return false
	}

	run := func() { h.run(ctx, render, fn) }

	switch h.mode {
	case ModeLayout:
		run()

	default:
		h.scheduler.Schedule(run)
	}

	return true
}

// run invokes the pending cleanup, then fn, and keeps the returned cleanup.
func (h *Hook) run(ctx context.Context, render int, fn Func) {
	h.mu.Lock()

	if h.disposed {
		h.mu.Unlock()

		return
	}

	cleanup := h.cleanup
	h.cleanup = nil

	h.mu.Unlock()

	if cleanup != nil {
		cleanup()
	}

	ctx, end := h.startSpan(ctx, render)
	start := time.Now()

	next := fn(ctx)

	end()
	h.metrics.run(h.id, h.mode, time.Since(start))

	h.mu.Lock()

	if h.disposed {
		h.mu.Unlock()

		if next != nil {
			next()
		}

		return
	}

	h.cleanup = next

	h.mu.Unlock()
}

// Dispose runs the pending cleanup and removes the hook's metric series. Afterwards the hook
// ignores renders and scheduled runs.
func (h *Hook) Dispose() {
	h.mu.Lock()

	if h.disposed {
		h.mu.Unlock()

		return
	}

	h.disposed = true
	cleanup := h.cleanup
	h.cleanup = nil

	h.mu.Unlock()

	if cleanup != nil {
		cleanup()
	}

	h.metrics.forget(h.id)
}

// report categorizes seq, logs the render and appends it to the store.
func (h *Hook) report(ctx context.Context, render int, changed bool, skipped string, prev, seq deps.Sequence) {
	r := diagnostics.Report{
		ID:        h.id,
		Render:    render,
		Mode:      h.mode.String(),
		Strategy:  h.strategy.String(),
		Changed:   changed,
		Scheduled: skipped == "",
		Skipped:   skipped,
		Deps:      seq.Strings(),
		Previous:  prev.Strings(),
	}

	r.Categorized(deps.Categorize(seq))

	if h.store != nil {
		r = h.store.Append(r)
	}

	h.logger.LogAttrs(ctx, slog.LevelDebug, "Effect render", slog.Any("effect", r))

	for _, advisory := range r.Advisories {
		h.logger.LogAttrs(ctx, slog.LevelDebug, advisory, slog.String("id", h.id), slog.Int("render", render))
	}
}
