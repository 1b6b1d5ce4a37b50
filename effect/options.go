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
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/effectdeps/deps"
	"fillmore-labs.com/effectdeps/diagnostics"
)

// Option configures a [Hook] created with [New].
type Option interface {
	apply(c *config)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(c *config) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(c)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithID is an [Option] to set the identifier the hook reports under.
// Without one, a hook generates a unique identifier.
func WithID(id string) Option { return idOption{id: id} }

type idOption struct{ id string }

func (o idOption) apply(c *config) { c.id = o.id }

func (o idOption) LogAttr() slog.Attr { return slog.String("id", o.id) }

// WithSkipFirstRender is an [Option] to suppress the run on the first render.
func WithSkipFirstRender(skip bool) Option { return skipFirstRenderOption{skip: skip} }

type skipFirstRenderOption struct{ skip bool }

func (o skipFirstRenderOption) apply(c *config) { c.skipFirstRender = o.skip }

func (o skipFirstRenderOption) LogAttr() slog.Attr { return slog.Bool("skipFirstRender", o.skip) }

// WithDebug is an [Option] to categorize dependencies and report every render.
func WithDebug(debug bool) Option { return debugOption{debug: debug} }

type debugOption struct{ debug bool }

func (o debugOption) apply(c *config) { c.debug = o.debug }

func (o debugOption) LogAttr() slog.Attr { return slog.Bool("debug", o.debug) }

// WithMode is an [Option] to select when the effect runs.
func WithMode(mode Mode) Option { return modeOption{mode: mode} }

type modeOption struct{ mode Mode }

func (o modeOption) apply(c *config) { c.mode = o.mode }

func (o modeOption) LogAttr() slog.Attr { return slog.String("mode", o.mode.String()) }

// WithStrategy is an [Option] to select how dependencies are compared.
func WithStrategy(strategy deps.Strategy) Option { return strategyOption{strategy: strategy} }

type strategyOption struct{ strategy deps.Strategy }

func (o strategyOption) apply(c *config) { c.strategy = o.strategy }

func (o strategyOption) LogAttr() slog.Attr { return slog.Any("strategy", o.strategy) }

// WithDeepCompare is an [Option] to compare dependencies structurally.
// It is shorthand for WithStrategy(deps.Deep); disabling it restores [deps.Identity]
// if deep comparison was selected.
func WithDeepCompare(deep bool) Option { return deepCompareOption{deep: deep} }

type deepCompareOption struct{ deep bool }

func (o deepCompareOption) apply(c *config) {
	switch {
	case o.deep:
		c.strategy = deps.Deep

	case c.strategy.IsDeep():
		c.strategy = deps.Identity
	}
}

func (o deepCompareOption) LogAttr() slog.Attr { return slog.Bool("deepCompare", o.deep) }

// WithCompareFunc is an [Option] to compare dependencies with compare.
// It is shorthand for WithStrategy(deps.Custom(compare)).
func WithCompareFunc(compare deps.CompareFunc) Option { return compareFuncOption{compare: compare} }

type compareFuncOption struct{ compare deps.CompareFunc }

func (o compareFuncOption) apply(c *config) { c.strategy = deps.Custom(o.compare) }

func (o compareFuncOption) LogAttr() slog.Attr {
	return slog.Bool("compareFunction", o.compare != nil)
}

// WithStore is an [Option] to append debug reports to store.
func WithStore(store *diagnostics.Store) Option { return storeOption{store: store} }

type storeOption struct{ store *diagnostics.Store }

func (o storeOption) apply(c *config) { c.store = o.store }

func (o storeOption) LogAttr() slog.Attr { return slog.Bool("store", o.store != nil) }

// WithLogger is an [Option] to set the logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(c *config) {
	if o.logger != nil {
		c.logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr { return slog.Bool("logger", o.logger != nil) }

// WithScheduler is an [Option] to set the [Scheduler] for [ModeEffect] runs.
func WithScheduler(scheduler Scheduler) Option { return schedulerOption{scheduler: scheduler} }

type schedulerOption struct{ scheduler Scheduler }

func (o schedulerOption) apply(c *config) {
	if o.scheduler != nil {
		c.scheduler = o.scheduler
	}
}

func (o schedulerOption) LogAttr() slog.Attr { return slog.Bool("scheduler", o.scheduler != nil) }

// WithMetrics is an [Option] to record renders, runs and skips in metrics.
func WithMetrics(metrics *Metrics) Option { return metricsOption{metrics: metrics} }

type metricsOption struct{ metrics *Metrics }

func (o metricsOption) apply(c *config) { c.metrics = o.metrics }

func (o metricsOption) LogAttr() slog.Attr { return slog.Bool("metrics", o.metrics != nil) }

// WithTracer is an [Option] to wrap every run in a span started by tracer.
func WithTracer(tracer trace.Tracer) Option { return tracerOption{tracer: tracer} }

type tracerOption struct{ tracer trace.Tracer }

func (o tracerOption) apply(c *config) { c.tracer = o.tracer }

func (o tracerOption) LogAttr() slog.Attr { return slog.Bool("tracer", o.tracer != nil) }

// WithTracing is an [Option] to wrap every run in a span of the global tracer provider.
func WithTracing(tracing bool) Option { return tracingOption{tracing: tracing} }

type tracingOption struct{ tracing bool }

func (o tracingOption) apply(c *config) {
	switch {
	case !o.tracing:
		c.tracer = nil

	case c.tracer == nil:
		c.tracer = defaultTracer()
	}
}

func (o tracingOption) LogAttr() slog.Attr { return slog.Bool("tracing", o.tracing) }
