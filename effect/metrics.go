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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics of effect hooks.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "effectdeps").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for run duration.
	// Default: prometheus.DefBuckets
	Buckets []float64
}

// MetricsOption configures [NewMetrics].
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the run duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// Metrics holds the Prometheus collectors shared by all hooks configured with [WithMetrics].
type Metrics struct {
	renders  *prometheus.CounterVec
	runs     *prometheus.CounterVec
	skips    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers effect hook metrics with registry.
// A nil registry uses [prometheus.DefaultRegisterer].
//
// Metrics collected:
//   - effectdeps_renders_total: Counter of renders by hook id
//   - effectdeps_runs_total: Counter of effect runs by hook id and mode
//   - effectdeps_skips_total: Counter of suppressed runs by hook id and reason
//   - effectdeps_run_duration_seconds: Histogram of effect run duration by hook id
func NewMetrics(registry prometheus.Registerer, opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "effectdeps",
		Buckets:   prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(&config)
	}

	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of effect hook renders",
			ConstLabels: config.ConstLabels,
		}, []string{"id"}),

		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "runs_total",
			Help:        "Total number of effect runs",
			ConstLabels: config.ConstLabels,
		}, []string{"id", "mode"}),

		skips: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "skips_total",
			Help:        "Total number of renders that did not schedule the effect",
			ConstLabels: config.ConstLabels,
		}, []string{"id", "reason"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "run_duration_seconds",
			Help:        "Effect run duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"id"}),
	}
}

func (m *Metrics) render(id string) {
	if m == nil {
		return
	}

	m.renders.WithLabelValues(id).Inc()
}

func (m *Metrics) skip(id, reason string) {
	if m == nil {
		return
	}

	m.skips.WithLabelValues(id, reason).Inc()
}

func (m *Metrics) run(id string, mode Mode, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues(id, mode.String()).Inc()
	m.duration.WithLabelValues(id).Observe(elapsed.Seconds())
}

// forget deletes every series labelled with id.
func (m *Metrics) forget(id string) {
	if m == nil {
		return
	}

	labels := prometheus.Labels{"id": id}

	m.renders.DeletePartialMatch(labels)
	m.runs.DeletePartialMatch(labels)
	m.skips.DeletePartialMatch(labels)
	m.duration.DeletePartialMatch(labels)
}
