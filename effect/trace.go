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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation name of the global tracer used by [WithTracing].
const tracerName = "fillmore-labs.com/effectdeps/effect"

func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// startSpan starts a span for one effect run, or returns ctx unchanged without a tracer.
// The returned function ends the span.
func (c *config) startSpan(ctx context.Context, render int) (context.Context, func()) {
	if c.tracer == nil {
		return ctx, func() {}
	}

	ctx, span := c.tracer.Start(ctx, "effect "+c.id,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("effectdeps.id", c.id),
			attribute.String("effectdeps.mode", c.mode.String()),
			attribute.String("effectdeps.strategy", c.strategy.String()),
			attribute.Int("effectdeps.render", render),
		),
	)

	return ctx, func() { span.End() }
}
