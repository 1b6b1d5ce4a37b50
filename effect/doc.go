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

/*
Package effect runs side effects when their dependencies change.

A [Hook] belongs to one call site of a component. The host calls [Hook.Render] on every render
with the effect and its current dependencies; the hook decides with [deps.DetectChange] whether
the effect runs, runs the previous [Cleanup] first, and keeps the new one.

	var (
		queue = &effect.Queue{}
		store = diagnostics.New()
		hook  = effect.New(
			effect.WithID("user-profile"),
			effect.WithScheduler(queue),
			effect.WithDeepCompare(true),
			effect.WithDebug(true),
			effect.WithStore(store),
		)
	)

	func render(ctx context.Context, user User) {
		hook.Render(ctx, func(ctx context.Context) effect.Cleanup {
			stop := subscribe(ctx, user.ID)
			return stop
		}, deps.Of(user.ID, user.Roles))
	}

	// after the host committed the render:
	queue.Flush()

# Options

  - [WithSkipFirstRender] only takes the dependency snapshot on the first render.
  - [WithDebug] categorizes the dependencies on every render, logs advisories and appends a
    [diagnostics.Report] to the [diagnostics.Store] given by [WithStore].
  - [WithMode] selects [ModeEffect] (run after commit) or [ModeLayout] (run during render).
  - [WithDeepCompare], [WithCompareFunc] and [WithStrategy] select the comparison.
  - [WithID] names the hook in reports, metrics and spans.
*/
package effect
