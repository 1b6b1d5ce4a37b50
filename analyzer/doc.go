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

// Package analyzer implements the effectdeps static analysis pass.
//
// # Overview
//
// An effect hook compares its dependencies by identity. Slices, maps, pointers and
// closures created in the dependency list itself are new on every call, so the effect
// runs on every render. effectdeps reports those dependencies.
//
// # Example
//
// Before:
//
//	func (l *List) Render(ctx context.Context) {
//	    l.effect.Render(ctx, l.load, deps.Of(l.page, []string{l.filter})) // slice is new on every render
//	}
//
// After:
//
//	func (l *List) Render(ctx context.Context) {
//	    l.effect.Render(ctx, l.load, deps.Of(l.page, l.filter))
//	}
//
// # Checked Calls
//
// By default the analyzer checks calls to:
//
//   - fillmore-labs.com/effectdeps/deps.Of
//   - (*fillmore-labs.com/effectdeps/effect.Hook).Render
//
// Use the -hooks flag or [WithHooks] to check other functions. The dependencies of a
// variadic function are its variadic arguments, otherwise the elements of a slice
// literal passed as the last argument.
//
// # Diagnostics
//
//   - ed:arr: slice literals, array literals of non-comparable type and make([]T, ...)
//   - ed:obj: map literals, struct literals of non-comparable type, &T{...}, make(map...), make(chan...) and new(T)
//   - ed:fun: function literals
//
// Struct and array literals of comparable types compare by value and are not reported.
// Add a //nolint:effectdeps comment to the line, function or file to suppress diagnostics.
package analyzer
