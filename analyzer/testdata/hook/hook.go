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

package hook

type Cleanup func()

func Use(effect func() Cleanup, deps ...any) {}

func Of(values ...any) []any { return values }

type Effect struct{}

func (e *Effect) Render(effect func() Cleanup, deps []any) bool { return true }

type Memo[T any] struct{}

func (m Memo[T]) Compute(f func() T, deps []any) T { return f() }
