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

package a

import "test/hook"

type point struct{ x, y int }

type bag struct{ items []int }

func effect() hook.Cleanup { return nil }

func variadic(page int, filter string) {
	hook.Use(effect, page, filter)
	hook.Use(effect)
	hook.Use(effect, []string{filter})                   // want `Array literal at index 0 is recreated on every call \(ed:arr\)`
	hook.Use(effect, page, map[string]int{filter: page}) // want `Object literal at index 1 is recreated on every call \(ed:obj\)`
	hook.Use(effect, func() {})                          // want `Function literal at index 0 is recreated on every call \(ed:fun\)`
	hook.Use(effect, point{page, page}, [2]int{page, page})
	hook.Use(effect, bag{})             // want `Object literal at index 0 .*\(ed:obj\)`
	hook.Use(effect, &point{})          // want `Object literal at index 0 .*\(ed:obj\)`
	hook.Use(effect, make([]int, page)) // want `Slice from make at index 0 .*\(ed:arr\)`
	hook.Use(effect, new(int))          // want `Pointer from new at index 0 .*\(ed:obj\)`
	hook.Use(effect, ([]int{}))         // want `Array literal at index 0`
	hook.Use(effect, []any{page, []int{}}...) // want `Array literal at index 1`
}

func method(e *hook.Effect, page int) {
	e.Render(effect, []any{page, []int{page}}) // want `Array literal at index 1 .*\(ed:arr\)`
	e.Render(effect, hook.Of(page, func() {})) // want `Function literal at index 1 .*\(ed:fun\)`
	e.Render(effect, nil)

	var m hook.Memo[int]
	m.Compute(func() int { return page }, []any{map[int]int{}}) // want `Object literal at index 0`
}
