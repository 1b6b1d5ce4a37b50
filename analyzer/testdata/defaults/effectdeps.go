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

package defaults

import (
	"context"

	"fillmore-labs.com/effectdeps/deps"
	effectpkg "fillmore-labs.com/effectdeps/effect"
)

func run(context.Context) effectpkg.Cleanup { return nil }

func render(ctx context.Context, h *effectpkg.Hook, page int, filter string) {
	h.Render(ctx, run, deps.Sequence{page, filter})
	h.Render(ctx, run, deps.Sequence{page, []string{filter}})       // want `Array literal at index 1 is recreated on every call \(ed:arr\)`
	h.Render(ctx, run, deps.Sequence{func() {}, make(map[int]int)}) // want `Function literal at index 0 .*\(ed:fun\)` `Map from make at index 1 .*\(ed:obj\)`

	h.Render(ctx, run, deps.Of(page, filter))
	h.Render(ctx, run, deps.Of(map[string]int{filter: page})) // want `Object literal at index 0 is recreated on every call \(ed:obj\)`
	h.Render(ctx, run, nil)
}

func sequences(page int) []deps.Sequence {
	return []deps.Sequence{
		deps.Of(page),
		deps.Of(page, &struct{ n int }{page}), // want `Object literal at index 1 .*\(ed:obj\)`
	}
}
