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
Package deps compares and classifies the dependency sequences of effect hooks.

An effect re-runs when its dependencies change. [DetectChange] decides this for two
successive [Sequence] values, using a [Strategy]:

  - [Identity] compares references for structured values and values for primitives,
    mirroring the shallow comparison of common effect schedulers.
  - [Deep] compares values structurally, ignoring reference identity.
  - [Custom] hands both sequences to a caller-supplied [CompareFunc].

A sequence of a different length is always considered changed, as is an absent previous
sequence.

[Categorize] buckets the values of one sequence by [Kind] and produces advisories for values
that are likely to be recreated on every render (slices, maps, structs, pointers and
closures), which defeat identity comparison:

	r := deps.Categorize(deps.Of(id, []string{"a"}, func() {}))
	for _, a := range r.Advisories {
		log.Print(a) // Array at index 1 ..., Anonymous function at index 2 ...
	}
*/
package deps
