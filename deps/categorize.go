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

package deps

import "fmt"

// Report is the categorization of one [Sequence].
//
// Every element lands in exactly one of Primitives, Structured or Functions, in input order.
// Advisories describe elements that will likely defeat identity comparison.
type Report struct {
	Primitives []any
	Structured []any
	Functions  []any
	Advisories []string
}

// Stable reports whether no element raised an advisory.
func (r Report) Stable() bool { return len(r.Advisories) == 0 }

// Categorize classifies every element of seq by [Kind] in a single pass.
//
// Slices and arrays produce an "Array at index i" advisory, other structured values an
// "Object at index i" advisory, and functions an advisory telling whether they are anonymous.
// Primitives produce none. Advisories are informational only.
func Categorize(seq Sequence) Report {
	var r Report

	for i, v := range seq {
		switch kind := KindOf(v); kind {
		case Array:
			r.Structured = append(r.Structured, v)
			r.Advisories = append(r.Advisories,
				fmt.Sprintf("Array at index %d may be recreated on every render; consider memoizing it", i))

		case Object:
			r.Structured = append(r.Structured, v)
			r.Advisories = append(r.Advisories,
				fmt.Sprintf("Object at index %d may be recreated on every render; consider memoizing it", i))

		case Function:
			r.Functions = append(r.Functions, v)
			r.Advisories = append(r.Advisories, functionAdvisory(i, v))

		default:
			r.Primitives = append(r.Primitives, v)
		}
	}

	return r
}

func functionAdvisory(i int, fn any) string {
	if name, isAnonymous := FuncName(fn); !isAnonymous {
		return fmt.Sprintf("Function %q at index %d may change identity; make sure it is stable", name, i)
	}

	return fmt.Sprintf("Anonymous function at index %d is recreated on every render; consider hoisting it", i)
}
