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

package callsite_test

import (
	"fmt"
	"go/types"
	"testing"

	. "fillmore-labs.com/effectdeps/internal/callsite"
	"fillmore-labs.com/effectdeps/internal/testsource"
)

func TestDependencies(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		want int
	}{
		{"variadic", `use := func(f func(), deps ...any) {}; use(nil, 1, []int{1})`, 2},
		{"variadic_empty", `use := func(f func(), deps ...any) {}; use(nil)`, 0},
		{"ellipsis_literal", `use := func(f func(), deps ...any) {}; use(nil, []any{1, 2, 3}...)`, 3},
		{"ellipsis_variable", `use := func(f func(), deps ...any) {}; d := []any{1}; use(nil, d...)`, 0},
		{"slice_literal", `render := func(f func(), deps []any) {}; render(nil, []any{"a", func() {}})`, 2},
		{"slice_keyed", `render := func(f func(), deps []any) {}; render(nil, []any{1: "a", 0: "b"})`, 2},
		{"slice_nil", `render := func(f func(), deps []any) {}; render(nil, nil)`, 0},
		{"not_slice", `render := func(f func(), deps map[int]any) {}; render(nil, map[int]any{1: 1})`, 0},
		{"no_params", `run := func() {}; run()`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f, _, body := testsource.Parse(t, tt.src)
			_, info := testsource.Check(t, fset, f)

			calls := testsource.Calls(body)
			if len(calls) == 0 {
				t.Fatal("No call found")
			}

			call := calls[len(calls)-1]

			sig, ok := info.TypeOf(call.Fun).(*types.Signature)
			if !ok {
				t.Fatalf("Expected signature, got %T", info.TypeOf(call.Fun))
			}

			if got, want := len(Dependencies(call, sig)), tt.want; got != want {
				t.Errorf("Expected %d dependencies, got %d", want, got)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	const src = `
type point struct{ x, y int }
type bag struct{ items []int }
use := func(deps ...any) {}
use(
	1,
	"s",
	[]int{1},
	[2]int{1, 2},
	[2][]int{},
	map[string]int{},
	point{1, 2},
	bag{},
	&point{},
	func() {},
	make([]int, 0),
	make(map[int]int),
	make(chan int),
	new(int),
	(func() {}),
	len("x"),
)`

	want := [...]string{
		"",
		"",
		"arr: Array literal",
		"",
		"arr: Array literal",
		"obj: Object literal",
		"",
		"obj: Object literal",
		"obj: Object literal",
		"fun: Function literal",
		"arr: Slice from make",
		"obj: Map from make",
		"obj: Channel from make",
		"obj: Pointer from new",
		"fun: Function literal",
		"",
	}

	fset, f, _, body := testsource.Parse(t, src)
	_, info := testsource.Check(t, fset, f)

	calls := testsource.Calls(body)
	if len(calls) != 1 {
		t.Fatalf("Expected one call, got %d", len(calls))
	}

	args := calls[0].Args
	if len(args) != len(want) {
		t.Fatalf("Expected %d arguments, got %d", len(want), len(args))
	}

	for i, arg := range args {
		var got string
		if category, description, ok := Classify(info, arg); ok {
			got = fmt.Sprintf("%s: %s", category, description)
		}

		if got != want[i] {
			t.Errorf("Argument %d: expected %q, got %q", i, want[i], got)
		}
	}

	var indices []int
	for fresh := range FreshValues(info, args) {
		indices = append(indices, fresh.Index)
	}

	if got, want := len(indices), 11; got != want {
		t.Errorf("Expected %d fresh values, got %d: %v", want, got, indices)
	}
}
