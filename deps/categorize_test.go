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

package deps_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/effectdeps/deps"
)

func namedDependency() {}

func TestCategorizePrimitives(t *testing.T) {
	t.Parallel()

	var nilPointer *int

	r := Categorize(Of(1, "s", true, nil, nilPointer))

	assert.Len(t, r.Primitives, 5)
	assert.Empty(t, r.Structured)
	assert.Empty(t, r.Functions)
	assert.Empty(t, r.Advisories)
	assert.True(t, r.Stable())
}

func TestCategorizeStructured(t *testing.T) {
	t.Parallel()

	object, array := map[string]int{"a": 1}, []int{1, 2, 3}

	r := Categorize(Of(object, array))

	require.Len(t, r.Structured, 2)
	assert.Equal(t, object, r.Structured[0])
	assert.Equal(t, array, r.Structured[1])
	require.Len(t, r.Advisories, 2)
	assert.Contains(t, r.Advisories[0], "Object at index 0")
	assert.Contains(t, r.Advisories[1], "Array at index 1")
	assert.False(t, r.Stable())
}

func TestCategorizeFunctions(t *testing.T) {
	t.Parallel()

	r := Categorize(Of(namedDependency, func() {}))

	assert.Len(t, r.Functions, 2)
	require.Len(t, r.Advisories, 2)
	assert.Contains(t, r.Advisories[0], `"deps_test.namedDependency" at index 0`)
	assert.Contains(t, r.Advisories[1], "Anonymous function at index 1")
}

func TestCategorizeKeepsOrder(t *testing.T) {
	t.Parallel()

	r := Categorize(Of("a", []int{1}, "b", &struct{}{}, 3))

	assert.Equal(t, []any{"a", "b", 3}, r.Primitives)
	assert.Len(t, r.Structured, 2)
	require.Len(t, r.Advisories, 2)
	assert.Contains(t, r.Advisories[0], "Array at index 1")
	assert.Contains(t, r.Advisories[1], "Object at index 3")
}

func TestCategorizeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Report{}, Categorize(nil))
	assert.Equal(t, Report{}, Categorize(Of()))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	var (
		nilMap  map[string]int
		nilFunc func()
		nilChan chan int
	)

	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{"Nil", nil, Primitive},
		{"Int", 1, Primitive},
		{"Float", 1.5, Primitive},
		{"String", "s", Primitive},
		{"Bool", false, Primitive},
		{"Duration", time.Second, Primitive},
		{"NilMap", nilMap, Primitive},
		{"NilFunc", nilFunc, Primitive},
		{"NilChan", nilChan, Primitive},
		{"Slice", []string{}, Array},
		{"Array", [2]int{}, Array},
		{"Map", map[int]int{}, Object},
		{"Struct", struct{}{}, Object},
		{"Pointer", new(int), Object},
		{"Chan", make(chan int), Object},
		{"Func", namedDependency, Function},
		{"MethodValue", time.Time{}.IsZero, Function},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, KindOf(tt.value))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "primitive", Primitive.String())
	assert.Equal(t, "function", Function.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.True(t, Array.Structured())
	assert.False(t, Function.Structured())
}

func TestFuncName(t *testing.T) {
	t.Parallel()

	name, anonymous := FuncName(namedDependency)
	assert.Equal(t, "deps_test.namedDependency", name)
	assert.False(t, anonymous)

	_, anonymous = FuncName(func() {})
	assert.True(t, anonymous)

	name, anonymous = FuncName(time.Time{}.IsZero)
	assert.Equal(t, "time.Time.IsZero", name)
	assert.False(t, anonymous)

	_, anonymous = FuncName(42)
	assert.True(t, anonymous)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	assert.True(t, Sequence(nil).Absent())
	assert.False(t, Of().Absent())
	assert.Nil(t, Sequence(nil).Clone())

	s := Of(1, "a")
	c := s.Clone()
	s[0] = 2

	assert.Equal(t, Of(1, "a"), c)
	assert.Equal(t, []string{`1`, `"a"`}, c.Strings())
	assert.Equal(t, []string{"func deps_test.namedDependency"}, Of(namedDependency).Strings())
}

func TestSequenceStringsCyclic(t *testing.T) {
	t.Parallel()

	m := map[string]any{}
	m["self"] = m

	s := []any{nil}
	s[0] = s

	type node struct {
		next *node
		tags []string
	}

	n := &node{tags: []string{"a"}}
	n.next = n

	shared := []int{1}

	got := Of(m, s, n, [2][]int{shared, shared}).Strings()
	require.Len(t, got, 4)

	assert.Equal(t, "map[string]interface {}{...} (len 1)", got[0])
	assert.Equal(t, "[]interface {}{...} (len 1)", got[1])
	assert.Contains(t, got[2], `tags:[]string{"a"}`)
	assert.Equal(t, "[2][]int{[]int{1}, []int{1}}", got[3])

	assert.True(t, DeepEqual(m, m))
}

func TestSequenceStringsDeep(t *testing.T) {
	t.Parallel()

	var nested any = 1
	for range 40 {
		nested = []any{nested}
	}

	got := Of(nested).Strings()
	assert.Equal(t, []string{"[]interface {}{...} (len 1)"}, got)
}
