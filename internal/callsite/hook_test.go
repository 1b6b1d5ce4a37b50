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
	"errors"
	"go/token"
	"go/types"
	"testing"

	. "fillmore-labs.com/effectdeps/internal/callsite"
)

func TestParseHook(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name, in string
		want     Hook
		short    string
	}{
		{"function", "example.com/pkg/deps.Of", Hook{Pkg: "example.com/pkg/deps", Name: "Of"}, "deps.Of"},
		{"pointer_method", "(*example.com/pkg/effect.Hook).Render", Hook{Pkg: "example.com/pkg/effect", Recv: "Hook", Name: "Render", Pointer: true}, "(*effect.Hook).Render"},
		{"value_method", "(test/hook.Effect).Render", Hook{Pkg: "test/hook", Recv: "Effect", Name: "Render"}, "(hook.Effect).Render"},
		{"no_slash", " hook.Use ", Hook{Pkg: "hook", Name: "Use"}, "hook.Use"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHook(tt.in)
			if err != nil {
				t.Fatalf("ParseHook(%q) failed: %v", tt.in, err)
			}

			if got != tt.want {
				t.Errorf("ParseHook(%q) = %#v, want %#v", tt.in, got, tt.want)
			}

			if s := got.Short(); s != tt.short {
				t.Errorf("Short() = %q, want %q", s, tt.short)
			}
		})
	}
}

func TestParseHookInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range [...]string{"", "Of", "example.com/deps", "(*example.com/effect.Hook)", "(Hook).Render", "pkg.1st"} {
		if _, err := ParseHook(in); !errors.Is(err, ErrInvalidHook) {
			t.Errorf("ParseHook(%q) error = %v, want %v", in, err, ErrInvalidHook)
		}
	}
}

func TestMatcher(t *testing.T) {
	t.Parallel()

	depsPkg := types.NewPackage("example.com/deps", "deps")
	effectPkg := types.NewPackage("example.com/effect", "effect")

	anySlice := types.NewSlice(types.Universe.Lookup("any").Type())
	variadic := types.NewTuple(types.NewParam(token.NoPos, depsPkg, "values", anySlice))

	of := types.NewFunc(token.NoPos, depsPkg, "Of", types.NewSignatureType(nil, nil, nil, variadic, nil, true))
	other := types.NewFunc(token.NoPos, effectPkg, "Of", types.NewSignatureType(nil, nil, nil, variadic, nil, true))

	hookName := types.NewTypeName(token.NoPos, effectPkg, "Hook", nil)
	hook := types.NewNamed(hookName, types.NewStruct(nil, nil), nil)
	recv := types.NewParam(token.NoPos, effectPkg, "h", types.NewPointer(hook))
	render := types.NewFunc(token.NoPos, effectPkg, "Render", types.NewSignatureType(recv, nil, nil, nil, nil, false))

	m, err := NewMatcher("example.com/deps.Of", "(*example.com/effect.Hook).Render", "")
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	tests := [...]struct {
		name string
		fn   *types.Func
		want string
	}{
		{"function", of, "example.com/deps.Of"},
		{"method", render, "(*example.com/effect.Hook).Render"},
		{"other_package", other, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			if h, ok := m.Match(tt.fn); ok {
				got = h.String()
			}

			if got != tt.want {
				t.Errorf("Match() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := NewMatcher("nope"); !errors.Is(err, ErrInvalidHook) {
		t.Errorf("NewMatcher error = %v, want %v", err, ErrInvalidHook)
	}

	if empty, _ := NewMatcher(); !empty.Empty() {
		t.Error("Expected empty matcher")
	}
}

func TestDefaultHooks(t *testing.T) {
	t.Parallel()

	for _, name := range DefaultHooks() {
		h, err := ParseHook(name)
		if err != nil {
			t.Errorf("ParseHook(%q) failed: %v", name, err)

			continue
		}

		if got := h.String(); got != name {
			t.Errorf("String() = %q, want %q", got, name)
		}
	}
}
