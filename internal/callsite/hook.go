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

package callsite

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"path"
	"strings"
)

// ErrInvalidHook is returned when a hook name can not be parsed.
var ErrInvalidHook = errors.New("invalid hook name")

// DefaultHooks returns the names of the dependency taking functions of this module.
func DefaultHooks() []string {
	return []string{
		"fillmore-labs.com/effectdeps/deps.Of",
		"(*fillmore-labs.com/effectdeps/effect.Hook).Render",
	}
}

// Hook identifies a function or method receiving a dependency list.
type Hook struct {
	Pkg     string // package path
	Recv    string // receiver type name, empty for functions
	Name    string // function or method name
	Pointer bool   // receiver is written as a pointer
}

// ParseHook parses "pkg/path.Func", "(pkg/path.Type).Method" or "(*pkg/path.Type).Method".
func ParseHook(s string) (Hook, error) {
	name := strings.TrimSpace(s)

	var h Hook

	if rest, ok := strings.CutPrefix(name, "("); ok {
		recv, method, ok := strings.Cut(rest, ").")
		if !ok {
			return Hook{}, fmt.Errorf("%w %q: expected (Type).Method", ErrInvalidHook, s)
		}

		recv, h.Pointer = strings.CutPrefix(recv, "*")

		pkg, typ, ok := splitQualified(recv)
		if !ok {
			return Hook{}, fmt.Errorf("%w %q: expected package qualified receiver", ErrInvalidHook, s)
		}

		h.Pkg, h.Recv, h.Name = pkg, typ, method
	} else {
		pkg, fun, ok := splitQualified(name)
		if !ok {
			return Hook{}, fmt.Errorf("%w %q: expected package qualified function", ErrInvalidHook, s)
		}

		h.Pkg, h.Name = pkg, fun
	}

	if !token.IsIdentifier(h.Name) {
		return Hook{}, fmt.Errorf("%w %q: %q is not an identifier", ErrInvalidHook, s, h.Name)
	}

	return h, nil
}

// splitQualified splits "pkg/path.Name" at the first dot after the last slash.
func splitQualified(s string) (pkg, name string, ok bool) {
	slash := strings.LastIndexByte(s, '/')

	dot := strings.IndexByte(s[slash+1:], '.')
	if dot < 0 {
		return "", "", false
	}

	dot += slash + 1
	pkg, name = s[:dot], s[dot+1:]

	return pkg, name, pkg != "" && token.IsIdentifier(name)
}

// String returns the name in the form accepted by [ParseHook].
func (h Hook) String() string {
	return h.format(h.Pkg)
}

// Short returns the name qualified by the last package path element, like "deps.Of".
func (h Hook) Short() string {
	return h.format(path.Base(h.Pkg))
}

func (h Hook) format(pkg string) string {
	if h.Recv == "" {
		return pkg + "." + h.Name
	}

	star := ""
	if h.Pointer {
		star = "*"
	}

	return "(" + star + pkg + "." + h.Recv + ")." + h.Name
}

// Matches reports whether fn is the function or method named by h.
// Pointer and value receivers are not distinguished.
func (h Hook) Matches(fn *types.Func) bool {
	fn = fn.Origin()
	if fn.Name() != h.Name {
		return false
	}

	recv := fn.Signature().Recv()
	if h.Recv == "" {
		return recv == nil && fn.Pkg() != nil && fn.Pkg().Path() == h.Pkg
	}

	if recv == nil {
		return false
	}

	t := types.Unalias(recv.Type())
	if p, ok := t.(*types.Pointer); ok {
		t = types.Unalias(p.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == h.Recv && obj.Pkg() != nil && obj.Pkg().Path() == h.Pkg
}

// Matcher finds the [Hook] a function belongs to.
type Matcher struct {
	hooks []Hook
}

// NewMatcher parses names with [ParseHook].
func NewMatcher(names ...string) (Matcher, error) {
	hooks := make([]Hook, 0, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}

		h, err := ParseHook(name)
		if err != nil {
			return Matcher{}, err
		}

		hooks = append(hooks, h)
	}

	return Matcher{hooks: hooks}, nil
}

// Empty reports whether no hooks are configured.
func (m Matcher) Empty() bool {
	return len(m.hooks) == 0
}

// Match returns the configured [Hook] matching fn.
func (m Matcher) Match(fn *types.Func) (Hook, bool) {
	if fn == nil {
		return Hook{}, false
	}

	for _, h := range m.hooks {
		if h.Matches(fn) {
			return h, true
		}
	}

	return Hook{}, false
}
