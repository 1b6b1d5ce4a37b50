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

import (
	"log/slog"
	"strings"
)

// Sequence is an ordered list of values an effect depends on.
//
// A nil Sequence is absent: the effect has no dependency list and runs on every render.
// This is different from the empty Sequence returned by [Of], which never changes.
type Sequence []any

// Of returns a non-nil [Sequence] holding values.
func Of(values ...any) Sequence {
	if values == nil {
		return Sequence{}
	}

	return values
}

// Absent reports whether s is the absent sequence.
func (s Sequence) Absent() bool { return s == nil }

// Clone returns a snapshot of s for comparison against a later sequence.
// Elements are copied shallowly, an absent sequence stays absent.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}

	return append(make(Sequence, 0, len(s)), s...)
}

// Strings formats every element in Go syntax. Cyclic or deeply nested values are summarized
// by type and length.
func (s Sequence) Strings() []string {
	if s == nil {
		return nil
	}

	values := make([]string, len(s))
	for i, v := range s {
		values[i] = format(v)
	}

	return values
}

// LogValue implements [slog.LogValuer].
func (s Sequence) LogValue() slog.Value {
	if s == nil {
		return slog.StringValue("<absent>")
	}

	return slog.StringValue("[" + strings.Join(s.Strings(), ", ") + "]")
}
