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

import "log/slog"

// CompareFunc reports whether two dependency sequences of the same length are equal.
type CompareFunc func(prev, next Sequence) bool

type strategyKind uint8

const (
	identityKind strategyKind = iota
	deepKind
	customKind
)

// Strategy selects how [DetectChange] compares two sequences.
// The zero value is [Identity].
type Strategy struct {
	kind    strategyKind
	compare CompareFunc
}

var (
	// Identity compares structured values by reference and primitives by value.
	Identity = Strategy{kind: identityKind}

	// Deep compares every element by recursive structural equality.
	Deep = Strategy{kind: deepKind}
)

// Custom returns a [Strategy] that delegates the comparison of whole sequences to compare.
// A nil compare yields [Identity].
func Custom(compare CompareFunc) Strategy {
	if compare == nil {
		return Identity
	}

	return Strategy{kind: customKind, compare: compare}
}

// Equal reports whether prev and next, of equal length, are unchanged under this strategy.
func (s Strategy) Equal(prev, next Sequence) bool {
	switch s.kind {
	case customKind:
		return s.compare(prev, next)

	case deepKind:
		return equalElements(prev, next, DeepEqual)

	default:
		return equalElements(prev, next, Same)
	}
}

// IsDeep reports whether this is the [Deep] strategy.
func (s Strategy) IsDeep() bool { return s.kind == deepKind }

// IsCustom reports whether this strategy delegates to a [CompareFunc].
func (s Strategy) IsCustom() bool { return s.kind == customKind }

// String returns the strategy name.
func (s Strategy) String() string {
	switch s.kind {
	case deepKind:
		return "deep"

	case customKind:
		return "custom"

	default:
		return "identity"
	}
}

// LogValue implements [slog.LogValuer].
func (s Strategy) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

func equalElements(prev, next Sequence, eq func(a, b any) bool) bool {
	for i, p := range prev {
		if !eq(p, next[i]) {
			return false
		}
	}

	return true
}
