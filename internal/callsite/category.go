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

import "fillmore-labs.com/effectdeps/internal/config"

// Category classifies a dependency expression that creates a fresh value.
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// CategoryArray is a slice or array created at the call site.
	CategoryArray Category = iota // arr

	// CategoryObject is a map, struct, pointer or channel created at the call site.
	CategoryObject // obj

	// CategoryFunction is a function literal.
	CategoryFunction // fun
)

// Check returns the configuration flag enabling diagnostics for this category.
func (i Category) Check() config.Check {
	switch i {
	case CategoryArray:
		return config.ArrayCheck

	case CategoryObject:
		return config.ObjectCheck

	case CategoryFunction:
		return config.FunctionCheck

	default:
		return 0
	}
}
