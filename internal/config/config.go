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

package config

// Check represents a category of freshly created dependency values.
type Check uint8

const (
	// ArrayCheck reports slice and array literals.
	ArrayCheck Check = 1 << iota

	// ObjectCheck reports map and struct literals, address-of composite literals and make/new calls.
	ObjectCheck

	// FunctionCheck reports function literals.
	FunctionCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[Check]

// DefaultChecks returns all checks enabled.
func DefaultChecks() Checks {
	return NewBitMask(ArrayCheck, ObjectCheck, FunctionCheck)
}

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return Behavior{}
}
