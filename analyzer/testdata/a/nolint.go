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

package a

import "test/hook"

//nolint:effectdeps
func suppressed() {
	hook.Use(effect, []int{})
}

func line() {
	hook.Use(effect, []int{}) //nolint:effectdeps
	hook.Use(effect, []int{}) //nolint:all
	hook.Use(effect, []int{}) //nolint:other // want `Array literal at index 0`
}

func multiline() {
	hook.Use(effect, map[string]int{
		"a": 1,
	}) //nolint:effectdeps
}
