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

package checks

import "test/hook"

func effect() hook.Cleanup { return nil }

func checks() {
	hook.Use(effect, []int{}, map[int]int{}, func() {}) // want `Object literal at index 1`
	hook.Use(effect, make([]int, 0), make(chan int))    // want `Channel from make at index 1`
}
