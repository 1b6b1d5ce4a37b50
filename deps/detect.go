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

// DetectChange reports whether an effect depending on next should re-run, given that it last
// ran with prev.
//
// An absent prev is a first run and always changed, as is an absent next, which means the
// effect has no dependency list. Sequences of different length are changed regardless of
// the strategy. Otherwise s decides.
func DetectChange(prev, next Sequence, s Strategy) bool {
	if prev == nil || next == nil {
		return true
	}

	if len(prev) != len(next) {
		return true
	}

	return !s.Equal(prev, next)
}
