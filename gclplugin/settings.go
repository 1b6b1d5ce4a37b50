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

package gclplugin

import effectdeps "fillmore-labs.com/effectdeps/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated analyzes generated files. The plugin defaults to true and leaves exclusion to golangci-lint.
	Generated *bool `json:"generated,omitzero"`
	// Arrays reports slice and array literals.
	Arrays *bool `json:"arrays,omitzero"`
	// Objects reports map and struct literals, pointers and make/new calls.
	Objects *bool `json:"objects,omitzero"`
	// Functions reports function literals.
	Functions *bool `json:"functions,omitzero"`
	// Hooks replaces the checked functions.
	Hooks []string `json:"hooks,omitzero"`
}

// Options converts [Settings] into a list of [effectdeps.Option] for the effectdeps analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []effectdeps.Option {
	var opts []effectdeps.Option

	opts = appendOption(opts, s.Generated, effectdeps.WithGenerated)
	opts = appendOption(opts, s.Arrays, effectdeps.WithArrays)
	opts = appendOption(opts, s.Objects, effectdeps.WithObjects)
	opts = appendOption(opts, s.Functions, effectdeps.WithFunctions)

	if s.Hooks != nil {
		opts = append(opts, effectdeps.WithHooks(s.Hooks...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [effectdeps.Option] list.
func appendOption[T any](opts []effectdeps.Option, value *T, constructor func(T) effectdeps.Option) []effectdeps.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
