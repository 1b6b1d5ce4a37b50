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

package effect

import (
	"fmt"
	"strings"
)

// Mode specifies when a hook runs its effect relative to the host's commit.
type Mode uint8

const (
	// ModeEffect defers the run to the hook's [Scheduler], after the host committed the render.
	ModeEffect Mode = iota

	// ModeLayout runs the effect synchronously during [Hook.Render].
	ModeLayout
)

// String returns the mode name.
func (o Mode) String() string {
	switch o {
	case ModeEffect:
		return "effect"

	case ModeLayout:
		return "layout"

	default:
		return fmt.Sprintf("Mode(%d)", o)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (o Mode) MarshalText() ([]byte, error) {
	switch o {
	case ModeEffect, ModeLayout:
		return []byte(o.String()), nil

	default:
		return nil, fmt.Errorf("unknown effect mode %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "effect":
		*o = ModeEffect

	case "layout":
		*o = ModeLayout

	default:
		return fmt.Errorf("unknown effect mode %q", string(text))
	}

	return nil
}
