// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"flag"
	"strings"

	"fillmore-labs.com/effectdeps/internal/callsite"
	"fillmore-labs.com/effectdeps/internal/config"
	"fillmore-labs.com/effectdeps/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(o *run.Options, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(boolValue[config.Config, *config.Behavior]{&o.Behavior, config.IncludeGenerated}, "generated", "check generated files")
	flags.Var(boolValue[config.Check, *config.Checks]{&o.Checks, config.ArrayCheck}, "arrays", "report slice and array literals")
	flags.Var(boolValue[config.Check, *config.Checks]{&o.Checks, config.ObjectCheck}, "objects", "report map and struct literals, pointers and make/new calls")
	flags.Var(boolValue[config.Check, *config.Checks]{&o.Checks, config.FunctionCheck}, "functions", "report function literals")
	flags.Var(&hooksValue{&o.Hooks}, "hooks", "comma separated list of checked functions, like pkg/path.Func or (*pkg/path.Type).Method")
}

// hooksValue is a comma separated list of hook names.
type hooksValue struct {
	hooks *[]string
}

// Set implements [flag.Value].
func (h *hooksValue) Set(s string) error {
	var hooks []string

	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if _, err := callsite.ParseHook(name); err != nil {
			return err
		}

		hooks = append(hooks, name)
	}

	*h.hooks = hooks

	return nil
}

// String implements [flag.Value].
func (h *hooksValue) String() string {
	if h == nil || h.hooks == nil {
		return ""
	}

	return strings.Join(*h.hooks, ",")
}

// Get implements [flag.Getter].
func (h *hooksValue) Get() any {
	if h == nil || h.hooks == nil {
		return []string(nil)
	}

	return *h.hooks
}
