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
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// anonymous is the name an unnamed function reports in some runtimes.
const anonymous = "anonymous"

// closureSegment matches the last name segment the compiler generates for function literals,
// like "func1" in "pkg.outer.func1" or "2" in "pkg.outer.func1.2".
var closureSegment = regexp.MustCompile(`^(?:func)?[0-9]+$`)

// FuncName returns the package-qualified name of function value fn, without the import path,
// and reports whether fn is anonymous.
//
// A function is anonymous if its name can not be resolved, is "anonymous", or is a compiler
// generated function literal name. Method values are reported with their method name.
func FuncName(fn any) (name string, isAnonymous bool) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return "", true
	}

	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return "", true
	}

	name = f.Name()
	if name == "" {
		return "", true
	}

	name = name[strings.LastIndexByte(name, '/')+1:]
	name = strings.TrimSuffix(name, "-fm")

	last := name[strings.LastIndexByte(name, '.')+1:]
	if last == anonymous || closureSegment.MatchString(last) {
		return name, true
	}

	return name, false
}
