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
	"fmt"
	"reflect"
)

// maxFormatDepth bounds the nesting printed in full by format.
const maxFormatDepth = 16

func format(v any) string {
	if KindOf(v) == Function {
		if name, anonymous := FuncName(v); !anonymous {
			return "func " + name
		}

		return "func <anonymous>"
	}

	rv := reflect.ValueOf(v)
	if !printable(rv, 0, make(map[ref]struct{})) {
		return summary(rv)
	}

	return fmt.Sprintf("%#v", v)
}

// ref identifies a map, slice or pointer on the current formatting path.
type ref struct {
	ptr uintptr
	typ reflect.Type
}

// printable reports whether fmt can print v in Go syntax without following a reference cycle,
// and without exceeding maxFormatDepth.
func printable(v reflect.Value, depth int, path map[ref]struct{}) bool {
	if depth > maxFormatDepth {
		return false
	}

	switch v.Kind() {
	case reflect.Pointer:
		// fmt prints nested pointers as addresses.
		if v.IsNil() || depth > 0 {
			return true
		}

		return printable(v.Elem(), depth+1, path)

	case reflect.Interface:
		if v.IsNil() {
			return true
		}

		return printable(v.Elem(), depth+1, path)

	case reflect.Map:
		if v.IsNil() {
			return true
		}

		if !enter(v, path) {
			return false
		}
		defer delete(path, ref{v.Pointer(), v.Type()})

		for it := v.MapRange(); it.Next(); {
			if !printable(it.Key(), depth+1, path) || !printable(it.Value(), depth+1, path) {
				return false
			}
		}

	case reflect.Slice:
		if v.IsNil() {
			return true
		}

		if !enter(v, path) {
			return false
		}
		defer delete(path, ref{v.Pointer(), v.Type()})

		return printableElements(v, depth, path)

	case reflect.Array:
		return printableElements(v, depth, path)

	case reflect.Struct:
		for i := range v.NumField() {
			if !printable(v.Field(i), depth+1, path) {
				return false
			}
		}
	}

	return true
}

func printableElements(v reflect.Value, depth int, path map[ref]struct{}) bool {
	for i := range v.Len() {
		if !printable(v.Index(i), depth+1, path) {
			return false
		}
	}

	return true
}

// enter adds v to path and reports false when it is already there.
func enter(v reflect.Value, path map[ref]struct{}) bool {
	r := ref{v.Pointer(), v.Type()}
	if _, ok := path[r]; ok {
		return false
	}

	path[r] = struct{}{}

	return true
}

// summary describes a value too deep or cyclic to print.
func summary(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return fmt.Sprintf("%s{...} (len %d)", v.Type(), v.Len())

	default:
		return v.Type().String() + "{...}"
	}
}
