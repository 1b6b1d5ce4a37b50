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
	"math"
	"reflect"
	"unsafe"
)

// Same reports whether a and b are the same value: identical references for maps, slices,
// pointers, channels and functions, and equal values for primitives.
//
// Structs and arrays are values in Go, so they are the same when all their elements are.
// Floating point numbers follow same-value semantics: NaN is the same as NaN, but -0 is
// not the same as +0.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	return sameValue(va, vb)
}

func sameValue(va, vb reflect.Value) bool {
	switch va.Kind() {
	case reflect.Func:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}

		if va.CanInterface() && vb.CanInterface() {
			return closure(va.Interface()) == closure(vb.Interface())
		}

		// Unexported fields only expose the code pointer.
		return va.Pointer() == vb.Pointer()

	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()

	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()

	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}

		ea, eb := va.Elem(), vb.Elem()

		return ea.Type() == eb.Type() && sameValue(ea, eb)

	case reflect.Struct:
		for i := range va.NumField() {
			if !sameValue(va.Field(i), vb.Field(i)) {
				return false
			}
		}

		return true

	case reflect.Array:
		for i := range va.Len() {
			if !sameValue(va.Index(i), vb.Index(i)) {
				return false
			}
		}

		return true

	case reflect.Float32, reflect.Float64:
		return sameFloat(va.Float(), vb.Float())

	case reflect.Complex64, reflect.Complex128:
		ca, cb := va.Complex(), vb.Complex()

		return sameFloat(real(ca), real(cb)) && sameFloat(imag(ca), imag(cb))

	default:
		return va.Equal(vb)
	}
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}

	return math.Float64bits(a) == math.Float64bits(b)
}

// closure returns the closure pointer of a function value held in an interface.
//
// Function values are pointer-shaped and stored directly in the data word of the interface.
// Two closures created by the same literal share a code pointer, but not a closure pointer
// when they capture variables.
func closure(fn any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1]
}

// DeepEqual reports whether a and b are structurally equal.
//
// Values that are [Same] are always equal. Otherwise maps, slices, arrays, structs, pointers
// and interfaces are compared element by element, so two separately allocated but equal
// structures are equal. A nil slice or map equals an empty one. Functions and channels have no
// structure and compare by identity.
func DeepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	return deepValue(va, vb, make(map[visit]struct{}))
}

// visit records a pair of references under comparison, to terminate on cyclic structures.
type visit struct {
	a, b unsafe.Pointer
	typ  reflect.Type
}

func deepValue(va, vb reflect.Value, visited map[visit]struct{}) bool {
	switch va.Kind() {
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}

		if va.Len() == 0 || va.UnsafePointer() == vb.UnsafePointer() {
			return true
		}

		if seen(va, vb, visited) {
			return true
		}

		for iter := va.MapRange(); iter.Next(); {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !deepValue(iter.Value(), other, visited) {
				return false
			}
		}

		return true

	case reflect.Slice:
		if va.Len() != vb.Len() {
			return false
		}

		if va.Len() == 0 || va.UnsafePointer() == vb.UnsafePointer() {
			return true
		}

		if seen(va, vb, visited) {
			return true
		}

		return deepElements(va, vb, visited)

	case reflect.Array:
		return deepElements(va, vb, visited)

	case reflect.Pointer:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}

		if va.UnsafePointer() == vb.UnsafePointer() || seen(va, vb, visited) {
			return true
		}

		return deepValue(va.Elem(), vb.Elem(), visited)

	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}

		ea, eb := va.Elem(), vb.Elem()

		return ea.Type() == eb.Type() && deepValue(ea, eb, visited)

	case reflect.Struct:
		for i := range va.NumField() {
			if !deepValue(va.Field(i), vb.Field(i), visited) {
				return false
			}
		}

		return true

	default:
		return sameValue(va, vb)
	}
}

func deepElements(va, vb reflect.Value, visited map[visit]struct{}) bool {
	for i := range va.Len() {
		if !deepValue(va.Index(i), vb.Index(i), visited) {
			return false
		}
	}

	return true
}

// seen marks the pair (va, vb) as under comparison and reports whether it already was.
func seen(va, vb reflect.Value, visited map[visit]struct{}) bool {
	v := visit{a: va.UnsafePointer(), b: vb.UnsafePointer(), typ: va.Type()}
	if _, ok := visited[v]; ok {
		return true
	}

	visited[v] = struct{}{}

	return false
}
