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
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrInvalidKind is returned when parsing an unknown [Kind].
var ErrInvalidKind = errors.New("invalid dependency kind")

// Kind classifies a dependency value by how it behaves under identity comparison.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Primitive values compare by value: booleans, numbers, strings and nil.
	Primitive Kind = iota // primitive

	// Array values are slices and arrays.
	Array // array

	// Object values are maps, structs, pointers and channels.
	Object // object

	// Function values are funcs, including method values and closures.
	Function // function
)

// Structured reports whether values of this kind are likely to be recreated on every render.
func (i Kind) Structured() bool { return i == Array || i == Object }

// KindOf returns the [Kind] of v. Nil pointers, maps, slices, functions, channels and
// interfaces are [Primitive], like an untyped nil.
func KindOf(v any) Kind {
	if v == nil {
		return Primitive
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return Primitive
		}
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Array

	case reflect.Map, reflect.Struct, reflect.Pointer, reflect.Chan:
		return Object

	case reflect.Func:
		return Function

	default:
		return Primitive
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (i Kind) MarshalText() ([]byte, error) {
	if i > Function {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, i)
	}

	return []byte(i.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Kind) UnmarshalText(text []byte) error {
	for k := Primitive; k <= Function; k++ {
		if strings.EqualFold(string(text), k.String()) {
			*i = k

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidKind, text)
}
