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

package callsite

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"
)

// Dependencies returns the dependency expressions of a hook call with signature sig.
//
// For a variadic hook these are the variadic arguments, or the elements of a composite literal
// passed with an ellipsis. For other hooks they are the elements of a slice composite literal
// passed as the last argument.
func Dependencies(call *ast.CallExpr, sig *types.Signature) []ast.Expr {
	params := sig.Params().Len()
	if params == 0 {
		return nil
	}

	if sig.Variadic() && !call.Ellipsis.IsValid() {
		if len(call.Args) < params-1 {
			return nil
		}

		return call.Args[params-1:]
	}

	if len(call.Args) != params {
		return nil // f(g()) with multiple results
	}

	if _, ok := sig.Params().At(params - 1).Type().Underlying().(*types.Slice); !ok {
		return nil
	}

	lit, ok := ast.Unparen(call.Args[params-1]).(*ast.CompositeLit)
	if !ok {
		return nil
	}

	deps := make([]ast.Expr, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value
		}

		deps = append(deps, elt)
	}

	return deps
}

// Fresh is a dependency expression creating a new value on every evaluation.
type Fresh struct {
	Expr        ast.Expr
	Index       int
	Category    Category
	Description string // like "Array literal"
}

// FreshValues yields the dependencies creating a new value on every evaluation.
func FreshValues(info *types.Info, deps []ast.Expr) iter.Seq[Fresh] {
	return func(yield func(Fresh) bool) {
		for i, dep := range deps {
			category, description, ok := Classify(info, dep)
			if !ok {
				continue
			}

			if !yield(Fresh{Expr: dep, Index: i, Category: category, Description: description}) {
				return
			}
		}
	}
}

// Classify reports whether expr creates a new value on every evaluation, and of which [Category].
//
// Struct and array literals of comparable types are compared by value and therefore stable.
func Classify(info *types.Info, expr ast.Expr) (category Category, description string, ok bool) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.CompositeLit:
		return literalCategory(info.TypeOf(e))

	case *ast.UnaryExpr:
		if e.Op != token.AND {
			break
		}

		if _, ok := ast.Unparen(e.X).(*ast.CompositeLit); ok {
			return CategoryObject, "Object literal", true
		}

	case *ast.FuncLit:
		return CategoryFunction, "Function literal", true

	case *ast.CallExpr:
		return builtinCategory(info, e)
	}

	return 0, "", false
}

func literalCategory(t types.Type) (Category, string, bool) {
	if t == nil {
		return 0, "", false
	}

	switch t.Underlying().(type) {
	case *types.Slice:
		return CategoryArray, "Array literal", true

	case *types.Array:
		if types.Comparable(t) {
			return 0, "", false
		}

		return CategoryArray, "Array literal", true

	case *types.Map:
		return CategoryObject, "Object literal", true

	case *types.Struct:
		if types.Comparable(t) {
			return 0, "", false
		}

		return CategoryObject, "Object literal", true

	default:
		return 0, "", false
	}
}

func builtinCategory(info *types.Info, call *ast.CallExpr) (Category, string, bool) {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return 0, "", false
	}

	b, ok := info.Uses[id].(*types.Builtin)
	if !ok {
		return 0, "", false
	}

	switch b.Name() {
	case "make":
		t := info.TypeOf(call)
		if t == nil {
			return 0, "", false
		}

		switch t.Underlying().(type) {
		case *types.Slice:
			return CategoryArray, "Slice from make", true

		case *types.Map:
			return CategoryObject, "Map from make", true

		case *types.Chan:
			return CategoryObject, "Channel from make", true
		}

	case "new":
		return CategoryObject, "Pointer from new", true
	}

	return 0, "", false
}
