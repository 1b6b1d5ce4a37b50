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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/effectdeps/internal/astutil"
	"fillmore-labs.com/effectdeps/internal/callsite"
	"fillmore-labs.com/effectdeps/internal/config"
	"fillmore-labs.com/effectdeps/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the effectdeps analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("effectdeps: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	hooks, err := callsite.NewMatcher(r.Hooks...)
	if err != nil {
		return nil, fmt.Errorf("effectdeps: %w", err)
	}

	if hooks.Empty() || r.Checks.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "EffectDeps")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Loop over all calls in this file
		for c := range f.Preorder((*ast.CallExpr)(nil)) {
			call := c.Node().(*ast.CallExpr)

			fn, ok := typeutil.Callee(p.TypesInfo, call).(*types.Func)
			if !ok {
				continue
			}

			hook, ok := hooks.Match(fn)
			if !ok {
				continue
			}

			sig, ok := p.TypesInfo.TypeOf(call.Fun).(*types.Signature)
			if !ok {
				astutil.InternalError(p, call, "Hook %s without signature", hook.Short())

				continue
			}

			if noLintFunc(c) {
				continue
			}

			deps := callsite.Dependencies(call, sig)

			report.Dependencies(ctx, p, currentFile, hook, call, deps, r.Checks)
		}
	}

	return nil, nil
}

// noLintFunc reports whether the call is inside a function declaration with a nolint comment.
func noLintFunc(c inspector.Cursor) bool {
	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		fun := e.Node().(*ast.FuncDecl)

		return fun.Doc != nil && astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1])
	}

	return false
}
