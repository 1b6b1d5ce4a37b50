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

// Package report emits the analyzer diagnostics.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/effectdeps/internal/astutil"
	"fillmore-labs.com/effectdeps/internal/callsite"
	"fillmore-labs.com/effectdeps/internal/config"
)

// Dependencies emits diagnostics for the dependencies of a hook call that are recreated on every call.
func Dependencies(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, hook callsite.Hook, call *ast.CallExpr, deps []ast.Expr, checks config.Checks) {
	defer trace.StartRegion(ctx, "ReportDependencies").End()

	for fresh := range callsite.FreshValues(p.TypesInfo, deps) {
		if !checks.Enabled(fresh.Category.Check()) {
			continue
		}

		if currentFile.NoLintComment(fresh.Expr.Pos(), fresh.Expr.End()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      fresh.Expr.Pos(),
			End:      fresh.Expr.End(),
			Category: fresh.Category.String(),
			Message:  createMessage(fresh),
			Related: []analysis.RelatedInformation{{
				Pos:     call.Pos(),
				End:     call.End(),
				Message: "In the dependencies of " + hook.Short(),
			}},
		})
	}
}

// createMessage constructs the diagnostic message, like "Array literal at index 1 is recreated on every call (ed:arr)".
func createMessage(fresh callsite.Fresh) string {
	return fmt.Sprintf("%s at index %d is recreated on every call (ed:%s)", fresh.Description, fresh.Index, fresh.Category)
}
