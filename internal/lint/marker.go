// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package lint

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/rulecheck/internal/astutil"
	"fillmore-labs.com/rulecheck/internal/marker"
)

// Marker reports calls to the verification helpers whose constant sources
// use the finding marker inconsistently.
type Marker struct {
	Pass    *analysis.Pass
	Package string // import path of the verification package
}

// helper describes the arguments of a verification helper.
type helper struct {
	sources int  // index of the sources argument
	options int  // index of the first option
	marked  bool // whether the sources must mark findings
}

var helpers = map[string]helper{
	"Valid":       {sources: 2, options: 3, marked: false},
	"Diagnostics": {sources: 2, options: 3, marked: true},
	"CodeFix":     {sources: 3, options: 5, marked: true},
	"FixAll":      {sources: 3, options: 5, marked: true},
	"NoFix":       {sources: 3, options: 4, marked: true},
}

// Check examines a call expression.
func (m Marker) Check(ctx context.Context, file astutil.CurrentFile, call *ast.CallExpr) {
	fn, ok := m.callee(call)
	if !ok {
		return
	}

	h, ok := helpers[fn.Name()]
	if !ok || len(call.Args) <= h.sources || file.NoLint(call.Pos()) {
		return
	}

	defer trace.StartRegion(ctx, "Marker").End()

	lit, ok := ast.Unparen(call.Args[h.sources]).(*ast.CompositeLit)
	if !ok || len(lit.Elts) == 0 {
		return
	}

	texts, ok := astutil.StringConstants(m.Pass.TypesInfo, lit.Elts)
	if !ok {
		return
	}

	marked := marker.Strip(texts...).Count() > 0

	switch {
	case h.marked && !marked:
		if call.Ellipsis.IsValid() || m.mayExpect(call.Args[min(h.options, len(call.Args)):]) {
			return
		}

		report(m.Pass, lit, MarkerKind,
			fmt.Sprintf("%s sources have no finding marked with %q", fn.Name(), marker.Marker))

	case !h.marked && marked:
		report(m.Pass, lit, MarkerKind,
			fmt.Sprintf("%s sources must not mark findings with %q", fn.Name(), marker.Marker))
	}
}

// callee returns the package level function of the verification package called.
func (m Marker) callee(call *ast.CallExpr) (*types.Func, bool) {
	fn, ok := typeutil.Callee(m.Pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != m.Package || fn.Signature().Recv() != nil {
		return nil, false
	}

	return fn, true
}

// mayExpect reports whether the options could add explicit expectations.
func (m Marker) mayExpect(options []ast.Expr) bool {
	for _, opt := range options {
		call, ok := ast.Unparen(opt).(*ast.CallExpr)
		if !ok {
			return true
		}

		fn, ok := m.callee(call)
		if !ok || fn.Name() == "WithExpected" {
			return true
		}
	}

	return false
}
