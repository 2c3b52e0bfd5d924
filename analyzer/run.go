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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulecheck/internal/astutil"
	"fillmore-labs.com/rulecheck/internal/config"
	"fillmore-labs.com/rulecheck/internal/lint"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the rulecheck analyzer's checks.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("rulecheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "RuleCheck")
	defer task.End()

	root, types := in.Root(), []ast.Node{(*ast.File)(nil)}

	var sn *lint.SourceName
	if r.analyzers.Enabled(config.SourceNameAnalyzer) {
		sn = &lint.SourceName{Pass: p, Root: root, Rename: r.behavior.Enabled(config.SuggestRename)}
		types = append(types, (*ast.GenDecl)(nil))
	}

	var mc *lint.Marker
	if r.analyzers.Enabled(config.MarkerAnalyzer) && r.importsVerify(p) {
		mc = &lint.Marker{Pass: p, Package: r.verifyPackage}
		types = append(types, (*ast.CallExpr)(nil))
	}

	if sn == nil && mc == nil {
		return nil, nil
	}

	// Remember the current file over all declarations in it
	var currentFile astutil.CurrentFile

	root.Inspect(types, func(i inspector.Cursor) bool {
		switch node := i.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			descend := r.behavior.Enabled(config.IncludeGenerated) || !currentFile.Generated()

			return descend

		case *ast.GenDecl:
			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Declaration without file info")

				return false
			}

			if sn != nil {
				sn.Check(ctx, currentFile, node)
			}

			// constants contain no calls
			return node.Tok != token.CONST

		case *ast.CallExpr:
			if !currentFile.Valid() {
				astutil.InternalError(p, node, "Call without file info")

				return false
			}

			if mc != nil {
				mc.Check(ctx, currentFile, node)
			}

			return true

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return nil, nil
}

// importsVerify reports whether the package imports the verification package.
func (r *runOptions) importsVerify(p *analysis.Pass) bool {
	for _, imp := range p.Pkg.Imports() {
		if imp.Path() == r.verifyPackage {
			return true
		}
	}

	return false
}
