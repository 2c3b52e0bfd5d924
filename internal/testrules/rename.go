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

// Package testrules provides small rules and fixes for testing the harness.
package testrules

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulecheck/rule"
)

// NamingKind is the finding kind of the [Naming] rule.
const NamingKind = "X001"

var errResultMissing = errors.New("inspector result missing")

// Naming returns a rule that flags types named from and suggests renaming them to each of to.
func Naming(from string, to ...string) *rule.Rule {
	a := &analysis.Analyzer{
		Name:     "naming",
		Doc:      fmt.Sprintf("naming flags types named %s", from),
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run: func(p *analysis.Pass) (any, error) {
			return runNaming(p, from, to)
		},
	}

	return rule.New(a, NamingKind)
}

func runNaming(p *analysis.Pass, from string, to []string) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, errResultMissing
	}

	for c := range in.Root().Preorder((*ast.TypeSpec)(nil)) {
		spec := c.Node().(*ast.TypeSpec)
		if spec.Name.Name != from {
			continue
		}

		obj := p.TypesInfo.Defs[spec.Name]
		if obj == nil {
			continue
		}

		d := analysis.Diagnostic{
			Pos:      spec.Name.Pos(),
			End:      spec.Name.End(),
			Category: NamingKind,
			Message:  fmt.Sprintf("Type %s has a bad name", from),
		}

		for _, name := range to {
			d.SuggestedFixes = append(d.SuggestedFixes, analysis.SuggestedFix{
				Message:   "Rename to " + name,
				TextEdits: renameEdits(p.TypesInfo, obj, name),
			})
		}

		p.Report(d)
	}

	return nil, nil
}

// renameEdits replaces the definition and every use of obj in the package.
func renameEdits(info *types.Info, obj types.Object, name string) []analysis.TextEdit {
	var edits []analysis.TextEdit

	for id, def := range info.Defs {
		if def == obj {
			edits = append(edits, analysis.TextEdit{Pos: id.Pos(), End: id.End(), NewText: []byte(name)})
		}
	}

	for id, use := range info.Uses {
		if use == obj {
			edits = append(edits, analysis.TextEdit{Pos: id.Pos(), End: id.End(), NewText: []byte(name)})
		}
	}

	return edits
}
