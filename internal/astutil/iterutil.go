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

package astutil

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"iter"
)

// AllConstNames yields the named constants of a const declaration with their value spec.
func AllConstNames(decl *ast.GenDecl) iter.Seq2[*ast.Ident, *ast.ValueSpec] {
	if decl.Tok != token.CONST {
		return func(func(*ast.Ident, *ast.ValueSpec) bool) {}
	}

	return func(yield func(*ast.Ident, *ast.ValueSpec) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, id := range vspec.Names {
				if id.Name == "_" {
					continue // blank identifier
				}

				if !yield(id, vspec) {
					return
				}
			}
		}
	}
}

// StringConstants returns the constant string values of exprs. It reports false
// when any of them is not a constant string.
func StringConstants(info *types.Info, exprs []ast.Expr) ([]string, bool) {
	values := make([]string, 0, len(exprs))

	for _, expr := range exprs {
		tv, ok := info.Types[expr]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return nil, false
		}

		values = append(values, constant.StringVal(tv.Value))
	}

	return values, true
}
