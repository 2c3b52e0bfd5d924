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
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"
)

// renameFix generates a [analysis.SuggestedFix] renaming all occurrences of obj in the package.
//
// It reports false when the new name is already in use in the scope hierarchy of obj.
func renameFix(info *types.Info, root inspector.Cursor, obj types.Object, name string) (analysis.SuggestedFix, bool) {
	if name == "_" || checkParents(obj.Parent(), name) || checkChildren(obj.Parent(), name) {
		return analysis.SuggestedFix{}, false
	}

	var edits []analysis.TextEdit

	for c := range root.Preorder((*ast.Ident)(nil)) {
		id, ok := c.Node().(*ast.Ident)
		if !ok || !identIs(info, id, obj) {
			continue
		}

		edits = append(edits, analysis.TextEdit{Pos: id.Pos(), End: id.End(), NewText: []byte(name)})
	}

	if len(edits) == 0 {
		return analysis.SuggestedFix{}, false
	}

	return analysis.SuggestedFix{Message: "Rename to " + name, TextEdits: edits}, true
}

// identIs checks if the given identifier denotes obj.
func identIs(info *types.Info, id *ast.Ident, obj types.Object) bool {
	if use, ok := info.Uses[id]; ok {
		return use == obj
	}

	if def, ok := info.Defs[id]; ok {
		return def == obj
	}

	return false
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
func checkChildren(scope *types.Scope, name string) bool {
	for child := range scope.Children() {
		if child.Lookup(name) != nil || checkChildren(child, name) {
			return true
		}
	}

	return false
}
