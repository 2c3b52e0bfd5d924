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
	"go/constant"
	"go/types"
	"runtime/trace"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/rulecheck/internal/astutil"
	"fillmore-labs.com/rulecheck/internal/marker"
	"fillmore-labs.com/rulecheck/internal/source"
)

// SourceName reports string constants holding Go sources that are not named after
// the primary type of the source.
type SourceName struct {
	Pass   *analysis.Pass
	Root   inspector.Cursor
	Rename bool // suggest renaming the constant
}

// Check examines the constants of a declaration.
func (s SourceName) Check(ctx context.Context, file astutil.CurrentFile, decl *ast.GenDecl) {
	defer trace.StartRegion(ctx, "SourceName").End()

	for id, spec := range astutil.AllConstNames(decl) {
		if file.NoLint(id.Pos(), decl.Doc, spec.Doc) {
			continue
		}

		c, ok := s.Pass.TypesInfo.Defs[id].(*types.Const)
		if !ok || c.Val().Kind() != constant.String {
			continue
		}

		primary, ok := primaryName(constant.StringVal(c.Val()))
		if !ok || NamedAfter(id.Name, primary) {
			continue
		}

		message := fmt.Sprintf("source constant %s declares %s and should be named after it", id.Name, primary)

		var fixes []analysis.SuggestedFix
		if s.Rename {
			if fix, ok := renameFix(s.Pass.TypesInfo, s.Root, c, constName(id.Name, primary)); ok {
				fixes = append(fixes, fix)
			}
		}

		report(s.Pass, id, SourceNameKind, message, fixes...)
	}
}

// primaryName returns the primary type of a constant holding a complete Go source.
func primaryName(text string) (string, bool) {
	if !strings.Contains(text, "package ") {
		return "", false
	}

	d := source.Describe(marker.Strip(text).Texts[0])
	if d.Err != nil || d.Package == "" || d.PrimaryType == "" {
		return "", false
	}

	return d.PrimaryType, true
}

// NamedAfter reports whether name starts with primary, ignoring the case of the first letter.
func NamedAfter(name, primary string) bool {
	r1, n1 := utf8.DecodeRuneInString(name)
	r2, n2 := utf8.DecodeRuneInString(primary)

	if r1 == utf8.RuneError || r2 == utf8.RuneError || unicode.ToLower(r1) != unicode.ToLower(r2) {
		return false
	}

	return strings.HasPrefix(name[n1:], primary[n2:])
}

// constName derives the new constant name, keeping the export status of the old one.
func constName(old, primary string) string {
	r, n := utf8.DecodeRuneInString(primary)
	if ast.IsExported(old) {
		return string(unicode.ToUpper(r)) + primary[n:]
	}

	return string(unicode.ToLower(r)) + primary[n:]
}
