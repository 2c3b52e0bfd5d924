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

// Package source extracts naming and reference evidence from raw Go source text.
//
// The evidence is partial by nature: a source may not parse completely, and
// nothing here type-checks. Callers use it to derive file names, namespaces
// and dependency edges before the text is compiled.
package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"slices"
	"strconv"
)

// Description is the evidence extracted from a single Go source text.
type Description struct {
	// Package is the name from the package clause, empty when missing.
	Package string

	// Path is the import path of the package: the canonical import comment
	// when present, the package name otherwise.
	Path string

	// PrimaryType is the first declared type, or the first declared function
	// when the source declares no types. Empty when neither exists.
	PrimaryType string

	// Imports lists the imported paths in source order.
	Imports []string

	// Qualifiers lists identifiers used as selector bases that are neither
	// imported nor declared in the file, in order of first appearance.
	// These are in-place qualified references like pkg.Symbol.
	Qualifiers []string

	// Err is the parse error, if any.
	Err error
}

// Describe extracts a [Description] from Go source text.
func Describe(text string) Description {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "", text, parser.ParseComments|parser.SkipObjectResolution)

	d := Description{Err: err}
	if f == nil || f.Name == nil || f.Name.Name == "" || f.Name.Name == "_" {
		return d
	}

	d.Package = f.Name.Name
	d.Path = importComment(fset, f)

	if d.Path == "" {
		d.Path = d.Package
	}

	d.PrimaryType = primaryType(f)

	names := make(map[string]struct{}, len(f.Imports))
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		d.Imports = append(d.Imports, p)

		switch {
		case spec.Name == nil:
			names[path.Base(p)] = struct{}{}

		case spec.Name.Name != "_" && spec.Name.Name != ".":
			names[spec.Name.Name] = struct{}{}
		}
	}

	d.Qualifiers = qualifiers(f, names)

	return d
}

// FileName returns the file name derived from the primary type, or an empty string.
func (d Description) FileName() string {
	if d.PrimaryType == "" {
		return ""
	}

	return d.PrimaryType + ".go"
}

var importCommentPattern = regexp.MustCompile(`^(?://|/\*)\s*import\s+("[^"]+"|` + "`[^`]+`" + `)`)

// importComment returns the canonical import path from a comment on the package clause line.
func importComment(fset *token.FileSet, f *ast.File) string {
	line := fset.Position(f.Name.End()).Line

	for _, group := range f.Comments {
		if group.Pos() < f.Name.End() {
			continue
		}

		c := group.List[0]
		if fset.Position(c.Pos()).Line != line {
			return ""
		}

		m := importCommentPattern.FindStringSubmatch(c.Text)
		if m == nil {
			return ""
		}

		p, err := strconv.Unquote(m[1])
		if err != nil {
			return ""
		}

		return p
	}

	return ""
}

func primaryType(f *ast.File) string {
	var fun string

	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}

			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.Name != "_" {
					return ts.Name.Name
				}
			}

		case *ast.FuncDecl:
			if fun == "" && decl.Recv == nil && decl.Name.Name != "_" && decl.Name.Name != "init" {
				fun = decl.Name.Name
			}
		}
	}

	return fun
}

// qualifiers collects selector bases that resolve to nothing in the file.
func qualifiers(f *ast.File, imported map[string]struct{}) []string {
	declared := declaredNames(f)

	var result []string

	ast.Inspect(f, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		if _, ok := imported[id.Name]; ok {
			return true
		}

		if _, ok := declared[id.Name]; ok {
			return true
		}

		if !slices.Contains(result, id.Name) {
			result = append(result, id.Name)
		}

		return true
	})

	return result
}

// declaredNames returns every identifier the file declares at any scope.
func declaredNames(f *ast.File) map[string]struct{} {
	names := make(map[string]struct{})

	add := func(ids ...*ast.Ident) {
		for _, id := range ids {
			if id != nil {
				names[id.Name] = struct{}{}
			}
		}
	}

	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncDecl:
			add(n.Name)

		case *ast.TypeSpec:
			add(n.Name)

		case *ast.ValueSpec:
			add(n.Names...)

		case *ast.Field:
			add(n.Names...)

		case *ast.AssignStmt:
			if n.Tok != token.DEFINE {
				break
			}

			for _, lhs := range n.Lhs {
				if id, ok := lhs.(*ast.Ident); ok {
					add(id)
				}
			}

		case *ast.RangeStmt:
			if n.Tok != token.DEFINE {
				break
			}

			for _, e := range [...]ast.Expr{n.Key, n.Value} {
				if id, ok := e.(*ast.Ident); ok {
					add(id)
				}
			}

		case *ast.LabeledStmt:
			add(n.Label)
		}

		return true
	})

	return names
}
