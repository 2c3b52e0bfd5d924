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

// Package testsource parses and type-checks Go source fragments for the rulecheck tests.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses a Go statement fragment into an AST.
// The fragment is wrapped in a function body `func _() { ... }` within a package `test`.
//
// Returns the file set, the parsed file and the root cursor of the file.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File, inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, wrapSource(src), parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f, inspector.New([]*ast.File{f}).Root()
}

// Check performs type checking on the provided AST file.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return pkg, info
}

// Lookup returns the object defined by the first identifier with the given name.
func Lookup(tb testing.TB, f *ast.File, info *types.Info, name string) (*ast.Ident, types.Object) {
	tb.Helper()

	var (
		id  *ast.Ident
		obj types.Object
	)

	ast.Inspect(f, func(n ast.Node) bool {
		if i, ok := n.(*ast.Ident); ok && obj == nil && i.Name == name && info.Defs[i] != nil {
			id, obj = i, info.Defs[i]
		}

		return obj == nil
	})

	if obj == nil {
		tb.Fatalf("Can't find definition of %s", name)
	}

	return id, obj
}

func wrapSource(src string) *bytes.Buffer {
	const (
		header     = "package " + testpkg + "\n\nfunc _() {\n"
		suffix     = "\n}"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(src))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(src)    // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}
