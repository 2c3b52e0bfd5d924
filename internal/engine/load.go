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

package engine

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"runtime"
	"runtime/trace"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/rulecheck/workspace"
)

var (
	errNotVisible  = errors.New("package is not visible")
	errImportCycle = errors.New("import cycle not allowed")
)

// pkg is a workspace package during loading.
type pkg struct {
	path    string
	name    string
	project *workspace.Project
	files   []*ast.File
	names   []string
	imports []string // workspace packages imported

	diagnostics []Diagnostic
	loaded      *packages.Package
}

// program is a loaded and type-checked workspace.
type program struct {
	fset     *token.FileSet
	packages []*pkg // in first-seen order
}

// Diagnostics returns the parse and type errors of all packages.
func (p *program) Diagnostics() []Diagnostic {
	var ds []Diagnostic
	for _, pk := range p.packages {
		ds = append(ds, pk.diagnostics...)
	}

	slices.SortStableFunc(ds, compareDiagnostics)

	return ds
}

// Packages returns the loaded packages.
func (p *program) Packages() []*packages.Package {
	ps := make([]*packages.Package, 0, len(p.packages))
	for _, pk := range p.packages {
		ps = append(ps, pk.loaded)
	}

	return ps
}

// load parses and type-checks all packages of the workspace.
func (e *Engine) load(ctx context.Context, ws *workspace.Workspace) (*program, error) {
	defer trace.StartRegion(ctx, "Load").End()

	prog := &program{fset: token.NewFileSet()}
	byPath := make(map[string]*pkg)

	for p := range ws.Projects() {
		for u := range p.Units() {
			pk, ok := byPath[u.Namespace()]
			if !ok {
				pk = &pkg{path: u.Namespace(), name: u.Package(), project: p}
				byPath[pk.path] = pk
				prog.packages = append(prog.packages, pk)
			}

			const mode = parser.AllErrors | parser.ParseComments | parser.SkipObjectResolution

			f, err := parser.ParseFile(prog.fset, u.Path(), u.Text(), mode)
			pk.diagnostics = append(pk.diagnostics, parseDiagnostics(err)...)

			if f != nil {
				pk.files = append(pk.files, f)
				pk.names = append(pk.names, u.Path())
			}
		}
	}

	for _, pk := range prog.packages {
		pk.imports = workspaceImports(pk, byPath)
	}

	levels := levelize(prog.packages)

	l := &loader{
		fset:    prog.fset,
		version: ws.Config().Version(),
		sizes:   types.SizesFor("gc", runtime.GOARCH),
		std:     importer.ForCompiler(prog.fset, runtime.Compiler, nil),
		byPath:  byPath,
		visible: visibility(ws),
	}

	limit := runtime.GOMAXPROCS(0)
	if e.Sequential {
		limit = 1
	}

	for _, level := range levels {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)

		for _, pk := range level {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				l.check(pk)

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, pk := range level {
			l.done(pk)
		}
	}

	return prog, nil
}

// workspaceImports returns the workspace packages imported by a package.
func workspaceImports(pk *pkg, byPath map[string]*pkg) []string {
	var imports []string

	for _, f := range pk.files {
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil || path == pk.path {
				continue
			}

			if _, ok := byPath[path]; ok && !slices.Contains(imports, path) {
				imports = append(imports, path)
			}
		}
	}

	return imports
}

// levelize orders packages so that every package comes after its workspace imports.
// Packages of the same level are independent. Packages in import cycles form the last level.
func levelize(pkgs []*pkg) [][]*pkg {
	var levels [][]*pkg

	placed := make(map[string]bool, len(pkgs))

	for remaining := pkgs; len(remaining) > 0; {
		var level, rest []*pkg

		for _, pk := range remaining {
			ready := true

			for _, imp := range pk.imports {
				if !placed[imp] {
					ready = false

					break
				}
			}

			if ready {
				level = append(level, pk)
			} else {
				rest = append(rest, pk)
			}
		}

		if len(level) == 0 {
			levels = append(levels, rest)

			break
		}

		for _, pk := range level {
			placed[pk.path] = true
		}

		levels = append(levels, level)
		remaining = rest
	}

	return levels
}

// visibility returns for each project the set of projects whose packages it may import.
func visibility(ws *workspace.Workspace) map[string]map[string]struct{} {
	visible := make(map[string]map[string]struct{})

	for p := range ws.Projects() {
		seen := make(map[string]struct{})

		var visit func(name string)
		visit = func(name string) {
			if _, ok := seen[name]; ok {
				return
			}

			seen[name] = struct{}{}

			if dep, ok := ws.Project(name); ok {
				for _, d := range dep.Deps() {
					visit(d)
				}
			}
		}

		visit(p.Name())
		visible[p.Name()] = seen
	}

	return visible
}

// loader type-checks packages of a single workspace.
type loader struct {
	fset    *token.FileSet
	version string
	sizes   types.Sizes

	mu  sync.Mutex // guards std
	std types.Importer

	byPath  map[string]*pkg
	visible map[string]map[string]struct{}

	checked sync.Map // path -> *types.Package, written between levels
}

func (l *loader) done(pk *pkg) {
	l.checked.Store(pk.path, pk.loaded.Types)
}

// importerFunc implements [types.Importer].
type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// importerFor returns the importer used by a single package.
func (l *loader) importerFor(from *pkg) importerFunc {
	return func(path string) (*types.Package, error) {
		if to, ok := l.byPath[path]; ok {
			if _, ok := l.visible[from.project.Name()][to.project.Name()]; !ok {
				return nil, fmt.Errorf("%w from project %s", errNotVisible, from.project.Name())
			}

			if tp, ok := l.checked.Load(path); ok {
				return tp.(*types.Package), nil
			}

			return nil, errImportCycle
		}

		if path == "unsafe" {
			return types.Unsafe, nil
		}

		l.mu.Lock()
		defer l.mu.Unlock()

		return l.std.Import(path)
	}
}

// check type-checks a package and wraps the result for the analysis driver.
func (l *loader) check(pk *pkg) {
	info := &types.Info{
		Types:        make(map[ast.Expr]types.TypeAndValue),
		Instances:    make(map[*ast.Ident]types.Instance),
		Defs:         make(map[*ast.Ident]types.Object),
		Uses:         make(map[*ast.Ident]types.Object),
		Implicits:    make(map[ast.Node]types.Object),
		Selections:   make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:       make(map[ast.Node]*types.Scope),
		FileVersions: make(map[*ast.File]string),
	}

	var typeErrors []types.Error

	parsed := len(pk.diagnostics)

	conf := types.Config{
		Importer:  l.importerFor(pk),
		GoVersion: l.version,
		Sizes:     l.sizes,
		Error: func(err error) {
			var terr types.Error
			if errors.As(err, &terr) {
				typeErrors = append(typeErrors, terr)
			}

			pk.diagnostics = append(pk.diagnostics, typeDiagnostic(err))
		},
	}

	tpkg, _ := conf.Check(pk.path, l.fset, pk.files, info)

	var errs []packages.Error
	for i, d := range pk.diagnostics {
		if d.Severity != Error {
			continue
		}

		kind := packages.TypeError
		if i < parsed {
			kind = packages.ParseError
		}

		errs = append(errs, packages.Error{
			Pos:  fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Column),
			Msg:  d.Message,
			Kind: kind,
		})
	}

	imports := make(map[string]*packages.Package, len(pk.imports))
	for _, imp := range pk.imports {
		if _, ok := l.checked.Load(imp); ok {
			imports[imp] = l.byPath[imp].loaded
		}
	}

	pk.loaded = &packages.Package{
		ID:              pk.path,
		Name:            pk.name,
		PkgPath:         pk.path,
		GoFiles:         pk.names,
		CompiledGoFiles: pk.names,
		Fset:            l.fset,
		Syntax:          pk.files,
		Types:           tpkg,
		TypesInfo:       info,
		TypesSizes:      l.sizes,
		TypeErrors:      typeErrors,
		Errors:          errs,
		IllTyped:        len(errs) > 0,
		Imports:         imports,
		Module: &packages.Module{
			Path:      pk.project.Name(),
			Main:      true,
			GoVersion: strings.TrimPrefix(l.version, "go"),
		},
	}
}
