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

package workspace

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/mod/module"

	"fillmore-labs.com/rulecheck/internal/source"
)

// ErrNoSources is returned when a workspace is built without source texts.
var ErrNoSources = errors.New("no source texts")

// fallbackPackage is the package of units without a usable package clause.
const fallbackPackage = "main"

// evidence is what a single source text tells about its place in the workspace.
type evidence struct {
	unit       *Unit
	imports    []string
	qualifiers []string
}

// Build creates a [Workspace] with one project per namespace root and inferred dependencies.
func Build(texts []string, cfg Config) (*Workspace, error) {
	return build(texts, cfg, false)
}

// BuildSingle creates a [Workspace] that places all units into one project.
func BuildSingle(texts []string, cfg Config) (*Workspace, error) {
	return build(texts, cfg, true)
}

func build(texts []string, cfg Config, single bool) (*Workspace, error) {
	if len(texts) == 0 {
		return nil, ErrNoSources
	}

	logger := cfg.logger()

	ev := describeAll(texts)

	var projects []*Project
	if single {
		projects = singleProject(ev)
	} else {
		projects = groupProjects(ev)
		inferDependencies(projects, ev, logger)
	}

	w := newWorkspace(cfg, projects, unitsOf(ev))

	logger.Debug("Built workspace", slog.Int("units", len(ev)), slog.Int("projects", len(projects)), slog.Bool("single", single))

	return w, nil
}

// describeAll derives units with names and paths unique in the workspace.
func describeAll(texts []string) []evidence {
	ev := make([]evidence, 0, len(texts))
	taken := make(map[string]struct{}, len(texts))

	for i, text := range texts {
		d := source.Describe(text)

		pkg := d.Package
		if !token.IsIdentifier(pkg) {
			pkg = fallbackPackage
		}

		namespace := d.Path
		if module.CheckImportPath(namespace) != nil {
			namespace = pkg
		}

		name := d.FileName()
		if name == "" {
			name = "Unit" + strconv.Itoa(i+1) + ".go"
		}

		name = uniqueName(taken, namespace, name)

		ev = append(ev, evidence{
			unit:       newUnit(namespace, name, pkg, text),
			imports:    d.Imports,
			qualifiers: d.Qualifiers,
		})
	}

	return ev
}

// uniqueName appends a numeric suffix to names already taken in the namespace.
func uniqueName(taken map[string]struct{}, namespace, name string) string {
	stem := strings.TrimSuffix(name, ".go")

	for n := 1; ; n++ {
		candidate := name
		if n > 1 {
			candidate = stem + "_" + strconv.Itoa(n) + ".go"
		}

		if _, ok := taken[namespace+"/"+candidate]; !ok {
			taken[namespace+"/"+candidate] = struct{}{}

			return candidate
		}
	}
}

func unitsOf(ev []evidence) []*Unit {
	units := make([]*Unit, len(ev))
	for i, e := range ev {
		units[i] = e.unit
	}

	return units
}

// roots maps each present namespace to its root: the shortest present namespace
// equal to or above it.
type roots []string

func namespaceRoots(ev []evidence) roots {
	var present []string

	for _, e := range ev {
		if ns := e.unit.namespace; !slices.Contains(present, ns) {
			present = append(present, ns)
		}
	}

	return present
}

// rootOf returns the root of an import path, or false if no present namespace contains it.
func (r roots) rootOf(importPath string) (string, bool) {
	best, found := "", false

	for _, ns := range r {
		if under(importPath, ns) && (!found || len(ns) < len(best)) {
			best, found = ns, true
		}
	}

	return best, found
}

// groupProjects folds namespaces into the project of their root, keeping first-seen order.
func groupProjects(ev []evidence) []*Project {
	r := namespaceRoots(ev)

	var projects []*Project

	index := make(map[string]*Project)

	for _, e := range ev {
		name, _ := r.rootOf(e.unit.namespace)

		p, ok := index[name]
		if !ok {
			p = &Project{name: name}
			index[name] = p
			projects = append(projects, p)
		}

		p.units = append(p.units, e.unit)
	}

	return projects
}

// singleProject places every unit into one project named after the common namespace prefix.
func singleProject(ev []evidence) []*Project {
	units := unitsOf(ev)

	name := units[0].namespace
	for _, u := range units[1:] {
		name = commonPrefix(name, u.namespace)
	}

	if name == "" {
		name = units[0].namespace
	}

	return []*Project{{name: name, units: units}}
}

// commonPrefix returns the longest common segment prefix of two slash-separated paths.
func commonPrefix(a, b string) string {
	for a != "" && !under(b, a) {
		a = path.Dir(a)
		if a == "." {
			a = ""
		}
	}

	return a
}

// inferDependencies adds direct dependency edges between projects.
func inferDependencies(projects []*Project, ev []evidence, logger *slog.Logger) {
	r := namespaceRoots(ev)

	byName := make(map[string]*Project, len(projects))
	projectOfUnit := make(map[*Unit]*Project)

	packages := make(map[string][]string) // package name -> projects

	for _, p := range projects {
		byName[p.name] = p

		for _, u := range p.units {
			projectOfUnit[u] = p

			for _, name := range [...]string{u.pkg, path.Base(u.namespace)} {
				if !slices.Contains(packages[name], p.name) {
					packages[name] = append(packages[name], p.name)
				}
			}
		}
	}

	addEdge := func(from *Project, to string) {
		if from.name == to || slices.Contains(from.deps, to) {
			return
		}

		if reaches(byName, to, from.name) {
			logger.Warn("Dropped dependency closing a cycle", slog.String("from", from.name), slog.String("to", to))

			return
		}

		from.deps = append(from.deps, to)
	}

	for _, e := range ev {
		from := projectOfUnit[e.unit]

		for _, imp := range e.imports {
			if to, ok := r.rootOf(imp); ok {
				addEdge(from, to)
			}
		}

		for _, q := range e.qualifiers {
			for _, to := range packages[q] {
				addEdge(from, to)
			}
		}
	}
}

// reaches reports whether project to is reachable from project from.
func reaches(byName map[string]*Project, from, to string) bool {
	seen := make(map[string]struct{})

	var visit func(string) bool
	visit = func(name string) bool {
		if name == to {
			return true
		}

		if _, ok := seen[name]; ok {
			return false
		}

		seen[name] = struct{}{}

		p := byName[name]
		if p == nil {
			return false
		}

		return slices.ContainsFunc(p.deps, visit)
	}

	return visit(from)
}

// String renders the project graph, for logging and test failures.
func (w *Workspace) String() string {
	var b strings.Builder

	for i, p := range w.projects {
		if i > 0 {
			b.WriteString("; ")
		}

		fmt.Fprintf(&b, "%s%v", p.name, p.deps)

		for _, u := range p.units {
			b.WriteString(" ")
			b.WriteString(u.Path())
		}
	}

	return b.String()
}
