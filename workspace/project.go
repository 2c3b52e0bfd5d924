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
	"iter"
	"slices"
	"strings"
)

// Project is a group of units compiled together, a Go module.
type Project struct {
	name  string
	units []*Unit
	deps  []string
}

// Name is the project name, which is also the module path.
func (p *Project) Name() string { return p.name }

// Units returns the units of this project in first-seen order.
func (p *Project) Units() iter.Seq[*Unit] { return slices.Values(p.units) }

// Deps returns the names of the projects this project directly depends on.
func (p *Project) Deps() []string { return slices.Clone(p.deps) }

// DependsOn reports whether there is a direct edge to the named project.
func (p *Project) DependsOn(name string) bool { return slices.Contains(p.deps, name) }

// Namespaces returns the distinct import paths of the project's packages in first-seen order.
func (p *Project) Namespaces() []string {
	var ns []string

	for _, u := range p.units {
		if !slices.Contains(ns, u.namespace) {
			ns = append(ns, u.namespace)
		}
	}

	return ns
}

// withUnits returns a copy of the project sharing dependencies.
func (p *Project) withUnits(units []*Unit) *Project {
	return &Project{name: p.name, units: units, deps: p.deps}
}

// under reports whether path equals prefix or lies below it, segment-wise.
func under(path, prefix string) bool {
	if prefix == "" {
		return true
	}

	rest, ok := strings.CutPrefix(path, prefix)

	return ok && (rest == "" || rest[0] == '/')
}
