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
	"log/slog"
	"slices"
)

// DefaultGoVersion is the language version used when [Config] names none.
const DefaultGoVersion = "go1.24"

// Config is the compilation configuration shared by all projects of a [Workspace].
type Config struct {
	// GoVersion is the language version for type checking, like "go1.24".
	GoVersion string

	// Suppressed lists finding kinds that are dropped from analysis results.
	Suppressed []string

	// Logger receives debug output, nil discards it.
	Logger *slog.Logger
}

// Version returns the configured language version or [DefaultGoVersion].
func (c Config) Version() string {
	if c.GoVersion == "" {
		return DefaultGoVersion
	}

	return c.GoVersion
}

// IsSuppressed reports whether findings of the given kind are dropped.
func (c Config) IsSuppressed(kind string) bool { return slices.Contains(c.Suppressed, kind) }

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return c.Logger
}

// Workspace is an immutable snapshot of projects and their units.
type Workspace struct {
	config    Config
	projects  []*Project
	inputs    []*Unit // in input order
	units     map[string]*Unit
	projectOf map[string]*Project
}

func newWorkspace(cfg Config, projects []*Project, inputs []*Unit) *Workspace {
	w := &Workspace{
		config:    cfg,
		projects:  projects,
		inputs:    inputs,
		units:     make(map[string]*Unit, len(inputs)),
		projectOf: make(map[string]*Project, len(inputs)),
	}

	for _, p := range projects {
		for _, u := range p.units {
			w.units[u.Path()] = u
			w.projectOf[u.Path()] = p
		}
	}

	return w
}

// Config returns the compilation configuration.
func (w *Workspace) Config() Config { return w.config }

// Logger returns the configured logger, never nil.
func (w *Workspace) Logger() *slog.Logger { return w.config.logger() }

// Projects returns the projects in first-seen order.
func (w *Workspace) Projects() iter.Seq[*Project] { return slices.Values(w.projects) }

// Project returns the named project.
func (w *Workspace) Project(name string) (*Project, bool) {
	i := slices.IndexFunc(w.projects, func(p *Project) bool { return p.name == name })
	if i < 0 {
		return nil, false
	}

	return w.projects[i], true
}

// Unit returns the unit at the given path.
func (w *Workspace) Unit(path string) (*Unit, bool) {
	u, ok := w.units[path]

	return u, ok
}

// ProjectOf returns the project containing the unit at the given path.
func (w *Workspace) ProjectOf(path string) (*Project, bool) {
	p, ok := w.projectOf[path]

	return p, ok
}

// Inputs returns all units in the order of the source texts they were built from.
func (w *Workspace) Inputs() []*Unit { return slices.Clone(w.inputs) }

// Len returns the number of units.
func (w *Workspace) Len() int { return len(w.inputs) }

// Changed reports whether any unit differs from the other workspace. Units are compared by their
// content-derived [Unit.ID].
func (w *Workspace) Changed(other *Workspace) bool {
	if len(w.inputs) != len(other.inputs) {
		return true
	}

	for path, u := range w.units {
		o, ok := other.units[path]
		if !ok || o.id != u.id {
			return true
		}
	}

	return false
}
