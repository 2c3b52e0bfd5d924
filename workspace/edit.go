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
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Edit replaces the bytes [Start, End) of the unit at Path with NewText.
type Edit struct {
	Path       string
	Start, End int
	NewText    string
}

// String renders the edit for reports.
func (e Edit) String() string {
	return fmt.Sprintf("%s[%d:%d]=%q", e.Path, e.Start, e.End, e.NewText)
}

var (
	// ErrUnknownUnit is returned when an edit refers to a path not in the workspace.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrEditRange is returned when an edit lies outside the unit text.
	ErrEditRange = errors.New("edit out of range")

	// ErrOverlap is returned for overlapping edits of the same unit.
	ErrOverlap = errors.New("overlapping edits")
)

// Apply returns a new [Workspace] with the edits applied.
//
// Edits of the same unit must not overlap; insertions at the same offset keep their order.
// Projects, dependencies and unit names are unchanged.
func (w *Workspace) Apply(edits ...Edit) (*Workspace, error) {
	if len(edits) == 0 {
		return w, nil
	}

	byPath := make(map[string][]Edit)
	for _, e := range edits {
		byPath[e.Path] = append(byPath[e.Path], e)
	}

	replaced := make(map[string]*Unit, len(byPath))

	for path, es := range byPath {
		u, ok := w.units[path]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, path)
		}

		text, err := applyEdits(u.text, es)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		replaced[path] = u.withText(text)
	}

	replace := func(u *Unit) *Unit {
		if r, ok := replaced[u.Path()]; ok {
			return r
		}

		return u
	}

	projects := make([]*Project, len(w.projects))
	for i, p := range w.projects {
		units := make([]*Unit, len(p.units))
		for j, u := range p.units {
			units[j] = replace(u)
		}

		projects[i] = p.withUnits(units)
	}

	inputs := make([]*Unit, len(w.inputs))
	for i, u := range w.inputs {
		inputs[i] = replace(u)
	}

	return newWorkspace(w.config, projects, inputs), nil
}

func applyEdits(text string, edits []Edit) (string, error) {
	slices.SortStableFunc(edits, func(a, b Edit) int { return cmp.Compare(a.Start, b.Start) })

	var b strings.Builder
	b.Grow(len(text))

	last := 0

	for _, e := range edits {
		if e.Start < 0 || e.Start > e.End || e.End > len(text) {
			return "", fmt.Errorf("%w: %d-%d of %d", ErrEditRange, e.Start, e.End, len(text))
		}

		if e.Start < last {
			return "", fmt.Errorf("%w at %d", ErrOverlap, e.Start)
		}

		b.WriteString(text[last:e.Start]) // ignore error
		b.WriteString(e.NewText)          // ignore error
		last = e.End
	}

	b.WriteString(text[last:]) // ignore error

	return b.String(), nil
}
