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

package rule

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"fillmore-labs.com/rulecheck/workspace"
)

// Provider answers which findings a bulk fix should handle.
type Provider interface {
	UnitFindings(path string) []Finding
	ProjectFindings(project string) []Finding
	AllFindings() []Finding
}

// BulkRequest asks a [BulkFix] to handle all findings of a scope.
type BulkRequest struct {
	Workspace *workspace.Workspace
	Scope     Scope
	Unit      string // path of the triggering unit
	Project   string // project of the triggering unit
	Title     string // equivalence title selecting transformations
	Provider  Provider
}

// Findings returns the findings of the requested scope.
func (r BulkRequest) Findings() []Finding {
	switch r.Scope {
	case ScopeUnit:
		return r.Provider.UnitFindings(r.Unit)

	case ScopeProject:
		return r.Provider.ProjectFindings(r.Project)

	default:
		return r.Provider.AllFindings()
	}
}

// Batch fixes all findings of a request with a per-finding [Fix].
//
// For each finding the proposal with the request title is selected, or the only proposal when
// the request has no title. Edits of later findings that overlap already accepted edits are
// skipped together with the rest of their transformation.
func Batch(ctx context.Context, fix Fix, req BulkRequest) (Transformation, error) {
	merged := Transformation{Title: req.Title}

	for _, f := range req.Findings() {
		proposals, err := fix.Propose(ctx, req.Workspace, f)
		if err != nil {
			return Transformation{}, fmt.Errorf("%s on %s: %w", fix.Name(), f.Location, err)
		}

		t, ok := selectProposal(proposals, req.Title)
		if !ok {
			continue
		}

		merged.Edits = mergeEdits(merged.Edits, t.Edits)
	}

	return merged, nil
}

func selectProposal(proposals []Transformation, title string) (Transformation, bool) {
	if title == "" {
		if len(proposals) != 1 {
			return Transformation{}, false
		}

		return proposals[0], true
	}

	i := slices.IndexFunc(proposals, func(t Transformation) bool { return t.Title == title })
	if i < 0 {
		return Transformation{}, false
	}

	return proposals[i], true
}

// mergeEdits adds edits unless one of them overlaps an accepted edit. Duplicates collapse.
func mergeEdits(accepted, edits []workspace.Edit) []workspace.Edit {
	var add []workspace.Edit

	for _, e := range edits {
		if slices.Contains(accepted, e) || slices.Contains(add, e) {
			continue
		}

		if slices.ContainsFunc(accepted, func(a workspace.Edit) bool { return overlaps(a, e) }) {
			return accepted
		}

		add = append(add, e)
	}

	merged := append(accepted, add...)
	slices.SortStableFunc(merged, func(a, b workspace.Edit) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Start, b.Start))
	})

	return merged
}

func overlaps(a, b workspace.Edit) bool {
	if a.Path != b.Path {
		return false
	}

	if a.Start == a.End || b.Start == b.End {
		return a.Start == b.Start || (a.Start < b.Start && b.Start < a.End) || (b.Start < a.Start && a.Start < b.End)
	}

	return a.Start < b.End && b.Start < a.End
}
