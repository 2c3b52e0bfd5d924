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
	"context"
	"slices"

	"fillmore-labs.com/rulecheck/workspace"
)

// Fix proposes transformations for findings.
type Fix interface {
	// Name identifies the fix in reports.
	Name() string

	// FixableKinds lists the finding kinds this fix handles.
	FixableKinds() []string

	// Propose returns candidate transformations for a finding located in ws.
	// An empty result declines the finding.
	Propose(ctx context.Context, ws *workspace.Workspace, f Finding) ([]Transformation, error)
}

// BulkFix is a [Fix] that can fix all findings of a scope in one transformation.
type BulkFix interface {
	Fix

	// ProposeBulk returns one transformation for all findings of the request.
	// An empty transformation fixes nothing.
	ProposeBulk(ctx context.Context, req BulkRequest) (Transformation, error)
}

// Fixes reports whether fix handles findings of the given kind.
func Fixes(fix Fix, kind string) bool { return slices.Contains(fix.FixableKinds(), kind) }

// NewFix creates a [Fix] from a function.
func NewFix(name string, kinds []string, propose func(context.Context, *workspace.Workspace, Finding) ([]Transformation, error)) Fix {
	return funcFix{name: name, kinds: kinds, propose: propose}
}

type funcFix struct {
	name    string
	kinds   []string
	propose func(context.Context, *workspace.Workspace, Finding) ([]Transformation, error)
}

func (f funcFix) Name() string           { return f.name }
func (f funcFix) FixableKinds() []string { return slices.Clone(f.kinds) }

func (f funcFix) Propose(ctx context.Context, ws *workspace.Workspace, finding Finding) ([]Transformation, error) {
	return f.propose(ctx, ws, finding)
}

// SuggestedFixes is a [Fix] proposing the suggested fixes the analyzer attached to the finding.
func SuggestedFixes(kinds ...string) Fix {
	return NewFix("SuggestedFixes", kinds, func(_ context.Context, _ *workspace.Workspace, f Finding) ([]Transformation, error) {
		return slices.Clone(f.Fixes), nil
	})
}
