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

package testrules

import (
	"context"

	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/workspace"
)

// Rename is the fix for the [Naming] rule, proposing the suggested renames.
func Rename() rule.Fix { return rule.SuggestedFixes(NamingKind) }

// Stubborn is a fix for [NamingKind] that edits the unit without removing the finding.
func Stubborn() rule.Fix {
	return rule.NewFix("Stubborn", []string{NamingKind},
		func(_ context.Context, ws *workspace.Workspace, f rule.Finding) ([]rule.Transformation, error) {
			u, ok := ws.Unit(f.Location.Path)
			if !ok {
				return nil, nil
			}

			n := len(u.Text())
			edit := workspace.Edit{Path: u.Path(), Start: n, End: n, NewText: "\n// touched\n"}

			return []rule.Transformation{{Title: "Touch", Edits: []workspace.Edit{edit}}}, nil
		})
}

// Decline is a fix for [NamingKind] that never proposes anything.
func Decline() rule.Fix {
	return rule.NewFix("Decline", []string{NamingKind},
		func(context.Context, *workspace.Workspace, rule.Finding) ([]rule.Transformation, error) {
			return nil, nil
		})
}

// BulkRename is a [rule.BulkFix] for the [Naming] rule.
func BulkRename() rule.BulkFix { return bulkRename{Fix: Rename()} }

type bulkRename struct{ rule.Fix }

func (b bulkRename) Name() string { return "BulkRename" }

func (b bulkRename) ProposeBulk(ctx context.Context, req rule.BulkRequest) (rule.Transformation, error) {
	return rule.Batch(ctx, b.Fix, req)
}
