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

// Package fixer applies fixes to workspaces.
//
// A single fix application selects exactly one proposed transformation. The
// fix-all loops repeat until no fixable finding remains, and fail as soon as
// the number of fixable findings stops decreasing.
package fixer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"
	"strings"

	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/workspace"
)

var (
	// ErrAmbiguous is returned when more than one transformation qualifies.
	ErrAmbiguous = errors.New("more than one transformation proposed")

	// ErrNoMatchingTitle is returned when no proposed transformation has the requested title.
	ErrNoMatchingTitle = errors.New("no transformation with title")

	// ErrNotConverging is returned when a fix-all loop does not reduce the fixable findings.
	ErrNotConverging = errors.New("fixable findings did not decrease")
)

// Analyze returns the current findings of a workspace.
type Analyze func(ctx context.Context, ws *workspace.Workspace) ([]rule.Finding, error)

// Fixer applies a [rule.Fix].
type Fixer struct {
	Fix   rule.Fix
	Title string // selects among several proposals, optional
}

// Fixable returns the findings the fix handles, keeping their order.
func (f Fixer) Fixable(findings []rule.Finding) []rule.Finding {
	kinds := f.Fix.FixableKinds()

	var fixable []rule.Finding

	for _, finding := range findings {
		if slices.Contains(kinds, finding.Kind) {
			fixable = append(fixable, finding)
		}
	}

	return fixable
}

// Select picks the transformation to apply. It returns false when nothing was proposed.
func (f Fixer) Select(proposals []rule.Transformation) (rule.Transformation, bool, error) {
	if len(proposals) == 0 {
		return rule.Transformation{}, false, nil
	}

	if f.Title == "" {
		if len(proposals) > 1 {
			return rule.Transformation{}, false, fmt.Errorf("%w by %s: %s, use a fix title to select one",
				ErrAmbiguous, f.Fix.Name(), titles(proposals))
		}

		return proposals[0], true, nil
	}

	var matching []rule.Transformation

	for _, t := range proposals {
		if t.Title == f.Title {
			matching = append(matching, t)
		}
	}

	switch len(matching) {
	case 0:
		return rule.Transformation{}, false, fmt.Errorf("%w %q by %s, proposed: %s",
			ErrNoMatchingTitle, f.Title, f.Fix.Name(), titles(proposals))

	case 1:
		return matching[0], true, nil

	default:
		return rule.Transformation{}, false, fmt.Errorf("%w by %s with title %q", ErrAmbiguous, f.Fix.Name(), f.Title)
	}
}

// ApplyOne applies the fix to a single finding. Without proposals the workspace is returned unchanged.
func (f Fixer) ApplyOne(ctx context.Context, ws *workspace.Workspace, finding rule.Finding) (*workspace.Workspace, error) {
	return f.ApplySingle(ctx, ws, []rule.Finding{finding})
}

// ApplySingle gathers the proposals for all findings and applies the one selected.
// Without proposals the workspace is returned unchanged.
func (f Fixer) ApplySingle(ctx context.Context, ws *workspace.Workspace, findings []rule.Finding) (*workspace.Workspace, error) {
	defer trace.StartRegion(ctx, "ApplySingle").End()

	var proposals []rule.Transformation

	for _, finding := range findings {
		ps, err := f.Fix.Propose(ctx, ws, finding)
		if err != nil {
			return nil, fmt.Errorf("%s on %s: %w", f.Fix.Name(), finding.Location, err)
		}

		proposals = append(proposals, ps...)
	}

	t, ok, err := f.Select(proposals)
	if err != nil || !ok {
		return ws, err
	}

	next, err := ws.Apply(t.Edits...)
	if err != nil {
		return nil, fmt.Errorf("%s applying %q: %w", f.Fix.Name(), t.Title, err)
	}

	ws.Logger().DebugContext(ctx, "Applied transformation",
		slog.String("fix", f.Fix.Name()), slog.String("title", t.Title), slog.Int("edits", len(t.Edits)))

	return next, nil
}

// OneByOne applies the fix to one fixable finding at a time until none remain.
func (f Fixer) OneByOne(ctx context.Context, ws *workspace.Workspace, analyze Analyze) (*workspace.Workspace, error) {
	ctx, task := trace.NewTask(ctx, "OneByOne")
	defer task.End()

	fixable, err := f.fixable(ctx, ws, analyze)
	if err != nil {
		return nil, err
	}

	for iteration := 1; len(fixable) > 0; iteration++ {
		next, err := f.ApplyOne(ctx, ws, fixable[0])
		if err != nil {
			return nil, err
		}

		remaining, err := f.fixable(ctx, next, analyze)
		if err != nil {
			return nil, err
		}

		ws.Logger().DebugContext(ctx, "Fixed one by one",
			slog.Int("iteration", iteration), slog.Int("before", len(fixable)), slog.Int("after", len(remaining)))

		if len(remaining) >= len(fixable) {
			return nil, notConverging(f.Fix, iteration, len(fixable), remaining)
		}

		ws, fixable = next, remaining
	}

	return ws, nil
}

// ByScope applies the fix to all fixable findings of a scope at once, repeating until none remain.
//
// The title of the first proposal for the first fixable finding selects the transformations,
// unless the [Fixer] has a title. Fixes not implementing [rule.BulkFix] are batched with [rule.Batch].
func (f Fixer) ByScope(ctx context.Context, ws *workspace.Workspace, scope rule.Scope, analyze Analyze) (*workspace.Workspace, error) {
	ctx, task := trace.NewTask(ctx, "ByScope")
	defer task.End()

	trace.Log(ctx, "scope", scope.String())

	fixable, err := f.fixable(ctx, ws, analyze)
	if err != nil {
		return nil, err
	}

	for iteration := 1; len(fixable) > 0; iteration++ {
		req, err := f.request(ctx, ws, scope, fixable)
		if err != nil {
			return nil, err
		}

		t, err := f.bulk(ctx, req)
		if err != nil {
			return nil, err
		}

		next, err := ws.Apply(t.Edits...)
		if err != nil {
			return nil, fmt.Errorf("%s applying %q to %s: %w", f.Fix.Name(), t.Title, scope, err)
		}

		remaining, err := f.fixable(ctx, next, analyze)
		if err != nil {
			return nil, err
		}

		ws.Logger().DebugContext(ctx, "Fixed by scope", slog.String("scope", scope.String()),
			slog.Int("iteration", iteration), slog.Int("before", len(fixable)), slog.Int("after", len(remaining)))

		if len(remaining) >= len(fixable) {
			return nil, notConverging(f.Fix, iteration, len(fixable), remaining)
		}

		ws, fixable = next, remaining
	}

	return ws, nil
}

func (f Fixer) fixable(ctx context.Context, ws *workspace.Workspace, analyze Analyze) ([]rule.Finding, error) {
	findings, err := analyze(ctx, ws)
	if err != nil {
		return nil, err
	}

	return f.Fixable(findings), nil
}

// request builds the bulk request triggered by the first fixable finding.
func (f Fixer) request(ctx context.Context, ws *workspace.Workspace, scope rule.Scope, fixable []rule.Finding) (rule.BulkRequest, error) {
	first := fixable[0]

	title := f.Title
	if title == "" {
		proposals, err := f.Fix.Propose(ctx, ws, first)
		if err != nil {
			return rule.BulkRequest{}, fmt.Errorf("%s on %s: %w", f.Fix.Name(), first.Location, err)
		}

		if len(proposals) > 0 {
			title = proposals[0].Title
		}
	}

	req := rule.BulkRequest{
		Workspace: ws,
		Scope:     scope,
		Unit:      first.Location.Path,
		Title:     title,
		Provider:  newProvider(ws, fixable),
	}

	if p, ok := ws.ProjectOf(first.Location.Path); ok {
		req.Project = p.Name()
	}

	return req, nil
}

func (f Fixer) bulk(ctx context.Context, req rule.BulkRequest) (rule.Transformation, error) {
	defer trace.StartRegion(ctx, "Bulk").End()

	var (
		t   rule.Transformation
		err error
	)

	if b, ok := f.Fix.(rule.BulkFix); ok {
		t, err = b.ProposeBulk(ctx, req)
	} else {
		t, err = rule.Batch(ctx, f.Fix, req)
	}

	if err != nil {
		return rule.Transformation{}, fmt.Errorf("%s fixing %s: %w", f.Fix.Name(), req.Scope, err)
	}

	return t, nil
}

func notConverging(fix rule.Fix, iteration, before int, remaining []rule.Finding) error {
	var b strings.Builder
	for _, r := range remaining {
		b.WriteString("\n  ")
		b.WriteString(r.String())
	}

	return fmt.Errorf("%w: %s in iteration %d, %d before and %d after applying:%s",
		ErrNotConverging, fix.Name(), iteration, before, len(remaining), b.String())
}

func titles(proposals []rule.Transformation) string {
	ts := make([]string, 0, len(proposals))
	for _, t := range proposals {
		ts = append(ts, fmt.Sprintf("%q", t.Title))
	}

	return strings.Join(ts, ", ")
}
