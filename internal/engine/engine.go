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

// Package engine compiles workspaces and runs analyzers on them.
//
// Packages are type-checked in dependency order, independent packages
// concurrently. Standard library imports are resolved from export data.
package engine

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"

	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/workspace"
)

// ErrAnalysis is returned when the analyzer failed on a package.
var ErrAnalysis = errors.New("analysis failed")

// Engine runs rules on workspaces.
type Engine struct {
	// Sequential disables concurrent type checking and analysis.
	Sequential bool
}

// Compile returns the parse and type checking diagnostics of all packages, sorted by position.
func (e *Engine) Compile(ctx context.Context, ws *workspace.Workspace) ([]Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "Compile")
	defer task.End()

	prog, err := e.load(ctx, ws)
	if err != nil {
		return nil, err
	}

	ds := prog.Diagnostics()

	ws.Logger().DebugContext(ctx, "Compiled workspace", slog.Int("diagnostics", len(ds)))

	return ds, nil
}

// Findings runs the rule on all packages of the workspace.
//
// Findings of suppressed kinds are dropped, the rest is sorted by location.
// Packages the analyzer could not run on, for example because they are ill-typed,
// are reported as an error wrapping [ErrAnalysis], together with the findings of
// all other packages.
func (e *Engine) Findings(ctx context.Context, ws *workspace.Workspace, r *rule.Rule) ([]rule.Finding, error) {
	ctx, task := trace.NewTask(ctx, "Findings")
	defer task.End()

	trace.Log(ctx, "rule", r.Name())

	prog, err := e.load(ctx, ws)
	if err != nil {
		return nil, err
	}

	region := trace.StartRegion(ctx, "Analyze")
	graph, err := checker.Analyze([]*analysis.Analyzer{r.Analyzer()}, prog.Packages(), &checker.Options{Sequential: e.Sequential})
	region.End()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	var (
		findings []rule.Finding
		errs     []error
	)

	cfg := ws.Config()

	for _, act := range graph.Roots {
		if act.Analyzer != r.Analyzer() {
			continue
		}

		if act.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err))

			continue
		}

		for _, d := range act.Diagnostics {
			f := convert(prog.fset, r, d)
			if cfg.IsSuppressed(f.Kind) {
				continue
			}

			findings = append(findings, f)
		}
	}

	slices.SortStableFunc(findings, rule.Compare)

	ws.Logger().DebugContext(ctx, "Analyzed workspace",
		slog.String("rule", r.Name()), slog.Int("findings", len(findings)), slog.Int("errors", len(errs)))

	if len(errs) > 0 {
		return findings, fmt.Errorf("%w: %w", ErrAnalysis, errors.Join(errs...))
	}

	return findings, nil
}

// convert turns an analyzer diagnostic into a [rule.Finding].
func convert(fset *token.FileSet, r *rule.Rule, d analysis.Diagnostic) rule.Finding {
	f := rule.Finding{
		Kind:     r.KindOf(d),
		Location: location(fset, d.Pos, d.End),
		Message:  d.Message,
		Properties: map[string]string{
			"analyzer": r.Name(),
		},
	}

	if d.URL != "" {
		f.Properties["url"] = d.URL
	}

	for _, sf := range d.SuggestedFixes {
		t := rule.Transformation{Title: sf.Message}

		for _, te := range sf.TextEdits {
			l := location(fset, te.Pos, te.End)
			t.Edits = append(t.Edits, workspace.Edit{Path: l.Path, Start: l.Start, End: l.End, NewText: string(te.NewText)})
		}

		f.Fixes = append(f.Fixes, t)
	}

	return f
}

func location(fset *token.FileSet, pos, end token.Pos) rule.Location {
	if !pos.IsValid() {
		return rule.Location{}
	}

	start := fset.PositionFor(pos, false)
	l := rule.Location{
		Path:   start.Filename,
		Start:  start.Offset,
		End:    start.Offset,
		Line:   start.Line,
		Column: start.Column,
	}

	if end.IsValid() && end > pos {
		l.End = fset.PositionFor(end, false).Offset
	}

	return l
}

// Render formats diagnostics one per line.
func Render(ds []Diagnostic) string {
	var b strings.Builder

	for _, d := range ds {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}

	return b.String()
}
