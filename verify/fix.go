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

package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/rulecheck/internal/config"
	"fillmore-labs.com/rulecheck/internal/engine"
	"fillmore-labs.com/rulecheck/internal/fixer"
	"fillmore-labs.com/rulecheck/internal/marker"
	"fillmore-labs.com/rulecheck/internal/source"
	"fillmore-labs.com/rulecheck/internal/textcmp"
	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/workspace"
)

var errIncompatibleFix = errors.New("fix handles no finding kind of the rule")

// CodeFix verifies the findings on before, applies the fix to the first fixable finding and
// compares the result with after.
//
// Markers in after indicate the findings expected to remain.
func (v *Verifier) CodeFix(ctx context.Context, r *rule.Rule, fix rule.Fix, before, after []string) error {
	ctx, task := trace.NewTask(ctx, "CodeFix")
	defer task.End()

	rn, f, findings, err := v.prepareFix(ctx, r, fix, before)
	if err != nil {
		return err
	}

	fixable := f.Fixable(findings)
	if len(fixable) == 0 {
		return newError(ErrFix, nil, "Rule %s reported no finding fixable by %s.", r.Name(), fix.Name())
	}

	fixed, err := f.ApplyOne(ctx, rn.ws, fixable[0])
	if err != nil {
		return newError(ErrFix, err, "Fix %s failed: %v", fix.Name(), err)
	}

	if !fixed.Changed(rn.ws) {
		return newError(ErrFix, nil, "Fix %s did not change any document.", fix.Name())
	}

	return rn.compare(ctx, fixed, after)
}

// FixAll verifies applying the fix one finding at a time and by every configured scope.
func (v *Verifier) FixAll(ctx context.Context, r *rule.Rule, fix rule.Fix, before, after []string) error {
	ctx, task := trace.NewTask(ctx, "FixAll")
	defer task.End()

	rn, f, _, err := v.prepareFixAll(ctx, r, fix, before)
	if err != nil {
		return err
	}

	if err := rn.oneByOne(ctx, f, after); err != nil {
		return err
	}

	for _, scope := range rn.scopes {
		if err := rn.byScope(ctx, f, scope, after); err != nil {
			return err
		}
	}

	return nil
}

// FixAllOneByOne verifies applying the fix one finding at a time until no fixable finding remains.
func (v *Verifier) FixAllOneByOne(ctx context.Context, r *rule.Rule, fix rule.Fix, before, after []string) error {
	ctx, task := trace.NewTask(ctx, "FixAllOneByOne")
	defer task.End()

	rn, f, _, err := v.prepareFixAll(ctx, r, fix, before)
	if err != nil {
		return err
	}

	return rn.oneByOne(ctx, f, after)
}

// FixAllByScope verifies applying the fix to all findings of a scope at once until no fixable finding remains.
func (v *Verifier) FixAllByScope(ctx context.Context, r *rule.Rule, fix rule.Fix, scope rule.Scope, before, after []string) error {
	ctx, task := trace.NewTask(ctx, "FixAllByScope")
	defer task.End()

	rn, f, _, err := v.prepareFixAll(ctx, r, fix, before)
	if err != nil {
		return err
	}

	return rn.byScope(ctx, f, scope, after)
}

// NoFix verifies the findings on sources and that the fix proposes no change for any of them.
func (v *Verifier) NoFix(ctx context.Context, r *rule.Rule, fix rule.Fix, sources ...string) error {
	ctx, task := trace.NewTask(ctx, "NoFix")
	defer task.End()

	rn, f, findings, err := v.prepareFix(ctx, r, fix, sources)
	if err != nil {
		return err
	}

	for _, finding := range f.Fixable(findings) {
		proposals, err := fix.Propose(ctx, rn.ws, finding)
		if err != nil {
			return newError(ErrFix, err, "Fix %s failed on %s: %v", fix.Name(), finding.Location, err)
		}

		for _, t := range proposals {
			if t.Empty() {
				continue
			}

			if next, err := rn.ws.Apply(t.Edits...); err != nil || next.Changed(rn.ws) {
				return newError(ErrFix, err, "Fix %s proposed %q for %s, but no fix was expected.", fix.Name(), t.Title, finding)
			}
		}
	}

	return nil
}

func (v *Verifier) prepareFix(ctx context.Context, r *rule.Rule, fix rule.Fix, before []string) (*run, fixer.Fixer, []rule.Finding, error) {
	if fix == nil {
		return nil, fixer.Fixer{}, nil, precondition(errNoFix)
	}

	rn, err := v.newRun(r, before)
	if err != nil {
		return nil, fixer.Fixer{}, nil, err
	}

	if !slices.ContainsFunc(fix.FixableKinds(), r.Supports) {
		return nil, fixer.Fixer{}, nil, precondition(fmt.Errorf("%w: %s fixes %q, %s declares %q",
			errIncompatibleFix, fix.Name(), fix.FixableKinds(), r.Name(), r.Kinds()))
	}

	if err := rn.checkExpectations(); err != nil {
		return nil, fixer.Fixer{}, nil, err
	}

	if err := rn.prepare(ctx); err != nil {
		return nil, fixer.Fixer{}, nil, err
	}

	expected, err := rn.expectations()
	if err != nil {
		return nil, fixer.Fixer{}, nil, err
	}

	findings, err := rn.diagnostics(ctx, expected)
	if err != nil {
		return nil, fixer.Fixer{}, nil, err
	}

	return rn, fixer.Fixer{Fix: fix, Title: rn.title}, findings, nil
}

func (v *Verifier) prepareFixAll(ctx context.Context, r *rule.Rule, fix rule.Fix, before []string) (*run, fixer.Fixer, []rule.Finding, error) {
	if r != nil && isPlaceholder(r) {
		return nil, fixer.Fixer{}, nil, precondition(errPlaceholderIterative)
	}

	return v.prepareFix(ctx, r, fix, before)
}

func (rn *run) oneByOne(ctx context.Context, f fixer.Fixer, after []string) error {
	const header = "Fix all one by one:"

	fixed, err := f.OneByOne(ctx, rn.ws, rn.analyze)
	if err != nil {
		return withHeader(fixError(f, err), header)
	}

	if err := rn.compare(ctx, fixed, after); err != nil {
		return withHeader(err, header)
	}

	return nil
}

func (rn *run) byScope(ctx context.Context, f fixer.Fixer, scope rule.Scope, after []string) error {
	header := fmt.Sprintf("Fix all in %s:", scope)

	fixed, err := f.ByScope(ctx, rn.ws, scope, rn.analyze)
	if err != nil {
		return withHeader(fixError(f, err), header)
	}

	if err := rn.compare(ctx, fixed, after); err != nil {
		return withHeader(err, header)
	}

	return nil
}

// analyze runs the rule during fix-all loops.
func (rn *run) analyze(ctx context.Context, ws *workspace.Workspace) ([]rule.Finding, error) {
	findings, err := rn.engine.Findings(ctx, ws, rn.rule)
	if err != nil {
		if errors.Is(err, engine.ErrAnalysis) {
			return nil, newError(ErrCompiler, err, "Fixed code can't be analyzed: %v", err)
		}

		return nil, newError(ErrRule, err, "Rule %s failed: %v", rn.rule.Name(), err)
	}

	return findings, nil
}

func fixError(f fixer.Fixer, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}

	return newError(ErrFix, err, "Fix %s failed: %v", f.Fix.Name(), err)
}

// compare checks the fixed workspace against the expected texts.
func (rn *run) compare(ctx context.Context, fixed *workspace.Workspace, after []string) error {
	stripped := marker.Strip(after...)

	expected, index := rn.merge(fixed, stripped.Texts)

	if err := rn.compile(ctx, fixed, "Fixed code"); err != nil {
		return err
	}

	units := fixed.Inputs()
	if len(expected) != len(units) {
		return newError(ErrText, nil, "Expected %d documents, but the fixed workspace has %d.", len(expected), len(units))
	}

	paired := pair(expected, units)

	opts := textcmp.Options{UnifiedDiff: rn.behavior.Enabled(config.UnifiedDiff)}
	for i, text := range expected {
		if err := textcmp.Compare(text, paired[i].Text(), opts); err != nil {
			return newError(ErrText, err, "%s", err.Error())
		}
	}

	if stripped.Count() == 0 {
		return nil
	}

	return rn.remaining(ctx, fixed, stripped, index, paired)
}

// remaining verifies the findings indicated by markers in after on the fixed workspace.
func (rn *run) remaining(ctx context.Context, fixed *workspace.Workspace, after marker.Result, index func(int) int, paired []*workspace.Unit) error {
	units := make([]*workspace.Unit, len(after.Texts))
	for i := range units {
		units[i] = paired[index(i)]
	}

	expected, err := rn.markerExpectations(after, units)
	if err != nil {
		return err
	}

	findings, err := rn.findings(ctx, fixed, rn.bind(expected))
	if err != nil {
		return err
	}

	if err := rn.match(fixed, expected, findings); err != nil {
		return withHeader(err, "Remaining findings in fixed code:")
	}

	return nil
}

// merge returns the expected text of every unit. A single after text for several sources replaces the
// source it belongs to. index maps after texts to expected texts.
func (rn *run) merge(fixed *workspace.Workspace, after []string) ([]string, func(int) int) {
	if len(after) != 1 || len(rn.markers.Texts) < 2 {
		return after, func(i int) int { return i }
	}

	m := rn.replaced(fixed, after[0])

	expected := slices.Clone(rn.markers.Texts)
	expected[m] = after[0]

	return expected, func(int) int { return m }
}

// replaced picks the source a single after text belongs to: the only changed unit, else the unit
// with the same path, else the first.
func (rn *run) replaced(fixed *workspace.Workspace, after string) int {
	before, now := rn.ws.Inputs(), fixed.Inputs()

	changed := -1

	for i, u := range before {
		if i < len(now) && now[i].ID() != u.ID() {
			if changed >= 0 {
				changed = -1

				break
			}

			changed = i
		}
	}

	if changed >= 0 {
		return changed
	}

	d := source.Describe(after)
	if name := d.FileName(); name != "" {
		path := d.Path + "/" + name
		if i := slices.IndexFunc(before, func(u *workspace.Unit) bool { return u.Path() == path }); i >= 0 {
			return i
		}
	}

	rn.log().Debug("Merging expected text into first source", slog.Int("sources", len(before)))

	return 0
}

// pair assigns a unit to each expected text: identical text first, then the same path, then in order.
func pair(expected []string, units []*workspace.Unit) []*workspace.Unit {
	paired := make([]*workspace.Unit, len(expected))
	used := make([]bool, len(units))

	assign := func(match func(text string, u *workspace.Unit) bool) {
		for i, text := range expected {
			if paired[i] != nil {
				continue
			}

			for j, u := range units {
				if !used[j] && match(text, u) {
					paired[i], used[j] = u, true

					break
				}
			}
		}
	}

	assign(func(text string, u *workspace.Unit) bool { return text == u.Text() })
	assign(func(text string, u *workspace.Unit) bool {
		d := source.Describe(text)

		return d.FileName() != "" && d.Path+"/"+d.FileName() == u.Path()
	})
	assign(func(string, *workspace.Unit) bool { return true })

	return paired
}
