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
	"strings"

	"fillmore-labs.com/rulecheck/internal/config"
	"fillmore-labs.com/rulecheck/internal/engine"
	"fillmore-labs.com/rulecheck/internal/marker"
	"fillmore-labs.com/rulecheck/internal/match"
	"fillmore-labs.com/rulecheck/internal/source"
	"fillmore-labs.com/rulecheck/internal/textcmp"
	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/verify/level"
	"fillmore-labs.com/rulecheck/workspace"
)

var (
	errNoRule       = errors.New("no rule to verify")
	errNoFix        = errors.New("no fix to verify")
	errValidMarkers = errors.New("valid code must not indicate findings with '" + marker.Marker + "'")
	errUnknownPath  = errors.New("no unit with path")
	errPosition     = errors.New("position outside of unit")
)

// Verifier checks rules and fixes against annotated sources.
//
// A Verifier is immutable and safe for concurrent use.
type Verifier struct {
	opts Options
}

// New creates a [Verifier] with the given options.
func New(opts ...Option) *Verifier {
	return &Verifier{opts: opts}
}

// With returns a [Verifier] with additional options.
func (v *Verifier) With(opts ...Option) *Verifier {
	return &Verifier{opts: append(slices.Clip(v.opts), opts...)}
}

// Valid verifies that the rule reports nothing on sources without markers.
func (v *Verifier) Valid(ctx context.Context, r *rule.Rule, sources ...string) error {
	ctx, task := trace.NewTask(ctx, "Valid")
	defer task.End()

	rn, err := v.newRun(r, sources)
	if err != nil {
		return err
	}

	if rn.markers.Count() > 0 || len(rn.expected) > 0 {
		return precondition(errValidMarkers)
	}

	if err := rn.prepare(ctx); err != nil {
		return err
	}

	_, err = rn.diagnostics(ctx, nil)

	return err
}

// Diagnostics verifies that the rule reports exactly the findings indicated by markers and expectations.
func (v *Verifier) Diagnostics(ctx context.Context, r *rule.Rule, sources ...string) error {
	ctx, task := trace.NewTask(ctx, "Diagnostics")
	defer task.End()

	rn, err := v.newRun(r, sources)
	if err != nil {
		return err
	}

	if err := rn.checkExpectations(); err != nil {
		return err
	}

	if err := rn.prepare(ctx); err != nil {
		return err
	}

	expected, err := rn.expectations()
	if err != nil {
		return err
	}

	_, err = rn.diagnostics(ctx, expected)

	return err
}

// Equal compares texts like fixed code is compared, tolerating line ending differences.
func (v *Verifier) Equal(expected, actual string) error {
	s := newSettings(v.opts)
	if s.err != nil {
		return precondition(s.err)
	}

	opts := textcmp.Options{UnifiedDiff: s.behavior.Enabled(config.UnifiedDiff)}
	if err := textcmp.Compare(expected, actual, opts); err != nil {
		return newError(ErrText, err, "%s", err.Error())
	}

	return nil
}

// run is a single verification of a rule on a workspace.
type run struct {
	settings
	opts    Options
	rule    *rule.Rule
	engine  engine.Engine
	markers marker.Result
	ws      *workspace.Workspace
}

// newRun checks the settings and the rule and strips the markers of the sources.
func (v *Verifier) newRun(r *rule.Rule, sources []string) (*run, error) {
	s := newSettings(v.opts)
	if s.err != nil {
		return nil, precondition(s.err)
	}

	if r == nil {
		return nil, precondition(errNoRule)
	}

	if err := r.Validate(); err != nil {
		return nil, precondition(err)
	}

	if s.kind != "" {
		if err := r.CheckSupported(s.kind); err != nil {
			return nil, precondition(err)
		}
	}

	for _, e := range s.expected {
		if e.kind == "" {
			continue
		}

		if err := r.CheckSupported(e.kind); err != nil {
			return nil, precondition(err)
		}
	}

	return &run{
		settings: s,
		opts:     v.opts,
		rule:     r,
		engine:   engine.Engine{Sequential: s.behavior.Enabled(config.Sequential)},
		markers:  marker.Strip(sources...),
	}, nil
}

// prepare builds the workspace of the stripped sources.
func (rn *run) prepare(ctx context.Context) error {
	ws, err := rn.build(rn.markers.Texts)
	if err != nil {
		return precondition(err)
	}

	rn.ws = ws

	rn.log().LogAttrs(ctx, slog.LevelDebug, "Verifying rule",
		slog.String("rule", rn.rule.Name()), slog.Int("markers", rn.markers.Count()), rn.opts.LogAttr())

	return nil
}

func (rn *run) build(texts []string) (*workspace.Workspace, error) {
	if rn.behavior.Enabled(config.SingleProject) {
		return workspace.BuildSingle(texts, rn.workspaceConfig())
	}

	return workspace.Build(texts, rn.workspaceConfig())
}

// markerKind returns the kind expected at markers.
func (rn *run) markerKind() (string, error) {
	if rn.settings.kind != "" {
		return rn.settings.kind, nil
	}

	k, err := rn.rule.SoleKind()
	if err != nil {
		return "", precondition(err)
	}

	return k, nil
}

// checkExpectations requires at least one expected finding and a kind for those without one.
func (rn *run) checkExpectations() error {
	if rn.markers.Count() == 0 && len(rn.expected) == 0 {
		return precondition(marker.ErrNoMarker)
	}

	if rn.markers.Count() == 0 && !slices.ContainsFunc(rn.expected, func(e Expectation) bool { return e.kind == "" }) {
		return nil
	}

	_, err := rn.markerKind()

	return err
}

// expectations collects the expected findings of the input sources.
func (rn *run) expectations() ([]match.Expected, error) {
	expected, err := rn.markerExpectations(rn.markers, rn.ws.Inputs())
	if err != nil {
		return nil, err
	}

	for _, e := range rn.expected {
		m, err := rn.resolve(e)
		if err != nil {
			return nil, err
		}

		expected = append(expected, m)
	}

	return expected, nil
}

// markerExpectations converts markers of texts to expectations, units[i] built from text i.
func (rn *run) markerExpectations(markers marker.Result, units []*workspace.Unit) ([]match.Expected, error) {
	if markers.Count() == 0 {
		return nil, nil
	}

	kind, err := rn.markerKind()
	if err != nil {
		return nil, err
	}

	expected := make([]match.Expected, 0, markers.Count())
	for _, p := range markers.Positions {
		expected = append(expected, match.Expected{
			Kind:       kind,
			Message:    rn.message,
			Path:       units[p.Text].Path(),
			Offset:     p.Offset,
			Positioned: true,
		})
	}

	return expected, nil
}

func (rn *run) resolve(e Expectation) (match.Expected, error) {
	kind := e.kind
	if kind == "" {
		var err error
		if kind, err = rn.markerKind(); err != nil {
			return match.Expected{}, err
		}
	}

	m := match.Expected{Kind: kind, Message: e.message}
	if !e.positioned {
		return m, nil
	}

	u, ok := rn.ws.Unit(e.path)
	if !ok {
		return match.Expected{}, precondition(fmt.Errorf("%w %q in %v", errUnknownPath, e.path, rn.ws))
	}

	offset, ok := source.Offset(u.Text(), e.line, e.column)
	if !ok {
		return match.Expected{}, precondition(fmt.Errorf("%w: %s", errPosition, e))
	}

	m.Path, m.Offset, m.Positioned = e.path, offset, true

	return m, nil
}

// diagnostics checks compilation, runs the rule on the input workspace and matches the findings.
func (rn *run) diagnostics(ctx context.Context, expected []match.Expected) ([]rule.Finding, error) {
	if err := rn.compile(ctx, rn.ws, "Source code"); err != nil {
		return nil, err
	}

	r := rn.bind(expected)

	findings, err := rn.findings(ctx, rn.ws, r)
	if err != nil {
		return nil, err
	}

	if err := rn.match(rn.ws, expected, findings); err != nil {
		return nil, err
	}

	return findings, nil
}

// compile reports compiler diagnostics beyond the allowed level.
func (rn *run) compile(ctx context.Context, ws *workspace.Workspace, what string) error {
	ds, err := rn.engine.Compile(ctx, ws)
	if err != nil {
		return newError(ErrCompiler, err, "%s can't be compiled: %v", what, err)
	}

	ds = slices.DeleteFunc(ds, func(d engine.Diagnostic) bool { return tolerated(rn.allowed, d) })
	if len(ds) == 0 {
		return nil
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s has compiler diagnostics:\n", what)
	b.WriteString(engine.Render(ds))

	if u, ok := ws.Unit(ds[0].Path); ok {
		b.WriteString("First source file with diagnostic is:\n")
		b.WriteString(u.Text())

		if !strings.HasSuffix(u.Text(), "\n") {
			b.WriteByte('\n')
		}
	}

	return newError(ErrCompiler, nil, "%s", b.String())
}

func tolerated(allowed level.Allowed, d engine.Diagnostic) bool {
	switch allowed {
	case level.AllowAll:
		return true

	case level.AllowWarnings:
		return d.Severity == engine.Warning

	default:
		return false
	}
}

// findings runs the rule. Analysis failures of ill-typed packages are tolerated when all diagnostics are.
func (rn *run) findings(ctx context.Context, ws *workspace.Workspace, r *rule.Rule) ([]rule.Finding, error) {
	findings, err := rn.engine.Findings(ctx, ws, r)
	if err == nil {
		return findings, nil
	}

	if errors.Is(err, engine.ErrAnalysis) && rn.allowed == level.AllowAll {
		rn.log().WarnContext(ctx, "Ignoring analysis failure", slog.String("rule", r.Name()), slog.Any("error", err))

		return findings, nil
	}

	return nil, newError(ErrRule, err, "Rule %s failed: %v", r.Name(), err)
}

func (rn *run) match(ws *workspace.Workspace, expected []match.Expected, findings []rule.Finding) error {
	sources := func(path string) (string, bool) {
		u, ok := ws.Unit(path)
		if !ok {
			return "", false
		}

		return u.Text(), true
	}

	if err := match.Verify(expected, findings, sources); err != nil {
		return newError(ErrMismatch, err, "%s", err.Error())
	}

	return nil
}
