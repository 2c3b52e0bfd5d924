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

package fixer_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"fillmore-labs.com/rulecheck/internal/engine"
	. "fillmore-labs.com/rulecheck/internal/fixer"
	"fillmore-labs.com/rulecheck/internal/testrules"
	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/workspace"
)

const (
	unitA = "package a\n\ntype C1 struct{}\n\nvar _ C1\n"
	unitB = "package b\n\ntype C1 struct{}\n"
	unitC = "package a\n\ntype C0 struct{ C1 }\n"
)

type counter struct {
	rule  *rule.Rule
	calls atomic.Int32
}

func (c *counter) analyze(ctx context.Context, ws *workspace.Workspace) ([]rule.Finding, error) {
	c.calls.Add(1)

	e := engine.Engine{Sequential: true}

	return e.Findings(ctx, ws, c.rule)
}

func build(t *testing.T, texts ...string) *workspace.Workspace {
	t.Helper()

	ws, err := workspace.Build(texts, workspace.Config{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return ws
}

func textOf(t *testing.T, ws *workspace.Workspace, path string) string {
	t.Helper()

	u, ok := ws.Unit(path)
	if !ok {
		t.Fatalf("Unit %q not found in %v", path, ws)
	}

	return u.Text()
}

func TestApplySingle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		to    []string
		title string
		want  string
		err   error
	}{
		{"Single", []string{"C2"}, "", "package a\n\ntype C2 struct{}\n\nvar _ C2\n", nil},
		{"Title", []string{"C2", "C3"}, "Rename to C3", "package a\n\ntype C3 struct{}\n\nvar _ C3\n", nil},
		{"Ambiguous", []string{"C2", "C3"}, "", "", ErrAmbiguous},
		{"NoMatchingTitle", []string{"C2", "C3"}, "Rename to C4", "", ErrNoMatchingTitle},
		{"NoProposal", nil, "", unitA, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := build(t, unitA)
			c := &counter{rule: testrules.Naming("C1", tt.to...)}

			findings, err := c.analyze(t.Context(), ws)
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}

			f := Fixer{Fix: testrules.Rename(), Title: tt.title}

			fixed, err := f.ApplySingle(t.Context(), ws, f.Fixable(findings))
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if tt.err != nil {
				return
			}

			if got := textOf(t, fixed, "a/C1.go"); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOneByOne(t *testing.T) {
	t.Parallel()

	ws := build(t, unitA, unitB)
	c := &counter{rule: testrules.Naming("C1", "C2")}

	f := Fixer{Fix: testrules.Rename()}

	fixed, err := f.OneByOne(t.Context(), ws, c.analyze)
	if err != nil {
		t.Fatalf("OneByOne failed: %v", err)
	}

	if got, want := textOf(t, fixed, "b/C1.go"), "package b\n\ntype C2 struct{}\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := c.calls.Load(), int32(3); got != want {
		t.Errorf("Got %d analyses, want %d", got, want)
	}

	if textOf(t, ws, "b/C1.go") != unitB {
		t.Error("Original workspace was modified")
	}
}

func TestByScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		scope rule.Scope
		calls int32
	}{
		{"Unit", rule.ScopeUnit, 3},
		{"Project", rule.ScopeProject, 3},
		{"Workspace", rule.ScopeWorkspace, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := build(t, unitA, unitB)
			c := &counter{rule: testrules.Naming("C1", "C2")}

			for _, fix := range []rule.Fix{testrules.Rename(), testrules.BulkRename()} {
				c.calls.Store(0)

				f := Fixer{Fix: fix}

				fixed, err := f.ByScope(t.Context(), ws, tt.scope, c.analyze)
				if err != nil {
					t.Fatalf("%s failed: %v", fix.Name(), err)
				}

				if got, want := textOf(t, fixed, "a/C1.go"), "package a\n\ntype C2 struct{}\n\nvar _ C2\n"; got != want {
					t.Errorf("%s: Got %q, want %q", fix.Name(), got, want)
				}

				if got := c.calls.Load(); got != tt.calls {
					t.Errorf("%s: Got %d analyses, want %d", fix.Name(), got, tt.calls)
				}
			}
		})
	}
}

func TestByScopeSameUnitProject(t *testing.T) {
	t.Parallel()

	ws := build(t, unitA, unitC)
	c := &counter{rule: testrules.Naming("C1", "C2")}

	f := Fixer{Fix: testrules.Rename()}

	fixed, err := f.ByScope(t.Context(), ws, rule.ScopeProject, c.analyze)
	if err != nil {
		t.Fatalf("ByScope failed: %v", err)
	}

	if got, want := textOf(t, fixed, "a/C0.go"), "package a\n\ntype C0 struct{ C2 }\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestNotConverging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fix  rule.Fix
	}{
		{"Stubborn", testrules.Stubborn()},
		{"Decline", testrules.Decline()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := build(t, unitA)
			c := &counter{rule: testrules.Naming("C1", "C2")}

			f := Fixer{Fix: tt.fix}

			if _, err := f.OneByOne(t.Context(), ws, c.analyze); !errors.Is(err, ErrNotConverging) {
				t.Errorf("OneByOne: Got error %v, want %v", err, ErrNotConverging)
			}

			if _, err := f.ByScope(t.Context(), ws, rule.ScopeWorkspace, c.analyze); !errors.Is(err, ErrNotConverging) {
				t.Errorf("ByScope: Got error %v, want %v", err, ErrNotConverging)
			}
		})
	}
}

func TestNothingFixable(t *testing.T) {
	t.Parallel()

	ws := build(t, unitB)
	c := &counter{rule: testrules.Naming("C9", "C2")}

	f := Fixer{Fix: testrules.Stubborn()}

	fixed, err := f.OneByOne(t.Context(), ws, c.analyze)
	if err != nil {
		t.Fatalf("OneByOne failed: %v", err)
	}

	if fixed.Changed(ws) {
		t.Error("Workspace changed without fixable findings")
	}
}
