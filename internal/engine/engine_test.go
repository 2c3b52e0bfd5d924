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

package engine_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/rulecheck/internal/engine"
	"fillmore-labs.com/rulecheck/internal/testrules"
	"fillmore-labs.com/rulecheck/workspace"
)

func build(t *testing.T, cfg workspace.Config, texts ...string) *workspace.Workspace {
	t.Helper()

	ws, err := workspace.Build(texts, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return ws
}

func TestFindings(t *testing.T) {
	t.Parallel()

	const c1 = "package p\n\ntype C1 struct{}\n\nvar _ C1\n"

	ws := build(t, workspace.Config{}, c1)

	e := Engine{Sequential: true}

	findings, err := e.Findings(t.Context(), ws, testrules.Naming("C1", "C2"))
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}

	if len(findings) != 1 {
		t.Fatalf("Got %d findings, want 1: %v", len(findings), findings)
	}

	f := findings[0]

	if f.Kind != testrules.NamingKind {
		t.Errorf("Got kind %q, want %q", f.Kind, testrules.NamingKind)
	}

	if got, want := f.Location.Path, "p/C1.go"; got != want {
		t.Errorf("Got path %q, want %q", got, want)
	}

	if got, want := f.Location.Start, strings.Index(c1, "C1"); got != want {
		t.Errorf("Got offset %d, want %d", got, want)
	}

	if f.Location.Line != 3 || f.Location.Column != 6 {
		t.Errorf("Got position %d:%d, want 3:6", f.Location.Line, f.Location.Column)
	}

	if len(f.Fixes) != 1 || len(f.Fixes[0].Edits) != 2 {
		t.Fatalf("Got fixes %v, want one fix with two edits", f.Fixes)
	}

	fixed, err := ws.Apply(f.Fixes[0].Edits...)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	u, _ := fixed.Unit("p/C1.go")
	if got, want := u.Text(), "package p\n\ntype C2 struct{}\n\nvar _ C2\n"; got != want {
		t.Errorf("Got fixed text %q, want %q", got, want)
	}
}

func TestFindingsAcrossProjects(t *testing.T) {
	t.Parallel()

	ws := build(t, workspace.Config{},
		"package project2\n\nimport \"project1\"\n\ntype C2 struct{ project1.C1 }\n",
		"package project1\n\ntype C1 struct{}\n",
	)

	e := Engine{}

	findings, err := e.Findings(t.Context(), ws, testrules.Naming("C1", "C3"))
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}

	if len(findings) != 1 || findings[0].Location.Path != "project1/C1.go" {
		t.Errorf("Got findings %v, want one in project1/C1.go", findings)
	}
}

func TestFindingsSuppressed(t *testing.T) {
	t.Parallel()

	ws := build(t, workspace.Config{Suppressed: []string{testrules.NamingKind}}, "package p\n\ntype C1 struct{}\n")

	e := Engine{}

	findings, err := e.Findings(t.Context(), ws, testrules.Naming("C1", "C2"))
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}

	if len(findings) != 0 {
		t.Errorf("Got findings %v, want none", findings)
	}
}

func TestFindingsIllTyped(t *testing.T) {
	t.Parallel()

	ws := build(t, workspace.Config{}, "package p\n\ntype C1 struct{ x Undefined }\n")

	e := Engine{}

	if _, err := e.Findings(t.Context(), ws, testrules.Naming("C1", "C2")); !errors.Is(err, ErrAnalysis) {
		t.Errorf("Got error %v, want %v", err, ErrAnalysis)
	}
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		texts    []string
		severity []Severity
		contains string
	}{
		{
			name:  "Clean",
			texts: []string{"package p\n\ntype C1 struct{}\n"},
		},
		{
			name:     "Unused",
			texts:    []string{"package p\n\nfunc F() {\n\tx := 1\n}\n"},
			severity: []Severity{Warning},
			contains: "declared and not used",
		},
		{
			name:     "Undefined",
			texts:    []string{"package p\n\nvar _ = y\n"},
			severity: []Severity{Error},
			contains: "undefined: y",
		},
		{
			name:     "Syntax",
			texts:    []string{"package p\n\nfunc F( {\n"},
			severity: []Severity{Error},
		},
		{
			name: "NotVisible",
			texts: []string{
				"package a\n\nimport \"b\"\n\ntype A struct{ b.B }\n",
				"package b\n\nimport \"a\"\n\ntype B struct{}\n\nvar _ a.A\n",
			},
			severity: []Severity{Error},
			contains: "not visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := build(t, workspace.Config{}, tt.texts...)

			e := Engine{}

			ds, err := e.Compile(t.Context(), ws)
			if err != nil {
				t.Fatalf("Compile failed: %v", err)
			}

			if len(tt.severity) == 0 {
				if len(ds) > 0 {
					t.Errorf("Got diagnostics:\n%s", Render(ds))
				}

				return
			}

			if len(ds) == 0 {
				t.Fatalf("Got no diagnostics, want %v", tt.severity)
			}

			if ds[0].Severity != tt.severity[0] {
				t.Errorf("Got severity %v, want %v:\n%s", ds[0].Severity, tt.severity[0], Render(ds))
			}

			if !strings.Contains(Render(ds), tt.contains) {
				t.Errorf("Got diagnostics:\n%s\nwant to contain %q", Render(ds), tt.contains)
			}
		})
	}
}
