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

package verify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/rulecheck/internal/fixer"
	"fillmore-labs.com/rulecheck/internal/testrules"
	"fillmore-labs.com/rulecheck/internal/textcmp"
	"fillmore-labs.com/rulecheck/rule"
	. "fillmore-labs.com/rulecheck/verify"
	"fillmore-labs.com/rulecheck/verify/level"
	"fillmore-labs.com/rulecheck/workspace"
)

const (
	A1 = "package a\n\ntype ↓C1 struct{}\n"
	A2 = "package a\n\ntype C2 struct{}\n"
	B1 = "package b\n\ntype ↓C1 struct{}\n"
	B2 = "package b\n\ntype C2 struct{}\n"
)

func TestCodeFix(t *testing.T) {
	t.Parallel()

	err := New().CodeFix(t.Context(), testrules.Naming("C1", "C2"), testrules.Rename(), []string{C1}, []string{C2})
	require.NoError(t, err)
}

func TestCodeFixMismatch(t *testing.T) {
	t.Parallel()

	err := New().CodeFix(t.Context(), testrules.Naming("C1", "C2"), testrules.Rename(), []string{C1}, []string{C3})
	require.ErrorIs(t, err, ErrText)

	var m *textcmp.MismatchError
	require.ErrorAs(t, err, &m)
	assert.Equal(t, 3, m.Line)
	assert.Equal(t, 6, m.Column)
	assert.Contains(t, err.Error(), "Mismatch on line 3 of file C3.go.\n"+
		"Expected: type C3 struct{}\n"+
		"Actual:   type C2 struct{}\n"+
		"                ^\n")
}

func TestCodeFixTitle(t *testing.T) {
	t.Parallel()

	r := testrules.Naming("C1", "C2", "C3")

	err := New().CodeFix(t.Context(), r, testrules.Rename(), []string{C1}, []string{C3})
	require.ErrorIs(t, err, ErrFix)
	require.ErrorIs(t, err, fixer.ErrAmbiguous)

	err = New(WithFixTitle("Rename to C3")).CodeFix(t.Context(), r, testrules.Rename(), []string{C1}, []string{C3})
	require.NoError(t, err)

	err = New(WithFixTitle("Rename to C4")).CodeFix(t.Context(), r, testrules.Rename(), []string{C1}, []string{C3})
	require.ErrorIs(t, err, fixer.ErrNoMatchingTitle)
}

func TestCodeFixUnchanged(t *testing.T) {
	t.Parallel()

	err := New().CodeFix(t.Context(), testrules.Naming("C1", "C2"), testrules.Decline(), []string{C1}, []string{C2})
	require.ErrorIs(t, err, ErrFix)
	assert.Equal(t, "Fix Decline did not change any document.", err.Error())
}

func TestCodeFixRemaining(t *testing.T) {
	t.Parallel()

	r := testrules.Naming("C1", "C2")

	err := New().CodeFix(t.Context(), r, testrules.Rename(), []string{A1, B1}, []string{A2, B1})
	require.NoError(t, err)

	const unmarked = "package b\n\ntype C1 struct{}\n"

	err = New().CodeFix(t.Context(), r, testrules.Rename(), []string{A1, B1}, []string{A2, "package b\n\ntype C1 ↓struct{}\n"})
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, err.Error(), "Remaining findings in fixed code:\n")

	err = New().CodeFix(t.Context(), r, testrules.Rename(), []string{A1, B1}, []string{A2, unmarked})
	require.NoError(t, err)
}

func TestCodeFixMerge(t *testing.T) {
	t.Parallel()

	r := testrules.Naming("C1", "C2")

	err := New().CodeFix(t.Context(), r, testrules.Rename(), []string{C1, clean}, []string{C2})
	require.NoError(t, err)

	err = New().CodeFix(t.Context(), r, testrules.Rename(), []string{clean, C1}, []string{C2})
	require.NoError(t, err)
}

func TestCodeFixDocumentCount(t *testing.T) {
	t.Parallel()

	err := New().CodeFix(t.Context(), testrules.Naming("C1", "C2"), testrules.Rename(), []string{A1, B1}, []string{A2, B1, clean})
	require.ErrorIs(t, err, ErrText)
	assert.Equal(t, "Expected 3 documents, but the fixed workspace has 2.", err.Error())
}

func TestCodeFixCompiler(t *testing.T) {
	t.Parallel()

	const (
		before = "package p\n\ntype ↓C1 struct{}\n\ntype C2 struct{}\n"
		after  = "package p\n\ntype C2 struct{}\n\ntype C2 struct{}\n"
	)

	err := New().CodeFix(t.Context(), testrules.Naming("C1", "C2"), testrules.Rename(), []string{before}, []string{after})
	require.ErrorIs(t, err, ErrCompiler)
	assert.Contains(t, err.Error(), "Fixed code has compiler diagnostics:\n")
	assert.Contains(t, err.Error(), "First source file with diagnostic is:\n"+after)
}

func TestFixAll(t *testing.T) {
	t.Parallel()

	r := testrules.Naming("C1", "C2")

	for _, fix := range []rule.Fix{testrules.Rename(), testrules.BulkRename()} {
		err := New().FixAll(t.Context(), r, fix, []string{A1, B1}, []string{A2, B2})
		require.NoError(t, err, fix.Name())
	}

	for _, scope := range rule.Scopes {
		err := New().FixAllByScope(t.Context(), r, testrules.Rename(), scope, []string{A1, B1}, []string{A2, B2})
		require.NoError(t, err, scope.String())
	}

	err := New().FixAllOneByOne(t.Context(), r, testrules.Rename(), []string{A1, B1}, []string{A2, B2})
	require.NoError(t, err)
}

func TestFixAllNotConverging(t *testing.T) {
	t.Parallel()

	err := New().FixAll(t.Context(), testrules.Naming("C1", "C2"), testrules.Stubborn(), []string{C1}, []string{C2})
	require.ErrorIs(t, err, ErrFix)
	require.ErrorIs(t, err, fixer.ErrNotConverging)
	assert.Contains(t, err.Error(), "Fix all one by one:\n")

	err = New(WithScopes(rule.ScopeProject)).FixAllByScope(t.Context(), testrules.Naming("C1", "C2"), testrules.Stubborn(), rule.ScopeProject, []string{C1}, []string{C2})
	require.ErrorIs(t, err, fixer.ErrNotConverging)
	assert.Contains(t, err.Error(), "Fix all in project:\n")
}

func TestFixAllMismatch(t *testing.T) {
	t.Parallel()

	err := New(WithScopes()).FixAll(t.Context(), testrules.Naming("C1", "C2"), testrules.Rename(), []string{A1, B1}, []string{A2, B1})
	require.ErrorIs(t, err, ErrText)
	assert.Contains(t, err.Error(), "Fix all one by one:\nMismatch on line 3 of file C1.go.\n")
}

func TestNoFix(t *testing.T) {
	t.Parallel()

	r := testrules.Naming("C1", "C2")

	require.NoError(t, New().NoFix(t.Context(), r, testrules.Decline(), C1))

	err := New().NoFix(t.Context(), r, testrules.Rename(), C1)
	require.ErrorIs(t, err, ErrFix)
	assert.Contains(t, err.Error(), "Fix SuggestedFixes proposed \"Rename to C2\"")
}

func prefix(_ context.Context, _ *workspace.Workspace, f rule.Finding) ([]rule.Transformation, error) {
	edit := workspace.Edit{Path: f.Location.Path, Start: f.Location.Start, End: f.Location.Start, NewText: "X"}

	return []rule.Transformation{{Title: "Prefix", Edits: []workspace.Edit{edit}}}, nil
}

func TestCodeFixUnusedImport(t *testing.T) {
	t.Parallel()

	const (
		before = "package p\n\nimport \"fmt\"\n\ntype ↓C1 struct{}\n\nvar _ = fmt.Sprint\n"
		after  = "package p\n\nimport \"fmt\"\n\ntype C2 struct{}\n"
	)

	r := testrules.Naming("C1", "C2")
	fix := rule.NewFix("DropUse", []string{testrules.NamingKind},
		func(_ context.Context, ws *workspace.Workspace, f rule.Finding) ([]rule.Transformation, error) {
			u, _ := ws.Unit(f.Location.Path)
			edit := workspace.Edit{Path: u.Path(), Start: 0, End: len(u.Text()), NewText: after}

			return []rule.Transformation{{Title: "Drop use", Edits: []workspace.Edit{edit}}}, nil
		})

	err := New().CodeFix(t.Context(), r, fix, []string{before}, []string{after})
	require.ErrorIs(t, err, ErrCompiler)
	assert.Contains(t, err.Error(), "Fixed code has compiler diagnostics:\n")
	assert.Contains(t, err.Error(), "imported and not used")

	require.NoError(t, New(WithAllowed(level.AllowWarnings)).CodeFix(t.Context(), r, fix, []string{before}, []string{after}))
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	const (
		before = "package p\n\ntype ↓C1 struct{}\n"
		after  = "package p\n\ntype XC1 struct{}\n"
	)

	r := Placeholder("X009")
	fix := rule.NewFix("Prefix", []string{"X009"}, prefix)

	require.NoError(t, New().Diagnostics(t.Context(), r, before))
	require.NoError(t, New().CodeFix(t.Context(), r, fix, []string{before}, []string{after}))

	err := New().FixAll(t.Context(), r, fix, []string{before}, []string{after})
	require.ErrorIs(t, err, ErrPrecondition)

	other := Placeholder("X010")
	require.NoError(t, New().CodeFix(t.Context(), other, rule.NewFix("Prefix", []string{"X010"}, prefix),
		[]string{before}, []string{after}))

	err = New().CodeFix(t.Context(), other, fix, []string{before}, []string{after})
	require.ErrorIs(t, err, ErrPrecondition)
}
