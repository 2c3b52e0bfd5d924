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

// Package match reconciles expected findings with the findings a rule reported.
package match

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/rulecheck/internal/marker"
	"fillmore-labs.com/rulecheck/internal/source"
	"fillmore-labs.com/rulecheck/internal/textcmp"
	"fillmore-labs.com/rulecheck/rule"
)

var (
	// ErrMismatch is returned when the expected and actual findings differ.
	ErrMismatch = errors.New("expected and actual findings do not match")

	// ErrMessage is returned when the only expected and actual findings differ in their message.
	ErrMessage = errors.New("expected and actual messages do not match")
)

// Expected is a finding expected at a marker, or anywhere when not positioned.
type Expected struct {
	Kind       string
	Message    string // compared only when not empty
	Path       string
	Offset     int
	Positioned bool
}

// Matches reports whether the actual finding satisfies the expectation.
func (e Expected) Matches(f rule.Finding) bool {
	return e.Kind == f.Kind && e.PositionMatches(f) && e.MessageMatches(f)
}

// PositionMatches reports whether the finding starts at the expected position.
func (e Expected) PositionMatches(f rule.Finding) bool {
	return !e.Positioned || (e.Path == f.Location.Path && e.Offset == f.Location.Start)
}

// MessageMatches reports whether the finding has the expected message.
func (e Expected) MessageMatches(f rule.Finding) bool {
	return e.Message == "" || textcmp.Compare(e.Message, f.Message, textcmp.Options{}) == nil
}

// Sources resolves unit paths to their text, for rendering positions.
type Sources func(path string) (string, bool)

// Verify checks that the expected and actual findings are equal as sets.
//
// On mismatch, the returned error wraps [ErrMismatch] or [ErrMessage] and carries
// a report listing the missing expected and the unexpected actual findings.
func Verify(expected []Expected, actual []rule.Finding, sources Sources) error {
	expected = unique(expected)

	missing := slices.DeleteFunc(slices.Clone(expected), func(e Expected) bool {
		return slices.ContainsFunc(actual, e.Matches)
	})

	unexpected := slices.DeleteFunc(slices.Clone(actual), func(f rule.Finding) bool {
		return slices.ContainsFunc(expected, func(e Expected) bool { return e.Matches(f) })
	})

	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}

	if len(expected) == 1 && len(actual) == 1 {
		e, a := expected[0], actual[0]
		if e.Kind == a.Kind && e.PositionMatches(a) && !e.MessageMatches(a) {
			err := textcmp.Compare(e.Message, a.Message, textcmp.Options{Header: "Expected and actual messages do not match."})

			return &Error{err: ErrMessage, report: err.Error()}
		}
	}

	slices.SortFunc(missing, compareExpected)
	slices.SortStableFunc(unexpected, rule.Compare)

	return &Error{err: ErrMismatch, report: report(missing, unexpected, len(actual), sources)}
}

// Error is a mismatch with its report.
type Error struct {
	err    error
	report string
}

// Error returns the report.
func (e *Error) Error() string { return e.report }

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error { return e.err }

func report(missing []Expected, unexpected []rule.Finding, actuals int, sources Sources) string {
	var b strings.Builder

	b.WriteString("Expected and actual findings do not match.\n")

	for i, e := range missing {
		if i == 0 {
			b.WriteString("Expected:\n")
		}

		b.WriteString(renderExpected(e, sources))
	}

	switch {
	case actuals == 0:
		b.WriteString("Actual: <no findings>\n")

	case len(unexpected) == 0:
		b.WriteString("Actual: <missing>\n")
	}

	for i, f := range unexpected {
		if i == 0 {
			b.WriteString("Actual:\n")
		}

		b.WriteString(renderFinding(f, sources))
	}

	return b.String()
}

func renderExpected(e Expected, sources Sources) string {
	var b strings.Builder

	b.WriteString(e.Kind)

	if e.Message != "" {
		b.WriteString(" " + e.Message)
	}

	b.WriteByte('\n')

	if e.Positioned {
		b.WriteString(renderPosition(e.Path, e.Offset, sources))
	}

	return b.String()
}

func renderFinding(f rule.Finding, sources Sources) string {
	var b strings.Builder

	b.WriteString(f.Kind + " " + f.Message + "\n")

	if f.Location.Path != "" {
		b.WriteString(renderPosition(f.Location.Path, f.Location.Start, sources))
	}

	return b.String()
}

// renderPosition renders the source line at offset with the marker re-inserted.
func renderPosition(path string, offset int, sources Sources) string {
	text, ok := sources(path)
	if !ok {
		return fmt.Sprintf("  at offset %d in file %s\n", offset, path)
	}

	p := source.Position(text, offset)
	line := marker.Insert(p.Text, offset-p.Start)

	return fmt.Sprintf("  at line %d and column %d in file %s | %s\n", p.Line, p.Column, path, strings.TrimSpace(line))
}

func unique(expected []Expected) []Expected {
	var u []Expected

	for _, e := range expected {
		if !slices.Contains(u, e) {
			u = append(u, e)
		}
	}

	return u
}

func compareExpected(a, b Expected) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Offset, b.Offset),
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Message, b.Message),
	)
}
