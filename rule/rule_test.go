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

package rule_test

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/rulecheck/rule"
)

var testAnalyzer = &analysis.Analyzer{
	Name: "naming",
	Doc:  "test analyzer",
	Run:  func(*analysis.Pass) (any, error) { return nil, nil },
}

func TestKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rule     *Rule
		kinds    []string
		sole     string
		soleErr  error
		validErr error
	}{
		{
			name:  "Default",
			rule:  New(testAnalyzer),
			kinds: []string{"naming"},
			sole:  "naming",
		},
		{
			name:  "Single",
			rule:  New(testAnalyzer, "X001"),
			kinds: []string{"X001"},
			sole:  "X001",
		},
		{
			name:    "Multiple",
			rule:    New(testAnalyzer, "X001", "X002"),
			kinds:   []string{"X001", "X002"},
			soleErr: ErrAmbiguousKind,
		},
		{
			name:     "Duplicate",
			rule:     New(testAnalyzer, "X001", "X001"),
			kinds:    []string{"X001", "X001"},
			soleErr:  ErrAmbiguousKind,
			validErr: ErrDuplicateKind,
		},
		{
			name:     "NoAnalyzer",
			rule:     New(nil, "X001"),
			kinds:    []string{"X001"},
			sole:     "X001",
			validErr: ErrNoAnalyzer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.rule.Kinds(); !slices.Equal(got, tt.kinds) {
				t.Errorf("Got kinds %q, want %q", got, tt.kinds)
			}

			sole, err := tt.rule.SoleKind()
			if !errors.Is(err, tt.soleErr) {
				t.Errorf("Got SoleKind error %v, want %v", err, tt.soleErr)
			}

			if sole != tt.sole {
				t.Errorf("Got sole kind %q, want %q", sole, tt.sole)
			}

			if err := tt.rule.Validate(); !errors.Is(err, tt.validErr) {
				t.Errorf("Got Validate error %v, want %v", err, tt.validErr)
			}
		})
	}
}

func TestCheckSupported(t *testing.T) {
	t.Parallel()

	r := New(testAnalyzer, "X001", "X002")

	if err := r.CheckSupported("X002", "X001"); err != nil {
		t.Errorf("Got unexpected error %v", err)
	}

	if err := r.CheckSupported("X001", "X003"); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("Got error %v, want %v", err, ErrUnsupportedKind)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	single, multiple := New(testAnalyzer, "X001"), New(testAnalyzer, "X001", "X002")

	tests := []struct {
		name string
		rule *Rule
		d    analysis.Diagnostic
		want string
	}{
		{"Category", multiple, analysis.Diagnostic{Category: "X002"}, "X002"},
		{"Sole", single, analysis.Diagnostic{}, "X001"},
		{"Fallback", multiple, analysis.Diagnostic{}, "naming"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.rule.KindOf(tt.d); got != tt.want {
				t.Errorf("Got kind %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScopeText(t *testing.T) {
	t.Parallel()

	for _, s := range Scopes {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("Can't marshal %d: %v", s, err)
		}

		var got Scope
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("Can't unmarshal %q: %v", text, err)
		}

		if got != s {
			t.Errorf("Got scope %v, want %v", got, s)
		}
	}

	var s Scope
	if err := s.UnmarshalText([]byte("galaxy")); err == nil {
		t.Error("Expected error for unknown scope")
	}
}
