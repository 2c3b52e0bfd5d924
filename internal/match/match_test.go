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

package match_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/rulecheck/internal/match"
	"fillmore-labs.com/rulecheck/rule"
)

const (
	path = "p/C1.go"
	text = "package p\n\ntype C1 struct{}\n\ntype C2 struct{}\n"
)

var (
	offsetC1 = strings.Index(text, "C1")
	offsetC2 = strings.Index(text, "C2")
)

func sources(p string) (string, bool) {
	if p != path {
		return "", false
	}

	return text, true
}

func actual(kind string, offset int, message string) rule.Finding {
	return rule.Finding{Kind: kind, Location: rule.Location{Path: path, Start: offset}, Message: message}
}

func at(kind string, offset int) Expected {
	return Expected{Kind: kind, Path: path, Offset: offset, Positioned: true}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected []Expected
		actual   []rule.Finding
		want     error
		contains []string
	}{
		{
			name:     "Match",
			expected: []Expected{at("X001", offsetC1)},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad name")},
		},
		{
			name:     "Duplicates",
			expected: []Expected{at("X001", offsetC1), at("X001", offsetC1)},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad name")},
		},
		{
			name:     "Unpositioned",
			expected: []Expected{{Kind: "X001"}},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad name"), actual("X001", offsetC2, "bad name")},
		},
		{
			name:     "MessageMatch",
			expected: []Expected{{Kind: "X001", Message: "bad name", Path: path, Offset: offsetC1, Positioned: true}},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad name")},
		},
		{
			name:     "WrongPosition",
			expected: []Expected{at("X001", offsetC1)},
			actual:   []rule.Finding{actual("X001", offsetC2, "bad name")},
			want:     ErrMismatch,
			contains: []string{
				"Expected:\nX001\n  at line 3 and column 6 in file p/C1.go | type ↓C1 struct{}\n",
				"Actual:\nX001 bad name\n  at line 5 and column 6 in file p/C1.go | type ↓C2 struct{}\n",
			},
		},
		{
			name:     "WrongKind",
			expected: []Expected{at("X001", offsetC1)},
			actual:   []rule.Finding{actual("X002", offsetC1, "bad name")},
			want:     ErrMismatch,
		},
		{
			name:     "NoActual",
			expected: []Expected{at("X001", offsetC1)},
			want:     ErrMismatch,
			contains: []string{"Actual: <no findings>\n"},
		},
		{
			name:     "Missing",
			expected: []Expected{at("X001", offsetC1), at("X001", offsetC2)},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad name")},
			want:     ErrMismatch,
			contains: []string{"type ↓C2", "Actual: <missing>\n"},
		},
		{
			name:     "Unexpected",
			expected: []Expected{at("X001", offsetC1)},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad name"), actual("X001", offsetC2, "bad name")},
			want:     ErrMismatch,
			contains: []string{"Actual:\nX001 bad name\n", "type ↓C2"},
		},
		{
			name:     "Message",
			expected: []Expected{{Kind: "X001", Message: "bad name", Path: path, Offset: offsetC1, Positioned: true}},
			actual:   []rule.Finding{actual("X001", offsetC1, "bad game")},
			want:     ErrMessage,
			contains: []string{"Expected and actual messages do not match.\nExpected: bad name\nActual:   bad game\n              ^\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Verify(tt.expected, tt.actual, sources)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Got error %v, want %v", err, tt.want)
			}

			for _, want := range tt.contains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Got report\n%s\nwant to contain\n%s", err, want)
				}
			}
		})
	}
}

func TestVerifyCommutative(t *testing.T) {
	t.Parallel()

	expected := []Expected{at("X001", offsetC1), at("X002", offsetC2)}
	actuals := []rule.Finding{
		actual("X001", offsetC2, "one"),
		actual("X002", offsetC2, "two"),
		actual("X003", offsetC1, "three"),
	}

	first := Verify(expected, actuals, sources)
	if first == nil {
		t.Fatal("Expected mismatch")
	}

	reversed := slices.Clone(actuals)
	slices.Reverse(reversed)

	second := Verify(expected, reversed, sources)
	if second == nil || second.Error() != first.Error() {
		t.Errorf("Got report\n%v\nfor reversed findings, want\n%v", second, first)
	}

	if err := Verify(expected, []rule.Finding{actual("X002", offsetC2, ""), actual("X001", offsetC1, "")}, sources); err != nil {
		t.Errorf("Got unexpected error %v", err)
	}
}
