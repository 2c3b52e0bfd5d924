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

package marker_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/rulecheck/internal/marker"
)

func TestStrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		texts     []string
		cleaned   []string
		positions []Position
	}{
		{
			name:      "Single",
			texts:     []string{"type ↓C1 struct{}"},
			cleaned:   []string{"type C1 struct{}"},
			positions: []Position{{Text: 0, Offset: 5}},
		},
		{
			name:      "Multiple",
			texts:     []string{"var ↓a, ↓b int"},
			cleaned:   []string{"var a, b int"},
			positions: []Position{{Text: 0, Offset: 4}, {Text: 0, Offset: 7}},
		},
		{
			name:      "Adjacent",
			texts:     []string{"↓↓x"},
			cleaned:   []string{"x"},
			positions: []Position{{Text: 0, Offset: 0}, {Text: 0, Offset: 0}},
		},
		{
			name:      "AcrossTexts",
			texts:     []string{"a", "b↓c", "↓d"},
			cleaned:   []string{"a", "bc", "d"},
			positions: []Position{{Text: 1, Offset: 1}, {Text: 2, Offset: 0}},
		},
		{
			name:    "None",
			texts:   []string{"package p"},
			cleaned: []string{"package p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Strip(tt.texts...)

			if !slices.Equal(r.Texts, tt.cleaned) {
				t.Errorf("Got texts %q, want %q", r.Texts, tt.cleaned)
			}

			if !slices.Equal(r.Positions, tt.positions) {
				t.Errorf("Got positions %v, want %v", r.Positions, tt.positions)
			}
		})
	}
}

func TestStripSingleMarker(t *testing.T) {
	t.Parallel()

	const text = "package p\n\ntype ↓C1 struct{}\n"

	r := Strip(text)

	if r.Count() != 1 {
		t.Fatalf("Got %d markers, want 1", r.Count())
	}

	if got, want := r.Texts[0], strings.Replace(text, Marker, "", 1); got != want {
		t.Errorf("Got cleaned text %q, want %q", got, want)
	}

	if got, want := r.Positions[0].Offset, strings.Index(text, Marker); got != want {
		t.Errorf("Got offset %d, want %d", got, want)
	}

	if got := Insert(r.Texts[0], r.Positions[0].Offset); got != text {
		t.Errorf("Got reinserted text %q, want %q", got, text)
	}
}

func TestRequire(t *testing.T) {
	t.Parallel()

	if err := Strip("a", "b").Require(); !errors.Is(err, ErrNoMarker) {
		t.Errorf("Got error %v, want %v", err, ErrNoMarker)
	}

	if err := Strip("a", "↓b").Require(); err != nil {
		t.Errorf("Got unexpected error %v", err)
	}
}
