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

// Package marker removes expected-finding markers from annotated source text.
package marker

import (
	"errors"
	"strings"
)

// Marker indicates that a finding is expected to start at its position.
const Marker = "↓"

// ErrNoMarker is returned when findings are required, but no source carries a marker.
var ErrNoMarker = errors.New("expected code to have at least one finding position indicated with '" + Marker + "'")

// Position is the location of a removed marker.
type Position struct {
	Text   int // index of the source text
	Offset int // byte offset in the cleaned text
}

// Result holds cleaned texts and the marker positions found in them.
type Result struct {
	Texts     []string
	Positions []Position
}

// Strip removes every [Marker] from the given texts.
//
// Positions are reported in source order per text, texts in input order.
// Each offset refers to the cleaned text, so consecutive markers map to the same offset.
func Strip(texts ...string) Result {
	r := Result{Texts: make([]string, len(texts))}

	for i, text := range texts {
		if !strings.Contains(text, Marker) {
			r.Texts[i] = text

			continue
		}

		var b strings.Builder
		b.Grow(len(text))

		for rest := text; ; {
			before, after, found := strings.Cut(rest, Marker)
			b.WriteString(before) // ignore error

			if !found {
				break
			}

			r.Positions = append(r.Positions, Position{Text: i, Offset: b.Len()})
			rest = after
		}

		r.Texts[i] = b.String()
	}

	return r
}

// Count returns the total number of markers.
func (r Result) Count() int { return len(r.Positions) }

// Require returns [ErrNoMarker] when no marker was found.
func (r Result) Require() error {
	if r.Count() == 0 {
		return ErrNoMarker
	}

	return nil
}

// In returns the marker positions of the text with the given index.
func (r Result) In(text int) []Position {
	var ps []Position

	for _, p := range r.Positions {
		if p.Text == text {
			ps = append(ps, p)
		}
	}

	return ps
}

// Insert places a marker at offset, for rendering expected positions.
func Insert(text string, offset int) string {
	offset = max(0, min(offset, len(text)))

	return text[:offset] + Marker + text[offset:]
}
