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
	"fmt"
	"log/slog"
	"strconv"
)

// Expectation is an expected finding, given explicitly instead of by a marker.
type Expectation struct {
	kind, message string
	path          string
	line, column  int
	positioned    bool
}

// Expect returns an [Expectation] of a finding with kind anywhere in the sources.
// An empty kind stands for the sole kind of the rule.
func Expect(kind string) Expectation { return Expectation{kind: kind} }

// WithMessage returns a copy of e that also expects the message.
func (e Expectation) WithMessage(message string) Expectation {
	e.message = message

	return e
}

// At returns a copy of e expected at a 1-based line and byte column of the unit with the given path,
// like "p/C1.go".
func (e Expectation) At(path string, line, column int) Expectation {
	e.path, e.line, e.column, e.positioned = path, line, column, true

	return e
}

// String implements [fmt.Stringer].
func (e Expectation) String() string {
	s := e.kind
	if s == "" {
		s = "<sole kind>"
	}

	if e.positioned {
		s += fmt.Sprintf(" at %s:%d:%d", e.path, e.line, e.column)
	}

	if e.message != "" {
		s += " " + strconv.Quote(e.message)
	}

	return s
}

// LogValue implements [slog.LogValuer].
func (e Expectation) LogValue() slog.Value { return slog.StringValue(e.String()) }
