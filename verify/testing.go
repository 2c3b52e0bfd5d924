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
	"testing"

	"fillmore-labs.com/rulecheck/rule"
)

// Valid verifies that the rule reports nothing on sources. See [Verifier.Valid].
func Valid(t testing.TB, r *rule.Rule, sources []string, opts ...Option) {
	t.Helper()
	check(t, New(opts...).Valid(t.Context(), r, sources...))
}

// Diagnostics verifies the findings indicated by markers. See [Verifier.Diagnostics].
func Diagnostics(t testing.TB, r *rule.Rule, sources []string, opts ...Option) {
	t.Helper()
	check(t, New(opts...).Diagnostics(t.Context(), r, sources...))
}

// CodeFix verifies a single fix application. See [Verifier.CodeFix].
func CodeFix(t testing.TB, r *rule.Rule, fix rule.Fix, before, after []string, opts ...Option) {
	t.Helper()
	check(t, New(opts...).CodeFix(t.Context(), r, fix, before, after))
}

// FixAll verifies fixing all findings. See [Verifier.FixAll].
func FixAll(t testing.TB, r *rule.Rule, fix rule.Fix, before, after []string, opts ...Option) {
	t.Helper()
	check(t, New(opts...).FixAll(t.Context(), r, fix, before, after))
}

// NoFix verifies that the fix changes nothing. See [Verifier.NoFix].
func NoFix(t testing.TB, r *rule.Rule, fix rule.Fix, sources []string, opts ...Option) {
	t.Helper()
	check(t, New(opts...).NoFix(t.Context(), r, fix, sources...))
}

// Equal compares texts. See [Verifier.Equal].
func Equal(t testing.TB, expected, actual string, opts ...Option) {
	t.Helper()
	check(t, New(opts...).Equal(expected, actual))
}

func check(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatal(err)
	}
}
