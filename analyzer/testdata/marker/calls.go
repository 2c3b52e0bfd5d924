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

package marker

import (
	"testing"

	"test/verify"
)

const (
	marked = "package a\n\ntype ↓C1 struct{}\n"
	clean  = "package a\n\ntype C1 struct{}\n"
)

var (
	r   *verify.Rule
	fix verify.Fix
)

func Calls(t testing.TB, sources []string) {
	verify.Diagnostics(t, r, []string{marked})
	verify.Diagnostics(t, r, []string{clean}) // want `Diagnostics sources have no finding marked with "↓"`
	verify.Diagnostics(t, r, []string{clean}, verify.WithExpected(verify.Expect("X001")))
	verify.Diagnostics(t, r, []string{clean}, verify.WithKind("X001")) // want `Diagnostics sources have no finding marked with "↓"`
	verify.Diagnostics(t, r, sources)
	verify.Diagnostics(t, r, []string{clean}) //nolint:rulecheck

	opts := []verify.Option{verify.WithKind("X001")}
	verify.Diagnostics(t, r, []string{clean}, opts...)
	verify.Diagnostics(t, r, []string{clean}, opts[0])

	verify.Valid(t, r, []string{clean})
	verify.Valid(t, r, []string{clean, marked}) // want `Valid sources must not mark findings with "↓"`

	verify.CodeFix(t, r, fix, []string{marked}, []string{clean})
	verify.CodeFix(t, r, fix, []string{clean}, []string{clean}) // want `CodeFix sources have no finding marked with "↓"`
	verify.FixAll(t, r, fix, []string{clean, clean}, []string{clean}) // want `FixAll sources have no finding marked with "↓"`
	verify.NoFix(t, r, fix, []string{marked})
	verify.NoFix(t, r, fix, []string{clean}) // want `NoFix sources have no finding marked with "↓"`

	verify.Equal(t, clean, marked)
}
