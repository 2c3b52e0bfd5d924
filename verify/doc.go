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

/*
Package verify checks static analysis rules and their fixes against annotated Go sources.

Sources are Go files held in strings. A marker "↓" in front of a token indicates a finding
expected at that position; markers are removed before compilation:

	const C1 = `package p

	type ↓C1 struct{}
	`

Each source becomes a unit named after its first declared type, in a namespace taken from the
canonical import comment or else the package name. Namespaces fold into projects, and imports
between projects become dependency edges. The workspace is type-checked in memory and the rule's
analyzer runs on every package.

[Diagnostics] verifies that exactly the indicated findings are reported, [Valid] that none are.
[CodeFix] applies a single fix and compares the result with the expected text, while [FixAll]
iterates fixes one finding at a time and in bulk per [rule.Scope] until no fixable finding remains.
Text comparison ignores carriage returns, so expected texts may use either line ending.

Defaults can be set in a YAML file named by the RULECHECK_CONFIG environment variable:

	go-version: go1.24
	suppressed: [X002]
	allowed: none
	scopes: [unit, project, workspace]
	single-project: false
	unified-diff: true
	sequential: false
*/
package verify
