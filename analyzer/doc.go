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

// Package analyzer implements the rulecheck static analysis pass.
//
// # Overview
//
// rulecheck checks tests written with the verification harness in
// [fillmore-labs.com/rulecheck/verify].
//
// # Checks
//
// RC001 (source-name) reports string constants holding a Go source file that are not
// named after the first type the source declares. A suggested fix renames the constant:
//
//	const before = "package p\n\ntype ↓C1 struct{}\n" // becomes c1
//
// Names starting with the type name, like C1Fixed, are accepted.
//
// RC002 (marker) reports calls to verify.Diagnostics, verify.CodeFix, verify.FixAll
// and verify.NoFix whose constant sources contain no "↓" marker and no explicit
// expectation, and calls to verify.Valid whose sources do.
//
// Both checks honor //nolint:rulecheck comments and skip generated files by default.
package analyzer
