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
// Package config holds the flags and the settings file shared by the verifier and the analyzer.
package config

// AnalyzerFlags selects the checks of the rulecheck analyzer.
type AnalyzerFlags uint8

const (
	// SourceNameAnalyzer checks that constants holding Go source are named after their primary type.
	SourceNameAnalyzer AnalyzerFlags = 1 << iota

	// MarkerAnalyzer checks that verification calls use markers consistently.
	MarkerAnalyzer
)

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestRename specifies whether source name findings carry a rename fix.
	SuggestRename
)

// Behavior represents toggles of the verifier.
type Behavior uint8

const (
	// SingleProject places all units into one project.
	SingleProject Behavior = 1 << iota

	// UnifiedDiff appends a unified diff to multi-line mismatch reports.
	UnifiedDiff

	// Sequential type-checks and analyzes packages one at a time.
	Sequential
)
