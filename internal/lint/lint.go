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

// Package lint implements the checks of the rulecheck analyzer.
//
// Each check is a small stage holding the [analysis.Pass] and its settings,
// called by the analyzer for the nodes it is interested in.
package lint

import "golang.org/x/tools/go/analysis"

const (
	// SourceNameKind is the category of constants not named after their primary type.
	SourceNameKind = "RC001"

	// MarkerKind is the category of verification calls with inconsistent markers.
	MarkerKind = "RC002"
)

func report(p *analysis.Pass, rng analysis.Range, category, message string, fixes ...analysis.SuggestedFix) {
	p.Report(analysis.Diagnostic{
		Pos:            rng.Pos(),
		End:            rng.End(),
		Category:       category,
		Message:        message,
		SuggestedFixes: fixes,
	})
}
