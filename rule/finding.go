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

package rule

import (
	"cmp"
	"fmt"

	"fillmore-labs.com/rulecheck/workspace"
)

// Location is a byte span in a unit.
type Location struct {
	Path         string // unit path
	Start, End   int    // byte offsets
	Line, Column int    // 1-based position of Start
}

// String renders the location as "path:line:column".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// Transformation is a titled set of edits proposed by a fix.
type Transformation struct {
	Title string
	Edits []workspace.Edit
}

// Empty reports whether the transformation changes nothing.
func (t Transformation) Empty() bool { return len(t.Edits) == 0 }

// Finding is a single issue reported by a rule.
type Finding struct {
	Kind     string
	Location Location
	Message  string

	// Properties carry additional data for fixes, like the reporting analyzer.
	Properties map[string]string

	// Fixes are the suggested fixes attached to the diagnostic.
	Fixes []Transformation
}

// String renders the finding for reports.
func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.Location, f.Message)
}

// Compare orders findings by path, start offset and kind.
func Compare(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.Location.Path, b.Location.Path),
		cmp.Compare(a.Location.Start, b.Location.Start),
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.Message, b.Message),
	)
}
