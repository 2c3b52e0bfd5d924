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

package fixer

import (
	"slices"

	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/workspace"
)

// provider answers [rule.Provider] queries from a fixed set of findings.
type provider struct {
	ws       *workspace.Workspace
	findings []rule.Finding
}

func newProvider(ws *workspace.Workspace, findings []rule.Finding) provider {
	return provider{ws: ws, findings: findings}
}

func (p provider) UnitFindings(path string) []rule.Finding {
	return p.filter(func(f rule.Finding) bool { return f.Location.Path == path })
}

func (p provider) ProjectFindings(project string) []rule.Finding {
	return p.filter(func(f rule.Finding) bool {
		pr, ok := p.ws.ProjectOf(f.Location.Path)

		return ok && pr.Name() == project
	})
}

func (p provider) AllFindings() []rule.Finding { return slices.Clone(p.findings) }

func (p provider) filter(keep func(rule.Finding) bool) []rule.Finding {
	var fs []rule.Finding

	for _, f := range p.findings {
		if keep(f) {
			fs = append(fs, f)
		}
	}

	return fs
}
