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
	"fmt"
	"strings"
)

// Scope is the granularity of a bulk fix.
type Scope uint8

//go:generate go tool stringer -type Scope -linecomment
const (
	// ScopeUnit fixes all findings in the unit of the triggering finding.
	ScopeUnit Scope = iota // unit

	// ScopeProject fixes all findings in the project of the triggering finding.
	ScopeProject // project

	// ScopeWorkspace fixes all findings.
	ScopeWorkspace // workspace
)

// Scopes lists all scopes in increasing granularity.
var Scopes = []Scope{ScopeUnit, ScopeProject, ScopeWorkspace}

// MarshalText implements [encoding.TextMarshaler].
func (s Scope) MarshalText() ([]byte, error) {
	if s > ScopeWorkspace {
		return nil, fmt.Errorf("unknown scope %d", s)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scope) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "unit", "file", "document":
		*s = ScopeUnit

	case "project", "module":
		*s = ScopeProject

	case "workspace", "solution", "all":
		*s = ScopeWorkspace

	default:
		return fmt.Errorf("unknown scope %q", string(text))
	}

	return nil
}
