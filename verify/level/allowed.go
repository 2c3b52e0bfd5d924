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

// Package level defines text-marshalled verification levels.
package level

import (
	"fmt"
	"strings"
)

// Allowed specifies which compiler diagnostics are tolerated in analyzed and fixed code.
type Allowed uint8

const (
	// AllowNone tolerates no compiler diagnostics. Code go build rejects fails verification.
	AllowNone Allowed = iota

	// AllowWarnings tolerates warnings, like unused variables or imports, but no errors.
	AllowWarnings

	// AllowAll tolerates all compiler diagnostics in fixed code.
	AllowAll
)

// MarshalText implements [encoding.TextMarshaler].
func (a Allowed) MarshalText() ([]byte, error) {
	switch a {
	case AllowNone:
		return []byte("none"), nil

	case AllowWarnings:
		return []byte("warnings"), nil

	case AllowAll:
		return []byte("all"), nil

	default:
		return nil, fmt.Errorf("unknown allowed level %d", a)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Allowed) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "none", "off", "false":
		*a = AllowNone

	case "warnings", "warning":
		*a = AllowWarnings

	case "all", "errors", "true":
		*a = AllowAll

	default:
		return fmt.Errorf("unknown allowed level %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer].
func (a Allowed) String() string {
	text, err := a.MarshalText()
	if err != nil {
		return fmt.Sprintf("Allowed(%d)", a)
	}

	return string(text)
}
