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

package workspace

import (
	"log/slog"

	"github.com/google/uuid"
)

// unitSpace is the UUID name space of unit identities.
var unitSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://fillmore-labs.com/rulecheck/unit"))

// Unit is a single Go source file of a [Workspace].
type Unit struct {
	id        uuid.UUID
	name      string
	namespace string
	pkg       string
	text      string
}

func newUnit(namespace, name, pkg, text string) *Unit {
	u := &Unit{name: name, namespace: namespace, pkg: pkg, text: text}
	u.id = uuid.NewSHA1(unitSpace, []byte(u.Path()+"\x00"+text))

	return u
}

// withText returns a copy of the unit with a different text and a new identity.
func (u *Unit) withText(text string) *Unit {
	return newUnit(u.namespace, u.name, u.pkg, text)
}

// ID is derived from the path and content of the unit.
func (u *Unit) ID() uuid.UUID { return u.id }

// Name is the file name, like "C1.go".
func (u *Unit) Name() string { return u.name }

// Namespace is the import path of the package containing the unit.
func (u *Unit) Namespace() string { return u.namespace }

// Package is the declared package name.
func (u *Unit) Package() string { return u.pkg }

// Text is the source text.
func (u *Unit) Text() string { return u.text }

// Path is the slash-separated location of the unit in the workspace, "<namespace>/<name>".
func (u *Unit) Path() string { return u.namespace + "/" + u.name }

// LogValue implements [slog.LogValuer].
func (u *Unit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", u.Path()),
		slog.String("id", u.id.String()),
	)
}
