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
Package workspace builds immutable in-memory Go workspaces from raw source texts.

# Units, Projects and Workspaces

Every source text becomes a [Unit]: one Go file named after its primary type,
located in the package directory given by its import path. The import path is
taken from a canonical import comment on the package clause,

	package core // import "sandbox/core"

or is the package name when no such comment exists.

Units are grouped into [Project]s, which correspond to Go modules. A package
whose import path lies below the import path of another package present in the
workspace belongs to the same project; all other packages start a project of
their own, named after their import path.

# Dependencies

A project depends on another when one of its units imports a package of the
other project, or uses a qualified identifier whose qualifier is the name of a
package in the other project. Only direct dependencies are recorded, a project
never depends on itself, and a dependency that would close a cycle is dropped.

# Immutability

A [Workspace] is never modified. [Workspace.Apply] returns a new workspace with
the edited unit texts, sharing everything else.
*/
package workspace
