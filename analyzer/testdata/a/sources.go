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

package a

const c1 = "package a\n\ntype C1 struct{}\n"

const before = "package a\n\ntype ↓C2 struct{}\n" // want "source constant before declares C2 and should be named after it"

const (
	C3Before = "package a\n\ntype C3 struct{}\n"
	After    = "package a\n\ntype C3 struct{}\n" // want "source constant After declares C3 and should be named after it"
)

const fun = "package a\n\nfunc F() {}\n" // want "source constant fun declares F and should be named after it"

const other = "package a\n\ntype C5 struct{}\n" // want "source constant other declares C5 and should be named after it"

var c5 = other

//nolint:rulecheck
const ignored = "package a\n\ntype C6 struct{}\n"

const trailing = "package a\n\ntype C7 struct{}\n" //nolint:rulecheck

const (
	text   = "just text"
	broken = "package a\n\ntype struct{}\n"
	number = 1
)

func local() string {
	const src = "package a\n\ntype C8 struct{}\n" // want "source constant src declares C8 and should be named after it"

	return src
}

func use() []string {
	return []string{c1, before, C3Before, After, fun, ignored, trailing, text, broken}
}
