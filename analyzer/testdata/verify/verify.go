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

package verify

import "testing"

type Rule struct{}

type Fix any

type Option any

type Expectation struct{ kind string }

func Expect(kind string) Expectation { return Expectation{kind: kind} }

func WithExpected(expected ...Expectation) Option { return expected }

func WithKind(kind string) Option { return kind }

func Valid(t testing.TB, r *Rule, sources []string, opts ...Option) {}

func Diagnostics(t testing.TB, r *Rule, sources []string, opts ...Option) {}

func CodeFix(t testing.TB, r *Rule, fix Fix, before, after []string, opts ...Option) {}

func FixAll(t testing.TB, r *Rule, fix Fix, before, after []string, opts ...Option) {}

func NoFix(t testing.TB, r *Rule, fix Fix, sources []string, opts ...Option) {}

func Equal(t testing.TB, expected, actual string, opts ...Option) {}
