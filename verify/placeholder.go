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

import (
	"errors"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/rulecheck/internal/match"
	"fillmore-labs.com/rulecheck/rule"
)

const placeholderName = "placeholder"

const placeholderDoc = `placeholder reports findings at the expected positions

The placeholder rule verifies fixes independent of the rule that reports the findings.`

var (
	errUnbound              = errors.New("placeholder rule used outside of a verification")
	errPlaceholderIterative = errors.New("placeholder rule reports the same findings after fixing and can't verify fix-all")
)

// Placeholder returns a rule reporting a finding of kind exactly at each expected position.
//
// It is meant for [Verifier.CodeFix] and [Verifier.NoFix] when the fix under verification
// has no rule of its own.
func Placeholder(kind string) *rule.Rule {
	a := &analysis.Analyzer{
		Name: placeholderName,
		Doc:  placeholderDoc,
		Run:  func(*analysis.Pass) (any, error) { return nil, errUnbound },
	}

	return rule.New(a, kind)
}

// isPlaceholder reports whether r was created by [Placeholder].
func isPlaceholder(r *rule.Rule) bool {
	a := r.Analyzer()

	return a != nil && a.Name == placeholderName && a.Doc == placeholderDoc
}

// bind returns the rule to run for the expected findings. A placeholder rule is
// replaced by one reporting exactly the positioned expectations.
func (rn *run) bind(expected []match.Expected) *rule.Rule {
	if !isPlaceholder(rn.rule) {
		return rn.rule
	}

	kind, err := rn.rule.SoleKind()
	if err != nil {
		return rn.rule
	}

	a := &analysis.Analyzer{
		Name: placeholderName,
		Doc:  placeholderDoc,
		Run: func(p *analysis.Pass) (any, error) {
			reportExpected(p, kind, expected)

			return nil, nil
		},
	}

	return rule.New(a, kind)
}

func reportExpected(p *analysis.Pass, kind string, expected []match.Expected) {
	for _, f := range p.Files {
		tf := p.Fset.File(f.FileStart)
		if tf == nil {
			continue
		}

		for _, e := range expected {
			if !e.Positioned || e.Path != tf.Name() || e.Offset > tf.Size() {
				continue
			}

			msg := e.Message
			if msg == "" {
				msg = "placeholder finding"
			}

			p.Report(analysis.Diagnostic{Pos: tf.Pos(e.Offset), Category: kind, Message: msg})
		}
	}
}
