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

// Package rule describes the rules and fixes under verification.
//
// A [Rule] is an [analysis.Analyzer] together with the finding kinds it declares.
// The kind of a reported [analysis.Diagnostic] is its Category, or the sole
// declared kind of the rule when the category is empty.
package rule

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrNoAnalyzer is returned for a rule without analyzer.
	ErrNoAnalyzer = errors.New("rule has no analyzer")

	// ErrDuplicateKind is returned when a rule declares a finding kind more than once.
	ErrDuplicateKind = errors.New("rule declares duplicate finding kinds")

	// ErrAmbiguousKind is returned when a finding kind is needed, but the rule declares several.
	ErrAmbiguousKind = errors.New("rule declares more than one finding kind")

	// ErrUnsupportedKind is returned when the rule does not declare an expected kind.
	ErrUnsupportedKind = errors.New("rule does not produce a finding with kind")
)

// Rule is an analyzer with its declared finding kinds.
type Rule struct {
	analyzer *analysis.Analyzer
	kinds    []string
}

// New creates a [Rule]. Without kinds, the analyzer name is the only kind.
func New(a *analysis.Analyzer, kinds ...string) *Rule {
	return &Rule{analyzer: a, kinds: kinds}
}

// Analyzer returns the analyzer of this rule.
func (r *Rule) Analyzer() *analysis.Analyzer { return r.analyzer }

// Name is the analyzer name.
func (r *Rule) Name() string {
	if r.analyzer == nil {
		return "<nil>"
	}

	return r.analyzer.Name
}

// Kinds returns the declared finding kinds.
func (r *Rule) Kinds() []string {
	if len(r.kinds) == 0 && r.analyzer != nil {
		return []string{r.analyzer.Name}
	}

	return slices.Clone(r.kinds)
}

// Supports reports whether the rule declares the given kind.
func (r *Rule) Supports(kind string) bool { return slices.Contains(r.Kinds(), kind) }

// SoleKind returns the only declared kind.
func (r *Rule) SoleKind() (string, error) {
	kinds := r.Kinds()
	if len(kinds) != 1 {
		return "", fmt.Errorf("%w: %s declares %s", ErrAmbiguousKind, r.Name(), strings.Join(kinds, ", "))
	}

	return kinds[0], nil
}

// Validate checks the analyzer and the declared kinds.
func (r *Rule) Validate() error {
	if r.analyzer == nil {
		return ErrNoAnalyzer
	}

	if err := analysis.Validate([]*analysis.Analyzer{r.analyzer}); err != nil {
		return fmt.Errorf("invalid analyzer %s: %w", r.Name(), err)
	}

	seen := make(map[string]struct{}, len(r.kinds))
	for _, k := range r.kinds {
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: %s declares %q twice", ErrDuplicateKind, r.Name(), k)
		}

		seen[k] = struct{}{}
	}

	return nil
}

// CheckSupported returns [ErrUnsupportedKind] unless every kind is declared by the rule.
func (r *Rule) CheckSupported(kinds ...string) error {
	for _, k := range kinds {
		if !r.Supports(k) {
			return fmt.Errorf("%w %q, declared: %s", ErrUnsupportedKind, k, strings.Join(r.Kinds(), ", "))
		}
	}

	return nil
}

// KindOf returns the finding kind of a diagnostic reported by this rule.
func (r *Rule) KindOf(d analysis.Diagnostic) string {
	if d.Category != "" {
		return d.Category
	}

	if k, err := r.SoleKind(); err == nil {
		return k
	}

	return r.Name()
}
