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
	"log/slog"

	"fillmore-labs.com/rulecheck/internal/config"
	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/verify/level"
)

// Option configures a verification.
type Option interface {
	apply(s *settings)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(s *settings) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(s)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithKind is an [Option] setting the finding kind expected at markers.
// Without it, the rule must declare a single kind.
func WithKind(kind string) Option { return kindOption{kind: kind} }

type kindOption struct{ kind string }

func (o kindOption) apply(s *settings) { s.kind = o.kind }

func (o kindOption) LogAttr() slog.Attr { return slog.String("kind", o.kind) }

// WithMessage is an [Option] setting the message expected at markers.
func WithMessage(message string) Option { return messageOption{message: message} }

type messageOption struct{ message string }

func (o messageOption) apply(s *settings) { s.message = o.message }

func (o messageOption) LogAttr() slog.Attr { return slog.String("message", o.message) }

// WithFixTitle is an [Option] selecting among several proposed transformations by title.
func WithFixTitle(title string) Option { return fixTitleOption{title: title} }

type fixTitleOption struct{ title string }

func (o fixTitleOption) apply(s *settings) { s.title = o.title }

func (o fixTitleOption) LogAttr() slog.Attr { return slog.String("fix-title", o.title) }

// WithExpected is an [Option] adding explicit expectations to those derived from markers.
func WithExpected(expected ...Expectation) Option { return expectedOption{expected: expected} }

type expectedOption struct{ expected []Expectation }

func (o expectedOption) apply(s *settings) { s.expected = append(s.expected, o.expected...) }

func (o expectedOption) LogAttr() slog.Attr {
	es := make([]string, 0, len(o.expected))
	for _, e := range o.expected {
		es = append(es, e.String())
	}

	return slog.Any("expected", es)
}

// WithAllowed is an [Option] setting the tolerated compiler diagnostics.
func WithAllowed(allowed level.Allowed) Option { return allowedOption{allowed: allowed} }

type allowedOption struct{ allowed level.Allowed }

func (o allowedOption) apply(s *settings) { s.allowed = o.allowed }

func (o allowedOption) LogAttr() slog.Attr { return slog.String("allowed", o.allowed.String()) }

// WithSuppressed is an [Option] dropping findings of the given kinds.
func WithSuppressed(kinds ...string) Option { return suppressedOption{kinds: kinds} }

type suppressedOption struct{ kinds []string }

func (o suppressedOption) apply(s *settings) { s.suppressed = append(s.suppressed, o.kinds...) }

func (o suppressedOption) LogAttr() slog.Attr { return slog.Any("suppressed", o.kinds) }

// WithGoVersion is an [Option] setting the language version for type checking.
func WithGoVersion(version string) Option { return goVersionOption{version: version} }

type goVersionOption struct{ version string }

func (o goVersionOption) apply(s *settings) { s.goVersion = o.version }

func (o goVersionOption) LogAttr() slog.Attr { return slog.String("go-version", o.version) }

// WithSingleProject is an [Option] placing all sources into one project.
func WithSingleProject(single bool) Option { return singleProjectOption{single: single} }

type singleProjectOption struct{ single bool }

func (o singleProjectOption) apply(s *settings) { s.behavior.Set(config.SingleProject, o.single) }

func (o singleProjectOption) LogAttr() slog.Attr { return slog.Bool("single-project", o.single) }

// WithUnifiedDiff is an [Option] appending a unified diff to multi-line text mismatches.
func WithUnifiedDiff(diff bool) Option { return unifiedDiffOption{diff: diff} }

type unifiedDiffOption struct{ diff bool }

func (o unifiedDiffOption) apply(s *settings) { s.behavior.Set(config.UnifiedDiff, o.diff) }

func (o unifiedDiffOption) LogAttr() slog.Attr { return slog.Bool("unified-diff", o.diff) }

// WithSequential is an [Option] disabling concurrent type checking and analysis.
func WithSequential(sequential bool) Option { return sequentialOption{sequential: sequential} }

type sequentialOption struct{ sequential bool }

func (o sequentialOption) apply(s *settings) { s.behavior.Set(config.Sequential, o.sequential) }

func (o sequentialOption) LogAttr() slog.Attr { return slog.Bool("sequential", o.sequential) }

// WithScopes is an [Option] restricting the bulk fix scopes verified by FixAll.
func WithScopes(scopes ...rule.Scope) Option { return scopesOption{scopes: scopes} }

type scopesOption struct{ scopes []rule.Scope }

func (o scopesOption) apply(s *settings) { s.scopes = o.scopes }

func (o scopesOption) LogAttr() slog.Attr {
	names := make([]string, 0, len(o.scopes))
	for _, sc := range o.scopes {
		names = append(names, sc.String())
	}

	return slog.Any("scopes", names)
}

// WithLogger is an [Option] setting the logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(s *settings) { s.logger = o.logger }

func (o loggerOption) LogAttr() slog.Attr { return slog.Bool("logger", o.logger != nil) }

// WithSettingsFile is an [Option] loading defaults from a YAML settings file.
// Options following it override the file.
func WithSettingsFile(path string) Option { return settingsFileOption{path: path} }

type settingsFileOption struct{ path string }

func (o settingsFileOption) apply(s *settings) {
	f, err := config.Load(o.path)
	if err != nil {
		s.err = err

		return
	}

	s.load(f)
}

func (o settingsFileOption) LogAttr() slog.Attr { return slog.String("settings", o.path) }
