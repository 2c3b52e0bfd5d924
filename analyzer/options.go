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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/rulecheck/internal/config"
)

// Option configures specific behavior of a [New] rulecheck analyzer.
type Option interface {
	apply(r *runOptions)
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

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSourceName is an [Option] to configure whether source constant names are checked.
func WithSourceName(sourceName bool) Option { return sourceNameOption{sourceName: sourceName} }

type sourceNameOption struct{ sourceName bool }

func (o sourceNameOption) apply(r *runOptions) {
	r.analyzers.Set(config.SourceNameAnalyzer, o.sourceName)
}

func (o sourceNameOption) LogAttr() slog.Attr {
	return slog.Bool("source-name", o.sourceName)
}

// WithMarker is an [Option] to configure whether markers of verification calls are checked.
func WithMarker(marker bool) Option { return markerOption{marker: marker} }

type markerOption struct{ marker bool }

func (o markerOption) apply(r *runOptions) {
	r.analyzers.Set(config.MarkerAnalyzer, o.marker)
}

func (o markerOption) LogAttr() slog.Attr {
	return slog.Bool("marker", o.marker)
}

// WithRename is an [Option] to configure suggested renames of source constants.
func WithRename(rename bool) Option { return renameOption{rename: rename} }

type renameOption struct{ rename bool }

func (o renameOption) apply(r *runOptions) {
	r.behavior.Set(config.SuggestRename, o.rename)
}

func (o renameOption) LogAttr() slog.Attr {
	return slog.Bool("rename", o.rename)
}

// WithVerifyPackage is an [Option] to configure the import path of the verification harness.
func WithVerifyPackage(path string) Option { return verifyPackageOption{path: path} }

type verifyPackageOption struct{ path string }

func (o verifyPackageOption) apply(r *runOptions) {
	r.verifyPackage = o.path
}

func (o verifyPackageOption) LogAttr() slog.Attr {
	return slog.String("verify-package", o.path)
}
