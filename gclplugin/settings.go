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

package gclplugin

import rulecheck "fillmore-labs.com/rulecheck/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// SourceName enables source constant name checks.
	SourceName *bool `json:"source-name,omitzero"`
	// Marker enables marker consistency checks of verification calls.
	Marker *bool `json:"marker,omitzero"`
	// Rename enables renaming of source constants.
	Rename *bool `json:"rename,omitzero"`
	// VerifyPackage sets the import path of the verification harness.
	VerifyPackage *string `json:"verify-package,omitzero"`
}

// Options converts [Settings] into a list of [rulecheck.Option] for the rulecheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []rulecheck.Option {
	var opts []rulecheck.Option

	opts = appendOption(opts, s.SourceName, rulecheck.WithSourceName)
	opts = appendOption(opts, s.Marker, rulecheck.WithMarker)
	opts = appendOption(opts, s.Rename, rulecheck.WithRename)
	opts = appendOption(opts, s.VerifyPackage, rulecheck.WithVerifyPackage)

	return opts
}

// appendOption appends a non-nil setting to a [rulecheck.Option] list.
func appendOption[T any](opts []rulecheck.Option, value *T, constructor func(T) rulecheck.Option) []rulecheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
