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

import "fillmore-labs.com/rulecheck/internal/config"

// DefaultVerifyPackage is the import path of the verification harness.
const DefaultVerifyPackage = "fillmore-labs.com/rulecheck/verify"

// runOptions represent configuration options for the rulecheck analyzer.
type runOptions struct {
	// analyzers represents the checks to be enabled.
	analyzers config.BitMask[config.AnalyzerFlags]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Config]

	// verifyPackage is the import path of the harness whose calls are checked.
	verifyPackage string
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		analyzers:     config.NewBitMask(config.SourceNameAnalyzer | config.MarkerAnalyzer),
		behavior:      config.NewBitMask(config.SuggestRename),
		verifyPackage: DefaultVerifyPackage,
	}
}
