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
	"flag"

	"fillmore-labs.com/rulecheck/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(newBitFlag(&r.analyzers, config.SourceNameAnalyzer),
		"source-name", "check that source constants are named after their primary type")
	flags.Var(newBitFlag(&r.analyzers, config.MarkerAnalyzer),
		"marker", "check that verification calls use markers consistently")
	flags.Var(newBitFlag(&r.behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(newBitFlag(&r.behavior, config.SuggestRename), "rename", "suggest renaming source constants")
	flags.StringVar(&r.verifyPackage, "verify-package", r.verifyPackage, "import path of the verification harness")
}
