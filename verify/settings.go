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
	"slices"
	"sync"

	"fillmore-labs.com/rulecheck/internal/config"
	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/verify/level"
	"fillmore-labs.com/rulecheck/workspace"
)

type settings struct {
	kind       string
	message    string
	title      string
	expected   []Expectation
	allowed    level.Allowed
	suppressed []string
	goVersion  string
	behavior   config.BitMask[config.Behavior]
	scopes     []rule.Scope
	logger     *slog.Logger
	err        error
}

// defaultSettings are read once from the file named by [config.EnvFile].
var defaultSettings = sync.OnceValue(func() settings {
	s := settings{scopes: rule.Scopes}

	f, ok, err := config.FromEnv()
	switch {
	case err != nil:
		s.err = err

	case ok:
		s.load(f)
	}

	return s
})

func newSettings(opts Options) settings {
	s := defaultSettings()

	s.expected = slices.Clone(s.expected)
	s.suppressed = slices.Clone(s.suppressed)
	s.scopes = slices.Clone(s.scopes)

	opts.apply(&s)

	return s
}

func (s *settings) load(f config.File) {
	s.goVersion = f.GoVersion
	s.suppressed = slices.Clone(f.Suppressed)
	s.allowed = f.Allowed
	s.behavior = f.Behavior()

	if len(f.Scopes) > 0 {
		s.scopes = slices.Clone(f.Scopes)
	}
}

func (s *settings) workspaceConfig() workspace.Config {
	return workspace.Config{
		GoVersion:  s.goVersion,
		Suppressed: s.suppressed,
		Logger:     s.logger,
	}
}

func (s *settings) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return s.logger
}
