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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/rulecheck/rule"
	"fillmore-labs.com/rulecheck/verify/level"
)

// EnvFile is the environment variable naming the settings file.
const EnvFile = "RULECHECK_CONFIG"

// File holds the verifier defaults read from a settings file.
type File struct {
	GoVersion     string        `yaml:"go-version"`
	Suppressed    []string      `yaml:"suppressed"`
	Allowed       level.Allowed `yaml:"allowed"`
	Scopes        []rule.Scope  `yaml:"scopes"`
	SingleProject bool          `yaml:"single-project"`
	UnifiedDiff   bool          `yaml:"unified-diff"`
	Sequential    bool          `yaml:"sequential"`
}

// Behavior returns the toggles set in the file.
func (f File) Behavior() BitMask[Behavior] {
	var b BitMask[Behavior]
	b.Set(SingleProject, f.SingleProject)
	b.Set(UnifiedDiff, f.UnifiedDiff)
	b.Set(Sequential, f.Sequential)

	return b
}

// Parse decodes settings. Unknown keys are an error, an empty document yields zero settings.
func Parse(data []byte) (File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("can't parse settings: %w", err)
	}

	return f, nil
}

// Load reads the settings file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("can't read settings: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// FromEnv loads the settings file named by [EnvFile]. It reports false when the variable is unset.
func FromEnv() (File, bool, error) {
	path, ok := os.LookupEnv(EnvFile)
	if !ok || path == "" {
		return File{}, false, nil
	}

	f, err := Load(path)

	return f, true, err
}
