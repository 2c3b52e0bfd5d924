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

package level_test

import (
	"testing"

	. "fillmore-labs.com/rulecheck/verify/level"
)

func TestAllowedText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Allowed
	}{
		{"", AllowNone},
		{"Warnings", AllowWarnings},
		{"none", AllowNone},
		{"off", AllowNone},
		{"all", AllowAll},
		{"ERRORS", AllowAll},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var a Allowed
			if err := a.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText failed: %v", err)
			}

			if a != tt.want {
				t.Errorf("Got %v, want %v", a, tt.want)
			}

			text, err := a.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText failed: %v", err)
			}

			var b Allowed
			if err := b.UnmarshalText(text); err != nil || b != a {
				t.Errorf("Got %v (%v) after round trip, want %v", b, err, a)
			}
		})
	}
}

func TestAllowedInvalid(t *testing.T) {
	t.Parallel()

	var a Allowed
	if err := a.UnmarshalText([]byte("some")); err == nil {
		t.Error("Expected error for unknown level")
	}

	if _, err := Allowed(7).MarshalText(); err == nil {
		t.Error("Expected error for unknown value")
	}

	if got, want := Allowed(7).String(), "Allowed(7)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
