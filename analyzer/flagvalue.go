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
	"strconv"
	"strings"

	"fillmore-labs.com/rulecheck/internal/config"
)

// bitFlag is a boolean [flag.Value] switching a single flag of a [config.BitMask].
type bitFlag[T config.Bits] struct {
	mask *config.BitMask[T]
	bit  T
}

func newBitFlag[T config.Bits](mask *config.BitMask[T], bit T) bitFlag[T] {
	return bitFlag[T]{mask: mask, bit: bit}
}

// Set implements [flag.Value].
func (f bitFlag[T]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.mask.Set(f.bit, b)

	return nil
}

// String implements [flag.Value].
func (f bitFlag[T]) String() string {
	return strconv.FormatBool(f.enabled())
}

// Get implements [flag.Getter].
func (f bitFlag[T]) Get() any { return f.enabled() }

// IsBoolFlag marks the flag as usable without a value.
func (bitFlag[T]) IsBoolFlag() bool { return true }

// enabled is false for the zero value, which [flag.FlagSet.PrintDefaults] creates.
func (f bitFlag[T]) enabled() bool {
	return f.mask != nil && f.mask.Enabled(f.bit)
}

// parseBool accepts the values of [strconv.ParseBool] and on/off, yes/no in any case.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil

	case "off", "no":
		return false, nil
	}

	return strconv.ParseBool(s)
}
