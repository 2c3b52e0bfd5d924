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
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is returned when the verification request itself is invalid.
	ErrPrecondition = errors.New("verification precondition failed")

	// ErrMismatch is returned when expected and actual findings differ.
	ErrMismatch = errors.New("findings do not match")

	// ErrRule is returned when the rule fails to run.
	ErrRule = errors.New("rule failed")

	// ErrFix is returned when a fix can't be applied as requested.
	ErrFix = errors.New("fix failed")

	// ErrCompiler is returned for compiler diagnostics exceeding the allowed level.
	ErrCompiler = errors.New("unexpected compiler diagnostics")

	// ErrText is returned when fixed or compared text differs from the expected text.
	ErrText = errors.New("text does not match")
)

// Error is a failed verification with a human-readable report.
type Error struct {
	// Kind is one of the sentinel errors of this package.
	Kind error

	// Report describes the failure.
	Report string

	cause error
}

func newError(kind, cause error, format string, a ...any) *Error {
	return &Error{Kind: kind, Report: fmt.Sprintf(format, a...), cause: cause}
}

func precondition(cause error) *Error {
	return &Error{Kind: ErrPrecondition, Report: cause.Error(), cause: cause}
}

// Error returns the report.
func (e *Error) Error() string { return e.Report }

// Unwrap returns the kind and the underlying cause, if any.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.cause}
}

// withHeader prefixes the report of a verification error.
func withHeader(err error, header string) error {
	var e *Error
	if !errors.As(err, &e) {
		return fmt.Errorf("%s: %w", header, err)
	}

	return &Error{Kind: e.Kind, Report: header + "\n" + e.Report, cause: e.cause}
}
