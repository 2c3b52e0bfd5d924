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

package engine

import (
	"cmp"
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"go/types"
)

// Severity of a compiler [Diagnostic].
type Severity uint8

const (
	// Warning is a problem that does not prevent type checking, like an unused variable.
	Warning Severity = iota

	// Error makes a package ill-typed.
	Error
)

// String implements [fmt.Stringer].
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"

	case Error:
		return "error"

	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// Diagnostic is a parse or type checking problem.
type Diagnostic struct {
	Path         string
	Offset       int
	Line, Column int
	Severity     Severity
	Message      string
}

// String renders the diagnostic like the go command does.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Path, d.Line, d.Column, d.Severity, d.Message)
}

func compareDiagnostics(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Offset, b.Offset),
		cmp.Compare(a.Message, b.Message),
	)
}

func diagnosticAt(pos token.Position, severity Severity, msg string) Diagnostic {
	return Diagnostic{
		Path:     pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
		Severity: severity,
		Message:  msg,
	}
}

// parseDiagnostics converts errors returned by the parser.
func parseDiagnostics(err error) []Diagnostic {
	if err == nil {
		return nil
	}

	var list scanner.ErrorList
	if !errors.As(err, &list) {
		return []Diagnostic{{Severity: Error, Message: err.Error()}}
	}

	ds := make([]Diagnostic, 0, len(list))
	for _, e := range list {
		ds = append(ds, diagnosticAt(e.Pos, Error, e.Msg))
	}

	return ds
}

// typeDiagnostic converts an error reported by the type checker.
func typeDiagnostic(err error) Diagnostic {
	var terr types.Error
	if !errors.As(err, &terr) {
		return Diagnostic{Severity: Error, Message: err.Error()}
	}

	severity := Error
	if terr.Soft {
		severity = Warning
	}

	return diagnosticAt(terr.Fset.Position(terr.Pos), severity, terr.Msg)
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}

	return false
}
