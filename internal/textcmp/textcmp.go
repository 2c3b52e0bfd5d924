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

// Package textcmp compares source texts independent of line endings.
//
// Carriage returns are skipped on both sides independently, whether they
// appear as a literal '\r' or as the two-character escape `\r`.
package textcmp

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pmezard/go-difflib/difflib"

	"fillmore-labs.com/rulecheck/internal/source"
)

// Options configure the mismatch report.
type Options struct {
	// Header is the first line of the report, if not empty.
	Header string

	// UnifiedDiff appends a unified diff to reports of multi-line texts.
	UnifiedDiff bool
}

// MismatchError is returned by [Compare] for texts that differ.
type MismatchError struct {
	Line   int  // 1-based line of the mismatch
	Column int  // 0-based rune index of the first difference in the reported lines
	AtEnd  bool // one text ended before the other
	File   string

	report string
}

// Error returns the full report.
func (e *MismatchError) Error() string { return e.report }

const indent = "          " // len("Expected: ")

// Compare returns a [*MismatchError] when expected and actual differ in anything but line endings.
func Compare(expected, actual string, opts Options) error {
	e, a := []rune(expected), []rune(actual)

	ep, ap, line := 0, 0, 1

	for ep < len(e) && ap < len(a) {
		ec, ac := e[ep], a[ap]

		if ec == '\r' || ac == '\r' {
			if ec == '\r' {
				ep++
			}

			if ac == '\r' {
				ap++
			}

			continue
		}

		if ec != ac {
			ee, ae := escapedCR(e, ep), escapedCR(a, ap)
			if !ee && !ae {
				return lineMismatch(expected, actual, line, opts)
			}

			if ee {
				ep += 2
			}

			if ae {
				ap += 2
			}

			continue
		}

		if ec == '\n' {
			line++
		}

		ep++
		ap++
	}

	if skipCR(e, ep) == len(e) && skipCR(a, ap) == len(a) {
		return nil
	}

	return endMismatch(expected, actual, line, opts)
}

// escapedCR reports whether the two-character escape `\r` starts at pos.
func escapedCR(text []rune, pos int) bool {
	return pos+1 < len(text) && text[pos] == '\\' && text[pos+1] == 'r'
}

// skipCR advances over trailing carriage returns, literal or escaped.
func skipCR(text []rune, pos int) int {
	for pos < len(text) {
		switch {
		case text[pos] == '\r':
			pos++

		case escapedCR(text, pos):
			pos += 2

		default:
			return pos
		}
	}

	return pos
}

func lineMismatch(expected, actual string, line int, opts Options) error {
	expectedLine := lineAt(expected, line)
	actualLine := lineAt(actual, line)
	column := diffPos(expectedLine, actualLine)

	m := &MismatchError{Line: line, Column: column, File: fileName(expected)}

	var b strings.Builder

	writeHeader(&b, opts)

	multiLine := !isSingleLine(expected) || !isSingleLine(actual)
	if multiLine {
		if m.File != "" {
			b.WriteString("Mismatch on line " + strconv.Itoa(line) + " of file " + m.File + ".\n")
		} else {
			b.WriteString("Mismatch on line " + strconv.Itoa(line) + ".\n")
		}
	}

	writeLines(&b, expectedLine, actualLine, column)

	if multiLine {
		writeFull(&b, expected, actual, opts)
	}

	m.report = b.String()

	return m
}

func endMismatch(expected, actual string, line int, opts Options) error {
	expectedEnd, actualEnd := end(expected), end(actual)
	column := diffPos(expectedEnd, actualEnd)

	m := &MismatchError{Line: line, Column: column, AtEnd: true, File: fileName(expected)}

	var b strings.Builder

	writeHeader(&b, opts)

	if m.File != "" {
		b.WriteString("Mismatch at end of file " + m.File + ".\n")
	} else {
		b.WriteString("Mismatch at end.\n")
	}

	writeLines(&b, expectedEnd, actualEnd, column)

	if !isSingleLine(expected) || !isSingleLine(actual) {
		writeFull(&b, expected, actual, opts)
	}

	m.report = b.String()

	return m
}

func writeHeader(b *strings.Builder, opts Options) {
	if opts.Header != "" {
		b.WriteString(opts.Header)
		b.WriteByte('\n')
	}
}

func writeLines(b *strings.Builder, expectedLine, actualLine string, column int) {
	b.WriteString("Expected: " + expectedLine + "\n")
	b.WriteString("Actual:   " + actualLine + "\n")
	b.WriteString(indent + caretPadding(expectedLine, column) + "^\n")
}

func writeFull(b *strings.Builder, expected, actual string, opts Options) {
	b.WriteString("Expected:\n" + expected + "\n")
	b.WriteString("Actual:\n" + actual + "\n")

	if !opts.UnifiedDiff {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.ReplaceAll(expected, "\r", "")),
		B:        difflib.SplitLines(strings.ReplaceAll(actual, "\r", "")),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	}

	if text, err := difflib.GetUnifiedDiffString(diff); err == nil && text != "" {
		b.WriteString("Diff:\n" + text)
	}
}

// caretPadding returns the padding placing a caret below the rune at column,
// keeping tabs and accounting for wide characters.
func caretPadding(line string, column int) string {
	var b strings.Builder

	for i, r := range []rune(line) {
		if i >= column {
			break
		}

		if r == '\t' {
			b.WriteByte('\t')

			continue
		}

		b.WriteString(strings.Repeat(" ", max(1, runewidth.RuneWidth(r))))
	}

	return b.String()
}

// lineAt returns the 1-based line of text without carriage returns at either end.
func lineAt(text string, line int) string {
	for i := 1; i < line; i++ {
		_, rest, found := strings.Cut(text, "\n")
		if !found {
			return ""
		}

		text = rest
	}

	l, _, _ := strings.Cut(text, "\n")

	return strings.Trim(l, "\r")
}

// diffPos returns the index of the first differing rune, or the length of the shorter line.
func diffPos(expectedLine, actualLine string) int {
	e, a := []rune(expectedLine), []rune(actualLine)

	n := min(len(e), len(a))
	for i := range n {
		if e[i] != a[i] {
			return i
		}
	}

	return n
}

// end returns the last line of text with trailing line terminators escaped.
func end(text string) string {
	rs := []rune(text)

	var suffix strings.Builder

	i := len(rs) - 1
	for i >= 0 && (rs[i] == '\r' || rs[i] == '\n') {
		i--
	}

	for j := i + 1; j < len(rs); j++ {
		if rs[j] == '\r' {
			suffix.WriteString(`\r`)
		} else {
			suffix.WriteString(`\n`)
		}
	}

	start := i
	for start >= 0 && rs[start] != '\r' && rs[start] != '\n' {
		start--
	}

	return string(rs[start+1:i+1]) + suffix.String()
}

// isSingleLine reports whether text has no content after a line terminator.
func isSingleLine(text string) bool {
	return strings.TrimRight(text, "\r\n") == strings.TrimRight(firstLine(text), "\r\n")
}

func firstLine(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return text[:i]
	}

	return text
}

func fileName(text string) string {
	return source.Describe(text).FileName()
}
