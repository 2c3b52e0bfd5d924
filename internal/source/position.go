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

package source

import "strings"

// LinePosition is a resolved offset in a text.
type LinePosition struct {
	Line, Column int    // 1-based, column counted in bytes
	Start        int    // offset of the first byte of the line
	Text         string // the line without its line terminator
}

// Position resolves a byte offset in text. Offsets outside the text are clamped.
func Position(text string, offset int) LinePosition {
	offset = max(0, min(offset, len(text)))

	start := strings.LastIndexByte(text[:offset], '\n') + 1

	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += offset
	}

	return LinePosition{
		Line:   strings.Count(text[:start], "\n") + 1,
		Column: offset - start + 1,
		Start:  start,
		Text:   strings.TrimRight(text[start:end], "\r"),
	}
}

// Offset is the inverse of [Position]. It reports false when the line or column lies outside the text.
func Offset(text string, line, column int) (int, bool) {
	if line < 1 || column < 1 {
		return 0, false
	}

	start := 0
	for range line - 1 {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			return 0, false
		}

		start += i + 1
	}

	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		end = len(text) - start
	}

	if column-1 > end {
		return 0, false
	}

	return start + column - 1, true
}
