// Copyright 2026 The Diffview Authors
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

package diffview

import "strings"

// A Document is an immutable ordered sequence of lines derived from a text.
//
// Lines are split on '\n' and never include their terminator; a trailing '\r' is stripped from
// each line. A text ending in '\n' does not contribute a trailing empty line, and the empty text
// has zero lines.
type Document struct {
	text  string
	lines []string
}

// NewDocument creates a document from text.
func NewDocument(text string) *Document {
	return &Document{
		text:  text,
		lines: documentLines(text),
	}
}

func documentLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// IsEmpty reports whether the document contains no text.
func (d *Document) IsEmpty() bool {
	return len(d.text) == 0
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at index and whether the index is in range.
func (d *Document) Line(index int) (string, bool) {
	if index < 0 || index >= len(d.lines) {
		return "", false
	}
	return d.lines[index], true
}

// Lines returns the document's lines. The returned slice is shared; callers must not modify it.
func (d *Document) Lines() []string {
	return d.lines
}

// String returns the original text the document was created from.
func (d *Document) String() string {
	return d.text
}

// SplitLines splits text on '\n' without any further processing: each returned line excludes its
// own '\n', a trailing '\r' is kept, the empty text yields a single empty line, and a text ending
// in '\n' yields a trailing empty line. This mirrors strings.Split and is what display layers
// want when they need to address every terminator-delimited segment of a raw text.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}
