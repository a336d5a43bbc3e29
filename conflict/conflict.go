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

// Package conflict parses Git conflict-marker regions out of raw text.
//
// [Parse] scans a text for "<<<<<<<", "|||||||", "=======" and ">>>>>>>" marker lines and returns
// the byte ranges of each complete conflict, leaving slicing and rendering to the caller. A second
// "<<<<<<<" before the closing ">>>>>>>" restarts tracking, so nested conflict markers resolve to
// the innermost region. Unterminated conflicts are never reported.
package conflict

import "strings"

const (
	markerOurs   = "<<<<<<< "
	markerBase   = "||||||| "
	markerSplit  = "======="
	markerTheirs = ">>>>>>> "
)

// Default branch names used when a marker line carries no label.
const (
	DefaultOursBranch   = "HEAD"
	DefaultTheirsBranch = "Origin"
)

// A Span is a half-open byte range into the text a region was parsed from. It is only valid
// against that exact text.
type Span struct {
	Start, End int
}

// Slice returns the part of text the span covers.
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

// A Region is one complete conflict: the overall marker-to-marker span and the content ranges
// between the markers.
type Region struct {
	// OursBranch is the label on the "<<<<<<<" line, or DefaultOursBranch if it has none.
	OursBranch string

	// TheirsBranch is the label on the ">>>>>>>" line, or DefaultTheirsBranch if it has none.
	TheirsBranch string

	// Range spans from the start of the "<<<<<<<" line to the end of the ">>>>>>>" line,
	// including its trailing newline when present.
	Range Span

	// Ours and Theirs span the content between the markers, excluding the marker lines
	// themselves.
	Ours   Span
	Theirs Span

	// Base spans the content between "|||||||" and "=======", or is nil when the conflict has
	// no base section.
	Base *Span
}

// tracker holds the scan state for the conflict currently being assembled. Offsets use -1 for
// "not seen yet"; a second "<<<<<<<" overwrites the start offsets, which is what makes nested
// conflicts resolve to the innermost block.
type tracker struct {
	conflictStart int
	oursStart     int
	oursEnd       int
	baseStart     int
	baseEnd       int
	theirsStart   int
	oursBranch    string
	theirsBranch  string
}

func (t *tracker) reset() {
	t.conflictStart = -1
	t.oursStart = -1
	t.oursEnd = -1
	t.baseStart = -1
	t.baseEnd = -1
	t.theirsStart = -1
	t.oursBranch = ""
	t.theirsBranch = ""
}

// Parse scans text for Git conflict markers and returns all complete conflict regions in order.
//
// The scan is a single forward pass over terminator-delimited lines; the last line is processed
// even without a trailing newline. A trailing '\r' is stripped from each line for marker matching
// only, it never affects the returned byte ranges. Text without conflict markers yields nil.
func Parse(text string) []Region {
	var regions []Region

	var t tracker
	t.reset()

	for lineStart := 0; lineStart <= len(text); {
		lineEnd := lineStart
		for lineEnd < len(text) && text[lineEnd] != '\n' {
			lineEnd++
		}

		line := strings.TrimSuffix(text[lineStart:lineEnd], "\r")

		next := lineEnd
		if lineEnd < len(text) {
			next++ // consume the newline
		}

		switch {
		case strings.HasPrefix(line, markerOurs):
			t.conflictStart = lineStart
			t.oursStart = next
			if name := strings.TrimSpace(line[len(markerOurs):]); name != "" {
				t.oursBranch = name
			}

		case strings.HasPrefix(line, markerBase) && t.conflictStart >= 0 && t.oursStart >= 0:
			t.oursEnd = lineStart
			t.baseStart = next

		case strings.HasPrefix(line, markerSplit) && t.conflictStart >= 0 && t.oursStart >= 0:
			if t.oursEnd < 0 {
				t.oursEnd = lineStart
			} else if t.baseStart >= 0 {
				t.baseEnd = lineStart
			}
			t.theirsStart = next

		case strings.HasPrefix(line, markerTheirs) &&
			t.conflictStart >= 0 && t.oursStart >= 0 && t.oursEnd >= 0 && t.theirsStart >= 0:
			if name := strings.TrimSpace(line[len(markerTheirs):]); name != "" {
				t.theirsBranch = name
			}

			region := Region{
				OursBranch:   t.oursBranch,
				TheirsBranch: t.theirsBranch,
				Range:        Span{Start: t.conflictStart, End: min(next, len(text))},
				Ours:         Span{Start: t.oursStart, End: t.oursEnd},
				Theirs:       Span{Start: t.theirsStart, End: lineStart},
			}
			if region.OursBranch == "" {
				region.OursBranch = DefaultOursBranch
			}
			if region.TheirsBranch == "" {
				region.TheirsBranch = DefaultTheirsBranch
			}
			if t.baseStart >= 0 && t.baseEnd >= 0 {
				region.Base = &Span{Start: t.baseStart, End: t.baseEnd}
			}
			regions = append(regions, region)
			t.reset()
		}

		lineStart = next
		if lineStart == len(text) {
			break
		}
	}

	return regions
}
