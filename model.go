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

// SegmentKind classifies a segment of a line's text.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=SegmentKind,RowKind -output=kind_string.go
type SegmentKind int

const (
	SegmentUnchanged SegmentKind = iota // The text is present on both sides
	SegmentAdded                        // The text is only present on the new side
	SegmentRemoved                      // The text is only present on the old side
)

// A Segment is a contiguous sub-span of a line's text tagged with a kind.
//
// The segments of a [SideLine] partition its text exactly: concatenating their texts reproduces
// the line. Adjacent segments never share a kind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// A SideLine is one side of a [Row]: a single line of the old or new document.
type SideLine struct {
	// LineIndex is the 0-based index of the line in its side's document.
	LineIndex int

	// Text is the full original line text, including any whitespace, even when the diff was
	// computed with [IgnoreWhitespace].
	Text string

	// Segments partition Text for character-level highlighting.
	Segments []Segment
}

// RowKind classifies a row. It is derived from the row's sides, not stored.
type RowKind int

const (
	RowUnchanged RowKind = iota // Both sides present and unchanged
	RowAdded                    // Only the new side is present
	RowRemoved                  // Only the old side is present
	RowModified                 // Both sides present with changed segments
)

// A Row is one aligned unit of comparison, pairing at most one old line and at most one new line.
type Row struct {
	Old *SideLine
	New *SideLine
}

// Kind derives the row's kind from which sides are present and their segments.
func (r Row) Kind() RowKind {
	switch {
	case r.Old != nil && r.New != nil:
		if len(r.Old.Segments) == 1 && len(r.New.Segments) == 1 &&
			r.Old.Segments[0].Kind == SegmentUnchanged &&
			r.New.Segments[0].Kind == SegmentUnchanged {
			return RowUnchanged
		}
		return RowModified
	case r.Old != nil:
		return RowRemoved
	case r.New != nil:
		return RowAdded
	default:
		return RowUnchanged
	}
}

// A Hunk is a contiguous, context-bounded group of rows covering one or more nearby changes,
// analogous to a unified-diff "@@" block.
//
// OldStart and NewStart are 0-based line indices into the respective documents. OldLen and NewLen
// count the distinct line indices referenced by Rows on that side. A side with no lines present
// in any row reports start 0 and length 0; renderers key off this for pure-insert and pure-delete
// hunks.
type Hunk struct {
	OldStart int
	OldLen   int
	NewStart int
	NewLen   int
	Rows     []Row
}

// A Model is the result of comparing two documents. The zero value is the empty model.
type Model struct {
	Hunks []Hunk
}
