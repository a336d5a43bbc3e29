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

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gitviewer/diffview/internal/config"
)

// Diff compares old and new line by line and groups the changes into hunks with surrounding
// context.
//
// Lines are matched using a line-level sequence diff. For blocks where a run of old lines is
// replaced by a run of new lines, a secondary pass decides between a one-to-one shape-preserving
// replace, emitted as paired rows with character-level segments, and a genuine reflow with no
// useful line correspondence, emitted as index-aligned rows without further analysis.
//
// If old and new are identical, the returned model has zero hunks.
//
// The following options are supported: [Context], [IgnoreWhitespace]
func Diff(old, new *Document, opts ...Option) Model {
	cfg := config.FromOptions(opts)

	oldLines := old.Lines()
	newLines := new.Lines()
	oldKeys := matchingKeys(oldLines, cfg.IgnoreWhitespace)
	newKeys := matchingKeys(newLines, cfg.IgnoreWhitespace)

	matcher := difflib.NewMatcherWithJunk(oldKeys, newKeys, false, nil)

	var hunks []Hunk
	for _, group := range matcher.GetGroupedOpCodes(cfg.Context) {
		var rows []Row
		for _, op := range group {
			rows = append(rows, rowsForOp(op, oldLines, newLines, oldKeys, newKeys)...)
		}
		if len(rows) == 0 {
			continue
		}

		oldStart, oldLen := sideRange(rows, func(r Row) *SideLine { return r.Old })
		newStart, newLen := sideRange(rows, func(r Row) *SideLine { return r.New })

		hunks = append(hunks, Hunk{
			OldStart: oldStart,
			OldLen:   oldLen,
			NewStart: newStart,
			NewLen:   newLen,
			Rows:     rows,
		})
	}
	return Model{Hunks: hunks}
}

// matchingKeys returns the strings actually compared for equality during diffing. Unless
// whitespace is ignored, these are the lines themselves.
func matchingKeys(lines []string, ignoreWhitespace bool) []string {
	if !ignoreWhitespace {
		return lines
	}
	keys := make([]string, len(lines))
	for i, line := range lines {
		keys[i] = stripWhitespace(line)
	}
	return keys
}

func stripWhitespace(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}

func rowsForOp(op difflib.OpCode, oldLines, newLines, oldKeys, newKeys []string) []Row {
	var rows []Row
	switch op.Tag {
	case 'e':
		for i, j := op.I1, op.J1; i < op.I2 && j < op.J2; i, j = i+1, j+1 {
			oldText, okOld := lineAt(oldLines, i)
			newText, okNew := lineAt(newLines, j)
			if !okOld || !okNew {
				continue
			}
			rows = append(rows, Row{
				Old: wholeLine(i, oldText, SegmentUnchanged),
				New: wholeLine(j, newText, SegmentUnchanged),
			})
		}
	case 'd':
		for i := op.I1; i < op.I2; i++ {
			text, ok := lineAt(oldLines, i)
			if !ok {
				continue
			}
			rows = append(rows, Row{Old: wholeLine(i, text, SegmentRemoved)})
		}
	case 'i':
		for j := op.J1; j < op.J2; j++ {
			text, ok := lineAt(newLines, j)
			if !ok {
				continue
			}
			rows = append(rows, Row{New: wholeLine(j, text, SegmentAdded)})
		}
	case 'r':
		rows = rowsForReplace(op, oldLines, newLines, oldKeys, newKeys)
	}
	return rows
}

// rowsForReplace handles a block of old lines replaced by a block of new lines. It re-diffs just
// the two blocks to decide how to pair their lines: if the inner diff collapses to a single
// whole-block replace and both blocks span more than one line, the blocks have no useful shape
// correspondence (a reflow) and the rows are paired by index directly. Otherwise the inner ops
// are emitted with their offsets shifted into document coordinates; a replace inside a replace is
// always resolved by index alignment, never by another inner diff.
func rowsForReplace(op difflib.OpCode, oldLines, newLines, oldKeys, newKeys []string) []Row {
	oldLen := op.I2 - op.I1
	newLen := op.J2 - op.J1
	if oldLen <= 0 || newLen <= 0 || op.I2 > len(oldKeys) || op.J2 > len(newKeys) {
		return rowsForReplaceByIndex(op.I1, max(0, oldLen), op.J1, max(0, newLen), oldLines, newLines)
	}

	inner := difflib.NewMatcherWithJunk(oldKeys[op.I1:op.I2], newKeys[op.J1:op.J2], false, nil).GetOpCodes()

	if len(inner) == 1 {
		in := inner[0]
		if in.Tag == 'r' && in.I2-in.I1 == oldLen && in.J2-in.J1 == newLen && oldLen > 1 && newLen > 1 {
			return rowsForReplaceByIndex(op.I1, oldLen, op.J1, newLen, oldLines, newLines)
		}
	}

	var rows []Row
	for _, in := range inner {
		rows = append(rows, rowsForInnerOp(in, op.I1, op.J1, oldLines, newLines)...)
	}
	return rows
}

func rowsForInnerOp(op difflib.OpCode, oldOffset, newOffset int, oldLines, newLines []string) []Row {
	var rows []Row
	switch op.Tag {
	case 'e':
		for i, j := op.I1, op.J1; i < op.I2 && j < op.J2; i, j = i+1, j+1 {
			oldIndex := oldOffset + i
			newIndex := newOffset + j
			oldText, okOld := lineAt(oldLines, oldIndex)
			newText, okNew := lineAt(newLines, newIndex)
			if !okOld || !okNew {
				continue
			}
			rows = append(rows, Row{
				Old: wholeLine(oldIndex, oldText, SegmentUnchanged),
				New: wholeLine(newIndex, newText, SegmentUnchanged),
			})
		}
	case 'd':
		for i := op.I1; i < op.I2; i++ {
			oldIndex := oldOffset + i
			text, ok := lineAt(oldLines, oldIndex)
			if !ok {
				continue
			}
			rows = append(rows, Row{Old: wholeLine(oldIndex, text, SegmentRemoved)})
		}
	case 'i':
		for j := op.J1; j < op.J2; j++ {
			newIndex := newOffset + j
			text, ok := lineAt(newLines, newIndex)
			if !ok {
				continue
			}
			rows = append(rows, Row{New: wholeLine(newIndex, text, SegmentAdded)})
		}
	case 'r':
		rows = rowsForReplaceByIndex(oldOffset+op.I1, op.I2-op.I1, newOffset+op.J1, op.J2-op.J1, oldLines, newLines)
	}
	return rows
}

// rowsForReplaceByIndex pairs a replaced block by line offset: max(oldLen, newLen) rows, where row
// i pairs old line oldStart+i with new line newStart+i as long as both sides still have lines.
// Paired rows carry character-level segments; leftover lines become whole-line removed or added
// rows.
func rowsForReplaceByIndex(oldStart, oldLen, newStart, newLen int, oldLines, newLines []string) []Row {
	rowLen := max(oldLen, newLen)
	rows := make([]Row, 0, rowLen)

	for offset := 0; offset < rowLen; offset++ {
		oldIndex := oldStart + offset
		newIndex := newStart + offset

		var oldText, newText string
		var haveOld, haveNew bool
		if offset < oldLen {
			oldText, haveOld = lineAt(oldLines, oldIndex)
		}
		if offset < newLen {
			newText, haveNew = lineAt(newLines, newIndex)
		}

		var row Row
		switch {
		case haveOld && haveNew:
			oldSegments, newSegments := intralineSegments(oldText, newText)
			row.Old = &SideLine{LineIndex: oldIndex, Text: oldText, Segments: oldSegments}
			row.New = &SideLine{LineIndex: newIndex, Text: newText, Segments: newSegments}
		case haveOld:
			row.Old = wholeLine(oldIndex, oldText, SegmentRemoved)
		case haveNew:
			row.New = wholeLine(newIndex, newText, SegmentAdded)
		}
		rows = append(rows, row)
	}
	return rows
}

// intralineSegments runs a character-level diff between two lines and converts its change stream
// into per-side segment lists. If a side ends up without segments (it shares no characters with
// the other side), it gets a single full-line removed or added segment so that every side line's
// segments cover its text.
func intralineSegments(oldText, newText string) (oldSegments, newSegments []Segment) {
	dmp := diffmatchpatch.New()
	for _, d := range dmp.DiffMain(oldText, newText, false) {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldSegments = appendSegment(oldSegments, SegmentUnchanged, d.Text)
			newSegments = appendSegment(newSegments, SegmentUnchanged, d.Text)
		case diffmatchpatch.DiffDelete:
			oldSegments = appendSegment(oldSegments, SegmentRemoved, d.Text)
		case diffmatchpatch.DiffInsert:
			newSegments = appendSegment(newSegments, SegmentAdded, d.Text)
		}
	}

	if len(oldSegments) == 0 {
		oldSegments = []Segment{{Kind: SegmentRemoved, Text: oldText}}
	}
	if len(newSegments) == 0 {
		newSegments = []Segment{{Kind: SegmentAdded, Text: newText}}
	}
	return oldSegments, newSegments
}

// appendSegment appends text with the given kind, merging into the previous segment when the kind
// matches. Empty texts are dropped.
func appendSegment(segments []Segment, kind SegmentKind, text string) []Segment {
	if text == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].Kind == kind {
		segments[n-1].Text += text
		return segments
	}
	return append(segments, Segment{Kind: kind, Text: text})
}

func wholeLine(index int, text string, kind SegmentKind) *SideLine {
	return &SideLine{
		LineIndex: index,
		Text:      text,
		Segments:  []Segment{{Kind: kind, Text: text}},
	}
}

func lineAt(lines []string, index int) (string, bool) {
	if index < 0 || index >= len(lines) {
		return "", false
	}
	return lines[index], true
}

// sideRange scans rows for the minimum and maximum line index present on one side and returns the
// side's start and length. A side with no lines present reports (0, 0).
func sideRange(rows []Row, side func(Row) *SideLine) (start, length int) {
	lo, hi := -1, -1
	for _, row := range rows {
		line := side(row)
		if line == nil {
			continue
		}
		if lo < 0 || line.LineIndex < lo {
			lo = line.LineIndex
		}
		if line.LineIndex > hi {
			hi = line.LineIndex
		}
	}
	if lo < 0 {
		return 0, 0
	}
	return lo, hi - lo + 1
}
