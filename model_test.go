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

package diffview_test

import (
	"testing"

	"github.com/gitviewer/diffview"
)

func TestRowKind(t *testing.T) {
	unchanged := func(i int, text string) *diffview.SideLine {
		return &diffview.SideLine{
			LineIndex: i,
			Text:      text,
			Segments:  []diffview.Segment{{Kind: diffview.SegmentUnchanged, Text: text}},
		}
	}

	tests := []struct {
		name string
		row  diffview.Row
		want diffview.RowKind
	}{
		{
			name: "unchanged",
			row:  diffview.Row{Old: unchanged(0, "a"), New: unchanged(0, "a")},
			want: diffview.RowUnchanged,
		},
		{
			name: "removed",
			row: diffview.Row{
				Old: &diffview.SideLine{
					LineIndex: 0,
					Text:      "a",
					Segments:  []diffview.Segment{{Kind: diffview.SegmentRemoved, Text: "a"}},
				},
			},
			want: diffview.RowRemoved,
		},
		{
			name: "added",
			row: diffview.Row{
				New: &diffview.SideLine{
					LineIndex: 0,
					Text:      "a",
					Segments:  []diffview.Segment{{Kind: diffview.SegmentAdded, Text: "a"}},
				},
			},
			want: diffview.RowAdded,
		},
		{
			name: "modified-by-segment-kind",
			row: diffview.Row{
				Old: &diffview.SideLine{
					LineIndex: 0,
					Text:      "ab",
					Segments: []diffview.Segment{
						{Kind: diffview.SegmentUnchanged, Text: "a"},
						{Kind: diffview.SegmentRemoved, Text: "b"},
					},
				},
				New: unchanged(0, "a"),
			},
			want: diffview.RowModified,
		},
		{
			name: "both-absent",
			row:  diffview.Row{},
			want: diffview.RowUnchanged,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindStrings(t *testing.T) {
	if got, want := diffview.RowModified.String(), "RowModified"; got != want {
		t.Errorf("RowModified.String() = %q, want %q", got, want)
	}
	if got, want := diffview.SegmentAdded.String(), "SegmentAdded"; got != want {
		t.Errorf("SegmentAdded.String() = %q, want %q", got, want)
	}
	if got, want := diffview.SegmentKind(42).String(), "SegmentKind(42)"; got != want {
		t.Errorf("SegmentKind(42).String() = %q, want %q", got, want)
	}
}
