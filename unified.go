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
	"fmt"
	"strings"
)

// Unified compares old and new and returns the changes in unified format: "@@ -l,n +l,n @@" hunk
// headers with 1-based line numbers, followed by ' ', '-' and '+' prefixed lines.
//
// Identical inputs produce the empty string.
//
// The following options are supported: [Context], [IgnoreWhitespace]
func Unified(old, new *Document, opts ...Option) string {
	return FormatUnified(Diff(old, new, opts...))
}

// FormatUnified renders a model in unified format. Within a run of consecutive changed rows, all
// old sides are emitted before all new sides, the way diff tools print change runs.
func FormatUnified(m Model) string {
	var b strings.Builder
	for _, h := range m.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart+1, h.OldLen, h.NewStart+1, h.NewLen)
		for i := 0; i < len(h.Rows); {
			row := h.Rows[i]
			if row.Kind() == RowUnchanged {
				if row.Old != nil {
					b.WriteString(" ")
					b.WriteString(row.Old.Text)
					b.WriteString("\n")
				}
				i++
				continue
			}

			j := i
			for j < len(h.Rows) && h.Rows[j].Kind() != RowUnchanged {
				j++
			}
			for k := i; k < j; k++ {
				if line := h.Rows[k].Old; line != nil {
					b.WriteString("-")
					b.WriteString(line.Text)
					b.WriteString("\n")
				}
			}
			for k := i; k < j; k++ {
				if line := h.Rows[k].New; line != nil {
					b.WriteString("+")
					b.WriteString(line.Text)
					b.WriteString("\n")
				}
			}
			i = j
		}
	}
	return b.String()
}
