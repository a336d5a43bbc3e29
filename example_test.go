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
	"fmt"

	"github.com/gitviewer/diffview"
)

func ExampleUnified() {
	old := diffview.NewDocument("one\ntwo\nthree\n")
	new := diffview.NewDocument("one\n555\nthree\n")
	fmt.Print(diffview.Unified(old, new))
	// Output:
	// @@ -1,3 +1,3 @@
	//  one
	// -two
	// +555
	//  three
}

// Walk the model row by row, the way a side-by-side renderer would.
func ExampleDiff() {
	old := diffview.NewDocument("one\ntwo\nthree\n")
	new := diffview.NewDocument("one\n555\nthree\n")

	model := diffview.Diff(old, new)
	for _, hunk := range model.Hunks {
		for _, row := range hunk.Rows {
			switch row.Kind() {
			case diffview.RowUnchanged:
				fmt.Printf("  %s\n", row.Old.Text)
			case diffview.RowRemoved:
				fmt.Printf("- %s\n", row.Old.Text)
			case diffview.RowAdded:
				fmt.Printf("+ %s\n", row.New.Text)
			case diffview.RowModified:
				fmt.Printf("~ %s -> %s\n", row.Old.Text, row.New.Text)
			}
		}
	}
	// Output:
	//   one
	// ~ two -> 555
	//   three
}
