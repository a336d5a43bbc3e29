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

package conflict_test

import (
	"fmt"

	"github.com/gitviewer/diffview/conflict"
)

func ExampleParse() {
	text := "<<<<<<< HEAD\nours\n=======\ntheirs\n>>>>>>> feature\n"

	for _, r := range conflict.Parse(text) {
		fmt.Printf("%s vs %s\n", r.OursBranch, r.TheirsBranch)
		fmt.Printf("ours: %q\n", r.Ours.Slice(text))
		fmt.Printf("theirs: %q\n", r.Theirs.Slice(text))
	}
	// Output:
	// HEAD vs feature
	// ours: "ours\n"
	// theirs: "theirs\n"
}
