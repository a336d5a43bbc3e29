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

	"github.com/google/go-cmp/cmp"

	"github.com/gitviewer/diffview"
)

func TestUnified(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		opts []diffview.Option
		want string
	}{
		{
			name: "empty",
			x:    "",
			y:    "",
			want: "",
		},
		{
			name: "identical",
			x:    "first line\n",
			y:    "first line\n",
			want: "",
		},
		{
			name: "insert",
			x:    "a\nc\n",
			y:    "a\nb\nc\n",
			want: "@@ -1,2 +1,3 @@\n a\n+b\n c\n",
		},
		{
			name: "delete",
			x:    "a\nb\nc\n",
			y:    "a\nc\n",
			want: "@@ -1,3 +1,2 @@\n a\n-b\n c\n",
		},
		{
			name: "replace",
			x:    "a\nb\nc\n",
			y:    "a\nx\nc\n",
			opts: []diffview.Option{diffview.Context(1)},
			want: "@@ -1,3 +1,3 @@\n a\n-b\n+x\n c\n",
		},
		{
			name: "insert-into-empty",
			x:    "",
			y:    "a\n",
			want: "@@ -1,0 +1,1 @@\n+a\n",
		},
		{
			name: "replace-run-groups-sides",
			x:    "a\none\ntwo\nz\n",
			y:    "a\n1\n2\nz\n",
			opts: []diffview.Option{diffview.Context(1)},
			want: "@@ -1,4 +1,4 @@\n a\n-one\n-two\n+1\n+2\n z\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffview.Unified(diffview.NewDocument(tt.x), diffview.NewDocument(tt.y), tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unified(...) mismatch [-want,+got]:\n%s", diff)
			}
		})
	}
}
