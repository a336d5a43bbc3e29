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

import "github.com/gitviewer/diffview/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of unchanged lines to include before and after each change in the hunks
// returned by [Diff]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) {
		cfg.Context = max(0, n)
	}
}

// IgnoreWhitespace makes [Diff] compare lines with every Unicode whitespace character removed.
//
// This only affects which lines are considered equal; the model always carries the original line
// text, whitespace included.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) {
		cfg.IgnoreWhitespace = true
	}
}
