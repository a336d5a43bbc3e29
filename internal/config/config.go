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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diffview.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of unchanged lines to include before and after each change in a
	// hunk.
	Context int

	// IgnoreWhitespace strips all whitespace from lines before comparing them. The stripped
	// form is only used for matching, never for display.
	IgnoreWhitespace bool
}

// Default is the default configuration.
var Default = Config{
	Context:          3,
	IgnoreWhitespace: false,
}

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config)

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option) Config {
	cfg := Default
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
