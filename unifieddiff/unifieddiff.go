// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package unifieddiff renders diff.Patch values as unified diffs and parses them back.
//
// Important: The output is not guaranteed to be stable and may change with minor version
// upgrades. DO NOT rely on the output being stable.
package unifieddiff

import "github.com/godiffutils/diffutils/internal/config"

// Option configures Unified, UnifiedBytes, Parse and ParseBytes.
type Option = config.Option

// ContextSize sets the number of matching lines included as a prefix and suffix around each hunk.
// The default is 3.
func ContextSize(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ContextSize = n
		return config.ContextSize
	}
}

// Lenient relaxes parsing: malformed headers and hunk bodies that don't match their declared
// counts are reported as warnings on the returned Result instead of aborting the parse.
func Lenient() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Lenient = true
		return config.Lenient
	}
}
