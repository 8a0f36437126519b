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

package diff

import "github.com/godiffutils/diffutils/internal/config"

// Option configures [Diff] and [DiffStrings].
type Option = config.Option

// EngineName selects the engine [Diff] and [DiffStrings] use; see [Create] for recognized names.
func EngineName(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Engine = name
		return config.Engine
	}
}

// HashOptimization enables the "plain" engine's hash-based fast-rejection during snake extension.
func HashOptimization() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.HashOptimization = true
		return config.HashOptimization
	}
}
