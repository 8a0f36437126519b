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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail; the configuration surface for users is provided via
// diff.Option and unifieddiff.Option.
package config

// Config collects all configurable parameters for the engines and unified-diff codec in this
// module.
type Config struct {
	// Engine names the registered engine to use: "plain" (the classic Myers search) or "native"
	// (the linear-space accelerated variant, the default). Empty means "use the default".
	Engine string

	// HashOptimization enables hash-based fast-rejection during snake extension. It never
	// changes the result, only how quickly it's reached.
	HashOptimization bool

	// ContextSize is the number of matching lines included as a prefix and suffix around each
	// hunk in a unified diff.
	ContextSize int

	// Lenient relaxes unified-diff parsing: malformed hunk headers and bodies that don't match
	// their declared counts are reported as warnings instead of aborting the parse.
	Lenient bool
}

// Default is the default configuration.
var Default = Config{
	ContextSize: 3,
}

// Flag describes a single config entry. It's used to detect options being set that aren't
// allowed in a given context.
type Flag int

const (
	Engine Flag = 1 << iota
	HashOptimization
	ContextSize
	Lenient
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Engine:
		return "diff.EngineName"
	case HashOptimization:
		return "diff.HashOptimization"
	case ContextSize:
		return "unifieddiff.ContextSize"
	case Lenient:
		return "unifieddiff.Lenient"
	default:
		panic("never reached")
	}
}
