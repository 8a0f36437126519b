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

import (
	"fmt"
	"hash/maphash"
	"sync"

	"github.com/godiffutils/diffutils/internal/accelerated"
	"github.com/godiffutils/diffutils/internal/config"
	"github.com/godiffutils/diffutils/internal/myers"
	"github.com/godiffutils/diffutils/internal/patch"
)

// Chunk, Delta, Patch and ApplyError are the core data model, defined in an internal package so
// that the engines in this module can share them without an import cycle.
type (
	Chunk[T any]      = patch.Chunk[T]
	Delta[T any]      = patch.Delta[T]
	Patch[T any]      = patch.Patch[T]
	ApplyError[T any] = patch.ApplyError[T]
)

// The three Delta variants.
const (
	Change = patch.Change
	Delete = patch.Delete
	Insert = patch.Insert
)

// NewDelta classifies original/revised into the appropriate Delta variant.
func NewDelta[T any](original, revised Chunk[T]) Delta[T] {
	return patch.NewDelta(original, revised)
}

// Engine computes the difference between two sequences of T.
type Engine[T comparable] interface {
	Diff(x, y []T) *Patch[T]
}

// engineFunc adapts a plain function to the Engine interface.
type engineFunc[T comparable] func(x, y []T) *Patch[T]

func (f engineFunc[T]) Diff(x, y []T) *Patch[T] { return f(x, y) }

// Create builds a named engine. Recognized names are "plain" (alias "reference", "myers"; the
// classic greedy shortest-edit-script search) and "native" (alias "accelerated"; the linear-space
// variant used for large, highly dissimilar inputs). The empty string tries "native" first,
// falling back to "plain" if it can't be constructed.
//
// hashOptimization enables a hash-based fast-rejection during "plain" engine's snake extension; it
// never changes the result, only how quickly it's reached, and is ignored by "native".
func Create[T comparable](name string, hashOptimization bool) (Engine[T], error) {
	eq := func(a, b T) bool { return a == b }
	switch name {
	case "":
		if e, err := Create[T]("native", hashOptimization); err == nil {
			return e, nil
		}
		return Create[T]("plain", hashOptimization)
	case "plain", "reference", "myers":
		var hash func(T) uint64
		if hashOptimization {
			hash = comparableHash[T]
		}
		return engineFunc[T](func(x, y []T) *Patch[T] {
			return myers.Diff(x, y, eq, hash)
		}), nil
	case "native", "accelerated":
		return engineFunc[T](func(x, y []T) *Patch[T] {
			return accelerated.Diff(x, y, eq)
		}), nil
	default:
		return nil, fmt.Errorf("diff: unknown engine %q", name)
	}
}

var hashSeed = maphash.MakeSeed()

// comparableHash hashes a using its fmt representation; it's only used as a fast-reject before
// falling back to ==, so collisions only cost a little time, never correctness.
func comparableHash[T comparable](a T) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	fmt.Fprint(&h, a)
	return h.Sum64()
}

var (
	defaultOnce   sync.Once
	defaultEngine Engine[string]
)

// Default returns the process-wide default engine for diffing strings: the "native" engine,
// falling back to "plain" with hash optimization enabled if "native" can't be constructed. It's
// created once, lazily, on first use.
func Default() Engine[string] {
	defaultOnce.Do(func() {
		defaultEngine, _ = Create[string]("", true)
	})
	return defaultEngine
}

// Diff computes an edit script between x and y using a fresh engine built from opts. The result is
// minimal for the "plain" engine; see [Create] for the engine names and the default.
//
// Unlike [Default], this always constructs a new engine and never shares the cached singleton, so
// it can be used with any comparable T, not just string.
func Diff[T comparable](x, y []T, opts ...Option) (*Patch[T], error) {
	cfg := config.FromOptions(opts, config.Engine|config.HashOptimization)
	engine, err := Create[T](cfg.Engine, cfg.HashOptimization)
	if err != nil {
		return nil, err
	}
	return engine.Diff(x, y), nil
}

// DiffStrings is Diff specialized for strings, using the cached [Default] engine when called with
// no options.
func DiffStrings(x, y []string, opts ...Option) (*Patch[string], error) {
	if len(opts) == 0 {
		return Default().Diff(x, y), nil
	}
	return Diff(x, y, opts...)
}
