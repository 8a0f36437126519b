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

// Package diff computes, represents and applies the differences between two sequences.
//
// The core type is [Patch]: an ordered collection of [Delta] values, each describing a contiguous
// replacement, insertion or deletion between an original and a revised sequence. Patches are
// produced by an [Engine] and can be applied to the original sequence to produce the revised one,
// or restored from the revised sequence back to the original.
//
// Two engines are registered by default: "plain", the textbook greedy Myers algorithm that always
// returns a shortest edit script, and "native", a linear-space variant that trades strict
// minimality on very large, highly dissimilar inputs for bounded time and memory. [Create] builds
// an engine by name; [Default] returns the process-wide default engine for strings.
//
// The subpackage unifieddiff renders and parses Patch values as unified diffs.
package diff
