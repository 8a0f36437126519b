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

package myers

import (
	"fmt"

	"github.com/godiffutils/diffutils/internal/patch"
)

// Diff computes the minimal edit script between x and y and returns it as a Patch.
//
// hash, if non-nil, is used to speed up the snake-extension inner loop by comparing hashes before
// falling back to eq on a match; it must never change the result, only how fast it's reached.
func Diff[T any](x, y []T, eq func(a, b T) bool, hash func(T) uint64) *patch.Patch[T] {
	end := buildPath(x, y, eq, hash)
	return buildPatch(end, x, y)
}

// DiffChunks computes the minimal edit script between origChunk.Lines and revChunk.Lines and
// returns it as deltas whose positions are shifted to origChunk.Position / revChunk.Position, so
// they can be embedded directly into a larger patch.
func DiffChunks[T any](origChunk, revChunk patch.Chunk[T], eq func(a, b T) bool, hash func(T) uint64) []patch.Delta[T] {
	p := Diff(origChunk.Lines, revChunk.Lines, eq, hash)
	deltas := p.Deltas()
	out := make([]patch.Delta[T], len(deltas))
	for i, d := range deltas {
		d.Original.Position += origChunk.Position
		d.Revised.Position += revChunk.Position
		out[i] = d
	}
	return out
}

// buildPath runs Myers' greedy O((N+M)D) search and returns the end node of the winning path.
//
// This follows the paper directly: a diagonal array diag, indexed by k = i-j offset by a middle
// index so that diagonals in [-MAX, MAX] map to array indices [0, 2*MAX], is grown one
// edit-script-length d at a time until the path reaches (N, M).
func buildPath[T any](x, y []T, eq func(a, b T) bool, hash func(T) uint64) *PathNode {
	n, m := len(x), len(y)

	max := n + m + 1
	size := 1 + 2*max
	middle := size / 2
	diag := make([]*PathNode, size)

	diag[middle+1] = newSnake(0, -1, nil)
	for d := 0; d < max; d++ {
		for k := -d; k <= d; k += 2 {
			kmid := middle + k
			kplus := kmid + 1
			kminus := kmid - 1

			var i int
			var prev *PathNode
			if k == -d || (k != d && diag[kminus].i < diag[kplus].i) {
				i = diag[kplus].i
				prev = diag[kplus]
			} else {
				i = diag[kminus].i + 1
				prev = diag[kminus]
			}

			diag[kminus] = nil

			j := i - k
			node := newDiffNode(i, j, prev)

			// Extend along the diagonal as long as elements match; this is the snake.
			for i < n && j < m && equal(x[i], y[j], eq, hash) {
				i++
				j++
			}
			if i > node.i {
				node = newSnake(i, j, node)
			}

			diag[kmid] = node

			if i >= n && j >= m {
				return diag[kmid]
			}
		}
		diag[middle+d-1] = nil
	}

	// Per Myers, a path is always found for finite inputs; reaching this point is a programmer
	// error, not a user error.
	panic(fmt.Sprintf("myers: exhausted search frontier without finding a path (n=%d, m=%d)", n, m))
}

func equal[T any](a, b T, eq func(a, b T) bool, hash func(T) uint64) bool {
	if hash != nil && hash(a) != hash(b) {
		return false
	}
	return eq(a, b)
}

// buildPatch walks the winning path from end back to the origin and emits a Delta for every
// contiguous non-diagonal run, in reverse (descending position) order; Patch's sort invariant
// makes the final order well-defined regardless.
func buildPatch[T any](end *PathNode, x, y []T) *patch.Patch[T] {
	p := &patch.Patch[T]{}

	node := end
	if node.isSnake {
		node = node.prev
	}
	for node != nil && node.prev != nil && node.prev.j >= 0 {
		if node.isSnake {
			panic("myers: backtrack found a snake where a diff node was expected")
		}
		i, j := node.i, node.j

		node = node.prev
		ianchor, janchor := node.i, node.j

		original := patch.Chunk[T]{Position: ianchor, Lines: x[ianchor:i]}
		revised := patch.Chunk[T]{Position: janchor, Lines: y[janchor:j]}
		p.Add(patch.NewDelta(original, revised))

		if node.isSnake {
			node = node.prev
		}
	}
	return p
}
