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

// Package patch contains the core data model shared by the diff engines and the unified-diff
// codec: Chunk, Delta, Patch and the apply-time error type.
//
// This is an implementation detail, the public surface for users is the top-level diff package,
// which re-exports these types by alias.
package patch

import (
	"fmt"
	"slices"
	"sort"
)

// Chunk is a contiguous slice of a sequence together with the position it was taken from.
type Chunk[T any] struct {
	Position int
	Lines    []T
}

// Size returns the number of elements in the chunk.
func (c Chunk[T]) Size() int { return len(c.Lines) }

// Last returns the index of the last element of the chunk in its host sequence.
func (c Chunk[T]) Last() int { return c.Position + c.Size() - 1 }

// verify checks that the chunk's saved content still matches target at its recorded position.
func (c Chunk[T]) verify(target []T, eq func(a, b T) bool) error {
	if c.Size() == 0 {
		if c.Position > len(target) {
			return &ApplyError[T]{Index: c.Position, Reason: "chunk position is past the end of the target"}
		}
		return nil
	}
	if c.Position+c.Size() > len(target) {
		return &ApplyError[T]{Index: c.Position, Reason: "chunk extends past the end of the target"}
	}
	for i, want := range c.Lines {
		idx := c.Position + i
		if got := target[idx]; !eq(got, want) {
			return &ApplyError[T]{Index: idx, Want: want, Got: got, Reason: "content mismatch"}
		}
	}
	return nil
}

func equalChunk[T any](a, b Chunk[T], eq func(x, y T) bool) bool {
	if a.Position != b.Position || len(a.Lines) != len(b.Lines) {
		return false
	}
	for i := range a.Lines {
		if !eq(a.Lines[i], b.Lines[i]) {
			return false
		}
	}
	return true
}

// Type identifies which of the three delta variants a Delta is.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Type
type Type int

const (
	// Change replaces a non-empty original chunk with a non-empty revised chunk.
	Change Type = iota
	// Delete removes a non-empty original chunk; the revised chunk is empty.
	Delete
	// Insert adds a non-empty revised chunk at a position; the original chunk is empty.
	Insert
)

// Delta is one minimal edit between two sequences: a tagged pair of chunks.
type Delta[T any] struct {
	Type     Type
	Original Chunk[T]
	Revised  Chunk[T]
}

// NewDelta classifies original/revised into the appropriate Delta variant, per the invariants in
// the data model: Insert requires an empty original and non-empty revised chunk, Delete the
// reverse, and Change requires both to be non-empty.
func NewDelta[T any](original, revised Chunk[T]) Delta[T] {
	switch {
	case original.Size() == 0 && revised.Size() > 0:
		return Delta[T]{Type: Insert, Original: original, Revised: revised}
	case original.Size() > 0 && revised.Size() == 0:
		return Delta[T]{Type: Delete, Original: original, Revised: revised}
	default:
		return Delta[T]{Type: Change, Original: original, Revised: revised}
	}
}

// Equal reports whether d and other have the same type and equal chunks under eq.
func (d Delta[T]) Equal(other Delta[T], eq func(a, b T) bool) bool {
	return d.Type == other.Type &&
		equalChunk(d.Original, other.Original, eq) &&
		equalChunk(d.Revised, other.Revised, eq)
}

// verify checks that this delta can be applied to target.
func (d Delta[T]) verify(target []T, eq func(a, b T) bool) error {
	switch d.Type {
	case Insert:
		if d.Original.Position > len(target) {
			return &ApplyError[T]{Index: d.Original.Position, Reason: "insert position is past the end of the target"}
		}
		return nil
	default:
		return d.Original.verify(target, eq)
	}
}

// applyTo splices this delta's revised chunk into target in place of its original chunk. target
// must already have been verified.
func (d Delta[T]) applyTo(target []T) []T {
	pos, size := d.Original.Position, d.Original.Size()
	out := make([]T, 0, len(target)-size+d.Revised.Size())
	out = append(out, target[:pos]...)
	out = append(out, d.Revised.Lines...)
	out = append(out, target[pos+size:]...)
	return out
}

// restoreFrom is the inverse of applyTo: it splices the original chunk back in place of the
// revised chunk.
func (d Delta[T]) restoreFrom(target []T) []T {
	pos, size := d.Revised.Position, d.Revised.Size()
	out := make([]T, 0, len(target)-size+d.Original.Size())
	out = append(out, target[:pos]...)
	out = append(out, d.Original.Lines...)
	out = append(out, target[pos+size:]...)
	return out
}

// ApplyError is returned by Patch.Apply, Patch.Restore and chunk verification when the saved
// content no longer matches the target at the recorded position.
type ApplyError[T any] struct {
	// Index is the 0-based position in the target where verification failed.
	Index int
	// Want and Got are the expected and actual elements at Index, if the mismatch was a content
	// mismatch rather than an out-of-range position.
	Want, Got T
	Reason    string
}

func (e *ApplyError[T]) Error() string {
	return fmt.Sprintf("patch does not apply at index %d: %s (want %v, got %v)", e.Index, e.Reason, e.Want, e.Got)
}

// Patch is an ordered, non-overlapping collection of deltas between two sequences.
//
// Insertion is O(1) amortized; the sort invariant is enforced lazily on first read and cached
// until the next insertion. This mirrors the original implementation's "append, then sort on
// first read" trick and keeps the externally observable contract (always sorted on read)
// identical while avoiding O(n^2) behavior for patches built one delta at a time.
type Patch[T any] struct {
	deltas []Delta[T]
	sorted bool
}

// Add appends a delta to the patch. The patch's sort invariant is restored lazily, on the next
// call to Deltas.
func (p *Patch[T]) Add(d Delta[T]) {
	p.deltas = append(p.deltas, d)
	p.sorted = false
}

// Deltas returns the patch's deltas, sorted ascending by original position.
func (p *Patch[T]) Deltas() []Delta[T] {
	if !p.sorted {
		sort.SliceStable(p.deltas, func(i, j int) bool {
			return p.deltas[i].Original.Position < p.deltas[j].Original.Position
		})
		p.sorted = true
	}
	return p.deltas
}

// Equal reports whether p and other contain equal deltas in the same order under eq.
func (p *Patch[T]) Equal(other *Patch[T], eq func(a, b T) bool) bool {
	a, b := p.Deltas(), other.Deltas()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i], eq) {
			return false
		}
	}
	return true
}

// Apply applies the patch to target and returns the patched sequence. target is never modified;
// Apply always operates on a private copy.
//
// Deltas are applied in reverse (descending original position) order so that earlier edits don't
// need their positions adjusted by later ones.
func (p *Patch[T]) Apply(target []T, eq func(a, b T) bool) ([]T, error) {
	result := slices.Clone(target)
	deltas := p.Deltas()
	for i := len(deltas) - 1; i >= 0; i-- {
		d := deltas[i]
		if err := d.verify(result, eq); err != nil {
			return nil, err
		}
		result = d.applyTo(result)
	}
	return result, nil
}

// Restore is the inverse of Apply: given a sequence produced by applying this patch, it
// reconstructs the original sequence.
func (p *Patch[T]) Restore(patched []T, eq func(a, b T) bool) ([]T, error) {
	result := slices.Clone(patched)
	deltas := p.Deltas()
	for i := len(deltas) - 1; i >= 0; i-- {
		d := deltas[i]
		if d.Revised.Position > len(result) {
			return nil, &ApplyError[T]{Index: d.Revised.Position, Reason: "revised chunk position is past the end of the target"}
		}
		if err := d.Revised.verify(result, eq); err != nil {
			return nil, err
		}
		result = d.restoreFrom(result)
	}
	return result, nil
}
