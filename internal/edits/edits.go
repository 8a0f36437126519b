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

// Package edits groups a patch's deltas into the hunks a unified diff renders, batching deltas
// whose context windows overlap into a single hunk.
package edits

import "github.com/godiffutils/diffutils/internal/patch"

// Hunk is a run of deltas close enough together to share one unified-diff hunk, together with the
// bounds of the original/revised ranges it covers, including context.
type Hunk[T any] struct {
	OrigStart, OrigEnd int // bounds in the original sequence, including context
	RevStart, RevEnd   int // bounds in the revised sequence, including context
	Deltas             []patch.Delta[T]
}

// Batch groups deltas (assumed sorted ascending by original position, non-overlapping) into hunks
// using context lines of context on either side.
//
// Two consecutive deltas Δ1, Δ2 are batched into the same hunk whenever their context windows
// overlap or touch:
//
//	Δ1.Original.Position + Δ1.Original.Size() + context >= Δ2.Original.Position - context
//
// Otherwise Δ2 starts a new hunk.
func Batch[T any](deltas []patch.Delta[T], context int) []Hunk[T] {
	if len(deltas) == 0 {
		return nil
	}

	var hunks []Hunk[T]
	var cur Hunk[T]
	for _, d := range deltas {
		origEnd := d.Original.Position + d.Original.Size()
		revEnd := d.Revised.Position + d.Revised.Size()
		if len(cur.Deltas) == 0 {
			cur = Hunk[T]{
				OrigStart: max(0, d.Original.Position-context),
				OrigEnd:   origEnd + context,
				RevStart:  max(0, d.Revised.Position-context),
				RevEnd:    revEnd + context,
				Deltas:    []patch.Delta[T]{d},
			}
			continue
		}

		prev := cur.Deltas[len(cur.Deltas)-1]
		prevOrigEnd := prev.Original.Position + prev.Original.Size()
		if prevOrigEnd+context >= d.Original.Position-context {
			cur.OrigEnd = origEnd + context
			cur.RevEnd = revEnd + context
			cur.Deltas = append(cur.Deltas, d)
			continue
		}

		hunks = append(hunks, cur)
		cur = Hunk[T]{
			OrigStart: max(0, d.Original.Position-context),
			OrigEnd:   origEnd + context,
			RevStart:  max(0, d.Revised.Position-context),
			RevEnd:    revEnd + context,
			Deltas:    []patch.Delta[T]{d},
		}
	}
	hunks = append(hunks, cur)
	return hunks
}
