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

// Package accelerated provides an alternative, linear-space diff implementation for inputs where
// the classic greedy search in internal/myers would retain too much state or take too long. It
// trades a harder-to-follow recursive split step for an asymptotic space improvement and two
// heuristics (GOOD_DIAGONAL, TOO_EXPENSIVE) that bound worst-case time on large, highly
// dissimilar inputs at the cost of occasionally returning a non-minimal edit script.
package accelerated

import "github.com/godiffutils/diffutils/internal/patch"

// Diff compares x and y and returns the result as a Patch.
//
// Unlike internal/myers.Diff, the edit script returned here is not guaranteed to be of minimal
// length when the inputs are large enough to trigger the heuristics; it is guaranteed to always
// apply cleanly to x to produce y.
func Diff[T any](x, y []T, eq func(a, b T) bool) *patch.Patch[T] {
	rx, ry := diffResultVectors(x, y, eq)
	deltas := deltasFromResultVectors(x, y, rx, ry)
	p := &patch.Patch[T]{}
	for _, d := range deltas {
		p.Add(d)
	}
	return p
}

// diffResultVectors returns, for every element of x and y, whether it was deleted or inserted
// respectively.
func diffResultVectors[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	var m myers[T]
	smin, smax, tmin, tmax := m.init(x, y, eq)

	switch {
	case smin == smax && tmin == tmax:
		// Equal inputs, nothing to do.
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		m.compare(smin, smax, tmin, tmax, false, eq)
	}
	return m.rx, m.ry
}

// deltasFromResultVectors groups contiguous runs of deleted/inserted elements into deltas, in
// ascending position order.
func deltasFromResultVectors[T any](x, y []T, rx, ry []bool) []patch.Delta[T] {
	n, m := len(x), len(y)
	var deltas []patch.Delta[T]
	s, t := 0, 0
	for s < n || t < m {
		del := s < n && rx[s]
		ins := t < m && ry[t]
		if del || ins {
			s0, t0 := s, t
			for s < n && rx[s] {
				s++
			}
			for t < m && ry[t] {
				t++
			}
			deltas = append(deltas, patch.NewDelta(
				patch.Chunk[T]{Position: s0, Lines: x[s0:s]},
				patch.Chunk[T]{Position: t0, Lines: y[t0:t]},
			))
		} else {
			s++
			t++
		}
	}
	return deltas
}
