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

package accelerated

import (
	"math"

	"github.com/godiffutils/diffutils/internal/rvecs"
)

// myers implements Myers' linear-space divide-and-conquer variant of the shortest-edit-script
// algorithm: split finds the middle snake of an optimal path, then compare recurses into the two
// halves left and right of it. Unlike the classic greedy formulation, this never retains more than
// O(N+M) state, at the cost of being harder to read directly against the paper.
type myers[T any] struct {
	x, y []T

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k] where v0 is the offset that
	// translates k in [-d, d] to an index in [0, 2*d].
	vf, vb []int
	v0     int

	// costLimit controls the TOO_EXPENSIVE heuristic that bounds the runtime for large, highly
	// dissimilar inputs.
	costLimit int

	// Result vectors, indexed directly by position in x and y.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	N, M := smax-smin, tmax-tmin
	diagonals := N + M
	vlen := 2*diagonals + 3
	buf := make([]int, 2*vlen)

	m.x = x
	m.y = y
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1

	costLimit := 1
	for i := diagonals; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	m.costLimit = max(minCostLimit, costLimit)

	if m.rx == nil || m.ry == nil {
		m.rx, m.ry = rvecs.Make(x, y)
	}
	return
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax).
//
// x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix.
func (m *myers[T]) compare(smin, smax, tmin, tmax int, optimal bool, eq func(a, b T) bool) {
	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		s0, s1, t0, t1, opt0, opt1 := m.split(smin, smax, tmin, tmax, optimal, eq)
		m.compare(smin, s0, tmin, t0, opt0, eq)
		m.compare(s1, smax, t1, tmax, opt1, eq)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax).
func (m *myers[T]) split(smin, smax, tmin, tmax int, optimal bool, eq func(a, b T) bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	kmin, kmax := smin-tmax, smax-tmin

	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	odd := (N-M)%2 != 0

	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	for d := 1; ; d++ {
		longestDiag := 0

		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			s0, t0 := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			longestDiag = max(longestDiag, s-s0)
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t, true, true
			}
		}

		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			longestDiag = max(longestDiag, s0-s)
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0, true, true
			}
		}

		if optimal {
			continue
		}

		// Heuristic (GOOD_DIAGONAL): once we're over the cost limit, accept a good-enough
		// diagonal instead of continuing to search for the optimal split point.
		if longestDiag >= goodDiagMinLen && d >= goodDiagCostLimit {
			if s0, s1, t0, t1, opt0, opt1, ok := m.goodDiagonal(smin, smax, tmin, tmax, fmin, fmax, bmin, bmax, d, fmid, bmid); ok {
				return s0, s1, t0, t1, opt0, opt1
			}
		}

		// Heuristic (TOO_EXPENSIVE): bound the amount of work for large, highly dissimilar
		// inputs by picking a good-enough middle diagonal.
		if d >= m.costLimit {
			return m.tooExpensive(smin, smax, tmin, tmax, fmin, fmax, bmin, bmax)
		}
	}
}

func (m *myers[T]) goodDiagonal(smin, smax, tmin, tmax, fmin, fmax, bmin, bmax, d, fmid, bmid int) (s0, s1, t0, t1 int, opt0, opt1 bool, ok bool) {
	vf, vb := m.vf, m.vb
	v0 := m.v0
	best := struct {
		v              int
		s0, s1, t0, t1 int
		opt0, opt1     bool
	}{}
	for k := fmin; k <= fmax; k += 2 {
		k0 := k + v0
		s := vf[k0]
		t := s - k
		if s < smin || smax <= s || t < tmin || tmax <= t {
			continue
		}
		v := (s - smin) + (t - tmin) - max(fmid-d, d-fmid)
		if v <= goodDiagMagic*d || v < best.v {
			continue
		}
		var pk int
		if vf[k0-1] < vf[k0+1] {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := vf[pk+v0]
		pt := ps - pk
		diag := min(s-ps, t-pt)
		if diag >= goodDiagMinLen {
			best.v = v
			best.s0, best.s1, best.t0, best.t1 = s-diag, s, t-diag, t
			best.opt0, best.opt1 = true, false
		}
	}
	for k := bmin; k <= bmax; k += 2 {
		k0 := k + v0
		s := vb[k0]
		t := s - k
		if s < smin || smax <= s || t < tmin || tmax <= t {
			continue
		}
		v := (smax - s) + (tmax - t) - max(bmid-d, d-bmid)
		if v <= goodDiagMagic*d || v < best.v {
			continue
		}
		var pk int
		if vb[k0-1] < vb[k0+1] {
			pk = k - 1
		} else {
			pk = k + 1
		}
		ps := vb[pk+v0]
		pt := ps - pk
		diag := min(ps-s, pt-t)
		if diag >= goodDiagMinLen {
			best.v = v
			best.s0, best.s1, best.t0, best.t1 = s, s+diag, t, t+diag
			best.opt0, best.opt1 = false, true
		}
	}
	if best.v > 0 {
		return best.s0, best.s1, best.t0, best.t1, best.opt0, best.opt1, true
	}
	return 0, 0, 0, 0, false, false, false
}

func (m *myers[T]) tooExpensive(smin, smax, tmin, tmax, fmin, fmax, bmin, bmax int) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	vf, vb := m.vf, m.vb
	v0 := m.v0

	fbest, fbestk := math.MinInt, math.MinInt
	for k := fmin; k <= fmax; k += 2 {
		k0 := k + v0
		s := vf[k0]
		t := s - k
		if smin <= s && s < smax && tmin <= t && t < tmax && fbest < s+t {
			fbest = s + t
			fbestk = k
		}
	}
	bbest, bbestk := math.MaxInt, math.MaxInt
	for k := bmin; k <= bmax; k += 2 {
		k0 := k + v0
		s := vb[k0]
		t := s - k
		if smin <= s && s < smax && tmin <= t && t < tmax && s+t < bbest {
			bbest = s + t
			bbestk = k
		}
	}

	if fbest != math.MinInt && (smax+tmax)-bbest < fbest-(smin+tmin) {
		k := fbestk
		k0 := k + v0
		s := vf[k0]
		t := s - k
		var pk int
		if vf[k0-1] < vf[k0+1] {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := vf[pk+v0]
		pt := ps - pk
		diag := min(s-ps, t-pt)
		return s - diag, s, t - diag, t, true, false
	} else if bbest != math.MaxInt {
		k := bbestk
		k0 := k + v0
		s := vb[k0]
		t := s - k
		var pk int
		if vb[k0-1] < vb[k0+1] {
			pk = k - 1
		} else {
			pk = k + 1
		}
		ps := vb[pk+v0]
		pt := ps - pk
		diag := min(ps-s, pt-t)
		return s, s + diag, t, t + diag, false, true
	}
	panic("accelerated: no best path found")
}
