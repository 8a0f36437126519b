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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/godiffutils/diffutils/internal/patch"
)

func eqInt(a, b int) bool { return a == b }

func TestDiffBasic(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
	}{
		{"equal", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"empty_x", nil, []string{"a", "b"}},
		{"empty_y", []string{"a", "b"}, nil},
		{"both_empty", nil, nil},
		{"single_change", []string{"a", "b", "c"}, []string{"a", "B", "c"}},
		{"classic_ABCABBA", []string{"A", "B", "C", "A", "B", "B", "A"}, []string{"C", "B", "A", "B", "A", "C"}},
	}
	eq := func(a, b string) bool { return a == b }
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Diff(tt.x, tt.y, eq, nil)
			got, err := p.Apply(tt.x, eq)
			if err != nil {
				t.Fatalf("Apply(...) returned error: %v", err)
			}
			if diff := cmp.Diff(tt.y, got, cmpEmptyOK()); diff != "" {
				t.Errorf("applying Diff(x, y) to x produced a result different from y [-want,+got]:\n%s", diff)
			}

			restored, err := p.Restore(got, eq)
			if err != nil {
				t.Fatalf("Restore(...) returned error: %v", err)
			}
			if diff := cmp.Diff(tt.x, restored, cmpEmptyOK()); diff != "" {
				t.Errorf("restoring the patch did not reproduce x [-want,+got]:\n%s", diff)
			}
		})
	}
}

func cmpEmptyOK() cmp.Option {
	return cmp.Comparer(func(a, b []string) bool {
		if len(a) == 0 && len(b) == 0 {
			return true
		}
		return cmp.Equal(a, b)
	})
}

func TestDiffHashOptimizationMatchesPlain(t *testing.T) {
	x := []int{1, 2, 3, 4, 5, 6, 7}
	y := []int{1, 3, 4, 5, 8, 6, 7}
	hash := func(a int) uint64 { return uint64(a) }

	plain := Diff(x, y, eqInt, nil)
	hashed := Diff(x, y, eqInt, hash)

	if !plain.Equal(hashed, eqInt) {
		t.Errorf("hash optimization changed the result: plain=%+v hashed=%+v", plain.Deltas(), hashed.Deltas())
	}
}

// bruteForceLCSLen computes the length of a longest common subsequence of x and y by exhaustive
// dynamic programming; used as an oracle to check that Diff produces minimal edit scripts.
func bruteForceLCSLen(x, y []int) int {
	n, m := len(x), len(y)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if x[i-1] == y[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp[n][m]
}

func TestDiffIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		n := rng.IntN(9)
		m := rng.IntN(9)
		alphabet := 1 + rng.IntN(4) // small alphabet forces overlap between x and y
		x := randInts(rng, n, alphabet)
		y := randInts(rng, m, alphabet)

		p := Diff(x, y, eqInt, nil)
		deltas := p.Deltas()

		cost := 0
		for _, d := range deltas {
			cost += d.Original.Size() + d.Revised.Size()
		}

		lcs := bruteForceLCSLen(x, y)
		wantCost := (n - lcs) + (m - lcs)
		if cost != wantCost {
			t.Fatalf("trial %d: Diff(%v, %v) cost = %d, want %d (n=%d m=%d lcs=%d)", trial, x, y, cost, wantCost, n, m, lcs)
		}

		got, err := p.Apply(x, eqInt)
		if err != nil {
			t.Fatalf("trial %d: Apply(...) returned error: %v", trial, err)
		}
		if !equalInts(got, y) {
			t.Fatalf("trial %d: Apply(Diff(%v, %v)) = %v, want %v", trial, x, y, got, y)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func randInts(rng *rand.Rand, n, alphabet int) []int {
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(alphabet)
	}
	return out
}

func TestDiffChunksShiftsPositions(t *testing.T) {
	eq := func(a, b string) bool { return a == b }
	orig := patch.Chunk[string]{Position: 10, Lines: []string{"a", "b", "c"}}
	rev := patch.Chunk[string]{Position: 20, Lines: []string{"a", "B", "c"}}

	deltas := DiffChunks(orig, rev, eq, nil)
	if len(deltas) != 1 {
		t.Fatalf("DiffChunks(...) = %d deltas, want 1", len(deltas))
	}
	d := deltas[0]
	if d.Original.Position != 11 || d.Revised.Position != 21 {
		t.Errorf("DiffChunks(...) delta = %+v, want positions shifted by chunk offsets", d)
	}
}

func ExampleDiff() {
	eq := func(a, b string) bool { return a == b }
	x := []string{"a", "b", "c"}
	y := []string{"a", "B", "c"}
	p := Diff(x, y, eq, nil)
	for _, d := range p.Deltas() {
		fmt.Println(d.Type, d.Original.Position, d.Revised.Position)
	}
	// Output:
	// Change 1 1
}
