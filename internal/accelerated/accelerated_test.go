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
	"math/rand/v2"
	"testing"
)

func eqString(a, b string) bool { return a == b }

func TestDiffAppliesCleanly(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
	}{
		{"equal", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"empty_x", nil, []string{"a", "b"}},
		{"empty_y", []string{"a", "b"}, nil},
		{"both_empty", nil, nil},
		{"single_change", []string{"a", "b", "c"}, []string{"a", "B", "c"}},
		{"disjoint", []string{"a", "b", "c"}, []string{"x", "y", "z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Diff(tt.x, tt.y, eqString)
			got, err := p.Apply(tt.x, eqString)
			if err != nil {
				t.Fatalf("Apply(...) returned error: %v", err)
			}
			if !equalStrings(got, tt.y) {
				t.Errorf("applying Diff(x, y) to x = %v, want %v", got, tt.y)
			}
		})
	}
}

func TestDiffLargeRandomInputRestores(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 20; trial++ {
		n := 50 + rng.IntN(200)
		x := randLines(rng, n)
		y := mutate(rng, x)

		p := Diff(x, y, eqString)
		got, err := p.Apply(x, eqString)
		if err != nil {
			t.Fatalf("trial %d: Apply(...) returned error: %v", trial, err)
		}
		if !equalStrings(got, y) {
			t.Fatalf("trial %d: applying patch to x did not reproduce y", trial)
		}

		restored, err := p.Restore(got, eqString)
		if err != nil {
			t.Fatalf("trial %d: Restore(...) returned error: %v", trial, err)
		}
		if !equalStrings(restored, x) {
			t.Fatalf("trial %d: restoring the patch did not reproduce x", trial)
		}
	}
}

func equalStrings(a, b []string) bool {
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

func randLines(rng *rand.Rand, n int) []string {
	alphabet := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	out := make([]string, n)
	for i := range out {
		out[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return out
}

// mutate returns a copy of x with a handful of random insertions, deletions and changes applied.
func mutate(rng *rand.Rand, x []string) []string {
	alphabet := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	out := append([]string(nil), x...)
	for i := 0; i < 10; i++ {
		if len(out) == 0 {
			break
		}
		pos := rng.IntN(len(out) + 1)
		switch rng.IntN(3) {
		case 0: // insert
			out = append(out[:pos], append([]string{alphabet[rng.IntN(len(alphabet))]}, out[pos:]...)...)
		case 1: // delete
			if pos < len(out) {
				out = append(out[:pos], out[pos+1:]...)
			}
		case 2: // change
			if pos < len(out) {
				out[pos] = alphabet[rng.IntN(len(alphabet))]
			}
		}
	}
	return out
}
