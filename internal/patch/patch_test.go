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

package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func eqString(a, b string) bool { return a == b }

func TestNewDeltaClassification(t *testing.T) {
	tests := []struct {
		name             string
		original, revised Chunk[string]
		want             Type
	}{
		{"insert", Chunk[string]{Position: 2}, Chunk[string]{Position: 2, Lines: []string{"a"}}, Insert},
		{"delete", Chunk[string]{Position: 2, Lines: []string{"a"}}, Chunk[string]{Position: 2}, Delete},
		{"change", Chunk[string]{Position: 2, Lines: []string{"a"}}, Chunk[string]{Position: 2, Lines: []string{"b", "c"}}, Change},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDelta(tt.original, tt.revised)
			if got.Type != tt.want {
				t.Errorf("NewDelta(...).Type = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

func TestPatchApplyRestore(t *testing.T) {
	x := []string{"a", "b", "c", "d", "e"}
	y := []string{"a", "B", "c", "d", "x", "y"}

	p := &Patch[string]{}
	p.Add(NewDelta(Chunk[string]{Position: 1, Lines: []string{"b"}}, Chunk[string]{Position: 1, Lines: []string{"B"}}))
	p.Add(NewDelta(Chunk[string]{Position: 4, Lines: []string{"e"}}, Chunk[string]{Position: 4, Lines: []string{"x", "y"}}))

	got, err := p.Apply(x, eqString)
	if err != nil {
		t.Fatalf("Apply(...) returned error: %v", err)
	}
	if diff := cmp.Diff(y, got); diff != "" {
		t.Errorf("Apply(...) result is different [-want,+got]:\n%s", diff)
	}

	// x must not have been mutated.
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, x); diff != "" {
		t.Errorf("Apply(...) mutated its target [-want,+got]:\n%s", diff)
	}

	restored, err := p.Restore(got, eqString)
	if err != nil {
		t.Fatalf("Restore(...) returned error: %v", err)
	}
	if diff := cmp.Diff(x, restored); diff != "" {
		t.Errorf("Restore(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestPatchApplyDetectsMismatch(t *testing.T) {
	p := &Patch[string]{}
	p.Add(NewDelta(Chunk[string]{Position: 1, Lines: []string{"b"}}, Chunk[string]{Position: 1, Lines: []string{"B"}}))

	_, err := p.Apply([]string{"a", "z", "c"}, eqString)
	var applyErr *ApplyError[string]
	if !errors.As(err, &applyErr) {
		t.Fatalf("Apply(...) returned error %v, want *ApplyError[string]", err)
	}
	if applyErr.Index != 1 {
		t.Errorf("ApplyError.Index = %d, want 1", applyErr.Index)
	}
}

func TestPatchDeltasSortedOnRead(t *testing.T) {
	p := &Patch[string]{}
	p.Add(NewDelta(Chunk[string]{Position: 4, Lines: []string{"e"}}, Chunk[string]{Position: 4}))
	p.Add(NewDelta(Chunk[string]{Position: 1, Lines: []string{"b"}}, Chunk[string]{Position: 1}))

	got := p.Deltas()
	if len(got) != 2 || got[0].Original.Position != 1 || got[1].Original.Position != 4 {
		t.Errorf("Deltas() = %+v, want sorted ascending by original position", got)
	}
}

func TestPatchEqual(t *testing.T) {
	mk := func() *Patch[string] {
		p := &Patch[string]{}
		p.Add(NewDelta(Chunk[string]{Position: 1, Lines: []string{"b"}}, Chunk[string]{Position: 1, Lines: []string{"B"}}))
		return p
	}
	a, b := mk(), mk()
	if !a.Equal(b, eqString) {
		t.Errorf("Equal(...) = false, want true for equivalent patches")
	}

	c := &Patch[string]{}
	if a.Equal(c, eqString) {
		t.Errorf("Equal(...) = true, want false for patches of different length")
	}
}
