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

package unifieddiff_test

import (
	"strings"
	"testing"

	"github.com/godiffutils/diffutils"
	"github.com/godiffutils/diffutils/unifieddiff"
)

func TestUnifiedRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y string
	}{
		{
			name: "single_line_change",
			x:    "a\nb\nc\n",
			y:    "a\nB\nc\n",
		},
		{
			name: "insert",
			x:    "a\nb\nc\n",
			y:    "a\nb\nx\nc\n",
		},
		{
			name: "delete",
			x:    "a\nb\nc\nd\n",
			y:    "a\nd\n",
		},
		{
			name: "no_trailing_newline",
			x:    "a\nb\nc",
			y:    "a\nb\nC",
		},
		{
			name: "identical",
			x:    "a\nb\nc\n",
			y:    "a\nb\nc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := unifieddiff.Unified(tt.x, tt.y, "x", "y")
			if err != nil {
				t.Fatalf("Unified(...) returned error: %v", err)
			}
			if tt.x == tt.y && out != "" {
				t.Fatalf("Unified(...) for identical inputs = %q, want empty", out)
			}
			if tt.x == tt.y {
				return
			}

			res, err := unifieddiff.Parse(out)
			if err != nil {
				t.Fatalf("Parse(...) returned error: %v", err)
			}
			if res.OrigName != "x" || res.RevName != "y" {
				t.Errorf("Parse(...) names = %q, %q, want x, y", res.OrigName, res.RevName)
			}

			xLines := strings.SplitAfter(tt.x, "\n")
			if xLines[len(xLines)-1] == "" {
				xLines = xLines[:len(xLines)-1]
			}
			for i, l := range xLines {
				xLines[i] = strings.TrimSuffix(l, "\n")
			}
			got, err := res.Patch.Apply(xLines, func(a, b string) bool { return a == b })
			if err != nil {
				t.Fatalf("Patch.Apply(...) returned error: %v", err)
			}

			yLines := strings.SplitAfter(tt.y, "\n")
			if yLines[len(yLines)-1] == "" {
				yLines = yLines[:len(yLines)-1]
			}
			for i, l := range yLines {
				yLines[i] = strings.TrimSuffix(l, "\n")
			}

			if strings.Join(got, "\n") != strings.Join(yLines, "\n") {
				t.Errorf("applying parsed patch to x = %q, want %q", got, yLines)
			}
		})
	}
}

func TestParseLenientReportsWarnings(t *testing.T) {
	input := "--- x\n+++ y\n@@ -1,1 +1,2 @@\n a\n+b\n+c\n"
	res, err := unifieddiff.Parse(input, unifieddiff.Lenient())
	if err != nil {
		t.Fatalf("Parse(...) returned error: %v", err)
	}
	if len(res.Warnings) == 0 {
		t.Errorf("Parse(...) in lenient mode: want at least one warning for mismatched hunk count, got none")
	}
}

func TestParseStrictRejectsMismatchedCount(t *testing.T) {
	input := "--- x\n+++ y\n@@ -1,1 +1,2 @@\n a\n+b\n+c\n"
	if _, err := unifieddiff.Parse(input); err == nil {
		t.Errorf("Parse(...) in strict mode: want error for mismatched hunk count, got nil")
	}
}

func TestUnifiedAcceptsEngineSelection(t *testing.T) {
	x, y := "a\nb\nc\n", "a\nB\nc\n"
	out, err := unifieddiff.Unified(x, y, "x", "y", diff.EngineName("accelerated"))
	if err != nil {
		t.Fatalf("Unified(...) with an engine option returned error: %v", err)
	}
	if !strings.Contains(out, "-b\n") || !strings.Contains(out, "+B\n") {
		t.Errorf("Unified(...) = %q, want a hunk replacing b with B", out)
	}
}

func TestUnifiedRejectsUnknownEngine(t *testing.T) {
	if _, err := unifieddiff.Unified("a\n", "b\n", "x", "y", diff.EngineName("bogus")); err == nil {
		t.Errorf("Unified(...) with an unknown engine: want error, got nil")
	}
}
