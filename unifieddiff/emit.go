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

package unifieddiff

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/godiffutils/diffutils"
	"github.com/godiffutils/diffutils/internal/byteview"
	"github.com/godiffutils/diffutils/internal/config"
	"github.com/godiffutils/diffutils/internal/edits"
	"github.com/godiffutils/diffutils/internal/patch"
)

func diffLines(x, y []string, cfg config.Config) (*patch.Patch[string], error) {
	if cfg.Engine == "" && !cfg.HashOptimization {
		return diff.Default().Diff(x, y), nil
	}
	engine, err := diff.Create[string](cfg.Engine, cfg.HashOptimization)
	if err != nil {
		return nil, err
	}
	return engine.Diff(x, y), nil
}

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified compares the lines in x and y and renders the result as a unified diff with xName and
// yName as the file headers. If both names are empty, the "--- "/"+++ " header lines are omitted.
func Unified(x, y, xName, yName string, opts ...Option) (string, error) {
	xp, yp := unsafe.StringData(x), unsafe.StringData(y)
	out, err := UnifiedBytes(unsafe.Slice(xp, len(x)), unsafe.Slice(yp, len(y)), xName, yName, opts...)
	if err != nil {
		return "", err
	}
	return unsafe.String(unsafe.SliceData(out), len(out)), nil
}

// UnifiedBytes is Unified for []byte inputs.
func UnifiedBytes(x, y []byte, xName, yName string, opts ...Option) ([]byte, error) {
	cfg := config.FromOptions(opts, config.ContextSize|config.Engine|config.HashOptimization)

	xRaw, xMissing := byteview.SplitLines(byteview.From(x))
	yRaw, yMissing := byteview.SplitLines(byteview.From(y))
	xStripped, _ := byteview.SplitLinesStripped(byteview.From(x))
	yStripped, _ := byteview.SplitLinesStripped(byteview.From(y))

	xs := toStrings(xStripped)
	ys := toStrings(yStripped)

	p, err := diffLines(xs, ys, cfg)
	if err != nil {
		return nil, err
	}
	return Emit(p, toStrings(xRaw), toStrings(yRaw), xMissing, yMissing, xName, yName, cfg.ContextSize)
}

func toStrings(vs []byteview.ByteView) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

// Emit renders p as a unified diff, using xRaw/yRaw (lines including their trailing line
// terminator) to source the body text and xMissingNewline/yMissingNewline (as returned by
// byteview.SplitLines) to decide where to print "\ No newline at end of file".
func Emit(p *patch.Patch[string], xRaw, yRaw []string, xMissingNewline, yMissingNewline int, xName, yName string, context int) ([]byte, error) {
	deltas := p.Deltas()
	hunks := edits.Batch(deltas, context)
	if len(hunks) == 0 {
		return nil, nil
	}

	var b strings.Builder
	if xName != "" || yName != "" {
		fmt.Fprintf(&b, "--- %s\n", xName)
		fmt.Fprintf(&b, "+++ %s\n", yName)
	}

	for _, h := range hunks {
		origEnd := min(h.OrigEnd, len(xRaw))
		revEnd := min(h.RevEnd, len(yRaw))
		writeHunkHeader(&b, h.OrigStart, origEnd, h.RevStart, revEnd)

		s, t := h.OrigStart, h.RevStart
		for _, d := range h.Deltas {
			for s < d.Original.Position {
				writeLine(&b, prefixMatch, xRaw, s, xMissingNewline)
				s++
				t++
			}
			for i := 0; i < d.Original.Size(); i++ {
				writeLine(&b, prefixDelete, xRaw, s, xMissingNewline)
				s++
			}
			for i := 0; i < d.Revised.Size(); i++ {
				writeLine(&b, prefixInsert, yRaw, t, yMissingNewline)
				t++
			}
		}
		for s < origEnd && t < revEnd {
			writeLine(&b, prefixMatch, xRaw, s, xMissingNewline)
			s++
			t++
		}
	}
	return []byte(b.String()), nil
}

func writeHunkHeader(b *strings.Builder, origStart, origEnd, revStart, revEnd int) {
	ot := origEnd - origStart
	rt := revEnd - revStart
	os := origStart + 1
	rs := revStart + 1
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", os, ot, rs, rt)
}

func writeLine(b *strings.Builder, prefix string, lines []string, i, missingNewline int) {
	line := lines[i]
	b.WriteString(prefix)
	b.WriteString(line)
	if i == missingNewline {
		if len(line) == 0 || line[len(line)-1] != '\n' {
			b.WriteString("\n")
		}
		b.WriteString("\\ No newline at end of file\n")
	}
}
