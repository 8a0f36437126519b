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
	"regexp"
	"strconv"
	"strings"

	"github.com/godiffutils/diffutils/internal/config"
	"github.com/godiffutils/diffutils/internal/myers"
	"github.com/godiffutils/diffutils/internal/patch"
)

// FormatError is returned by Parse when the input isn't a well-formed unified diff and strict
// parsing (the default) is in effect.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unifieddiff: line %d: %s", e.Line, e.Msg)
}

// FormatWarning describes a recoverable format issue found while parsing in lenient mode: the
// parser kept going, trusting what it could actually observe in the hunk body over what the
// header claimed.
type FormatWarning struct {
	Line int
	Msg  string
}

func (w *FormatWarning) String() string {
	return fmt.Sprintf("unifieddiff: line %d: %s", w.Line, w.Msg)
}

// Result is the outcome of parsing a unified diff.
type Result struct {
	Patch    *patch.Patch[string]
	OrigName string
	RevName  string
	Warnings []*FormatWarning
}

var hunkHeaderRE = regexp.MustCompile(`^@@\s+-(\d+)(?:,(\d+))?\s+\+(\d+)(?:,(\d+))?\s+@@`)

// Parse parses a unified diff. In strict mode (the default) any malformed header or hunk body
// aborts the parse with a *FormatError; with the Lenient option, such issues are recorded as
// warnings on the returned Result and the parser recovers using what the hunk body actually
// contains rather than what the header claims.
func Parse(data string, opts ...Option) (*Result, error) {
	cfg := config.FromOptions(opts, config.Lenient)

	lines := strings.Split(data, "\n")
	// strings.Split on a trailing "\n" produces a final empty element; drop it so line numbers
	// below line up with a 1-based count of actual lines.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	res := &Result{Patch: &patch.Patch[string]{}}

	i := 0
	// Skip any prelude until the "--- "/"+++ " file header pair.
	for i < len(lines) && !strings.HasPrefix(lines[i], "--- ") {
		i++
	}
	if i >= len(lines) {
		if len(lines) == 0 {
			return res, nil
		}
		return reportOrAbort(res, cfg, &FormatError{Line: 1, Msg: "missing '--- ' file header"})
	}
	res.OrigName = strings.TrimSpace(strings.TrimPrefix(lines[i], "--- "))
	i++
	if i >= len(lines) || !strings.HasPrefix(lines[i], "+++ ") {
		errResult, err := reportOrAbort(res, cfg, &FormatError{Line: i + 1, Msg: "expected '+++ ' file header"})
		if err != nil {
			return errResult, err
		}
	} else {
		res.RevName = strings.TrimSpace(strings.TrimPrefix(lines[i], "+++ "))
		i++
	}

	for i < len(lines) {
		if lines[i] == "" {
			i++
			continue
		}
		m := hunkHeaderRE.FindStringSubmatch(lines[i])
		if m == nil {
			if out, err := reportOrAbort(res, cfg, &FormatError{Line: i + 1, Msg: "expected hunk header ('@@ ... @@')"}); err != nil {
				return out, err
			}
			i++
			continue
		}
		headerLine := i + 1
		os := atoi(m[1])
		ot := 1
		if m[2] != "" {
			ot = atoi(m[2])
		}
		rs := atoi(m[3])
		rt := 1
		if m[4] != "" {
			rt = atoi(m[4])
		}
		i++

		var origLines, revLines []string
		for i < len(lines) {
			l := lines[i]
			if l == "" {
				// An empty line in a hunk body is a context line containing the empty string, not
				// the end of the hunk.
				origLines = append(origLines, "")
				revLines = append(revLines, "")
				i++
				continue
			}
			if l[0] != ' ' && l[0] != '-' && l[0] != '+' && l[0] != '\\' {
				break
			}
			switch l[0] {
			case ' ':
				origLines = append(origLines, l[1:])
				revLines = append(revLines, l[1:])
			case '-':
				origLines = append(origLines, l[1:])
			case '+':
				revLines = append(revLines, l[1:])
			case '\\':
				// "\ No newline at end of file": carries no positional information we track.
			}
			i++
		}

		if len(origLines) != ot {
			if out, err := reportOrAbort(res, cfg, &FormatError{Line: headerLine, Msg: fmt.Sprintf("hunk header claims %d original lines, body has %d", ot, len(origLines))}); err != nil {
				return out, err
			}
		}
		if len(revLines) != rt {
			if out, err := reportOrAbort(res, cfg, &FormatError{Line: headerLine, Msg: fmt.Sprintf("hunk header claims %d revised lines, body has %d", rt, len(revLines))}); err != nil {
				return out, err
			}
		}

		origPos := os - 1
		revPos := rs - 1

		deltas := myers.DiffChunks(
			patch.Chunk[string]{Position: origPos, Lines: origLines},
			patch.Chunk[string]{Position: revPos, Lines: revLines},
			func(a, b string) bool { return a == b },
			nil,
		)
		for _, d := range deltas {
			res.Patch.Add(d)
		}
	}

	return res, nil
}

// ParseBytes is Parse for []byte input.
func ParseBytes(data []byte, opts ...Option) (*Result, error) {
	return Parse(string(data), opts...)
}

func reportOrAbort(res *Result, cfg config.Config, err *FormatError) (*Result, error) {
	if !cfg.Lenient {
		return nil, err
	}
	res.Warnings = append(res.Warnings, &FormatWarning{Line: err.Line, Msg: err.Msg})
	return res, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
