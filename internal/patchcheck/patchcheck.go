// Copyright 2026 Florian Zenker (flo@znkr.io)
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

// Package patchcheck applies unified diffs produced by this module back to the rows they were
// computed from. It exists to validate rendered output in tests: applying the diff to x must
// reconstruct y exactly.
//
// This package is only for testing.
package patchcheck

import (
	"fmt"
	"strings"
)

// Apply applies the unified diff in patch to the rows in x and returns the resulting rows. An
// empty patch returns x unchanged. Context and deleted rows are validated against x, any
// disagreement between the patch and the input is reported as an error.
func Apply(x []string, patch string) ([]string, error) {
	if patch == "" {
		return x, nil
	}
	lines := strings.Split(patch, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	i := 0
	for i < len(lines) && (strings.HasPrefix(lines[i], "--- ") || strings.HasPrefix(lines[i], "+++ ")) {
		i++
	}

	var out []string
	pos := 0 // next unconsumed row of x
	for i < len(lines) {
		var posX, countX, posY, countY int
		if _, err := fmt.Sscanf(lines[i], "@@ -%d,%d +%d,%d @@", &posX, &countX, &posY, &countY); err != nil {
			return nil, fmt.Errorf("malformed hunk header %q: %v", lines[i], err)
		}
		i++

		start := posX - 1
		if start < pos || start > len(x) {
			return nil, fmt.Errorf("hunk starts at row %d, but the input position is already %d", posX, pos+1)
		}
		out = append(out, x[pos:start]...)
		pos = start
		if want := posY - 1; want != len(out) {
			return nil, fmt.Errorf("hunk starts at row %d of the output, but %d rows were produced so far", posY, len(out))
		}

		var consumedX, consumedY int
		for i < len(lines) && !strings.HasPrefix(lines[i], "@@") {
			body := lines[i]
			if body == "" {
				return nil, fmt.Errorf("row %d of the patch is empty, every hunk row needs a prefix", i+1)
			}
			content := body[1:]
			switch body[0] {
			case ' ':
				if pos >= len(x) || x[pos] != content {
					return nil, mismatch(x, pos, content)
				}
				out = append(out, content)
				pos++
				consumedX++
				consumedY++
			case '-':
				if pos >= len(x) || x[pos] != content {
					return nil, mismatch(x, pos, content)
				}
				pos++
				consumedX++
			case '+':
				out = append(out, content)
				consumedY++
			default:
				return nil, fmt.Errorf("unknown prefix in patch row %q", body)
			}
			i++
		}
		if consumedX != countX || consumedY != countY {
			return nil, fmt.Errorf("hunk header promises -%d,%d +%d,%d, but the body consumes %d and produces %d rows",
				posX, countX, posY, countY, consumedX, consumedY)
		}
	}
	out = append(out, x[pos:]...)
	return out, nil
}

func mismatch(x []string, pos int, content string) error {
	if pos >= len(x) {
		return fmt.Errorf("patch expects row %q at position %d, but the input ended", content, pos+1)
	}
	return fmt.Errorf("patch expects row %q at position %d, input has %q", content, pos+1, x[pos])
}
