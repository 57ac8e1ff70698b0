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

// Package unidiff compares two texts line by line and renders the differences in unified
// format.
//
// The comparison operates on raw lines: terminators are normalized and a terminal newline is
// pruned, but no other canonicalization is applied. Lines either match exactly or they differ.
package unidiff

import (
	"fmt"
	"strings"

	"znkr.io/textcmp/internal/canon"
	"znkr.io/textcmp/internal/config"
	"znkr.io/textcmp/internal/lcs"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Result describes the outcome of an order-sensitive comparison.
type Result struct {
	Identical bool   // Inputs have identical lines after terminator normalization.
	Text      string // Rendered unified diff, empty iff Identical.
}

// Compare compares the lines in x and y and reports whether they are identical, together with
// the rendered unified diff when they are not.
//
// The following options are supported: [Labels]
func Compare(x, y string, opts ...Option) *Result {
	text := Unified(x, y, opts...)
	return &Result{
		Identical: text == "",
		Text:      text,
	}
}

// Unified compares the lines in x and y and returns the changes necessary to convert from one
// to the other in unified format. For identical inputs the result is empty.
//
// The output starts with a `--- <label>` / `+++ <label>` header naming the inputs, followed by
// a single hunk that covers both inputs entirely, every matching line included as context.
// Hunk headers report the 1-based start line and the number of lines on each side; a line
// counts toward x unless it is an insertion and toward y unless it is a deletion. At every
// difference point, insertions are emitted before deletions.
//
// A difference only in the presence of a terminal newline is not a difference: both inputs
// split into the same lines.
//
// The following options are supported: [Labels]
func Unified(x, y string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Labels|config.Context)

	// Two texts are identical iff their terminator-normalized contents match exactly. This
	// short-circuits the quadratic comparison for the most common case.
	if canon.Normalize(x) == canon.Normalize(y) {
		return ""
	}

	xlines := canon.SplitLines(x)
	ylines := canon.SplitLines(y)
	rx, ry := lcs.Vectors(xlines, ylines)

	var spans []lcs.Span
	for span := range lcs.Spans(rx, ry, cfg) {
		spans = append(spans, span)
	}
	if len(spans) == 0 {
		// The inputs differ only in the terminal newline, which doesn't count as a line
		// difference.
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", cfg.LabelX, cfg.LabelY)
	for _, span := range spans {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", span.S0+1, span.S1-span.S0, span.T0+1, span.T1-span.T0)
		for s, t := span.S0, span.T0; s < span.S1 || t < span.T1; {
			for t < span.T1 && ry[t] {
				b.WriteString(prefixInsert)
				b.WriteString(ylines[t])
				b.WriteByte('\n')
				t++
			}
			for s < span.S1 && rx[s] {
				b.WriteString(prefixDelete)
				b.WriteString(xlines[s])
				b.WriteByte('\n')
				s++
			}
			for s < span.S1 && t < span.T1 && !rx[s] && !ry[t] {
				b.WriteString(prefixMatch)
				b.WriteString(xlines[s])
				b.WriteByte('\n')
				s++
				t++
			}
		}
	}
	return b.String()
}
