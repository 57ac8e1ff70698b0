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

// Package canon implements the row canonicalization rules shared by all comparison modes:
// line terminator normalization, line splitting, trailing whitespace trimming, interior
// whitespace collapsing and case folding.
//
// The rules are ordered and the order is part of the contract: terminators are normalized
// before splitting, trimming runs before collapsing, collapsing before case folding. Leading
// whitespace is never altered, it is significant for indentation-sensitive content.
package canon

import (
	"strings"

	"znkr.io/textcmp/internal/config"
)

// Normalize maps all line terminator variants (\r\n and bare \r) to \n.
func Normalize(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitLines normalizes terminators and splits s into rows on \n. The rows don't contain the
// terminator. A single trailing empty row produced by a terminal newline is pruned, so inputs
// with and without a final newline split identically. An empty input has zero rows.
func SplitLines(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	rows := strings.Split(s, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// Line canonicalizes a single row: trailing whitespace trimming, interior whitespace collapsing
// and case folding per cfg, in that order. The row must not contain line terminators,
// [SplitLines] already removed them.
func Line(s string, cfg config.Config) string {
	if cfg.TrimTrailing {
		s = strings.TrimRight(s, " \t")
	}
	if cfg.CollapseSpace {
		s = collapseInterior(s)
	}
	if cfg.IgnoreCase {
		s = strings.ToLower(s)
	}
	return s
}

// Lines canonicalizes every row via [Line].
func Lines(rows []string, cfg config.Config) []string {
	if rows == nil {
		return nil
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = Line(row, cfg)
	}
	return out
}

// collapseInterior replaces every run of spaces and tabs after the leading whitespace with a
// single space. The leading run is preserved verbatim, a row that is all whitespace is returned
// unchanged.
func collapseInterior(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	rest := s[i:]
	if !strings.ContainsAny(rest, " \t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	inRun := false
	for j := range len(rest) {
		c := rest[j]
		if c == ' ' || c == '\t' {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteByte(c)
	}
	if inRun {
		b.WriteByte(' ') // trailing run, reachable only when trimming is disabled
	}
	return b.String()
}

// CollapseSpace replaces every run of whitespace (including line terminators) with a single
// space and trims both ends. This is the normalization for free-form values like XML text
// content and parser diagnostics, where leading whitespace carries no meaning.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
