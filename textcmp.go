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

package textcmp

import (
	"fmt"
	"strings"

	"znkr.io/textcmp/internal/canon"
	"znkr.io/textcmp/internal/config"
	"znkr.io/textcmp/unidiff"
	"znkr.io/textcmp/xmlrec"
)

// Compare compares two texts and reports their differences.
//
// By default the inputs are compared as row sequences and the report carries a unified diff.
// With [IgnoreOrder] they are compared as multisets instead: inputs that both look like XML are
// compared record by record over canonical record strings (see [RecordSelector]), everything
// else row by row with duplicate counting.
//
// Compare is a pure function of its arguments and never fails: a malformed XML input degrades
// to row comparison and leaves a diagnostic in [Report].Notes.
//
// The following options are supported: [IgnoreOrder], [KeepTrailingSpace], [CollapseWhitespace],
// [IgnoreCase], [RecordSelector], [xmlrec.KeepEmptyText], [unidiff.Labels]
func Compare(x, y string, opts ...Option) *Report {
	cfg := config.FromOptions(opts, config.KeepTrailingSpace|config.CollapseWhitespace|
		config.IgnoreCase|config.IgnoreOrder|config.Selector|config.KeepEmptyText|config.Labels)

	if !cfg.IgnoreOrder {
		return &Report{
			Kind:    KindUnified,
			Unified: unidiff.Compare(x, y, unidiff.Labels(cfg.LabelX, cfg.LabelY)),
		}
	}

	var notes []string
	if LooksLikeXML(x) && LooksLikeXML(y) {
		ropts := recordOpts(cfg)
		recsx, errx := xmlrec.Records(x, ropts...)
		recsy, erry := xmlrec.Records(y, ropts...)
		if errx == nil && erry == nil {
			return &Report{
				Kind:     KindMultiset,
				Multiset: newMultisetReport(recsx, recsy),
			}
		}
		if errx != nil {
			notes = append(notes, fmt.Sprintf("%s: %v; falling back to row comparison", cfg.LabelX, errx))
		}
		if erry != nil {
			notes = append(notes, fmt.Sprintf("%s: %v; falling back to row comparison", cfg.LabelY, erry))
		}
	}

	xrows := canon.Lines(canon.SplitLines(x), cfg)
	yrows := canon.Lines(canon.SplitLines(y), cfg)
	return &Report{
		Kind:     KindMultiset,
		Multiset: newMultisetReport(xrows, yrows),
		Notes:    notes,
	}
}

// LooksLikeXML reports whether s structurally looks like an XML document: the trimmed text
// starts with '<' and ends with '>'. This is a cheap shape check, not validation; [Compare]
// uses it to decide whether record comparison is worth attempting.
func LooksLikeXML(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>'
}

// recordOpts rebuilds the flattening options from an already parsed configuration. Compare
// accepts options that [xmlrec.Flatten] doesn't, so the original option slice can't be passed
// through.
func recordOpts(cfg config.Config) []Option {
	opts := []Option{RecordSelector(cfg.Selector)}
	if cfg.CollapseSpace {
		opts = append(opts, CollapseWhitespace())
	}
	if cfg.KeepEmptyText {
		opts = append(opts, xmlrec.KeepEmptyText())
	}
	return opts
}
