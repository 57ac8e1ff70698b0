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
	"znkr.io/textcmp/multiset"
	"znkr.io/textcmp/unidiff"
)

// Kind describes the form of a [Report].
type Kind int

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind

const (
	// KindUnified reports differences as a unified diff of rows.
	KindUnified Kind = iota

	// KindMultiset reports differences as per-value count differences, ignoring order.
	KindMultiset
)

// Report is the result of [Compare]. Exactly one of Unified and Multiset is set, matching Kind.
type Report struct {
	Kind Kind

	// Unified is the rendered unified diff, set iff Kind is [KindUnified].
	Unified *unidiff.Result

	// Multiset describes the per-value count differences, set iff Kind is [KindMultiset].
	Multiset *MultisetReport

	// Notes carries non-fatal diagnostics, e.g. the reason record comparison fell back to row
	// comparison. Empty in the common case.
	Notes []string
}

// Identical reports whether the inputs compare equal.
func (r *Report) Identical() bool {
	switch r.Kind {
	case KindUnified:
		return r.Unified.Identical
	case KindMultiset:
		return r.Multiset.Identical()
	default:
		panic("never reached")
	}
}

// MultisetReport describes the difference between two inputs compared as multisets of rows or
// records.
type MultisetReport struct {
	// TotalX and TotalY count the rows or records of each input, duplicates included.
	TotalX, TotalY int

	// UniqueX and UniqueY count the distinct rows or records of each input.
	UniqueX, UniqueY int

	*multiset.Result[string]
}

func newMultisetReport(xs, ys []string) *MultisetReport {
	bx, by := multiset.From(xs), multiset.From(ys)
	return &MultisetReport{
		TotalX:  bx.Total(),
		TotalY:  by.Total(),
		UniqueX: bx.Distinct(),
		UniqueY: by.Distinct(),
		Result:  multiset.Diff(bx, by),
	}
}
