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

// Package seqdiff compares two sequences and describes the changes that convert one into the
// other in terms of matches, deletions and insertions.
//
// The comparison is grounded in an exact longest common subsequence computed with the classic
// dynamic-programming algorithm, O(n·m) in time and space. That is a deliberate trade-off: the
// output is exact and fully deterministic, and the intended inputs are human-edited text and
// records, not large files.
//
// The edit order is part of the API contract: at every difference point, insertions are emitted
// before deletions.
package seqdiff

import (
	"slices"

	"znkr.io/textcmp/internal/config"
	"znkr.io/textcmp/internal/lcs"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Two sequence elements match
	Delete           // A deletion of an element from the left sequence
	Insert           // An insertion of an element from the right sequence
)

// Edit describes a single edit of a diff.
//
//   - For Match, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Hunk describes a sequence of consecutive edits.
type Hunk[T any] struct {
	PosX, EndX int       // Start and end position in x.
	PosY, EndY int       // Start and end position in y.
	Edits      []Edit[T] // Edits to transform x[PosX:EndX] to y[PosY:EndY]
}

// LCS returns the longest common subsequence of x and y: the longest sequence of elements that
// appears in both inputs in the same relative order, not necessarily contiguously. For identical
// inputs the result is a copy of the input.
func LCS[T comparable](x, y []T) []T {
	rx, _ := lcs.Vectors(x, y)
	n := 0
	for _, del := range rx[:len(x)] {
		if !del {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for s, del := range rx[:len(x)] {
		if !del {
			out = append(out, x[s])
		}
	}
	return out
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// The output is at most one hunk covering both inputs entirely, every match included as
// context. If x and y are identical, the output has length zero.
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context)
	rx, ry := lcs.Vectors(x, y)
	return hunks(x, y, rx, ry, cfg)
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// The output is at most one hunk covering both inputs entirely, every match included as
// context. If x and y are identical, the output has length zero.
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context)
	rx, ry := lcs.VectorsFunc(x, y, eq)
	return hunks(x, y, rx, ry, cfg)
}

func hunks[T any](x, y []T, rx, ry []bool, cfg config.Config) []Hunk[T] {
	// Compute the number of hunks and edits, this is relatively cheap and allows us to
	// preallocate the return values.
	var nhunks, nedits int
	for span := range lcs.Spans(rx, ry, cfg) {
		nhunks++
		nedits += span.Edits
	}
	if nhunks == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	hout := make([]Hunk[T], 0, nhunks)
	for span := range lcs.Spans(rx, ry, cfg) {
		for s, t := span.S0, span.T0; s < span.S1 || t < span.T1; {
			for t < span.T1 && ry[t] {
				eout = append(eout, Edit[T]{
					Op: Insert,
					Y:  y[t],
				})
				t++
			}
			for s < span.S1 && rx[s] {
				eout = append(eout, Edit[T]{
					Op: Delete,
					X:  x[s],
				})
				s++
			}
			for s < span.S1 && t < span.T1 && !rx[s] && !ry[t] {
				eout = append(eout, Edit[T]{
					Op: Match,
					X:  x[s],
					Y:  y[t],
				})
				s++
				t++
			}
		}
		hout = append(hout, Hunk[T]{
			PosX:  span.S0,
			EndX:  span.S1,
			PosY:  span.T0,
			EndY:  span.T1,
			Edits: slices.Clip(eout),
		})
		eout = eout[len(eout):]
	}
	return hout
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// Edits returns one edit for every element in the input slices. If x and y are identical, the
// output consists of a match edit for every input element.
func Edits[T comparable](x, y []T) []Edit[T] {
	rx, ry := lcs.Vectors(x, y)
	return edits(x, y, rx, ry)
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns
// the changes necessary to convert from one to the other.
//
// EditsFunc returns one edit for every element in the input slices. If x and y are identical,
// the output consists of a match edit for every input element.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	rx, ry := lcs.VectorsFunc(x, y, eq)
	return edits(x, y, rx, ry)
}

func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	// Compute the number of edits, this is relatively cheap and allows us to preallocate the
	// return value.
	n, m := len(rx)-1, len(ry)-1
	var nedits int
	for s, t := 0, 0; s < n || t < m; {
		for t < m && ry[t] {
			nedits++
			t++
		}
		for s < n && rx[s] {
			nedits++
			s++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			nedits++
			s++
			t++
		}
	}
	if nedits == 0 {
		return nil
	}

	eout := make([]Edit[T], 0, nedits)
	for s, t := 0, 0; s < n || t < m; {
		for t < m && ry[t] {
			eout = append(eout, Edit[T]{
				Op: Insert,
				Y:  y[t],
			})
			t++
		}
		for s < n && rx[s] {
			eout = append(eout, Edit[T]{
				Op: Delete,
				X:  x[s],
			})
			s++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			eout = append(eout, Edit[T]{
				Op: Match,
				X:  x[s],
				Y:  y[t],
			})
			s++
			t++
		}
	}
	return eout
}
