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

// Package multiset implements order-insensitive comparison of value collections with duplicate
// counting.
//
// A [Bag] maps every value to its number of occurrences; the order in which values were added is
// not retained. [Diff] compares two bags and classifies every value of their union as present
// only in one bag, present in both with different counts, or identical.
package multiset

import (
	"cmp"
	"slices"
)

// Bag is a multiset: a mapping from a value to its number of occurrences.
type Bag[T cmp.Ordered] map[T]int

// From builds a bag from values.
func From[T cmp.Ordered](values []T) Bag[T] {
	b := make(Bag[T], len(values))
	for _, v := range values {
		b[v]++
	}
	return b
}

// Add adds one occurrence of v to the bag.
func (b Bag[T]) Add(v T) {
	b[v]++
}

// Total returns the number of values in the bag, counting duplicates.
func (b Bag[T]) Total() int {
	n := 0
	for _, c := range b {
		if c > 0 {
			n += c
		}
	}
	return n
}

// Distinct returns the number of distinct values in the bag.
func (b Bag[T]) Distinct() int {
	n := 0
	for _, c := range b {
		if c > 0 {
			n++
		}
	}
	return n
}

// Count is a value together with its number of occurrences.
type Count[T cmp.Ordered] struct {
	Value T
	N     int
}

// Mismatch is a value present in both bags with different occurrence counts.
type Mismatch[T cmp.Ordered] struct {
	Value T
	X, Y  int // Occurrences in x and y.
	Delta int // X - Y.
}

// Result describes the difference between two bags.
type Result[T cmp.Ordered] struct {
	// OnlyX holds the values present in x and absent from y, sorted by value.
	OnlyX []Count[T]

	// OnlyY holds the values present in y and absent from x, sorted by value.
	OnlyY []Count[T]

	// Mismatched holds the values present in both bags with different counts, sorted by
	// descending count difference magnitude, ties broken by value.
	Mismatched []Mismatch[T]
}

// Identical reports whether both bags contain exactly the same values with the same counts.
func (r *Result[T]) Identical() bool {
	return len(r.OnlyX) == 0 && len(r.OnlyY) == 0 && len(r.Mismatched) == 0
}

// Diff compares two bags and classifies every value of their union. The cost is linear in the
// number of distinct values plus the sorting of the three result lists. Entries with a
// non-positive count are treated as absent, a bag never has negative occurrences.
func Diff[T cmp.Ordered](x, y Bag[T]) *Result[T] {
	var r Result[T]
	for v, nx := range x {
		if nx <= 0 {
			continue
		}
		ny := y[v]
		switch {
		case ny <= 0:
			r.OnlyX = append(r.OnlyX, Count[T]{Value: v, N: nx})
		case nx != ny:
			r.Mismatched = append(r.Mismatched, Mismatch[T]{Value: v, X: nx, Y: ny, Delta: nx - ny})
		}
	}
	for v, ny := range y {
		if ny <= 0 {
			continue
		}
		if x[v] <= 0 {
			r.OnlyY = append(r.OnlyY, Count[T]{Value: v, N: ny})
		}
	}
	slices.SortFunc(r.OnlyX, func(a, b Count[T]) int { return cmp.Compare(a.Value, b.Value) })
	slices.SortFunc(r.OnlyY, func(a, b Count[T]) int { return cmp.Compare(a.Value, b.Value) })
	slices.SortFunc(r.Mismatched, func(a, b Mismatch[T]) int {
		if c := cmp.Compare(abs(b.Delta), abs(a.Delta)); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return &r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
