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

// Package lcs implements the classic dynamic-programming longest-common-subsequence algorithm
// and translates its output into result vectors, the internal representation consumed by the
// hunk construction walk.
//
// The algorithm fills the full (n+1)×(m+1) table, O(n·m) in time and space. That bounds the
// practical input size to human-edited text, which is the intended scale. The payoff is an exact
// longest common subsequence with none of the divergence heuristics a large-file differ needs.
package lcs

// Vectors computes the longest common subsequence of x and y and reports it as a pair of result
// vectors: rx[s] is true iff x[s] is not part of the common subsequence (a deletion), ry[t] is
// true iff y[t] is not part of it (an insertion). Both vectors carry one extra trailing element
// that is always false so that walks can probe one element past the end.
func Vectors[T comparable](x, y []T) (rx, ry []bool) {
	return VectorsFunc(x, y, func(a, b T) bool { return a == b })
}

// VectorsFunc is like [Vectors], but uses eq to compare elements.
func VectorsFunc[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	n, m := len(x), len(y)
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]

	// table[s*(m+1)+t] is the length of the longest common subsequence of x[s:] and y[t:]. The
	// last row and column stay zero.
	table := make([]int32, (n+1)*(m+1))
	for s := n - 1; s >= 0; s-- {
		for t := m - 1; t >= 0; t-- {
			if eq(x[s], y[t]) {
				table[s*(m+1)+t] = table[(s+1)*(m+1)+t+1] + 1
			} else {
				table[s*(m+1)+t] = max(table[(s+1)*(m+1)+t], table[s*(m+1)+t+1])
			}
		}
	}

	// Walk the table from (0,0), marking every element that is not on a longest common path.
	s, t := 0, 0
	for s < n && t < m {
		switch {
		case eq(x[s], y[t]):
			s++
			t++
		case table[(s+1)*(m+1)+t] >= table[s*(m+1)+t+1]:
			rx[s] = true
			s++
		default:
			ry[t] = true
			t++
		}
	}
	for ; s < n; s++ {
		rx[s] = true
	}
	for ; t < m; t++ {
		ry[t] = true
	}
	return rx, ry
}
