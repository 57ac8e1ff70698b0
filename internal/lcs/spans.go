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

package lcs

import (
	"iter"

	"znkr.io/textcmp/internal/config"
)

// Span describes the boundaries of a sequence of consecutive edits.
type Span struct {
	S0, S1 int // Start and end of the span in x.
	T0, T1 int // Start and end of the span in y.
	Edits  int // Number of edits in this span.
}

// Spans yields the hunk boundaries for a pair of result vectors. With cfg.Context < 0, the
// default, a single span covers both inputs entirely, every match included as context. With
// cfg.Context >= 0 spans are windowed to that many matches of surrounding context and
// overlapping spans are merged.
func Spans(rx, ry []bool, cfg config.Config) iter.Seq[Span] {
	if cfg.Context < 0 {
		return openEnded(rx, ry)
	}
	return windowed(rx, ry, cfg.Context)
}

func openEnded(rx, ry []bool) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		n, m := len(rx)-1, len(ry)-1
		s, t := 0, 0
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
		if s == n && t == m {
			return
		}
		// The matches before the first difference are part of the span as leading context.
		d := s
		for i, j := s, t; i < n || j < m; d++ {
			switch {
			case i < n && rx[i]:
				i++
			case j < m && ry[j]:
				j++
			default:
				i++
				j++
			}
		}
		yield(Span{0, n, 0, m, d})
	}
}

func windowed(rx, ry []bool, context int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		s, t := 0, 0     // current index into x, y
		s0, t0 := -1, -1 // start of the current span
		d := 0           // number of edits in the current span
		run := 0         // number of consecutive matches
		n, m := len(rx)-1, len(ry)-1
		for s < n || t < m {
			if rx[s] || ry[t] {
				run = 0 // not a match, reset run counter.

				// If we're not inside a span, start a new span or, if there's an overlap due to
				// context, continue with the previous span.
				if s0 < 0 {
					s0, t0 = max(0, s-context), max(0, t-context)
					d = s - s0
				}

				for t < m && ry[t] {
					t++
					d++
				}
				for s < n && rx[s] {
					s++
					d++
				}
			} else {
				for s < n && t < m && !rx[s] && !ry[t] {
					s++
					t++
					run++
					d++
				}
			}
			// Active in-progress span and we've seen as many matches as we want in a context,
			// finish the span.
			if s0 >= 0 && (run > 2*context || s == n && t == m) {
				Δ := min(0, -run+context)
				if !yield(Span{s0, s + Δ, t0, t + Δ, d + Δ}) {
					break
				}
				s0, t0 = -1, -1
			}
		}
	}
}
