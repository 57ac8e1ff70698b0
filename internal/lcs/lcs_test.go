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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MID",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "IDM",
		},
		{
			name: "disjoint",
			x:    []string{"a", "b"},
			y:    []string{"c", "d"},
			want: "DDII",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DDMDMIMMI",
		},
		{
			name: "ABAB_to_BABA",
			x:    strings.Split("ABAB", ""),
			y:    strings.Split("BABA", ""),
			want: "DMMMI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			{
				rx, ry := Vectors(tt.x, tt.y)
				got := render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Vectors(...) differs [-want,+got]:\n%s", diff)
				}
			}
			{
				rx, ry := VectorsFunc(tt.x, tt.y, func(a, b string) bool { return a == b })
				got := render(rx, ry, len(tt.x), len(tt.y))
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("VectorsFunc(...) differs [-want,+got]:\n%s", diff)
				}
			}
		})
	}
}

// render walks the result vectors and emits M for a match, I for an insertion and D for a
// deletion. Insertions are drained first at each difference point, mirroring the hunk
// construction walk.
func render(rx, ry []bool, n, m int) string {
	var sb strings.Builder
	for s, t := 0, 0; s < n || t < m; {
		if ry[t] {
			sb.WriteRune('I')
			t++
		} else if rx[s] {
			sb.WriteRune('D')
			s++
		} else {
			sb.WriteRune('M')
			s++
			t++
		}
	}
	return sb.String()
}

func TestVectorsRand(t *testing.T) {
	params := []struct {
		n, m, vocab int
	}{
		{10, 10, 3},
		{50, 40, 5},
		{200, 200, 10},
		{100, 0, 5},
		{0, 100, 5},
	}
	for _, p := range params {
		name := fmt.Sprintf("n=%d,m=%d,vocab=%d", p.n, p.m, p.vocab)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := make([]int, p.n)
			for i := range x {
				x[i] = rng.IntN(p.vocab)
			}
			y := make([]int, p.m)
			for i := range y {
				y[i] = rng.IntN(p.vocab)
			}

			rx, ry := Vectors(x, y)
			if len(rx) != len(x)+1 || len(ry) != len(y)+1 {
				t.Fatalf("vector lengths: got %d, %d, want %d, %d", len(rx), len(ry), len(x)+1, len(y)+1)
			}
			if rx[len(x)] || ry[len(y)] {
				t.Errorf("border elements must stay false: rx[n] = %v, ry[m] = %v", rx[len(x)], ry[len(y)])
			}

			// The unmarked elements of both sides form the same sequence: the common subsequence.
			var cx, cy []int
			for i, del := range rx[:len(x)] {
				if !del {
					cx = append(cx, x[i])
				}
			}
			for i, ins := range ry[:len(y)] {
				if !ins {
					cy = append(cy, y[i])
				}
			}
			if diff := cmp.Diff(cx, cy); diff != "" {
				t.Errorf("unmarked elements disagree between x and y [-x,+y]:\n%s", diff)
			}
		})
	}
}

func TestVectorsIdentityRand(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("identity"))))
	x := make([]int, 500)
	for i := range x {
		x[i] = rng.IntN(4)
	}
	rx, ry := Vectors(x, slices.Clone(x))
	if slices.Contains(rx, true) || slices.Contains(ry, true) {
		t.Errorf("Vectors(x, x) marked elements, want none")
	}
}

func BenchmarkVectors(b *testing.B) {
	sizes := []int{64, 256, 1024}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(fmt.Sprint(n)))))
			x := make([]int, n)
			y := make([]int, n)
			for i := range x {
				x[i] = rng.IntN(16)
				y[i] = rng.IntN(16)
			}
			for b.Loop() {
				Vectors(x, y)
			}
		})
	}
}
