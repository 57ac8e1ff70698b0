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

package seqdiff

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLCS(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []string
	}{
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: []string{"foo", "bar", "baz"},
		},
		{
			name: "disjoint",
			x:    []string{"foo"},
			y:    []string{"bar"},
			want: nil,
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []string{"C", "B", "B", "A"},
		},
		{
			name: "ABAB_to_BABA",
			x:    strings.Split("ABAB", ""),
			y:    strings.Split("BABA", ""),
			want: []string{"B", "A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LCS(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LCS result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLCSIdentity(t *testing.T) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte("lcs-identity"))))
	x := make([]int, 300)
	for i := range x {
		x[i] = rng.IntN(5)
	}
	got := LCS(x, slices.Clone(x))
	if diff := cmp.Diff(x, got); diff != "" {
		t.Errorf("LCS(x, x) differs from x (-want, +got):\n%s", diff)
	}
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Hunk[string]
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: nil,
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 0,
					PosY: 0,
					EndY: 3,
					Edits: []Edit[string]{
						{Insert, "", "foo"},
						{Insert, "", "bar"},
						{Insert, "", "baz"},
					},
				},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 3,
					PosY: 0,
					EndY: 0,
					Edits: []Edit[string]{
						{Delete, "foo", ""},
						{Delete, "bar", ""},
						{Delete, "baz", ""},
					},
				},
			},
		},
		{
			name: "same-prefix-is-context",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 2,
					PosY: 0,
					EndY: 2,
					Edits: []Edit[string]{
						{Match, "foo", "foo"},
						{Insert, "", "baz"},
						{Delete, "bar", ""},
					},
				},
			},
		},
		{
			name: "same-suffix-stays-open-to-end",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 2,
					PosY: 0,
					EndY: 2,
					Edits: []Edit[string]{
						{Insert, "", "loo"},
						{Delete, "foo", ""},
						{Match, "bar", "bar"},
					},
				},
			},
		},
		{
			name: "full-context-on-both-sides",
			x:    []string{"a", "b", "c", "d", "e"},
			y:    []string{"a", "x", "c", "d", "e"},
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 5,
					PosY: 0,
					EndY: 5,
					Edits: []Edit[string]{
						{Match, "a", "a"},
						{Insert, "", "x"},
						{Delete, "b", ""},
						{Match, "c", "c"},
						{Match, "d", "d"},
						{Match, "e", "e"},
					},
				},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Hunk[string]{
				{
					PosX: 0,
					EndX: 7,
					PosY: 0,
					EndY: 6,
					Edits: []Edit[string]{
						{Delete, "A", ""},
						{Delete, "B", ""},
						{Match, "C", "C"},
						{Delete, "A", ""},
						{Match, "B", "B"},
						{Insert, "", "A"},
						{Match, "B", "B"},
						{Match, "A", "A"},
						{Insert, "", "C"},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hunks(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks result is different (-want, +got):\n%s", diff)
			}
			gotf := HunksFunc(tt.x, tt.y, func(a, b string) bool { return a == b })
			if diff := cmp.Diff(tt.want, gotf); diff != "" {
				t.Errorf("HunksFunc result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestEdits(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Edit[string]
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Match, "foo", "foo"},
				{Match, "bar", "bar"},
				{Match, "baz", "baz"},
			},
		},
		{
			name: "empty",
		},
		{
			name: "x-empty",
			y:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Insert, "", "foo"},
				{Insert, "", "bar"},
				{Insert, "", "baz"},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			want: []Edit[string]{
				{Delete, "foo", ""},
				{Delete, "bar", ""},
				{Delete, "baz", ""},
			},
		},
		{
			name: "insert-before-delete",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []Edit[string]{
				{Match, "foo", "foo"},
				{Insert, "", "baz"},
				{Delete, "bar", ""},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Edit[string]{
				{Delete, "A", ""},
				{Delete, "B", ""},
				{Match, "C", "C"},
				{Delete, "A", ""},
				{Match, "B", "B"},
				{Insert, "", "A"},
				{Match, "B", "B"},
				{Match, "A", "A"},
				{Insert, "", "C"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Edits(tt.x, tt.y)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Edits result is different (-want, +got):\n%s", diff)
			}
			gotf := EditsFunc(tt.x, tt.y, func(a, b string) bool { return a == b })
			if diff := cmp.Diff(tt.want, gotf); diff != "" {
				t.Errorf("EditsFunc result is different (-want, +got):\n%s", diff)
			}
		})
	}
}

// applyHunks reconstructs y from x and the hunks.
func applyHunks[T any](x []T, hunks []Hunk[T]) []T {
	var out []T
	pos := 0
	for _, h := range hunks {
		out = append(out, x[pos:h.PosX]...)
		for _, e := range h.Edits {
			switch e.Op {
			case Match:
				out = append(out, e.X)
			case Insert:
				out = append(out, e.Y)
			case Delete:
				// dropped
			}
		}
		pos = h.EndX
	}
	out = append(out, x[pos:]...)
	return out
}

func TestHunksRoundTripRand(t *testing.T) {
	params := []struct {
		n, m, vocab int
	}{
		{20, 20, 3},
		{100, 80, 4},
		{250, 250, 8},
		{50, 0, 4},
		{0, 50, 4},
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

			hunks := Hunks(x, y)
			if len(hunks) > 1 {
				t.Errorf("Hunks returned %d hunks, want at most one", len(hunks))
			}
			got := applyHunks(x, hunks)
			var want []int
			want = append(want, y...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("applying hunks to x doesn't reconstruct y (-want, +got):\n%s", diff)
			}
		})
	}
}

func BenchmarkHunks(b *testing.B) {
	params := []struct {
		n, d int
	}{
		{n: 64, d: 8},
		{n: 256, d: 32},
		{n: 1024, d: 128},
	}
	for _, p := range params {
		name := fmt.Sprintf("n=%d,d=%d", p.n, p.d)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			x := make([]int, p.n)
			for i := range x {
				x[i] = rng.IntN(100)
			}
			y := slices.Clone(x)
			for d := p.d; d > 0; {
				i := rng.IntN(len(y))
				if y[i] >= 0 {
					y[i] = -y[i]
					d--
				}
			}

			for b.Loop() {
				_ = Hunks(x, y)
			}
		})
	}
}
