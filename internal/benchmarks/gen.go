package benchmarks

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// GenInputs deterministically generates a pair of related row sequences: y is x with the given
// number of random replacements, deletions, and insertions applied. The same seed always
// produces the same pair.
func GenInputs(seed string, rows, changes, vocab int) (x, y []byte) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(seed))))
	xs := make([]string, rows)
	for i := range xs {
		xs[i] = fmt.Sprintf("row-%04d", rng.IntN(vocab))
	}
	ys := slices.Clone(xs)
	for range changes {
		i := rng.IntN(len(ys))
		switch rng.IntN(3) {
		case 0:
			ys[i] = fmt.Sprintf("row-%04d", rng.IntN(vocab))
		case 1:
			if len(ys) > 1 {
				ys = slices.Delete(ys, i, i+1)
			}
		case 2:
			ys = slices.Insert(ys, i, fmt.Sprintf("row-%04d", rng.IntN(vocab)))
		}
	}
	return join(xs), join(ys)
}

func join(rows []string) []byte {
	return []byte(strings.Join(rows, "\n") + "\n")
}
