/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a copy of items in uniformly random order (Fisher-Yates).
// The input slice is left untouched.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := slices.Clone(items)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
