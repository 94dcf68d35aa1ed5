/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/truthordare/games/truthordare"
)

func TestPoolCustomOnlyDrawsEachOnce(t *testing.T) {
	rng := newRand(10)
	pool := truthordare.NewPool(rng, []string{"default"}, []string{"t1", "t2"}, false, truthordare.NoTruthsPrompt)

	require.Equal(t, 2, pool.Len())

	drawn := []string{pool.Draw(rng), pool.Draw(rng)}
	assert.ElementsMatch(t, []string{"t1", "t2"}, drawn)
	assert.Zero(t, pool.Remaining())
}

func TestPoolMixesDefaultsFirst(t *testing.T) {
	pool := truthordare.NewPool(newRand(11), []string{"x", "y"}, []string{"z"}, true, truthordare.NoDaresPrompt)

	assert.Equal(t, []string{"x", "y", "z"}, pool.Source())
	assert.Equal(t, 3, pool.Len())
}

func TestPoolEmptyFallsBackToSentinel(t *testing.T) {
	rng := newRand(12)
	pool := truthordare.NewPool(rng, []string{"ignored"}, nil, false, truthordare.NoTruthsPrompt)

	require.Equal(t, 1, pool.Len())
	for range 5 {
		assert.Equal(t, truthordare.NoTruthsPrompt, pool.Draw(rng))
	}
}

func TestPoolEmptyMixedBankFallsBackToSentinel(t *testing.T) {
	pool := truthordare.NewPool(newRand(13), nil, nil, true, truthordare.NoDaresPrompt)

	assert.Equal(t, []string{truthordare.NoDaresPrompt}, pool.Source())
}

func TestPoolCyclesWithoutRepeats(t *testing.T) {
	rng := newRand(14)
	custom := []string{"a", "b", "c", "d", "e"}
	pool := truthordare.NewPool(rng, nil, custom, false, truthordare.NoTruthsPrompt)

	for cycle := range 4 {
		var drawn []string
		for range len(custom) {
			drawn = append(drawn, pool.Draw(rng))
		}

		assert.ElementsMatch(t, custom, drawn, "cycle %d", cycle)
	}
}

func TestPoolRemainingCountsDown(t *testing.T) {
	rng := newRand(15)
	pool := truthordare.NewPool(rng, nil, []string{"a", "b", "c"}, false, truthordare.NoTruthsPrompt)

	assert.Equal(t, 3, pool.Remaining())
	pool.Draw(rng)
	assert.Equal(t, 2, pool.Remaining())
	pool.Draw(rng)
	pool.Draw(rng)
	assert.Zero(t, pool.Remaining())

	pool.Draw(rng)
	assert.Equal(t, 2, pool.Remaining(), "reshuffle starts a new cycle")
}
