/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import (
	"math/rand/v2"
	"slices"
)

// Pool hands out prompts of one kind in shuffled order, reshuffling once
// every prompt has been drawn.
type Pool struct {
	source   []string
	shuffled []string
	cursor   int
}

// NewPool builds a pool from defaults (only when mix is set) followed by
// custom. An empty result is replaced by the single sentinel prompt so
// Draw always has something to return.
func NewPool(rng *rand.Rand, defaults, custom []string, mix bool, sentinel string) *Pool {
	var source []string

	if mix {
		source = append(source, defaults...)
	}
	source = append(source, custom...)

	if len(source) == 0 {
		source = []string{sentinel}
	}

	return &Pool{
		source:   source,
		shuffled: Shuffle(rng, source),
	}
}

// Draw returns the next prompt. When the current cycle is used up the
// shuffled order is itself reshuffled and a new cycle begins.
func (p *Pool) Draw(rng *rand.Rand) string {
	if p.cursor >= len(p.shuffled) {
		p.shuffled = Shuffle(rng, p.shuffled)
		p.cursor = 0
	}

	prompt := p.shuffled[p.cursor]
	p.cursor++

	return prompt
}

// Len is the number of prompts in one cycle.
func (p *Pool) Len() int {
	return len(p.shuffled)
}

// Remaining is the number of prompts left before the next reshuffle.
func (p *Pool) Remaining() int {
	return len(p.shuffled) - p.cursor
}

// Source returns the unshuffled prompt list.
func (p *Pool) Source() []string {
	return slices.Clone(p.source)
}
