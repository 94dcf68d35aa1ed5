/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import (
	"math"
	"math/rand/v2"
	"slices"
)

const (
	// MinPlayers and MaxPlayers bound the size of a game
	MinPlayers = 2
	MaxPlayers = 10

	// A spin turns the pointer between 5 and 10 full rotations
	minSpinDegrees   = 1800
	spinRangeDegrees = 1800

	// Fairness only applies once there is more than one other player to pick
	fairnessMinPlayers = 3
	fairnessAttempts   = 10
	historySize        = 2
)

// IndexAt maps a pointer angle in degrees onto one of players equal slices,
// slice 0 starting at 12 o'clock and going clockwise.
func IndexAt(rotation float64, players int) int {
	perPlayer := 360 / float64(players)

	index := int(math.Floor(math.Mod(rotation, 360)/perPlayer)) % players
	if index < 0 {
		index += players
	}

	return index
}

// Selector tracks the pointer angle and the last few picks for one game.
type Selector struct {
	players  int
	rotation float64
	history  []int
}

// NewSelector returns a selector for players slices, starting at rotation
// with an optional history of earlier picks (oldest first).
func NewSelector(players int, rotation float64, history ...int) *Selector {
	s := &Selector{
		players:  players,
		rotation: rotation,
	}

	for _, index := range history {
		s.push(index)
	}

	return s
}

// Rotation is the cumulative pointer angle in degrees.
func (s *Selector) Rotation() float64 {
	return s.rotation
}

// History returns up to the last two picks, oldest first.
func (s *Selector) History() []int {
	return slices.Clone(s.history)
}

// Spin advances the pointer by a random 1800-3600 degrees and returns the
// new cumulative angle. It does not pick anyone; see Resolve.
func (s *Selector) Spin(rng *rand.Rand) float64 {
	s.rotation += minSpinDegrees + rng.Float64()*spinRangeDegrees

	return s.rotation
}

// Resolve picks the player under the pointer. With three or more players,
// a player who was picked the last two times is skipped in favour of a
// randomly offset slice, and the pointer is moved to the middle of the new
// slice. The pick is recorded in the history.
func (s *Selector) Resolve(rng *rand.Rand) int {
	raw := IndexAt(s.rotation, s.players)
	index := raw

	if s.wouldRepeat(raw) {
		perPlayer := 360 / float64(s.players)

		for range fairnessAttempts {
			offset := float64(rng.IntN(s.players-1)+1) * perPlayer

			alt := IndexAt(s.rotation+offset, s.players)
			if alt != raw {
				index = alt
				break
			}
		}

		if index != raw {
			target := float64(index)*perPlayer + perPlayer/2
			s.rotation += target - math.Mod(s.rotation, 360)
		}
	}

	s.push(index)

	return index
}

func (s *Selector) wouldRepeat(index int) bool {
	if s.players < fairnessMinPlayers || len(s.history) < historySize {
		return false
	}

	return s.history[0] == s.history[1] && s.history[1] == index
}

func (s *Selector) push(index int) {
	s.history = append(s.history, index)
	if len(s.history) > historySize {
		s.history = slices.Clone(s.history[len(s.history)-historySize:])
	}
}
