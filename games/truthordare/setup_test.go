/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/truthordare/games/truthordare"
)

func setupAtPlayers(t *testing.T) *truthordare.Setup {
	t.Helper()

	s := truthordare.NewSetup()
	require.NoError(t, s.SetLanguage(truthordare.English))
	require.NoError(t, s.SelectCategory(truthordare.Kids, false))
	require.Equal(t, truthordare.StepPlayers, s.Step())

	return s
}

func TestSetupAdultNeedsConfirmation(t *testing.T) {
	s := truthordare.NewSetup()
	require.NoError(t, s.SetLanguage(truthordare.Hinglish))

	assert.ErrorIs(t, s.SelectCategory(truthordare.Adult, false), truthordare.ErrAdultNotConfirmed)
	assert.Equal(t, truthordare.StepCategory, s.Step())

	require.NoError(t, s.SelectCategory(truthordare.Adult, true))
	assert.Equal(t, truthordare.StepPlayers, s.Step())
	assert.Equal(t, truthordare.Adult, s.Config().Category)
}

func TestSetupRejectsUnknownValues(t *testing.T) {
	s := truthordare.NewSetup()

	assert.ErrorIs(t, s.SetLanguage("Klingon"), truthordare.ErrUnknownLanguage)
	require.NoError(t, s.SetLanguage(truthordare.English))
	assert.ErrorIs(t, s.SelectCategory("Toddler", true), truthordare.ErrUnknownCategory)
}

func TestSetupDuplicateNameIgnoresCase(t *testing.T) {
	s := setupAtPlayers(t)

	require.NoError(t, s.AddPlayer("Alice"))
	assert.ErrorIs(t, s.AddPlayer("alice"), truthordare.ErrDuplicateName)
	assert.ErrorIs(t, s.AddPlayer("  ALICE "), truthordare.ErrDuplicateName)
	assert.Equal(t, []string{"Alice"}, s.Config().Players)
}

func TestSetupTrimsAndRejectsEmptyNames(t *testing.T) {
	s := setupAtPlayers(t)

	assert.ErrorIs(t, s.AddPlayer("   "), truthordare.ErrEmptyName)
	require.NoError(t, s.AddPlayer("  Bob  "))
	assert.Equal(t, []string{"Bob"}, s.Config().Players)
}

func TestSetupPlayerLimits(t *testing.T) {
	s := setupAtPlayers(t)

	require.NoError(t, s.AddPlayer("p0"))
	assert.ErrorIs(t, s.ConfirmPlayers(), truthordare.ErrNotEnoughPlayers)

	for i := 1; i < truthordare.MaxPlayers; i++ {
		require.NoError(t, s.AddPlayer(fmt.Sprintf("p%d", i)))
	}

	assert.ErrorIs(t, s.AddPlayer("one too many"), truthordare.ErrTooManyPlayers)
	assert.Len(t, s.Config().Players, truthordare.MaxPlayers)

	require.NoError(t, s.ConfirmPlayers())
	assert.Equal(t, truthordare.StepCustom, s.Step())
}

func TestSetupRemovePlayerKeepsOrder(t *testing.T) {
	s := setupAtPlayers(t)

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.AddPlayer(name))
	}

	require.NoError(t, s.RemovePlayer(1))
	assert.Equal(t, []string{"A", "C"}, s.Config().Players)
	assert.ErrorIs(t, s.RemovePlayer(5), truthordare.ErrPlayerNotFound)
}

func TestSetupCustomPromptsAndStart(t *testing.T) {
	s := setupAtPlayers(t)
	require.NoError(t, s.AddPlayer("A"))
	require.NoError(t, s.AddPlayer("B"))
	require.NoError(t, s.ConfirmPlayers())

	assert.ErrorIs(t, s.AddCustomPrompt(truthordare.Truth, "  "), truthordare.ErrEmptyPrompt)
	assert.ErrorIs(t, s.AddCustomPrompt(truthordare.Random, "x"), truthordare.ErrUnknownChoice)

	require.NoError(t, s.AddCustomPrompt(truthordare.Truth, " t1 "))
	require.NoError(t, s.AddCustomPrompt(truthordare.Dare, "d1"))
	require.NoError(t, s.AddCustomPrompt(truthordare.Dare, "d2"))
	require.NoError(t, s.RemoveCustomPrompt(truthordare.Dare, 0))
	assert.ErrorIs(t, s.RemoveCustomPrompt(truthordare.Truth, 3), truthordare.ErrPromptNotFound)
	require.NoError(t, s.SetMix(false))

	cfg, err := s.Start()
	require.NoError(t, err)

	assert.Equal(t, truthordare.GameConfig{
		Language:     truthordare.English,
		Category:     truthordare.Kids,
		Players:      []string{"A", "B"},
		CustomTruths: []string{"t1"},
		CustomDares:  []string{"d2"},
		Mix:          false,
	}, cfg)
	assert.Equal(t, truthordare.StepPlaying, s.Step())
	assert.ErrorIs(t, s.AddPlayer("late"), truthordare.ErrWrongStep)
}

func TestSetupMixDefaultsOn(t *testing.T) {
	assert.True(t, truthordare.NewSetup().Config().Mix)
}

func TestSetupBack(t *testing.T) {
	s := setupAtPlayers(t)
	require.NoError(t, s.AddPlayer("A"))

	require.NoError(t, s.Back())
	assert.Equal(t, truthordare.StepCategory, s.Step())
	require.NoError(t, s.Back())
	assert.Equal(t, truthordare.StepLanguage, s.Step())
	assert.ErrorIs(t, s.Back(), truthordare.ErrWrongStep)

	assert.Equal(t, []string{"A"}, s.Config().Players)
}

func TestSetupStepsAreEnforced(t *testing.T) {
	s := truthordare.NewSetup()

	assert.ErrorIs(t, s.AddPlayer("A"), truthordare.ErrWrongStep)
	assert.ErrorIs(t, s.SelectCategory(truthordare.Teen, false), truthordare.ErrWrongStep)
	_, err := s.Start()
	assert.ErrorIs(t, err, truthordare.ErrWrongStep)
}
