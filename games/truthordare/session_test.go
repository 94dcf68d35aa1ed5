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

func newReadySession(t *testing.T, scheduler *fakeScheduler) *truthordare.Session {
	t.Helper()

	session := truthordare.NewSession(truthordare.RoundOptions{
		Rand:      newRand(50),
		Scheduler: scheduler,
	})

	require.NoError(t, session.Setup(func(s *truthordare.Setup) error {
		if err := s.SetLanguage(truthordare.English); err != nil {
			return err
		}
		if err := s.SelectCategory(truthordare.Teen, false); err != nil {
			return err
		}
		for _, name := range []string{"Alice", "Bob"} {
			if err := s.AddPlayer(name); err != nil {
				return err
			}
		}
		if err := s.ConfirmPlayers(); err != nil {
			return err
		}

		return s.AddCustomPrompt(truthordare.Truth, "custom truth")
	}))

	return session
}

func TestSessionStartBuildsRound(t *testing.T) {
	session := newReadySession(t, &fakeScheduler{})

	err := session.Round(func(*truthordare.Round) error { return nil })
	assert.ErrorIs(t, err, truthordare.ErrWrongStep)

	require.NoError(t, session.Start())

	view := session.View()
	assert.Equal(t, truthordare.StepPlaying, view.Step)
	require.NotNil(t, view.Round)
	assert.Equal(t, truthordare.PhaseIdle, view.Round.Phase)

	bank := truthordare.DefaultBanks().Lookup(truthordare.English, truthordare.Teen)
	assert.Equal(t, len(bank.Truth)+1, view.Round.TruthsPerCycle)
	assert.Equal(t, len(bank.Dare), view.Round.DaresPerCycle)

	err = session.Setup(func(s *truthordare.Setup) error { return s.AddPlayer("late") })
	assert.ErrorIs(t, err, truthordare.ErrWrongStep)
}

func TestSessionResetNeedsConfirmation(t *testing.T) {
	scheduler := &fakeScheduler{}
	session := newReadySession(t, scheduler)
	require.NoError(t, session.Start())

	assert.ErrorIs(t, session.Reset(false), truthordare.ErrResetNotConfirmed)
	assert.Equal(t, truthordare.StepPlaying, session.View().Step)

	require.NoError(t, session.Round(func(r *truthordare.Round) error {
		_, err := r.RequestSpin()
		return err
	}))
	stale := scheduler.pending()
	require.Len(t, stale, 1)

	require.NoError(t, session.Reset(true))
	assert.Empty(t, scheduler.pending())

	stale[0].fn()

	view := session.View()
	assert.Equal(t, truthordare.StepLanguage, view.Step)
	assert.Nil(t, view.Round)
	assert.Empty(t, view.Setup.Players)
	assert.True(t, view.Setup.Mix)
}

func TestSessionCloseStopsEverything(t *testing.T) {
	scheduler := &fakeScheduler{}
	session := newReadySession(t, scheduler)
	require.NoError(t, session.Start())

	require.NoError(t, session.Round(func(r *truthordare.Round) error {
		_, err := r.RequestSpin()
		return err
	}))

	session.Close()
	assert.Empty(t, scheduler.pending())

	assert.ErrorIs(t, session.Start(), truthordare.ErrSessionClosed)
	assert.ErrorIs(t, session.Reset(true), truthordare.ErrSessionClosed)
	assert.ErrorIs(t, session.Setup(func(*truthordare.Setup) error { return nil }), truthordare.ErrSessionClosed)
	assert.ErrorIs(t, session.Round(func(*truthordare.Round) error { return nil }), truthordare.ErrSessionClosed)
}
