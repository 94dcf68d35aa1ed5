/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import "sync"

// View is everything a client needs to draw the current screen.
type View struct {
	Step  Step       `json:"step"`
	Setup GameConfig `json:"setup"`
	Round *RoundView `json:"round,omitempty"`
}

// Session owns one game from setup through play. The setup screens and
// the round are never active at the same time.
type Session struct {
	mu     sync.Mutex
	opts   RoundOptions
	setup  *Setup
	round  *Round
	closed bool
}

// NewSession returns a session on the language screen.
func NewSession(opts RoundOptions) *Session {
	return &Session{
		opts:  opts.withDefaults(),
		setup: NewSetup(),
	}
}

// Setup runs fn against the setup wizard. It fails once play has started.
func (s *Session) Setup(fn func(*Setup) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	if s.round != nil {
		return ErrWrongStep
	}

	return fn(s.setup)
}

// Start finishes setup and begins play.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	cfg, err := s.setup.Start()
	if err != nil {
		return err
	}

	s.round = NewRound(cfg, s.opts)

	return nil
}

// Round runs fn against the round in play.
func (s *Session) Round(fn func(*Round) error) error {
	s.mu.Lock()
	round := s.round
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return ErrSessionClosed
	}

	if round == nil {
		return ErrWrongStep
	}

	return fn(round)
}

// Reset discards the whole game, including any spin still in the air, and
// returns to the language screen.
func (s *Session) Reset(confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	if s.round != nil {
		s.round.Close()
		s.round = nil
	}

	s.setup = NewSetup()

	return nil
}

// Close tears the session down; pending timers will not touch it afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true

	if s.round != nil {
		s.round.Close()
	}
}

// View returns the current projection of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		Step:  s.setup.Step(),
		Setup: s.setup.Config(),
	}

	if s.round != nil {
		roundView := s.round.View()
		view.Round = &roundView
	}

	return view
}
