/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

const (
	DefaultSpinDuration = 5 * time.Second
	DefaultTurnTime     = 60 * time.Second

	// PointerStyles is the number of selectable pointer skins
	PointerStyles = 3

	tickInterval = time.Second
)

// Phase is the stage of the current round.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSpinning   Phase = "spinning"
	PhaseChoosing   Phase = "choosing"
	PhasePresenting Phase = "presenting"
)

// Player is a participant as seen by the presentation layer.
type Player struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Prompt is the truth or dare handed to the selected player.
type Prompt struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// RoundView is a read-only projection of the round for rendering.
type RoundView struct {
	Phase          Phase   `json:"phase"`
	Rotation       float64 `json:"rotation"`
	Spinning       bool    `json:"spinning"`
	SpinMillis     int64   `json:"spin_ms"`
	Selected       *Player `json:"selected,omitempty"`
	Prompt         *Prompt `json:"prompt,omitempty"`
	Countdown      int     `json:"countdown"`
	Pointer        int     `json:"pointer"`
	History        []int   `json:"history"`
	TruthsPerCycle int     `json:"truths_per_cycle"`
	DaresPerCycle  int     `json:"dares_per_cycle"`
}

// RoundOptions carries the collaborators of a Round. Zero values are
// replaced with runtime defaults.
type RoundOptions struct {
	Rand         *rand.Rand
	Scheduler    Scheduler
	Notifier     Notifier
	Banks        Banks
	SpinDuration time.Duration
	TurnTime     time.Duration
}

func (o RoundOptions) withDefaults() RoundOptions {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Scheduler == nil {
		o.Scheduler = SystemScheduler{}
	}
	if o.Notifier == nil {
		o.Notifier = nopNotifier{}
	}
	if o.Banks == nil {
		o.Banks = DefaultBanks()
	}
	if o.SpinDuration <= 0 {
		o.SpinDuration = DefaultSpinDuration
	}
	if o.TurnTime < tickInterval {
		o.TurnTime = DefaultTurnTime
	}

	return o
}

// Round runs the spin, choose, present cycle for one game. One round is in
// flight at a time; every request either advances the phase, is ignored, or
// fails with ErrWrongPhase.
type Round struct {
	mu sync.Mutex

	cfg          GameConfig
	rng          *rand.Rand
	scheduler    Scheduler
	notifier     Notifier
	spinDuration time.Duration
	turnSeconds  int

	truths   *Pool
	dares    *Pool
	selector *Selector

	phase     Phase
	selected  *Player
	prompt    *Prompt
	countdown int
	pointer   int

	// generation invalidates timers armed for an earlier phase
	generation  uint64
	pendingSpin Task
	pendingTick Task
	closed      bool
}

// NewRound builds the prompt pools and selector for cfg and returns an idle round.
func NewRound(cfg GameConfig, opts RoundOptions) *Round {
	opts = opts.withDefaults()

	bank := opts.Banks.Lookup(cfg.Language, cfg.Category)

	return &Round{
		cfg:          cfg,
		rng:          opts.Rand,
		scheduler:    opts.Scheduler,
		notifier:     opts.Notifier,
		spinDuration: opts.SpinDuration,
		turnSeconds:  int(opts.TurnTime / tickInterval),
		truths:       NewPool(opts.Rand, bank.Truth, cfg.CustomTruths, cfg.Mix, NoTruthsPrompt),
		dares:        NewPool(opts.Rand, bank.Dare, cfg.CustomDares, cfg.Mix, NoDaresPrompt),
		selector:     NewSelector(len(cfg.Players), 0),
		phase:        PhaseIdle,
	}
}

// RequestSpin starts the pointer. It reports false without error when a
// spin is already running. The pick is made only once the spin duration
// has passed.
func (r *Round) RequestSpin() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false, ErrSessionClosed
	}

	switch r.phase {
	case PhaseSpinning:
		return false, nil
	case PhaseIdle:
	default:
		return false, ErrWrongPhase
	}

	r.endTurnLocked()
	r.phase = PhaseSpinning
	r.selector.Spin(r.rng)

	gen := r.generation
	r.pendingSpin = r.scheduler.AfterFunc(r.spinDuration, func() {
		r.resolve(gen)
	})

	return true, nil
}

func (r *Round) resolve(gen uint64) {
	r.mu.Lock()

	if r.closed || gen != r.generation || r.phase != PhaseSpinning {
		r.mu.Unlock()

		return
	}

	index := r.selector.Resolve(r.rng)

	r.pendingSpin = nil
	r.selected = &Player{Index: index, Name: r.cfg.Players[index]}
	r.phase = PhaseChoosing

	view := r.viewLocked()
	r.mu.Unlock()

	r.notifier.RoundChanged(view)
}

// RequestChoice draws a prompt of the requested kind for the selected
// player and starts the countdown. Random is settled 50/50 here.
func (r *Round) RequestChoice(kind Kind) (Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Prompt{}, ErrSessionClosed
	}

	if r.phase != PhaseChoosing {
		return Prompt{}, ErrWrongPhase
	}

	if kind == Random {
		kind = Truth
		if r.rng.IntN(2) == 1 {
			kind = Dare
		}
	}

	var text string

	switch kind {
	case Truth:
		text = r.truths.Draw(r.rng)
	case Dare:
		text = r.dares.Draw(r.rng)
	default:
		return Prompt{}, ErrUnknownChoice
	}

	r.prompt = &Prompt{Kind: kind, Text: text}
	r.phase = PhasePresenting
	r.countdown = r.turnSeconds
	r.generation++
	r.armTickLocked()

	return *r.prompt, nil
}

func (r *Round) armTickLocked() {
	gen := r.generation
	r.pendingTick = r.scheduler.AfterFunc(tickInterval, func() {
		r.tick(gen)
	})
}

func (r *Round) tick(gen uint64) {
	r.mu.Lock()

	if r.closed || gen != r.generation || r.phase != PhasePresenting || r.countdown == 0 {
		r.mu.Unlock()

		return
	}

	r.countdown--

	r.pendingTick = nil
	if r.countdown > 0 {
		r.armTickLocked()
	}

	view := r.viewLocked()
	r.mu.Unlock()

	r.notifier.RoundChanged(view)
}

// RequestDone ends the turn as completed and celebrates the player.
func (r *Round) RequestDone() error {
	r.mu.Lock()

	if err := r.presentingLocked(); err != nil {
		r.mu.Unlock()

		return err
	}

	player := *r.selected
	r.endTurnLocked()
	r.mu.Unlock()

	r.notifier.Celebrate(player)

	return nil
}

// RequestForfeit ends the turn without completing the prompt.
func (r *Round) RequestForfeit() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.presentingLocked(); err != nil {
		return err
	}

	r.endTurnLocked()

	return nil
}

// RequestCancel abandons a pick before a prompt is drawn. The pick stays in
// the selection history.
func (r *Round) RequestCancel() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrSessionClosed
	}

	if r.phase != PhaseChoosing {
		return ErrWrongPhase
	}

	r.endTurnLocked()

	return nil
}

// NextPointer switches to the next pointer skin while idle.
func (r *Round) NextPointer() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrSessionClosed
	}

	if r.phase != PhaseIdle {
		return ErrWrongPhase
	}

	r.pointer = (r.pointer + 1) % PointerStyles

	return nil
}

// Close cancels any pending timers. A timer that already fired is ignored
// when it reaches the round.
func (r *Round) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.closed = true
	r.stopTimersLocked()
}

// View returns the current projection of the round.
func (r *Round) View() RoundView {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.viewLocked()
}

func (r *Round) presentingLocked() error {
	if r.closed {
		return ErrSessionClosed
	}

	if r.phase != PhasePresenting {
		return ErrWrongPhase
	}

	return nil
}

func (r *Round) endTurnLocked() {
	r.stopTimersLocked()

	r.phase = PhaseIdle
	r.selected = nil
	r.prompt = nil
	r.countdown = 0
}

func (r *Round) stopTimersLocked() {
	r.generation++

	if r.pendingSpin != nil {
		r.pendingSpin.Stop()
		r.pendingSpin = nil
	}

	if r.pendingTick != nil {
		r.pendingTick.Stop()
		r.pendingTick = nil
	}
}

func (r *Round) viewLocked() RoundView {
	view := RoundView{
		Phase:          r.phase,
		Rotation:       r.selector.Rotation(),
		Spinning:       r.phase == PhaseSpinning,
		SpinMillis:     r.spinDuration.Milliseconds(),
		Countdown:      r.countdown,
		Pointer:        r.pointer,
		History:        r.selector.History(),
		TruthsPerCycle: r.truths.Len(),
		DaresPerCycle:  r.dares.Len(),
	}

	if r.selected != nil {
		selected := *r.selected
		view.Selected = &selected
	}

	if r.prompt != nil {
		prompt := *r.prompt
		view.Prompt = &prompt
	}

	return view
}

// Players returns the player names in seating order.
func (r *Round) Players() []string {
	return slices.Clone(r.cfg.Players)
}
