/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import (
	"slices"
	"strings"
)

// Step is a screen of the setup wizard.
type Step string

const (
	StepLanguage Step = "language"
	StepCategory Step = "category"
	StepPlayers  Step = "players"
	StepCustom   Step = "custom"
	StepPlaying  Step = "playing"
)

// GameConfig is the frozen result of setup. It does not change once play starts.
type GameConfig struct {
	Language     Language `json:"language"`
	Category     Category `json:"category"`
	Players      []string `json:"players"`
	CustomTruths []string `json:"custom_truths"`
	CustomDares  []string `json:"custom_dares"`
	Mix          bool     `json:"mix"`
}

// Setup collects the language, category, players and custom prompts for a
// game, enforcing the same rules the setup screens do.
type Setup struct {
	step     Step
	language Language
	category Category
	players  []string
	truths   []string
	dares    []string
	mix      bool
}

// NewSetup returns a wizard on the language screen, mixing in built-in
// prompts by default.
func NewSetup() *Setup {
	return &Setup{
		step: StepLanguage,
		mix:  true,
	}
}

// Step is the current screen.
func (s *Setup) Step() Step {
	return s.step
}

func (s *Setup) require(step Step) error {
	if s.step != step {
		return ErrWrongStep
	}

	return nil
}

// SetLanguage picks the prompt language and moves on to categories.
func (s *Setup) SetLanguage(lang Language) error {
	if err := s.require(StepLanguage); err != nil {
		return err
	}

	if !slices.Contains(languages, lang) {
		return ErrUnknownLanguage
	}

	s.language = lang
	s.step = StepCategory

	return nil
}

// SelectCategory picks the content rating. Adult is only accepted once the
// players have confirmed they are 18+.
func (s *Setup) SelectCategory(cat Category, confirmed bool) error {
	if err := s.require(StepCategory); err != nil {
		return err
	}

	if !slices.Contains(categories, cat) {
		return ErrUnknownCategory
	}

	if cat == Adult && !confirmed {
		return ErrAdultNotConfirmed
	}

	s.category = cat
	s.step = StepPlayers

	return nil
}

// AddPlayer appends a trimmed, case-insensitively unique name.
func (s *Setup) AddPlayer(name string) error {
	if err := s.require(StepPlayers); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	for _, p := range s.players {
		if strings.EqualFold(p, name) {
			return ErrDuplicateName
		}
	}

	if len(s.players) >= MaxPlayers {
		return ErrTooManyPlayers
	}

	s.players = append(s.players, name)

	return nil
}

// RemovePlayer drops the player at index, keeping the others in order.
func (s *Setup) RemovePlayer(index int) error {
	if err := s.require(StepPlayers); err != nil {
		return err
	}

	if index < 0 || index >= len(s.players) {
		return ErrPlayerNotFound
	}

	s.players = slices.Delete(s.players, index, index+1)

	return nil
}

// ConfirmPlayers moves on to custom prompts once enough players are in.
func (s *Setup) ConfirmPlayers() error {
	if err := s.require(StepPlayers); err != nil {
		return err
	}

	if len(s.players) < MinPlayers {
		return ErrNotEnoughPlayers
	}

	s.step = StepCustom

	return nil
}

func (s *Setup) customList(kind Kind) (*[]string, error) {
	switch kind {
	case Truth:
		return &s.truths, nil
	case Dare:
		return &s.dares, nil
	}

	return nil, ErrUnknownChoice
}

// AddCustomPrompt adds a player-written truth or dare.
func (s *Setup) AddCustomPrompt(kind Kind, text string) error {
	if err := s.require(StepCustom); err != nil {
		return err
	}

	list, err := s.customList(kind)
	if err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyPrompt
	}

	*list = append(*list, text)

	return nil
}

// RemoveCustomPrompt drops the custom prompt of kind at index.
func (s *Setup) RemoveCustomPrompt(kind Kind, index int) error {
	if err := s.require(StepCustom); err != nil {
		return err
	}

	list, err := s.customList(kind)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(*list) {
		return ErrPromptNotFound
	}

	*list = slices.Delete(*list, index, index+1)

	return nil
}

// SetMix toggles whether the built-in prompts join the custom ones.
func (s *Setup) SetMix(mix bool) error {
	if err := s.require(StepCustom); err != nil {
		return err
	}

	s.mix = mix

	return nil
}

// Back returns to the previous setup screen, keeping what was entered.
func (s *Setup) Back() error {
	switch s.step {
	case StepCategory:
		s.step = StepLanguage
	case StepPlayers:
		s.step = StepCategory
	case StepCustom:
		s.step = StepPlayers
	default:
		return ErrWrongStep
	}

	return nil
}

// Start freezes the setup into a GameConfig.
func (s *Setup) Start() (GameConfig, error) {
	if err := s.require(StepCustom); err != nil {
		return GameConfig{}, err
	}

	s.step = StepPlaying

	return s.Config(), nil
}

// Config returns a copy of what has been entered so far.
func (s *Setup) Config() GameConfig {
	return GameConfig{
		Language:     s.language,
		Category:     s.category,
		Players:      slices.Clone(s.players),
		CustomTruths: slices.Clone(s.truths),
		CustomDares:  slices.Clone(s.dares),
		Mix:          s.mix,
	}
}
