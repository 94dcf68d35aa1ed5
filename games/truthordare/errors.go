/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

// Error is a game error whose text is safe to show to players.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrEmptyName         Error = "Name cannot be empty"
	ErrDuplicateName     Error = "This name is already added!"
	ErrTooManyPlayers    Error = "No more than 10 players can join"
	ErrNotEnoughPlayers  Error = "Add at least 2 players"
	ErrPlayerNotFound    Error = "player not found"
	ErrAdultNotConfirmed Error = "Adult mode must be confirmed as 18+"
	ErrUnknownLanguage   Error = "unknown language"
	ErrUnknownCategory   Error = "unknown category"
	ErrUnknownChoice     Error = "choice must be TRUTH, DARE or RANDOM"
	ErrEmptyPrompt       Error = "Question cannot be empty"
	ErrPromptNotFound    Error = "question not found"
	ErrWrongStep         Error = "not available at this step"
	ErrWrongPhase        Error = "not available during this part of the round"
	ErrResetNotConfirmed Error = "exit must be confirmed"
	ErrSessionClosed     Error = "session has ended"
)
