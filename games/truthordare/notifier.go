/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/Seednode/truthordare/games/truthordare Notifier

// Notifier receives the round events that do not come from a player request:
// the pointer settling, countdown ticks, and the celebration after a
// completed prompt. Calls are made without any round lock held.
type Notifier interface {
	// RoundChanged is called after a timer moved the round on
	RoundChanged(view RoundView)

	// Celebrate is called when the selected player completes their prompt
	Celebrate(player Player)
}

type nopNotifier struct{}

func (nopNotifier) RoundChanged(RoundView) {}
func (nopNotifier) Celebrate(Player)       {}
