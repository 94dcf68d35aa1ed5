/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare_test

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Seednode/truthordare/games/truthordare"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fakeScheduler queues deferred calls until the test fires them.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

type fakeTask struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTask) Stop() bool {
	pending := !t.stopped && !t.fired
	t.stopped = true

	return pending
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) truthordare.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &fakeTask{delay: d, fn: f}
	s.tasks = append(s.tasks, task)

	return task
}

// pending returns the tasks that have neither fired nor been stopped.
func (s *fakeScheduler) pending() []*fakeTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*fakeTask
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}

	return out
}

// fireNext runs the oldest pending task, reporting whether there was one.
func (s *fakeScheduler) fireNext() bool {
	pending := s.pending()
	if len(pending) == 0 {
		return false
	}

	task := pending[0]
	task.fired = true
	task.fn()

	return true
}

func testConfig(players ...string) truthordare.GameConfig {
	return truthordare.GameConfig{
		Language:     truthordare.English,
		Category:     truthordare.Teen,
		Players:      players,
		CustomTruths: []string{"t1", "t2"},
		CustomDares:  []string{"d1", "d2", "d3"},
	}
}
