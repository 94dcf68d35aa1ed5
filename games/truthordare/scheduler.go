/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import "time"

// Task is a pending deferred call.
type Task interface {
	// Stop prevents the call from running, reporting whether it was still pending
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// SystemScheduler implements Scheduler with the runtime timers
type SystemScheduler struct{}

// AfterFunc wraps time.AfterFunc
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
