package startup

import (
	"context"
	"runtime/pprof"
)

// Scheduler launches units of work on behalf of a coordinator. The default
// implementation runs each unit on its own goroutine; tests can inject an
// alternative to observe or serialize scheduling.
type Scheduler interface {
	// Go runs fn as an independent unit of work. The label is a best-effort
	// diagnostic tag, implementations may ignore it.
	Go(label string, fn func())
}

// goScheduler runs units of work on plain goroutines, tagging each with a
// pprof label so in-flight startup work shows up in profiles.
type goScheduler struct{}

func (goScheduler) Go(label string, fn func()) {
	go pprof.Do(context.Background(), pprof.Labels("startup", label),
		func(context.Context) {
			fn()
		})
}
