package startup

import "context"

// subscriber is a queued continuation awaiting the Started transition: either
// a blocked AwaitStart caller or a deferred OnStart callback.
type subscriber struct {
	// Closed to release a blocked caller. Nil for callbacks.
	resume chan struct{}
	// Launched as a unit of work. Nil for blocked callers.
	callback func()
}

// AwaitStart blocks the caller until the coordinator reaches Started. When
// startup has already completed it returns immediately. Any number of callers
// may await concurrently; each is released exactly once, in no defined
// relative order.
func (c *Coordinator) AwaitStart() {
	resume := c.subscribe()
	if resume == nil {
		return
	}
	<-resume
}

// AwaitStartCtx blocks like AwaitStart but additionally releases the caller
// when the context is cancelled, returning the context error. Cancellation
// only releases the caller: the startup sequence itself is not cancellable.
func (c *Coordinator) AwaitStartCtx(ctx context.Context) error {
	resume := c.subscribe()
	if resume == nil {
		return nil
	}
	select {
	case <-resume:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnStart schedules fn to run once the coordinator reaches Started. When
// startup has already completed the callback is launched immediately. The
// caller is never blocked and the callback's completion is not awaited.
func (c *Coordinator) OnStart(fn func()) {
	if fn == nil {
		return
	}
	c.mut.Lock()
	if c.state == Started {
		c.mut.Unlock()
		c.sched.Go("subscriber", fn)
		return
	}
	c.subscribers = append(c.subscribers, subscriber{callback: fn})
	c.mut.Unlock()
}

// subscribe queues a blocking subscriber and returns the chan releasing it,
// or nil when the coordinator is already Started.
func (c *Coordinator) subscribe() chan struct{} {
	c.mut.Lock()
	defer c.mut.Unlock()
	if c.state == Started {
		return nil
	}
	resume := make(chan struct{})
	c.subscribers = append(c.subscribers, subscriber{resume: resume})
	return resume
}

// flushSubscribers releases every queued subscriber in registration order.
// Blocked callers are resumed and callbacks are launched as independent units
// of work; the flush itself blocks on neither.
func (c *Coordinator) flushSubscribers() {
	c.mut.Lock()
	subs := c.subscribers
	c.subscribers = nil
	c.mut.Unlock()

	if len(subs) > 0 {
		c.info("releasing subscribers", "count", len(subs))
	}
	for _, sub := range subs {
		if sub.resume != nil {
			close(sub.resume)
			continue
		}
		c.sched.Go("subscriber", sub.callback)
	}
}
