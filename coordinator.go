package startup

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// Event is a struct passed to a coordinator's observers. It describes either
// a state transition, or a failure reported by a service routine.
type Event struct {
	// The previous state of the coordinator.
	From State
	// The new state of the coordinator.
	To State
	// The name of the service the event relates to, if any.
	Service string
	// The error reported by the service routine, if any.
	Error error
}

// Options contains options for the coordinator.
type Options struct {
	// Registry holds the services to start. If nil, an empty registry is
	// created; services are then registered through the coordinator.
	Registry *Registry
	// Scheduler launches the Initialize and Start routines as well as the
	// queued subscriber callbacks. If nil, each unit of work runs on its own
	// goroutine.
	Scheduler Scheduler
	// Logger receives coordinator events. If nil, the logging messages are
	// discarded.
	Logger Logger
}

func (o Options) copy() *Options {
	return &o
}

// Coordinator drives a registered set of services through a strict two-phase
// startup: every Initialize routine runs to completion before any Start
// routine is launched. A coordinator performs at most one startup sequence.
//
// The coordinator provides no fault isolation between services: an error
// returned by a routine is recorded (see Err) but neither retried nor
// propagated to the other services, and a routine that never returns stalls
// the Initialize barrier forever.
type Coordinator struct {
	// Registered services
	registry *Registry
	// Work scheduling substrate
	sched Scheduler
	// Coordinator options
	opts *Options
	// Enforces atomic state change
	mut sync.Mutex
	// Current state
	state State
	// Subscribers queued until the Started transition
	subscribers []subscriber
	// Closed when Started is reached
	ready chan struct{}
	// Failures reported by service routines
	failures *multierror.Error
	// Observers
	observers []chan<- Event
}

// NewCoordinator creates a Coordinator with default options.
func NewCoordinator() *Coordinator {
	return NewCoordinatorWithOptions(nil)
}

// NewCoordinatorWithOptions creates a Coordinator with the provided options.
func NewCoordinatorWithOptions(opts *Options) *Coordinator {
	if opts == nil {
		opts = &Options{}
	}
	opts = opts.copy()
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = goScheduler{}
	}
	return &Coordinator{
		registry: opts.Registry,
		sched:    opts.Scheduler,
		opts:     opts,
		state:    Idle,
		ready:    make(chan struct{}),
	}
}

// Register adds a service under a unique name. The registration window closes
// when StartUp is called: registering into a Starting or Started coordinator
// fails with an invalid state error, and registering a name twice fails with
// a duplicate service error. On success the registered service is returned.
func (c *Coordinator) Register(name string, svc Service) (Service, error) {
	c.mut.Lock()
	defer c.mut.Unlock()
	if c.state != Idle {
		return nil, fmt.Errorf("cannot register %q in state %s: %w",
			name, c.state, errInvalidState)
	}
	if err := c.registry.add(name, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// StartUp runs the startup sequence. All Initialize routines are launched
// concurrently and StartUp blocks until the last of them has returned; all
// Start routines are then launched concurrently without being waited on.
// Once the Start routines are launched the coordinator transitions to
// Started and the queued subscribers are released.
//
// StartUp must be called exactly once; subsequent calls fail with an invalid
// state error and leave the coordinator untouched.
func (c *Coordinator) StartUp() error {
	if err := c.transition(Starting, Idle); err != nil {
		return err
	}

	// Fan out the Initialize routines and join on the exact count. The last
	// routine to return releases the barrier; when every routine already
	// returned, or none exists, the receive does not block.
	inits := c.routines(initializerOf)
	if n := len(inits); n > 0 {
		c.info("initializing services", "count", n)
		released := make(chan struct{})
		remaining := int32(n)
		for name, fn := range inits {
			name, fn := name, fn
			c.sched.Go(name+"/initialize", func() {
				c.record(name, fn())
				if atomic.AddInt32(&remaining, -1) == 0 {
					close(released)
				}
			})
		}
		<-released
	}

	// Launch the Start routines without joining on them.
	starts := c.routines(starterOf)
	if n := len(starts); n > 0 {
		c.info("starting services", "count", n)
	}
	for name, fn := range starts {
		name, fn := name, fn
		c.sched.Go(name+"/start", func() {
			c.record(name, fn())
		})
	}

	// Past the barrier. The transition below is the single source of truth
	// for "started"; only then are the queued subscribers released.
	c.transition(Started, Starting)
	close(c.ready)
	c.flushSubscribers()

	return nil
}

// Ready returns a chan that is closed when the coordinator reaches Started.
func (c *Coordinator) Ready() <-chan struct{} {
	return c.ready
}

// State returns the current state of the coordinator.
func (c *Coordinator) State() State {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.state
}

// Err returns the failures reported so far by Initialize and Start routines,
// aggregated into a single error, or nil if every routine that returned did
// so without error.
func (c *Coordinator) Err() error {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.failures.ErrorOrNil()
}

// Observe registers a chan on which the coordinator will post events such as
// state changes and service failures. The chan is closed when Started is
// reached. No action is taken if ch is nil.
func (c *Coordinator) Observe(ch chan<- Event) {
	if ch == nil {
		return
	}
	c.mut.Lock()
	defer c.mut.Unlock()
	c.observers = append(c.observers, ch)
}

// Unobserve removes the provided chan from the list of observers. No action
// is taken if ch is nil or not in the list of observers.
func (c *Coordinator) Unobserve(ch chan<- Event) {
	c.mut.Lock()
	defer c.mut.Unlock()
	for i, o := range c.observers {
		if o == ch {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			break
		}
	}
}

// routines collects the named routines extracted from the registered services
// by the provided accessor. The registry is frozen once the coordinator left
// Idle, so it is read without holding the lock.
func (c *Coordinator) routines(of func(Service) Routine) map[string]Routine {
	res := make(map[string]Routine, c.registry.Len())
	c.registry.each(func(name string, svc Service) {
		if fn := of(svc); fn != nil {
			res[name] = fn
		}
	})
	return res
}

// record appends a failure reported by a service routine to the aggregated
// report. The barrier does not inspect failures: a routine that returned
// counts as complete whether it failed or not.
func (c *Coordinator) record(name string, err error) {
	if err == nil {
		return
	}
	c.error(err, "service failed", "service", name)
	c.mut.Lock()
	defer c.mut.Unlock()
	c.failures = multierror.Append(c.failures,
		fmt.Errorf("service %s: %w", name, err))
	c.notify(Event{
		From:    c.state,
		To:      c.state,
		Service: name,
		Error:   err,
	})
}

// transition moves the coordinator from a required state to a new state and
// posts an event to the observers. Observers are closed once the terminal
// Started state is reached. This function is thread-safe.
func (c *Coordinator) transition(to State, from State) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.state != from {
		return fmt.Errorf("cannot transition from %s to %s: %w",
			c.state, to, errInvalidState)
	}

	prev := c.state
	c.state = to
	c.info("transitioned to state", "to", to.String(), "from", prev.String())

	c.notify(Event{From: prev, To: to})
	if to == Started {
		for _, observer := range c.observers {
			close(observer)
		}
		c.observers = nil
	}

	return nil
}

// notify posts an event to the observers. The lock must be held.
func (c *Coordinator) notify(event Event) {
	for _, observer := range c.observers {
		observer <- event
	}
}

// info logs an information message.
func (c *Coordinator) info(msg string, keysAndValues ...interface{}) {
	if c.opts.Logger != nil {
		c.opts.Logger.Info(msg, keysAndValues...)
	}
}

// error logs an error.
func (c *Coordinator) error(err error, msg string,
	keysAndValues ...interface{}) {
	if c.opts.Logger != nil {
		c.opts.Logger.Error(err, msg, keysAndValues...)
	}
}
