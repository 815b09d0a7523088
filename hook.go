package startup

// Routine is a startup routine attached to a service. Returning from the
// routine, with or without an error, signals completion to the coordinator.
type Routine = func() error
