package startup

// Service is any value registered with a Coordinator. A service may implement
// Initializer, Starter, both or neither; the coordinator consumes nothing
// else from it.
type Service = interface{}

// Initializer is implemented by services that need a preparation step before
// any service is started. All Initialize routines run concurrently with no
// defined relative order: an Initialize routine must not assume any other
// service has been initialized.
type Initializer interface {
	Initialize() error
}

// Starter is implemented by services that perform work once every registered
// service has been initialized. Start routines run concurrently and the
// coordinator does not wait for them to return.
type Starter interface {
	Start() error
}

// Hooks bundles optional Initialize and Start routines so plain functions can
// be registered without declaring a new type. Either field may be nil.
type Hooks struct {
	Initialize Routine
	Start      Routine
}

// initializerOf extracts the Initialize routine of a service, if any. An
// explicit Hooks bundle takes precedence over the Initializer interface.
func initializerOf(svc Service) Routine {
	switch s := svc.(type) {
	case *Hooks:
		return s.Initialize
	case Hooks:
		return s.Initialize
	case Initializer:
		return s.Initialize
	}
	return nil
}

// starterOf extracts the Start routine of a service, if any.
func starterOf(svc Service) Routine {
	switch s := svc.(type) {
	case *Hooks:
		return s.Start
	case Hooks:
		return s.Start
	case Starter:
		return s.Start
	}
	return nil
}
