package startup

import "fmt"

// Registry is the name to service mapping backing a Coordinator. Names are
// unique for the lifetime of the process. The mapping is populated during the
// registration window only: once startup has begun it is read-only, so the
// coordinator reads it without synchronization.
//
// Access is serialized by the owning coordinator; a Registry has no lock of
// its own.
type Registry struct {
	services map[string]Service
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Service),
	}
}

// add inserts a service under a unique name. It fails if the name is already
// taken and leaves the mapping unchanged in that case.
func (r *Registry) add(name string, svc Service) error {
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %q already registered: %w", name,
			errDuplicateService)
	}
	r.services[name] = svc
	return nil
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	return len(r.services)
}

// each invokes fn for every registered service, in no defined order.
func (r *Registry) each(fn func(name string, svc Service)) {
	for name, svc := range r.services {
		fn(name, svc)
	}
}
