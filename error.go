package startup

import "errors"

var (
	errDuplicateService = errors.New("duplicate service")
	errInvalidState     = errors.New("invalid state")
)

// IsDuplicateService returns true if the cause of the error is a service name
// that has already been registered. This indicates a code-ordering bug in the
// caller rather than a recoverable runtime condition.
func IsDuplicateService(err error) bool {
	return errors.Is(err, errDuplicateService)
}

// IsInvalidState returns true if the cause of the error is an invalid
// coordinator state. This is for example returned when registering a service
// after startup has begun, or when calling StartUp a second time.
func IsInvalidState(err error) bool {
	return errors.Is(err, errInvalidState)
}
