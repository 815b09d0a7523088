package startup

// NoError is a helper function wrapping a routine without an error return as
// a Routine. This is convenient for services whose startup steps cannot fail.
func NoError(fn func()) Routine {
	if fn == nil {
		return nil
	}
	return func() error {
		fn()
		return nil
	}
}
