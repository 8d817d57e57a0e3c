package geometry

// Threading errors up out of the inner loops of the wrapping algorithms would
// add a lot of noise to the code. Instead, those loops panic with a
// GeometryError, and the exported entry points recover to convert to an error.

type GeometryError struct {
	error
}

// Panic with a GeometryError wrapping err.
func throw(err error) {
	panic(GeometryError{err})
}

// Convert a recovered GeometryError back into an error. Any other panic is
// re-raised, since it is a real bug.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError.error
		}
		panic(r)
	}
	return nil
}
