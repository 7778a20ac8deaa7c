package hull

import "github.com/pkg/errors"

// Internal invariant violations (a non-finite bearing, say) are not worth
// threading error returns through every level of the trace. They panic
// instead, and the public API converts the panic back into an error.

type hullError struct {
	error
}

// fatalf panics with a hullError.
func fatalf(format string, args ...interface{}) {
	panic(hullError{errors.Errorf(format, args...)})
}

// HandleComputePanicRecover converts a recovered hullError back into an
// error, and re-panics anything that isn't ours.
func HandleComputePanicRecover(r interface{}) error {
	if r != nil {
		if herr, ok := r.(hullError); ok {
			return herr.error
		}
		panic(r)
	}
	return nil
}
