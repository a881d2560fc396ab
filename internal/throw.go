package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through every phase of the triangulator would add a ton of
// noise for conditions that can only come from a bug (an edge pointing at a
// vertex that isn't in the arena, a split without a sister). Instead, we
// panic, and the public API recovers to an empty result.
//
// Malformed input is not one of these conditions. Bad geometry is handled in
// place and never panics.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Convert a recovered panic into an error. Runtime errors (an index out of
// range, say) are bugs in the triangulator too, and the editor hosting it
// shouldn't go down for them either. Anything else is somebody else's panic,
// and keeps going.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		if runtimeError, ok := r.(runtime.Error); ok {
			return TriangulateError{errors.Wrap(runtimeError, "triangulator bug")}
		}
		panic(r)
	}
	return nil
}
