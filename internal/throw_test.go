package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow, shouldBreak, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom %d!", 3)
		}

		if shouldBreak {
			var edges []Edge
			_ = edges[len(edges)]
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false, false)
		assert.EqualError(t, err, "kaboom 3!")
		assert.IsType(t, TriangulateError{}, err)
	})

	t.Run("with runtime error", func(t *testing.T) {
		err := testFn(false, true, false)
		require.Error(t, err)
		assert.IsType(t, TriangulateError{}, err)
		assert.Contains(t, err.Error(), "triangulator bug")
		assert.Contains(t, err.Error(), "index out of range")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false, false)
		assert.NoError(t, err)
	})
}

func TestTriangulateError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := error(TriangulateError{errors.Wrap(cause, "context")})
	assert.Equal(t, cause, errors.Cause(errors.Unwrap(err)))
}
