package geometry

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			throw(errors.New("kaboom!"))
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("typed errors survive", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandlePanicRecover(recover())
			}()
			throw(newDegenerateGeometryError("test", "stuck at %v", Pt(1, 2)))
			return nil
		}()
		assert.True(t, IsDegenerateGeometry(err))
		assert.EqualError(t, err, "test: degenerate geometry: stuck at (1, 2)")
	})
}
