package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("WrapsErrorWithContext", func(t *testing.T) {
		err := Wrap(ErrNotFound, "failed to get project")
		assert.Error(t, err)
		assert.Equal(t, "failed to get project: not found", err.Error())
		assert.True(t, Is(err, ErrNotFound))
	})

	t.Run("NilErrorReturnsNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("PreservesChainThroughMultipleWraps", func(t *testing.T) {
		err := Wrap(Wrap(ErrUnauthorized, "gate check"), "middleware")
		assert.True(t, Is(err, ErrUnauthorized))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrConflict)
	assert.True(t, Is(err, ErrConflict))
	assert.False(t, Is(err, ErrNotFound))
}

func TestNew(t *testing.T) {
	err := New("something failed")
	assert.EqualError(t, err, "something failed")
}
