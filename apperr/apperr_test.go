package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := New(KindForbidden, "Not authorized to access this %s", "project")
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.EqualError(t, err, "Not authorized to access this project")
}

func TestKindOfWrappedError(t *testing.T) {
	inner := New(KindNotFound, "Task not found")
	wrapped := fmt.Errorf("resolving owner: %w", inner)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
}

func TestKindOfPlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("connection reset")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, KindInternal, "storage failure")
	require.EqualError(t, err, "storage failure")
	assert.ErrorIs(t, err, cause)
}
