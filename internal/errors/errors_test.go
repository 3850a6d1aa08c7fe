package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSecond, "calling backend")

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing happened"))
	assert.NoError(t, Wrapf(nil, "nothing happened %d", 1))
}

func TestCause(t *testing.T) {
	err := Wrapf(errFirst, "step %d", 2)

	assert.Equal(t, errFirst, Cause(err))
	assert.Equal(t, "step 2: first", err.Error())
}
