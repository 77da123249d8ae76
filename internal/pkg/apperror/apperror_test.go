package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "missing")))
	assert.Equal(t, KindConflict, KindOf(Newf(KindConflict, "collision on %s", "trip")))

	// Unclassified errors stay on the retry path
	assert.Equal(t, KindTransient, KindOf(errors.New("connection refused")))
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := New(KindInvalidState, "trip is cancelled")
	outer := fmt.Errorf("assign failed: %w", inner)

	assert.Equal(t, KindInvalidState, KindOf(outer))
	assert.True(t, IsDomain(outer))
}

func TestIsDomain(t *testing.T) {
	assert.True(t, IsDomain(New(KindNotFound, "x")))
	assert.True(t, IsDomain(New(KindConflict, "x")))
	assert.True(t, IsDomain(New(KindInvalidState, "x")))
	assert.False(t, IsDomain(New(KindTransient, "x")))
	assert.False(t, IsDomain(errors.New("x")))
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := Wrap(KindNotFound, "trip lookup", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "trip lookup: no rows", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}
