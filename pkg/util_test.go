package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("points must not be nil or empty")
	err := WrapErrorf(orig, ErrBadParamInput, "cannot build point set of %d points", 0)

	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Equal(t, "cannot build point set of 0 points: points must not be nil or empty", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.Equal(t, ErrBadParamInput, ErrorCode(wrapped))

	assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("boom")))
	assert.Equal(t, "no origin", WrapErrorf(nil, ErrNotFound, "no origin").Error())
}
