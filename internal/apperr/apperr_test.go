package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitdeck/fitdeck/internal/apperr"
)

var errSample = &apperr.Error{
	Message: "cannot %s a %s timer",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt("start", "finished")

	assert.Equal(t, "cannot start a finished timer", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.NotErrorIs(t, err, &apperr.Error{Message: "something else"})
}

func TestWrap(t *testing.T) {
	base := &apperr.Error{Message: "save failed"}

	err := base.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "save failed: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(err, base))
}
