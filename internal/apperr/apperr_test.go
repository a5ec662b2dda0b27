package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeWalletNotFound, "wallet not found")
	assert.Equal(t, CodeWalletNotFound, CodeOf(err))
	assert.True(t, Is(err, CodeWalletNotFound))
	assert.False(t, Is(err, CodeTokenRequired))
}

func TestCodeOf_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", New(CodeUnauthorized, "token rejected"))
	assert.Equal(t, CodeUnauthorized, CodeOf(err))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(errors.New("boom")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("signature invalid")
	err := Wrap(CodeUnauthorized, "token rejected", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "UNAUTHORIZED: token rejected", err.Error())
}

func TestError_MessagelessFormat(t *testing.T) {
	assert.Equal(t, "TOKEN_REQUIRED", New(CodeTokenRequired, "").Error())
}
