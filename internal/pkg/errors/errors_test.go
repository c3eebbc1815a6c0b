package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundWrapsSentinel(t *testing.T) {
	err := NotFound("EVENT_NOT_FOUND", "no such event")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)

	// Still detectable through further wrapping.
	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsNotFound(wrapped))

	appErr, ok := IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "EVENT_NOT_FOUND", appErr.Code)
}

func TestConfigurationWrapsSentinel(t *testing.T) {
	err := Configuration("NOTIFICATION_TEMPLATE_UNMAPPED", "no template")

	assert.True(t, IsConfiguration(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestErrorStringIncludesWrapped(t *testing.T) {
	inner := errors.New("boom")
	err := Wrap(inner, "CODE", "message", http.StatusBadRequest)

	assert.Contains(t, err.Error(), "CODE")
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestPlainErrorIsNotAppError(t *testing.T) {
	_, ok := IsAppError(errors.New("plain"))
	assert.False(t, ok)
}
