package errors

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "without internal error",
			err:      NewNotFoundError("Video not found"),
			expected: "not_found: Video not found",
		},
		{
			name:     "with internal error",
			err:      NewStorageError("Failed to persist state", io.ErrUnexpectedEOF),
			expected: "storage: Failed to persist state (unexpected EOF)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestConstructors_StatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad", nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, NewAuthorizationError("no").StatusCode)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("missing").StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, NewStorageError("down", nil).StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("boom", nil).StatusCode)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewValidationError("page must be a number", nil))

	appErr := As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeValidation, appErr.Type)
	assert.True(t, IsType(wrapped, ErrorTypeValidation))

	plain := As(io.EOF)
	assert.Equal(t, ErrorTypeInternal, plain.Type)
	assert.ErrorIs(t, plain, io.EOF)
	assert.False(t, IsType(io.EOF, ErrorTypeNotFound))
}
