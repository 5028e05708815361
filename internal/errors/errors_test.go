package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewInputError(t *testing.T) {
	err := NewInputError(ErrInvalidCategory, "category", "interviews", "Invalid appointment type.")

	assert.Equal(t, "Invalid appointment type.", err.Error())
	assert.Equal(t, "category", err.Field)
	assert.Equal(t, "interviews", err.Value)
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	assert.False(t, errors.Is(err, ErrInvalidAnswer))
}

func TestIsUserError(t *testing.T) {
	t.Run("user_error", func(t *testing.T) {
		assert.True(t, IsUserError(NewInputError(ErrEmptyName, "name", "", "Invalid name.")))
	})

	t.Run("wrapped_user_error", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewInputError(ErrEmptyName, "name", "", "Invalid name."))
		assert.True(t, IsUserError(wrapped))

		ue, ok := AsUserError(wrapped)
		require.True(t, ok)
		assert.Equal(t, "name", ue.Field)
	})

	t.Run("not_user_error", func(t *testing.T) {
		assert.False(t, IsUserError(errors.New("plain error")))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.False(t, IsUserError(nil))
	})
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemErrorError(t *testing.T) {
	t.Run("with_cause", func(t *testing.T) {
		err := NewSystemErrorWithOp("set", "store failure", errors.New("badger closed"))
		assert.Equal(t, "store failure during set: badger closed", err.Error())
	})

	t.Run("without_cause", func(t *testing.T) {
		err := NewSystemErrorWithOp("set", "store failure", nil)
		assert.Equal(t, "store failure during set", err.Error())
	})
}

func TestIsSystemError(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewSystemErrorWithOp("list", "store failure", ErrStoreClosed))

	assert.True(t, IsSystemError(err))
	assert.True(t, Is(err, ErrStoreClosed))
	assert.False(t, IsUserError(err))
	assert.False(t, IsSystemError(NewInputError(ErrEmptyTime, "time", "", "Invalid time format.")))
}

// =============================================================================
// Suggestion Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"sentinel", ErrInvalidCategory, "Use consultation, followup or interview."},
		{"input_error", NewInputError(ErrEmptyName, "name", "", "Invalid name."), "Enter the name of the person the appointment is for."},
		{"template", NewInputError(ErrInvalidTemplate, "template", "", "Invalid template."), "Type the new template on a single line."},
		{"unknown", errors.New("other"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSuggestion(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "other", FormatError(errors.New("other")))
	assert.Equal(t, "Invalid input. Please enter a number.\nType the number of a menu option, for example 1.",
		FormatError(NewInputError(ErrNotANumber, "choice", "abc", "Invalid input. Please enter a number.")))
}
