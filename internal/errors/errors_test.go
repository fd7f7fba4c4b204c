package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "hub"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftNotFound, ErrShiftNotFound))
		assert.False(t, errors.Is(ErrShiftNotFound, ErrHubNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrShiftTemplateNotFound))
		assert.False(t, IsNotFound(ErrScheduleConflict))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "professional", Context: "with this email"}
		assert.Equal(t, "professional already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "hub"}
		assert.Equal(t, "hub already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "hub", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "hub", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrShiftTemplateExists))
		assert.False(t, IsAlreadyExists(ErrShiftTemplateNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_time", Message: "invalid format"}
		assert.Equal(t, "validation error: start_time - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("start_time", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Scheduling errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidTimeOfDay)
		assert.Error(t, ErrInvalidDayOfWeek)
		assert.Error(t, ErrInvalidTimeRange)
		assert.Error(t, ErrInvalidView)
		assert.Error(t, ErrScheduleConflict)
		assert.Error(t, ErrShiftFullyStaffed)
		assert.Error(t, ErrShiftNotOpen)
		assert.Error(t, ErrHubSuspended)
	})

	t.Run("Authorization errors", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.True(t, IsAuthentication(ErrTokenExpired))
		assert.True(t, IsAuthorization(ErrRoleForbidden))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})
}
