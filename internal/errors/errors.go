package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in hub"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrHubNotFound             = &NotFoundError{Entity: "hub"}
	ErrProfessionalNotFound    = &NotFoundError{Entity: "professional"}
	ErrShiftNotFound           = &NotFoundError{Entity: "shift"}
	ErrShiftTemplateNotFound   = &NotFoundError{Entity: "shift template"}
	ErrShiftAssignmentNotFound = &NotFoundError{Entity: "shift assignment"}
)

// Already Exists Errors
var (
	ErrHubExists             = &AlreadyExistsError{Entity: "hub", Context: "with this name"}
	ErrProfessionalExists    = &AlreadyExistsError{Entity: "professional", Context: "with this email"}
	ErrShiftTemplateExists   = &AlreadyExistsError{Entity: "shift template", Context: "for this day and time window in the hub"}
	ErrShiftAssignmentExists = &AlreadyExistsError{Entity: "shift assignment", Context: "for this professional"}
)

// Business Logic Errors
var (
	ErrInvalidTimeOfDay        = errors.New("invalid time of day, expected HH:MM")
	ErrInvalidDayOfWeek        = errors.New("invalid day of week, expected 0-6")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidView             = errors.New("invalid calendar view")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrScheduleConflict        = errors.New("schedule conflict detected")
	ErrShiftFullyStaffed       = errors.New("shift already has the required staff")
	ErrShiftNotOpen            = errors.New("shift is not open for assignment")
	ErrHubSuspended            = errors.New("hub is suspended")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidToken  = &AuthenticationError{Message: "invalid token"}
	ErrTokenExpired  = &AuthenticationError{Message: "token has expired"}
	ErrMissingRole   = &AuthorizationError{Message: "user role not found in context"}
	ErrRoleForbidden = &AuthorizationError{Message: "user role is not allowed to perform this action"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
