package user

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeUserNotFound       = "USR001"
	ErrCodeEmailAlreadyExists = "USR002"
	ErrCodeInvalidCredentials = "USR003"
	ErrCodeAccountDisabled    = "USR004"
	ErrCodeInvalidRole        = "USR005"
)

// Errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidRole        = errors.New("invalid role")
)

// UserError custom error type
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewUserNotFoundError() *UserError {
	return &UserError{
		Code:    ErrCodeUserNotFound,
		Message: "User not found",
		Err:     ErrUserNotFound,
	}
}

func NewEmailAlreadyExistsError(email string) *UserError {
	return &UserError{
		Code:    ErrCodeEmailAlreadyExists,
		Message: fmt.Sprintf("Email %s is already registered", email),
		Err:     ErrEmailAlreadyExists,
	}
}

func NewInvalidCredentialsError() *UserError {
	return &UserError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid email or password",
		Err:     ErrInvalidCredentials,
	}
}

func NewAccountDisabledError() *UserError {
	return &UserError{
		Code:    ErrCodeAccountDisabled,
		Message: "Account is disabled",
		Err:     ErrAccountDisabled,
	}
}

func NewInvalidRoleError(role string) *UserError {
	return &UserError{
		Code:    ErrCodeInvalidRole,
		Message: fmt.Sprintf("Role %q is not valid", role),
		Err:     ErrInvalidRole,
	}
}
