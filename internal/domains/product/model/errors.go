package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProductNotFound = "PRD001"
	ErrCodeSlugTaken       = "PRD002"
	ErrCodeNotOwner        = "PRD003"
	ErrCodeInvalidScore    = "PRD004"
)

// Errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrSlugTaken       = errors.New("product slug already in use")
	ErrNotOwner        = errors.New("product belongs to another seller")
	ErrInvalidScore    = errors.New("sustainability score out of range")
)

// ProductError custom error type
type ProductError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProductError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewProductNotFoundError() *ProductError {
	return &ProductError{
		Code:    ErrCodeProductNotFound,
		Message: "Product not found",
		Err:     ErrProductNotFound,
	}
}

func NewSlugTakenError(slug string) *ProductError {
	return &ProductError{
		Code:    ErrCodeSlugTaken,
		Message: fmt.Sprintf("Slug %q is already in use", slug),
		Err:     ErrSlugTaken,
	}
}

func NewNotOwnerError() *ProductError {
	return &ProductError{
		Code:    ErrCodeNotOwner,
		Message: "You can only modify your own products",
		Err:     ErrNotOwner,
	}
}

func NewInvalidScoreError(score int) *ProductError {
	return &ProductError{
		Code:    ErrCodeInvalidScore,
		Message: fmt.Sprintf("Sustainability score %d is out of range [0, 100]", score),
		Err:     ErrInvalidScore,
	}
}
