package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error codes
const (
	ErrCodeVerificationNotFound = "VER001"
	ErrCodeDuplicate            = "VER002"
	ErrCodeInvalidStatus        = "VER003"
	ErrCodeInvalidReviewData    = "VER004"
	ErrCodeProductNotFound      = "VER005"
	ErrCodeReviewerNotFound     = "VER006"
)

// Errors
var (
	ErrVerificationNotFound = errors.New("verification not found")
	ErrDuplicate            = errors.New("product already has an open verification")
	ErrInvalidStatus        = errors.New("verification is already resolved")
	ErrInvalidReviewData    = errors.New("invalid review data")
	ErrProductNotFound      = errors.New("product not found")
	ErrReviewerNotFound     = errors.New("reviewer not found")
)

// VerificationError custom error type
type VerificationError struct {
	Code    string
	Message string
	Err     error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewVerificationNotFoundError() *VerificationError {
	return &VerificationError{
		Code:    ErrCodeVerificationNotFound,
		Message: "Verification not found",
		Err:     ErrVerificationNotFound,
	}
}

// NewDuplicateError carries the product id for diagnostics
func NewDuplicateError(productID uuid.UUID) *VerificationError {
	return &VerificationError{
		Code:    ErrCodeDuplicate,
		Message: fmt.Sprintf("Product %s already has an open verification", productID),
		Err:     ErrDuplicate,
	}
}

func NewInvalidStatusError(status VerificationStatus) *VerificationError {
	return &VerificationError{
		Code:    ErrCodeInvalidStatus,
		Message: fmt.Sprintf("Verification in status %s cannot be reviewed", status),
		Err:     ErrInvalidStatus,
	}
}

// NewInvalidReviewDataError names the offending field
func NewInvalidReviewDataError(field, reason string) *VerificationError {
	return &VerificationError{
		Code:    ErrCodeInvalidReviewData,
		Message: fmt.Sprintf("Invalid review data: %s %s", field, reason),
		Err:     fmt.Errorf("%w: %s", ErrInvalidReviewData, field),
	}
}

func NewProductNotFoundError(productID uuid.UUID) *VerificationError {
	return &VerificationError{
		Code:    ErrCodeProductNotFound,
		Message: fmt.Sprintf("Product %s not found", productID),
		Err:     ErrProductNotFound,
	}
}

func NewReviewerNotFoundError(reviewerID uuid.UUID) *VerificationError {
	return &VerificationError{
		Code:    ErrCodeReviewerNotFound,
		Message: fmt.Sprintf("Reviewer %s not found", reviewerID),
		Err:     ErrReviewerNotFound,
	}
}
