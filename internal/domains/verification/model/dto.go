package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// SubmitVerificationRequest seller request to submit a product for review
type SubmitVerificationRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// Validate rejects a missing product id. validation.Required cannot do
// this for a uuid.UUID: the zero value is a 16-byte array, which ozzo
// treats as non-empty, so the nil UUID is checked explicitly.
func (r SubmitVerificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID,
			validation.By(validateProductID),
		),
	)
}

func validateProductID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "product_id is required")
	}
	return nil
}

// ReviewVerificationRequest admin decision payload.
// The conditional fields depend on the outcome: an approval must carry a
// sustainability score, a rejection must carry a reason.
type ReviewVerificationRequest struct {
	Status              VerificationStatus `json:"status" binding:"required"`
	ReviewerNotes       *string            `json:"reviewer_notes"`
	SustainabilityScore *int               `json:"sustainability_score"`
	RejectionReason     *string            `json:"rejection_reason"`
}

// Validate enforces the decision payload rules. Checks run in a fixed
// order and the first violation wins, so callers get one field at a time.
func (r ReviewVerificationRequest) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return NewInvalidReviewDataError("status", "must be APPROVED or REJECTED")
	}

	switch r.Status {
	case StatusApproved:
		if r.SustainabilityScore == nil {
			return NewInvalidReviewDataError("sustainabilityScore", "is required when approving")
		}
		if *r.SustainabilityScore < MinSustainabilityScore || *r.SustainabilityScore > MaxSustainabilityScore {
			return NewInvalidReviewDataError("sustainabilityScore", "must be between 0 and 100")
		}
	case StatusRejected:
		if r.RejectionReason == nil || strings.TrimSpace(*r.RejectionReason) == "" {
			return NewInvalidReviewDataError("rejectionReason", "is required when rejecting")
		}
		if len(*r.RejectionReason) > MaxRejectionReasonLength {
			return NewInvalidReviewDataError("rejectionReason", "must not exceed 500 characters")
		}
	}

	if r.ReviewerNotes != nil && len(*r.ReviewerNotes) > MaxReviewerNotesLength {
		return NewInvalidReviewDataError("reviewerNotes", "must not exceed 500 characters")
	}

	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// VerificationResponse read view of a verification returned to callers
type VerificationResponse struct {
	ID                  uuid.UUID          `json:"id"`
	ProductID           uuid.UUID          `json:"product_id"`
	Status              VerificationStatus `json:"status"`
	SubmissionDate      time.Time          `json:"submission_date"`
	VerificationDate    *time.Time         `json:"verification_date,omitempty"`
	ReviewerID          *uuid.UUID         `json:"reviewer_id,omitempty"`
	ReviewerNotes       *string            `json:"reviewer_notes,omitempty"`
	SustainabilityScore *int               `json:"sustainability_score,omitempty"`
	RejectionReason     *string            `json:"rejection_reason,omitempty"`
}

// NewVerificationResponse builds the read view from an entity
func NewVerificationResponse(v *Verification) *VerificationResponse {
	return &VerificationResponse{
		ID:                  v.ID,
		ProductID:           v.ProductID,
		Status:              v.Status,
		SubmissionDate:      v.SubmissionDate,
		VerificationDate:    v.VerificationDate,
		ReviewerID:          v.ReviewerID,
		ReviewerNotes:       v.ReviewerNotes,
		SustainabilityScore: v.SustainabilityScore,
		RejectionReason:     v.RejectionReason,
	}
}

// ListVerificationsResponse response for verification listings
type ListVerificationsResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Total         int                    `json:"total"`
}

// StatusCounts admin dashboard counts per status
type StatusCounts struct {
	Pending  int `json:"pending"`
	InReview int `json:"in_review"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
